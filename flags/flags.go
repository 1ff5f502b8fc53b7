// Package flags defines the status flag vocabulary shared by decimal
// arithmetic.
//
// A flag set is a bitmask. Arithmetic outside this module ORs conditions into
// an IdecFlags value; this package only fixes which bit means what.
//
// Build Configuration
//
// Two build tags select the constant values at compile time:
//
//  bid_noflags      status flags are not reported (reduced profile)
//  bid_tiny_before  tininess is detected before rounding (default: after)
//
// Lookup Table
//
//  | Condition        | report, after | report, before | noreport, after | noreport, before |
//  |------------------|---------------|----------------|-----------------|------------------|
//  | Invalid          | 0x01          | 0x01           | 0x01            | 0x01             |
//  | Denormal         | 0x02          | 0x02           | 0x00            | 0x00             |
//  | DivisionByZero   | 0x04          | 0x04           | 0x04            | 0x04             |
//  | Overflow         | 0x08          | 0x08           | 0x00            | 0x00             |
//  | Underflow        | 0x10          | 0x10           | 0x00            | 0x00             |
//  | Inexact          | 0x20          | 0x20           | 0x00            | 0x00             |
//  | OverflowInexact  | 0x28          | 0x28           | 0x00            | 0x00             |
//  | UnderflowInexact | 0x30          | 0x30           | 0x00            | 0x00             |
//  | TinyInexact      | 0x20          | 0x30           | 0x00            | 0x00             |
//  |------------------|---------------|----------------|-----------------|------------------|
//
// TinyInexact is the condition of a result that is tiny before rounding but
// rounds up to the smallest normal magnitude. It only counts as an underflow
// when tininess is detected before rounding.
package flags

import (
	"fmt"
	"strings"
)

// IdecFlags is a set of status flags.
type IdecFlags uint8

// Flag bits, independent of the build configuration.
const (
	InvalidBit        IdecFlags = 0x01
	DenormalBit       IdecFlags = 0x02
	DivisionByZeroBit IdecFlags = 0x04
	OverflowBit       IdecFlags = 0x08
	UnderflowBit      IdecFlags = 0x10
	InexactBit        IdecFlags = 0x20
)

// Status flags as resolved by the build configuration. A condition the build
// never reports is 0.
const (
	Invalid        = InvalidBit
	Denormal       = DenormalBit & reportMask
	DivisionByZero = DivisionByZeroBit
	Overflow       = OverflowBit & reportMask
	Underflow      = UnderflowBit & reportMask
	Inexact        = InexactBit & reportMask

	OverflowInexact  = Overflow | Inexact
	UnderflowInexact = Underflow | Inexact
	TinyInexact      = (UnderflowBit&tinyBeforeMask | InexactBit) & reportMask
)

// Config is a build configuration.
type Config struct {
	// Report is false when built with bid_noflags.
	Report bool

	// TinyAfterRounding is false when built with bid_tiny_before.
	TinyAfterRounding bool
}

// Build is the configuration this binary was compiled with.
var Build = Config{
	Report:            reportFlags,
	TinyAfterRounding: tinyAfterRounding,
}

// Table holds the flag value of every condition under one configuration.
type Table struct {
	Invalid          IdecFlags
	Denormal         IdecFlags
	DivisionByZero   IdecFlags
	Overflow         IdecFlags
	Underflow        IdecFlags
	Inexact          IdecFlags
	OverflowInexact  IdecFlags
	UnderflowInexact IdecFlags
	TinyInexact      IdecFlags
}

// Resolve returns the lookup table for c. Resolve(Build) matches the package
// constants.
func Resolve(c Config) Table {
	mask := IdecFlags(0)
	if c.Report {
		mask = 0xff
	}

	tiny := InexactBit
	if !c.TinyAfterRounding {
		tiny |= UnderflowBit
	}

	return Table{
		Invalid:          InvalidBit,
		Denormal:         DenormalBit & mask,
		DivisionByZero:   DivisionByZeroBit,
		Overflow:         OverflowBit & mask,
		Underflow:        UnderflowBit & mask,
		Inexact:          InexactBit & mask,
		OverflowInexact:  (OverflowBit | InexactBit) & mask,
		UnderflowInexact: (UnderflowBit | InexactBit) & mask,
		TinyInexact:      tiny & mask,
	}
}

// Has reports whether every bit of g is set in f. Has(0) is always true.
func (f IdecFlags) Has(g IdecFlags) bool {
	return f&g == g
}

var names = []struct {
	bit  IdecFlags
	name string
}{
	{InvalidBit, "invalid"},
	{DenormalBit, "denormal"},
	{DivisionByZeroBit, "division-by-zero"},
	{OverflowBit, "overflow"},
	{UnderflowBit, "underflow"},
	{InexactBit, "inexact"},
}

// String renders f as a pipe separated list of flag names. Unknown bits are
// rendered in hex and the empty set is "none".
func (f IdecFlags) String() string {
	if f == 0 {
		return "none"
	}

	parts := []string{}

	for _, n := range names {
		if f&n.bit != 0 {
			parts = append(parts, n.name)
			f &^= n.bit
		}
	}

	if f != 0 {
		parts = append(parts, fmt.Sprintf("%#02x", uint8(f)))
	}

	return strings.Join(parts, "|")
}
