//go:build !bid_tiny_before
// +build !bid_tiny_before

package flags

const (
	tinyAfterRounding = true
	tinyBeforeMask    = IdecFlags(0x00)
)
