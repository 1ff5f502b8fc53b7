//go:build !bid_noflags
// +build !bid_noflags

package flags

const (
	reportFlags = true
	reportMask  = IdecFlags(0xff)
)
