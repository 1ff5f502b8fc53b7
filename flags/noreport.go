//go:build bid_noflags
// +build bid_noflags

package flags

const (
	reportFlags = false
	reportMask  = IdecFlags(0x00)
)
