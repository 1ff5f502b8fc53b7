//go:build bid_tiny_before
// +build bid_tiny_before

package flags

const (
	tinyAfterRounding = false
	tinyBeforeMask    = IdecFlags(0xff)
)
