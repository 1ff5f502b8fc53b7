package bid

import (
	"encoding"
	"io"

	"github.com/calebcase/bid/decimal"
)

// Value is a decimal word that can be read from a stream.
type Value interface {
	Format() *decimal.Format
	encoding.BinaryUnmarshaler
}

// Decoder reads fixed width decimal words from a stream.
type Decoder struct {
	r io.Reader

	consumed uint64
}

// NewDecoder returns a new decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decode reads the next word into v. The width of v selects how many bytes
// are read. At the end of the stream it returns io.EOF unwrapped.
func (d *Decoder) Decode(v Value) (err error) {
	buf := make([]byte, v.Format().Bits/8)

	n, err := io.ReadFull(d.r, buf)
	d.consumed += uint64(n)
	if err == io.EOF {
		return err
	}
	if err != nil {
		return Error.Wrap(err)
	}

	return Error.Wrap(v.UnmarshalBinary(buf))
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() uint64 {
	return d.consumed
}
