package bid

import (
	"io"

	"github.com/calebcase/bid/decimal"
)

// Encoder writes decimal words to a stream as big-endian interchange bytes.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes v.
func (e *Encoder) Encode(v decimal.Word) (err error) {
	defer Error.WrapP(&err)

	data, err := v.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)

	return err
}
