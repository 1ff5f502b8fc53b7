package decimal

import (
	"encoding/binary"

	"github.com/calebcase/bid/wide"
)

// marshalRaw returns the big-endian interchange bytes of the low f.Bits bits
// of raw.
func marshalRaw(f *Format, raw wide.U256) []byte {
	data := make([]byte, f.Bits/8)

	if f.Bits == 32 {
		binary.BigEndian.PutUint32(data, uint32(raw.Field(0, 32)))

		return data
	}

	n := len(data) / 8
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint64(data[(n-1-i)*8:], raw.Limb(i).Value())
	}

	return data
}

func unmarshalRaw(f *Format, data []byte) (raw wide.U256, err error) {
	if uint(len(data))*8 != f.Bits {
		return raw, Error.New("decimal%d: invalid length %d", f.Bits, len(data))
	}

	if f.Bits == 32 {
		return wide.U256FromU64(uint64(binary.BigEndian.Uint32(data))), nil
	}

	var limbs [4]uint64

	n := len(data) / 8
	for i := 0; i < n; i++ {
		limbs[i] = binary.BigEndian.Uint64(data[(n-1-i)*8:])
	}

	return wide.NewU256(limbs), nil
}
