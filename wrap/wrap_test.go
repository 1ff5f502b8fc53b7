package wrap_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bid/wrap"
)

func TestU64(t *testing.T) {
	type TC struct {
		a, b uint64
		Mark error
	}

	tcs := []TC{
		{a: math.MaxUint64, b: 1, Mark: oops.New("unexpected")},
		{a: 0, b: 1, Mark: oops.New("unexpected")},
		{a: math.MaxUint64, b: math.MaxUint64, Mark: oops.New("unexpected")},
		{a: 1 << 63, b: 2, Mark: oops.New("unexpected")},
		{a: 0xdead_beef_cafe_f00d, b: 0x1234_5678_9abc_def0, Mark: oops.New("unexpected")},
		{a: 7, b: math.MaxUint64, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%x,%x", i, tc.a, tc.b), func(t *testing.T) {
			a, b := wrap.NewU64(tc.a), wrap.NewU64(tc.b)

			require.Equal(t, tc.a+tc.b, a.Add(b).Value(), tc.Mark)
			require.Equal(t, tc.a-tc.b, a.Sub(b).Value(), tc.Mark)
			require.Equal(t, tc.a*tc.b, a.Mul(b).Value(), tc.Mark)
			require.Equal(t, tc.a/tc.b, a.Div(b).Value(), tc.Mark)
			require.Equal(t, tc.a^tc.b, a.Xor(b).Value(), tc.Mark)
			require.Equal(t, tc.a&tc.b, a.And(b).Value(), tc.Mark)
			require.Equal(t, tc.a|tc.b, a.Or(b).Value(), tc.Mark)
			require.Equal(t, ^tc.a, a.Not().Value(), tc.Mark)
		})
	}

	t.Run("boundary", func(t *testing.T) {
		max := wrap.NewU64(math.MaxUint64)
		one := wrap.NewU64(1)

		require.Equal(t, wrap.U64{}, max.Add(one))
		require.True(t, max.Add(one).IsZero())
		require.Equal(t, max, wrap.U64{}.Sub(one))
		require.Equal(t, one, max.Mul(max))
		require.Equal(t, one, max.Div(max))
		require.Equal(t, wrap.U64{}, max.Xor(max))
	})

	t.Run("shift", func(t *testing.T) {
		one := wrap.NewU64(1)

		require.Equal(t, uint64(1<<63), one.Shl(63).Value())
		require.True(t, one.Shl(64).IsZero())
		require.Equal(t, one, one.Shl(63).Shr(63))
		require.True(t, one.Shr(64).IsZero())
	})

	t.Run("cmp", func(t *testing.T) {
		require.Equal(t, -1, wrap.NewU64(1).Cmp(wrap.NewU64(2)))
		require.Equal(t, 0, wrap.NewU64(2).Cmp(wrap.NewU64(2)))
		require.Equal(t, 1, wrap.NewU64(math.MaxUint64).Cmp(wrap.NewU64(2)))
	})
}

func TestU32(t *testing.T) {
	type TC struct {
		a, b uint32
	}

	tcs := []TC{
		{a: math.MaxUint32, b: 1},
		{a: 0, b: 1},
		{a: math.MaxUint32, b: math.MaxUint32},
		{a: 1 << 31, b: 2},
		{a: 0xcafe_f00d, b: 0x1234_5678},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%x,%x", i, tc.a, tc.b), func(t *testing.T) {
			a, b := wrap.NewU32(tc.a), wrap.NewU32(tc.b)

			require.Equal(t, tc.a+tc.b, a.Add(b).Value())
			require.Equal(t, tc.a-tc.b, a.Sub(b).Value())
			require.Equal(t, tc.a*tc.b, a.Mul(b).Value())
			require.Equal(t, tc.a/tc.b, a.Div(b).Value())
			require.Equal(t, tc.a^tc.b, a.Xor(b).Value())
		})
	}

	t.Run("boundary", func(t *testing.T) {
		max := wrap.NewU32(math.MaxUint32)

		require.True(t, max.Add(wrap.NewU32(1)).IsZero())
		require.Equal(t, max, wrap.U32{}.Sub(wrap.NewU32(1)))
		require.Equal(t, uint64(math.MaxUint32), max.U64().Value())
		require.Equal(t, max, wrap.NewU64(math.MaxUint64).U32())
	})
}

func TestMixedWidth(t *testing.T) {
	type TC struct {
		a uint64
		b uint32
	}

	tcs := []TC{
		{a: math.MaxUint64, b: 1},
		{a: math.MaxUint64, b: math.MaxUint32},
		{a: 0, b: math.MaxUint32},
		{a: 1 << 32, b: 1 << 31},
		{a: 0xdeadbeefcafe, b: 0},
		{a: 7, b: 3},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%x,%x", i, tc.a, tc.b), func(t *testing.T) {
			a, b := wrap.NewU64(tc.a), wrap.NewU32(tc.b)

			require.Equal(t, tc.a+uint64(tc.b), a.AddU32(b).Value())
			require.Equal(t, a.AddU32(b), b.AddU64(a))

			require.Equal(t, tc.a*uint64(tc.b), a.MulU32(b).Value())
			require.Equal(t, a.MulU32(b), b.MulU64(a))

			require.Equal(t, tc.a-uint64(tc.b), a.SubU32(b).Value())
			require.Equal(t, uint64(tc.b)-tc.a, b.SubU64(a).Value())

			require.Equal(t, tc.a^uint64(tc.b), a.XorU32(b).Value())
			require.Equal(t, a.XorU32(b), b.XorU64(a))

			if tc.b == 0 {
				require.PanicsWithValue(t, wrap.ErrDivideByZero, func() {
					a.DivU32(b)
				})

				_, err := a.CheckedDivU32(b)
				require.ErrorIs(t, err, wrap.ErrDivideByZero)
			} else {
				require.Equal(t, tc.a/uint64(tc.b), a.DivU32(b).Value())

				q, err := a.CheckedDivU32(b)
				require.NoError(t, err)
				require.Equal(t, a.DivU32(b), q)
			}

			if tc.a == 0 {
				require.PanicsWithValue(t, wrap.ErrDivideByZero, func() {
					b.DivU64(a)
				})

				_, err := b.CheckedDivU64(a)
				require.ErrorIs(t, err, wrap.ErrDivideByZero)
			} else {
				require.Equal(t, uint64(tc.b)/tc.a, b.DivU64(a).Value())
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := wrap.NewU64(1).CheckedDiv(wrap.U64{})
	require.Error(t, err)
	require.True(t, wrap.Error.Has(err))

	_, err = wrap.NewU32(1).CheckedDiv(wrap.U32{})
	require.ErrorIs(t, err, wrap.ErrDivideByZero)

	require.PanicsWithValue(t, wrap.ErrDivideByZero, func() {
		wrap.NewU64(1).Div(wrap.U64{})
	})
	require.PanicsWithValue(t, wrap.ErrDivideByZero, func() {
		wrap.NewU32(1).Div(wrap.U32{})
	})
}

func TestString(t *testing.T) {
	require.Equal(t, "0", wrap.U64{}.String())
	require.Equal(t, "0", wrap.U32{}.String())
	require.Equal(t, "18446744073709551615", wrap.NewU64(math.MaxUint64).String())
	require.Equal(t, "4294967295", wrap.NewU32(math.MaxUint32).String())
	require.Equal(t, "1000", fmt.Sprint(wrap.NewU64(1000)))
}
