package bigint_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnjamespj/bigord/pkg/bigint"
)

func TestNew(t *testing.T) {
	assert.True(t, bigint.New(0).IsZero())
	assert.Equal(t, 0, bigint.New(0).Len())
	assert.Equal(t, []uint64{42}, bigint.New(42).Digits())
	assert.True(t, bigint.New(0).Equal(&bigint.BigInt{}))
}

func TestFromSlice(t *testing.T) {
	t.Run("drops trailing zeros", func(t *testing.T) {
		b := bigint.FromSlice([]uint64{80, 100, 0, 0})
		assert.True(t, b.Normalized())
		assert.Equal(t, 2, b.Len())
		assert.True(t, b.Equal(bigint.FromSlice([]uint64{80, 100})))
	})

	t.Run("all zeros is zero", func(t *testing.T) {
		b := bigint.FromSlice([]uint64{0, 0, 0})
		assert.True(t, b.IsZero())
		assert.True(t, b.Equal(bigint.New(0)))
	})

	t.Run("single digit matches New", func(t *testing.T) {
		assert.True(t, bigint.FromSlice([]uint64{13, 0}).Equal(bigint.New(13)))
	})

	t.Run("input is copied", func(t *testing.T) {
		digits := []uint64{1, 2}
		b := bigint.FromSlice(digits)
		digits[1] = 0
		assert.Equal(t, []uint64{1, 2}, b.Digits())
	})

	t.Run("digits are copied", func(t *testing.T) {
		b := bigint.FromSlice([]uint64{1, 2})
		b.Digits()[1] = 0
		assert.True(t, b.Normalized())
		assert.Equal(t, []uint64{1, 2}, b.Digits())
	})
}

func TestEqual(t *testing.T) {
	b1 := bigint.New(13)
	b2 := bigint.New(37)

	assert.True(t, b1.Equal(b1))
	assert.False(t, b1.Equal(b2))
	assert.True(t, b1.Equal(bigint.New(13)))
	assert.False(t, bigint.FromSlice([]uint64{13, 1}).Equal(b1))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[80 100]", bigint.FromSlice([]uint64{80, 100}).String())
	assert.Equal(t, "[]", bigint.New(0).String())
	assert.Equal(t, "bigint.FromSlice([]uint64{0x2a})", bigint.New(42).GoString())
}

func TestMathBig(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		x, ok := new(big.Int).SetString("123456789012345678901234567890123456789", 10)
		require.True(t, ok)

		b, err := bigint.FromMathBig(x)
		require.NoError(t, err)
		assert.Equal(t, 2, b.Len())
		assert.Equal(t, 0, x.Cmp(b.ToMathBig()))
	})

	t.Run("digit layout", func(t *testing.T) {
		// 80 + 100 * 2^64
		x := new(big.Int).Lsh(big.NewInt(100), 64)
		x.Add(x, big.NewInt(80))

		b, err := bigint.FromMathBig(x)
		require.NoError(t, err)
		assert.Equal(t, []uint64{80, 100}, b.Digits())
	})

	t.Run("zero", func(t *testing.T) {
		b, err := bigint.FromMathBig(new(big.Int))
		require.NoError(t, err)
		assert.True(t, b.IsZero())
		assert.Equal(t, 0, b.ToMathBig().Sign())
	})

	t.Run("negative", func(t *testing.T) {
		_, err := bigint.FromMathBig(big.NewInt(-1))
		assert.ErrorIs(t, err, bigint.ErrNegative)
	})
}
