// Package bigint implements a non-negative arbitrary-precision integer that
// can be ordered without copying its digits.
package bigint

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/slices"

	"github.com/johnjamespj/bigord/pkg/util"
)

var (
	ErrNegative = fmt.Errorf("bigint: negative value")
)

// BigInt stores its magnitude as base 2^64 digits, least significant first.
// The digit slice never ends in a zero, so zero has no digits at all. The zero
// value is ready to use and represents 0.
type BigInt struct {
	data []uint64
}

var (
	_ util.Minimum[*BigInt]    = (*BigInt)(nil)
	_ util.Comparable[*BigInt] = (*BigInt)(nil)
)

func New(v uint64) *BigInt {
	if v == 0 {
		return &BigInt{}
	}

	return &BigInt{data: []uint64{v}}
}

// FromSlice builds a BigInt from little endian digits, dropping any trailing
// zeros. digits is copied.
func FromSlice(digits []uint64) *BigInt {
	return &BigInt{data: slices.Clone(util.TrimZeros(digits))}
}

func FromMathBig(x *big.Int) (*BigInt, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegative, x)
	}

	buf := x.Bytes()
	digits := make([]uint64, (len(buf)+7)/8)
	for i, b := range buf {
		pos := len(buf) - 1 - i
		digits[pos/8] |= uint64(b) << (8 * (pos % 8))
	}

	return FromSlice(digits), nil
}

func (b *BigInt) ToMathBig() *big.Int {
	x := new(big.Int)
	word := new(big.Int)
	for i := len(b.data) - 1; i >= 0; i-- {
		x.Lsh(x, 64)
		x.Or(x, word.SetUint64(b.data[i]))
	}

	return x
}

// Normalized reports whether b has no trailing zero digit. It only fails for
// values that were not built by this package's constructors.
func (b *BigInt) Normalized() bool {
	return util.IsNormalized(b.data)
}

// Len returns the number of digits.
func (b *BigInt) Len() int {
	return len(b.data)
}

func (b *BigInt) IsZero() bool {
	return len(b.data) == 0
}

// Digits returns a copy of the digits, least significant first.
func (b *BigInt) Digits() []uint64 {
	return slices.Clone(b.data)
}

func (b *BigInt) Equal(other *BigInt) bool {
	mustBeNormalized(b, other)
	return slices.Equal(b.data, other.data)
}

func (b *BigInt) String() string {
	return fmt.Sprint(b.data)
}

func (b *BigInt) GoString() string {
	return fmt.Sprintf("bigint.FromSlice(%#v)", b.data)
}

func mustBeNormalized(a, b *BigInt) {
	if !a.Normalized() {
		panic(fmt.Sprintf("bigint: trailing zero digit in %v", a.data))
	}
	if !b.Normalized() {
		panic(fmt.Sprintf("bigint: trailing zero digit in %v", b.data))
	}
}
