package bigint

// Min returns whichever of b and other is numerically smaller. When both are
// equal it returns b. Neither operand is copied.
func (b *BigInt) Min(other *BigInt) *BigInt {
	if b.CompareTo(other) <= 0 {
		return b
	}

	return other
}

// CompareTo returns -1, 0 or 1 as b is less than, equal to or greater than
// other. Both operands must be normalized.
func (b *BigInt) CompareTo(other *BigInt) int {
	mustBeNormalized(b, other)

	// Without trailing zeros a longer digit sequence is always larger.
	if len(b.data) != len(other.data) {
		if len(b.data) < len(other.data) {
			return -1
		}
		return 1
	}

	for idx := len(b.data) - 1; idx >= 0; idx-- {
		switch {
		case b.data[idx] < other.data[idx]:
			return -1
		case b.data[idx] > other.data[idx]:
			return 1
		}
	}

	return 0
}
