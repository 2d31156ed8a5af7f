package util

type Comparable[T any] interface {
	CompareTo(T) int
}

// Minimum is implemented by values that can pick the smaller of themselves
// and another value of the same type. Implementations return one of the two
// operands, never a new value.
type Minimum[T any] interface {
	Min(other T) T
}

// MinimumPtr matches element types whose pointer implements Minimum.
type MinimumPtr[T any] interface {
	*T
	Minimum[*T]
}
