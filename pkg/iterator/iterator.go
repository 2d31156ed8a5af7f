package iterator

// Iterable is a restartable sequence; every call to Itr starts from the
// beginning.
type Iterable[V any] interface {
	Itr() Iterator[V]

	Take(n int) Iterable[V]

	Skip(n int) Iterable[V]

	Where(pred func(V) bool) Iterable[V]

	ForEach(f func(V))

	ToList() []V
}

type Iterator[V any] interface {
	Move() (V, bool)
}

// IteratorFunc adapts a plain function to Iterator.
type IteratorFunc[V any] func() (V, bool)

func (f IteratorFunc[V]) Move() (V, bool) {
	return f()
}
