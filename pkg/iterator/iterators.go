package iterator

func NewEmptyIterable[V any]() Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return IteratorFunc[V](func() (V, bool) {
			return *new(V), false
		})
	})
}

// NewGeneratorIterable yields generator(0) through generator(length-1),
// calling generator lazily.
func NewGeneratorIterable[V any](generator func(idx int) V, length int) Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		idx := 0

		return IteratorFunc[V](func() (V, bool) {
			if idx >= length {
				return *new(V), false
			}

			v := generator(idx)
			idx++
			return v, true
		})
	})
}

func NewSliceIterable[V any](slice []V) Iterable[V] {
	return NewGeneratorIterable(func(idx int) V {
		return slice[idx]
	}, len(slice))
}
