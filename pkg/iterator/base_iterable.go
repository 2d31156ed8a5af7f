package iterator

type BaseIterable[V any] struct {
	builder func() Iterator[V]
}

func BaseIterableFrom[V any](builder func() Iterator[V]) *BaseIterable[V] {
	return &BaseIterable[V]{
		builder: builder,
	}
}

func (i *BaseIterable[V]) Itr() Iterator[V] {
	return i.builder()
}

func (i *BaseIterable[V]) Take(n int) Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		src := i.Itr()
		taken := 0

		return IteratorFunc[V](func() (V, bool) {
			if taken >= n {
				return *new(V), false
			}

			taken++
			return src.Move()
		})
	})
}

func (i *BaseIterable[V]) Skip(n int) Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		src := i.Itr()
		skipped := 0

		return IteratorFunc[V](func() (V, bool) {
			for ; skipped < n; skipped++ {
				if _, ok := src.Move(); !ok {
					return *new(V), false
				}
			}

			return src.Move()
		})
	})
}

func (i *BaseIterable[V]) Where(pred func(V) bool) Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		src := i.Itr()

		return IteratorFunc[V](func() (V, bool) {
			for v, ok := src.Move(); ok; v, ok = src.Move() {
				if pred(v) {
					return v, true
				}
			}

			return *new(V), false
		})
	})
}

func (i *BaseIterable[V]) ForEach(f func(V)) {
	itr := i.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		f(v)
	}
}

func (i *BaseIterable[V]) ToList() []V {
	var list []V
	i.ForEach(func(v V) {
		list = append(list, v)
	})

	return list
}
