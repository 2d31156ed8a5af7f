package iterator

import "github.com/johnjamespj/bigord/pkg/util"

func Map[T, U any](it Iterable[T], f func(T) U) Iterable[U] {
	return BaseIterableFrom(func() Iterator[U] {
		src := it.Itr()

		return IteratorFunc[U](func() (U, bool) {
			if v, ok := src.Move(); ok {
				return f(v), true
			}

			return *new(U), false
		})
	})
}

type GroupByRecord[T util.Comparable[T], U any] struct {
	Key   T
	Value []U
}

// GroupBy collects f(v) for every v, grouping values whose keys compare
// equal. Groups keep the order in which their first key was seen.
func GroupBy[T util.Comparable[T], U any](it Iterator[T], f func(T) U) Iterable[GroupByRecord[T, U]] {
	res := []GroupByRecord[T, U]{}

	for v, ok := it.Move(); ok; v, ok = it.Move() {
		found := false

		for i := range res {
			if res[i].Key.CompareTo(v) == 0 {
				res[i].Value = append(res[i].Value, f(v))
				found = true
				break
			}
		}

		if !found {
			res = append(res, GroupByRecord[T, U]{Key: v, Value: []U{f(v)}})
		}
	}

	return NewSliceIterable(res)
}

// Min drains it and returns the smallest value seen. The second result is
// false when it yields nothing.
func Min[V util.Minimum[V]](it Iterator[V]) (V, bool) {
	candidate, ok := it.Move()
	if !ok {
		return candidate, false
	}

	for v, ok := it.Move(); ok; v, ok = it.Move() {
		candidate = candidate.Min(v)
	}

	return candidate, true
}
