package util

// Min returns the smallest of values. The second result is false when values
// is empty. Which of several equal minima is returned is decided by the
// values' Min method.
func Min[T Minimum[T]](values ...T) (T, bool) {
	var candidate T
	found := false

	for _, v := range values {
		if !found {
			candidate, found = v, true
			continue
		}
		candidate = candidate.Min(v)
	}

	return candidate, found
}

// SliceMin returns a pointer to the smallest element of v, or nil if v is
// empty. The pointer refers into v; no element is copied.
func SliceMin[T any, P MinimumPtr[T]](v []T) *T {
	var candidate *T

	for i := range v {
		if candidate == nil {
			candidate = &v[i]
			continue
		}
		candidate = P(candidate).Min(&v[i])
	}

	return candidate
}
