package sliceutil

func Map[K, V any](ks []K, fn func(i int) V) []V {
	vs := make([]V, len(ks))
	for i := 0; i < len(ks); i++ {
		vs[i] = fn(i)
	}

	return vs
}

func Filter[T any](t []T, fn func(i int) bool) []T {
	res := make([]T, 0, len(t))
	for i := 0; i < len(t); i++ {
		if !fn(i) {
			continue
		}

		res = append(res, t[i])
	}

	return res
}

func Find[T any](t []T, fn func(i int) bool) (T, bool) {
	for i := 0; i < len(t); i++ {
		if fn(i) {
			return t[i], true
		}
	}

	var v T
	return v, false
}

func Head[T any](t []T) (v T, ok bool) {
	if len(t) > 0 {
		return t[0], true
	}

	return
}

func Tail[T any](t []T) (v T, ok bool) {
	if len(t) > 0 {
		return t[len(t)-1], true
	}

	return
}
