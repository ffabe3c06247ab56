package sliceutil

// Uniq returns the values with duplicates removed, first occurrence wins,
// input order preserved.
func Uniq[T comparable](t []T) []T {
	seen := make(map[T]struct{}, len(t))
	res := make([]T, 0, len(t))
	for _, v := range t {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		res = append(res, v)
	}

	return res
}

// Without returns the values of t that do not appear in exclude.
func Without[T comparable](t []T, exclude []T) []T {
	drop := make(map[T]struct{}, len(exclude))
	for _, v := range exclude {
		drop[v] = struct{}{}
	}

	res := make([]T, 0, len(t))
	for _, v := range t {
		if _, ok := drop[v]; ok {
			continue
		}

		res = append(res, v)
	}

	return res
}

// Intersect returns the values of a that also appear in b, deduplicated,
// in a's order.
func Intersect[T comparable](a, b []T) []T {
	keep := make(map[T]struct{}, len(b))
	for _, v := range b {
		keep[v] = struct{}{}
	}

	res := make([]T, 0, len(a))
	for _, v := range Uniq(a) {
		if _, ok := keep[v]; !ok {
			continue
		}

		res = append(res, v)
	}

	return res
}

// Contains reports whether v appears in t.
func Contains[T comparable](t []T, v T) bool {
	for _, w := range t {
		if w == v {
			return true
		}
	}

	return false
}

// Chunk splits t into consecutive slices of at most size elements. A size
// below one yields a single chunk with everything.
func Chunk[T any](t []T, size int) [][]T {
	if len(t) == 0 {
		return nil
	}
	if size < 1 {
		return [][]T{t}
	}

	res := make([][]T, 0, (len(t)+size-1)/size)
	for size < len(t) {
		res = append(res, t[:size])
		t = t[size:]
	}

	return append(res, t)
}
