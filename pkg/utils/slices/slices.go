package slices

// map each element in sli.
//
// args:
//   - sli : slice of `T`s
//   - mapper : mapping function from T to R
//
// return:
//
//	slice of `R`s.
//	each element indexed `N` is given with `mapper(sli[N])` .
func Map[T any, R any](sli []T, mapper func(v T) R) []R {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		ret[nth] = mapper(v)
	}
	return ret
}

// KeysOf lists keys of a map, in no particular order.
func KeysOf[K comparable, V any](m map[K]V) []K {
	ret := make([]K, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	return ret
}

// First finds the first element satisfying pred.
//
// When no element satisfies pred, it returns (zero-value, false).
func First[T any](sli []T, pred func(T) bool) (T, bool) {
	for _, v := range sli {
		if pred(v) {
			return v, true
		}
	}
	return *new(T), false
}

// Filter lists elements satisfying pred, keeping their order.
func Filter[T any](sli []T, pred func(T) bool) []T {
	ret := []T{}
	for _, v := range sli {
		if pred(v) {
			ret = append(ret, v)
		}
	}
	return ret
}

// ToMap builds a map from sli, keyed with key(element).
//
// When two elements share a key, the later one wins.
func ToMap[T any, K comparable](sli []T, key func(T) K) map[K]T {
	ret := make(map[K]T, len(sli))
	for _, v := range sli {
		ret[key(v)] = v
	}
	return ret
}
