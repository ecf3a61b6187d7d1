package quantor

// SelectWhere returns every element of xs satisfying pred, in original
// order. Duplicates are preserved.
func SelectWhere[T any](xs []T, pred func(T) bool) []T {
	var selected []T
	for _, x := range xs {
		if pred(x) {
			selected = append(selected, x)
		}
	}
	return selected
}

// SelectUnique returns the elements of xs satisfying pred in first-seen
// order, dropping later occurrences of an already-seen value.
func SelectUnique[T comparable](xs []T, pred func(T) bool) []T {
	seen := make(map[T]struct{})
	var selected []T
	for _, x := range xs {
		if !pred(x) {
			continue
		}
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		selected = append(selected, x)
	}
	return selected
}

// SelectDuplicates returns one representative per element value occurring
// more than once in xs. The order of the result is unspecified; compare it
// as a set.
func SelectDuplicates[T comparable](xs []T) []T {
	counts := make(map[T]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	var duplicates []T
	for x, n := range counts {
		if n > 1 {
			duplicates = append(duplicates, x)
		}
	}
	return duplicates
}
