package quantor

// Pairwise checks that pred holds for every adjacent pair (xs[i], xs[i+1]).
// Empty and single-element sequences succeed. The first rejected pair is
// reported via PairwiseFailedError with the index of the pair's first
// element.
func Pairwise[T any](xs []T, pred func(a, b T) bool) error {
	for i := 0; i+1 < len(xs); i++ {
		if !pred(xs[i], xs[i+1]) {
			return PairwiseFailedError{Kind: KindPairwise, Index: i}
		}
	}
	return nil
}

// FailingElements returns every element of xs for which pred returns false,
// in original order. An empty result means every element satisfied the
// predicate; no failure descriptor is produced.
func FailingElements[T any](xs []T, pred func(T) bool) []T {
	var failing []T
	for _, x := range xs {
		if !pred(x) {
			failing = append(failing, x)
		}
	}
	return failing
}
