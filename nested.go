package quantor

// ForallExists checks that every element of as has at least one partner in
// bs satisfying pred. The inner scan short-circuits per outer element.
// Empty as succeeds vacuously; empty bs with non-empty as fails at outer
// index 0. The first unpartnered element is reported via
// ForAllExistsFailedError.
func ForallExists[A, B any](as []A, bs []B, pred func(A, B) bool) error {
	for i, a := range as {
		matched := false
		for _, b := range bs {
			if pred(a, b) {
				matched = true
				break
			}
		}
		if !matched {
			return ForAllExistsFailedError{Kind: KindForAllExists, OuterIndex: i}
		}
	}
	return nil
}

// ExistsForall checks that some element of as satisfies pred against every
// element of bs, stopping at the first such witness. Empty bs makes the
// first element of as succeed trivially. When no witness exists, including
// for empty as, the failure is ExistsForAllFailedError with OuterIndex 0.
func ExistsForall[A, B any](as []A, bs []B, pred func(A, B) bool) error {
	for _, a := range as {
		holds := true
		for _, b := range bs {
			if !pred(a, b) {
				holds = false
				break
			}
		}
		if holds {
			return nil
		}
	}
	return ExistsForAllFailedError{Kind: KindExistsForAll, OuterIndex: 0}
}
