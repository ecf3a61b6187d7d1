package quantor

// Forall checks that every element of xs satisfies pred. An empty sequence
// succeeds vacuously. Evaluation is sequential and stops at the first
// element for which pred returns false, reported via PredicateFailedError.
func Forall[T any](xs []T, pred func(T) bool) error {
	for i, x := range xs {
		if !pred(x) {
			return PredicateFailedError{Kind: KindForall, Index: i}
		}
	}
	return nil
}

// Exists checks that at least one element of xs satisfies pred, stopping at
// the first match. Returns NoMatchError when no element matches, including
// for an empty sequence.
func Exists[T any](xs []T, pred func(T) bool) error {
	for _, x := range xs {
		if pred(x) {
			return nil
		}
	}
	return NoMatchError{Kind: KindExists}
}

// None checks that no element of xs satisfies pred. An empty sequence
// succeeds. The first match is reported via UnexpectedMatchError.
func None[T any](xs []T, pred func(T) bool) error {
	for i, x := range xs {
		if pred(x) {
			return UnexpectedMatchError{Kind: KindNone, Index: i}
		}
	}
	return nil
}

// ExactlyOne checks that exactly one element of xs satisfies pred. An empty
// sequence fails with EmptyInputError. A second match fails immediately
// with UnexpectedMatchError carrying the second match's index; zero matches
// fail with PredicateFailedError at index 0.
func ExactlyOne[T any](xs []T, pred func(T) bool) error {
	if len(xs) == 0 {
		return EmptyInputError{Kind: KindExactlyOne}
	}
	matched := false
	for i, x := range xs {
		if !pred(x) {
			continue
		}
		if matched {
			return UnexpectedMatchError{Kind: KindExactlyOne, Index: i}
		}
		matched = true
	}
	if !matched {
		return PredicateFailedError{Kind: KindExactlyOne, Index: 0}
	}
	return nil
}

// ExactlyN checks that exactly n elements of xs satisfy pred. The whole
// sequence is always scanned, even once the count exceeds n, so that the
// Found field of ExactlyNFailedError is the exact cardinality rather than
// an early lower bound.
func ExactlyN[T any](xs []T, n int, pred func(T) bool) error {
	found := 0
	for _, x := range xs {
		if pred(x) {
			found++
		}
	}
	if found != n {
		return ExactlyNFailedError{Kind: KindExactlyN, Found: found, Expected: n}
	}
	return nil
}

// AllEqual checks that every element of xs equals the first one. Empty and
// single-element sequences succeed. The first differing element is reported
// via NotAllEqualError with its position in the full sequence.
func AllEqual[T comparable](xs []T) error {
	for i := 1; i < len(xs); i++ {
		if xs[i] != xs[0] {
			return NotAllEqualError{Kind: KindAllEqual, Index: i}
		}
	}
	return nil
}

// AllEqualFunc is AllEqual with a caller-supplied equivalence relation,
// for element types that are not comparable or need structural equality
// (e.g. github.com/google/go-cmp's cmp.Equal).
func AllEqualFunc[T any](xs []T, eq func(a, b T) bool) error {
	for i := 1; i < len(xs); i++ {
		if !eq(xs[0], xs[i]) {
			return NotAllEqualError{Kind: KindAllEqual, Index: i}
		}
	}
	return nil
}
