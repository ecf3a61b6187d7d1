// Package quantor provides generic, type-safe logical quantifier checks
// over in-memory slices: universal, existential, counting, pairwise, and
// nested quantifiers, plus predicate-based selection helpers.
//
// The package lets application and test code state invariants declaratively
// ("for all x in xs, pred(x)") and get a precise diagnostic back when the
// invariant does not hold: which quantifier failed, and at which index or
// with which match count.
//
// # Architecture
//
// Each source file groups one family of operations: basic quantifiers
// (`basic.go`), adjacent-pair and failing-element checks (`structured.go`),
// two-sequence quantifiers (`nested.go`), and predicate-driven selection
// (`selection.go`). Every evaluator is a pure function returning nil on
// success or a typed failure descriptor; there is no hidden global state,
// therefore the package is completely stateless, allocation-free on the
// success path, and goroutine-safe as long as the caller does not mutate a
// slice while it is being evaluated.
//
// Core building blocks:
//   - Kind     – enum naming the quantifier that produced a failure
//   - Failure  – interface implemented by every failure descriptor
//   - Seq      – fluent slice façade forwarding to the free functions
//   - Check    – named check aggregated by Apply into a Failures error
//
// # Usage
//
//	nums := []int{2, 4, 5, 6}
//	if err := quantor.Forall(nums, func(x int) bool { return x%2 == 0 }); err != nil {
//	    if idx, ok := quantor.FailingIndex(err); ok {
//	        // idx == 2, the first odd element
//	    }
//	}
//
// # Error Handling
//
// Every failure descriptor implements error and the Failure interface, so
// errors.As works through wrapping. FailingIndex and MatchCount extract
// positional and cardinality diagnostics without matching concrete types;
// KindOf routes on the originating quantifier. The textual rendering is
// informative only, not a stable contract.
//
// # Performance Considerations
//
// Evaluators short-circuit on the first decisive element, except ExactlyN
// which scans the whole sequence because its diagnostic carries the exact
// match count. Selection helpers allocate only their result slice and, for
// uniqueness and duplicate detection, a transient map keyed by element
// value.
//
// # Examples
//
// See the companion *_test.go files for runnable examples covering each
// operation, and the quantortest subpackage for testing.TB-integrated
// assertion wrappers.
package quantor
