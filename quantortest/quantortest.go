// Package quantortest provides testing.TB-integrated wrappers around the
// quantor evaluators. Each wrapper marks itself as a test helper and fails
// the test with the rendered failure descriptor when the underlying check
// does not hold. Semantics are exactly those of the wrapped functions;
// nothing is added beyond the test-failure plumbing.
package quantortest

import (
	"testing"

	"github.com/dmitrymomot/quantor"
)

// Forall fails the test unless every element of xs satisfies pred.
func Forall[T any](t testing.TB, xs []T, pred func(T) bool) {
	t.Helper()
	if err := quantor.Forall(xs, pred); err != nil {
		t.Fatalf("%v", err)
	}
}

// Exists fails the test unless at least one element of xs satisfies pred.
func Exists[T any](t testing.TB, xs []T, pred func(T) bool) {
	t.Helper()
	if err := quantor.Exists(xs, pred); err != nil {
		t.Fatalf("%v", err)
	}
}

// None fails the test unless no element of xs satisfies pred.
func None[T any](t testing.TB, xs []T, pred func(T) bool) {
	t.Helper()
	if err := quantor.None(xs, pred); err != nil {
		t.Fatalf("%v", err)
	}
}

// ExactlyOne fails the test unless exactly one element of xs satisfies pred.
func ExactlyOne[T any](t testing.TB, xs []T, pred func(T) bool) {
	t.Helper()
	if err := quantor.ExactlyOne(xs, pred); err != nil {
		t.Fatalf("%v", err)
	}
}

// ExactlyN fails the test unless exactly n elements of xs satisfy pred.
func ExactlyN[T any](t testing.TB, xs []T, n int, pred func(T) bool) {
	t.Helper()
	if err := quantor.ExactlyN(xs, n, pred); err != nil {
		t.Fatalf("%v", err)
	}
}

// AllEqual fails the test unless all elements of xs are equal.
func AllEqual[T comparable](t testing.TB, xs []T) {
	t.Helper()
	if err := quantor.AllEqual(xs); err != nil {
		t.Fatalf("%v", err)
	}
}

// AllEqualFunc fails the test unless all elements of xs are equivalent
// under eq.
func AllEqualFunc[T any](t testing.TB, xs []T, eq func(a, b T) bool) {
	t.Helper()
	if err := quantor.AllEqualFunc(xs, eq); err != nil {
		t.Fatalf("%v", err)
	}
}

// Pairwise fails the test unless pred holds for every adjacent pair of xs.
func Pairwise[T any](t testing.TB, xs []T, pred func(a, b T) bool) {
	t.Helper()
	if err := quantor.Pairwise(xs, pred); err != nil {
		t.Fatalf("%v", err)
	}
}

// ForallExists fails the test unless every element of as has a partner in
// bs satisfying pred.
func ForallExists[A, B any](t testing.TB, as []A, bs []B, pred func(A, B) bool) {
	t.Helper()
	if err := quantor.ForallExists(as, bs, pred); err != nil {
		t.Fatalf("%v", err)
	}
}

// ExistsForall fails the test unless some element of as satisfies pred
// against every element of bs.
func ExistsForall[A, B any](t testing.TB, as []A, bs []B, pred func(A, B) bool) {
	t.Helper()
	if err := quantor.ExistsForall(as, bs, pred); err != nil {
		t.Fatalf("%v", err)
	}
}
