package quantor

import (
	"errors"
	"fmt"
)

// Failure is implemented by every failure descriptor returned by the
// quantifier evaluators. Use errors.As with a concrete descriptor type to
// inspect payload fields, or KindOf to route on the originating quantifier.
type Failure interface {
	error

	// QuantifierKind reports the quantifier operation that produced the failure.
	QuantifierKind() Kind
}

// PredicateFailedError reports the first element for which the predicate
// returned false. Produced by Forall, and by ExactlyOne when no element
// matched (with Index 0).
type PredicateFailedError struct {
	Kind  Kind
	Index int
}

func (e PredicateFailedError) Error() string {
	return fmt.Sprintf("%s: predicate failed at index %d", e.Kind, e.Index)
}

func (e PredicateFailedError) QuantifierKind() Kind { return e.Kind }

// EmptyInputError reports that ExactlyOne was evaluated over an empty sequence.
type EmptyInputError struct {
	Kind Kind
}

func (e EmptyInputError) Error() string {
	return fmt.Sprintf("%s: empty input", e.Kind)
}

func (e EmptyInputError) QuantifierKind() Kind { return e.Kind }

// NoMatchError reports that Exists found no element satisfying the predicate.
type NoMatchError struct {
	Kind Kind
}

func (e NoMatchError) Error() string {
	return fmt.Sprintf("%s: no element satisfied the predicate", e.Kind)
}

func (e NoMatchError) QuantifierKind() Kind { return e.Kind }

// UnexpectedMatchError reports a match that should not have occurred: the
// first match for None, or the second match for ExactlyOne. Index is the
// position of the offending element.
type UnexpectedMatchError struct {
	Kind  Kind
	Index int
}

func (e UnexpectedMatchError) Error() string {
	return fmt.Sprintf("%s: unexpected match at index %d", e.Kind, e.Index)
}

func (e UnexpectedMatchError) QuantifierKind() Kind { return e.Kind }

// NotAllEqualError reports the first element differing from the first
// element of the sequence. Index is the element's position within the full
// sequence, therefore always >= 1.
type NotAllEqualError struct {
	Kind  Kind
	Index int
}

func (e NotAllEqualError) Error() string {
	return fmt.Sprintf("%s: element at index %d differs from the first element", e.Kind, e.Index)
}

func (e NotAllEqualError) QuantifierKind() Kind { return e.Kind }

// PairwiseFailedError reports the first adjacent pair rejected by the
// predicate. Index is the position of the first element of the failing
// pair, which equals the number of pairs checked before it.
type PairwiseFailedError struct {
	Kind  Kind
	Index int
}

func (e PairwiseFailedError) Error() string {
	return fmt.Sprintf("%s: predicate failed for adjacent pair at index %d", e.Kind, e.Index)
}

func (e PairwiseFailedError) QuantifierKind() Kind { return e.Kind }

// ForAllExistsFailedError reports the first left-hand element with no
// right-hand partner. OuterIndex is its position in the left sequence.
type ForAllExistsFailedError struct {
	Kind       Kind
	OuterIndex int
}

func (e ForAllExistsFailedError) Error() string {
	return fmt.Sprintf("%s: no right-hand match for element at index %d", e.Kind, e.OuterIndex)
}

func (e ForAllExistsFailedError) QuantifierKind() Kind { return e.Kind }

// ExistsForAllFailedError reports that no left-hand element satisfied the
// predicate against every right-hand element. OuterIndex is always 0: the
// failure is a property of the whole left sequence, not of a particular
// element, and FailingIndex deliberately ignores this variant.
type ExistsForAllFailedError struct {
	Kind       Kind
	OuterIndex int
}

func (e ExistsForAllFailedError) Error() string {
	return fmt.Sprintf("%s: no element satisfies the predicate for every right-hand element", e.Kind)
}

func (e ExistsForAllFailedError) QuantifierKind() Kind { return e.Kind }

// ExactlyNFailedError reports a match-count mismatch. Found is the exact
// number of matching elements in the whole sequence and never equals
// Expected.
type ExactlyNFailedError struct {
	Kind     Kind
	Found    int
	Expected int
}

func (e ExactlyNFailedError) Error() string {
	return fmt.Sprintf("%s: expected %d matching elements, found %d", e.Kind, e.Expected, e.Found)
}

func (e ExactlyNFailedError) QuantifierKind() Kind { return e.Kind }

// CustomError is a user-constructed failure carrying a static message.
type CustomError struct {
	Message string
}

func (e CustomError) Error() string { return e.Message }

func (e CustomError) QuantifierKind() Kind { return KindCustom }

// Custom converts a short static message into a CustomError failure.
func Custom(msg string) error {
	return CustomError{Message: msg}
}

// KindOf reports the quantifier kind carried by err, unwrapping as needed.
// The second return value is false when err is nil or not a quantifier
// failure.
func KindOf(err error) (Kind, bool) {
	var f Failure
	if errors.As(err, &f) {
		return f.QuantifierKind(), true
	}
	return 0, false
}

// FailingIndex extracts the position of the first counterexample from a
// failure descriptor: the element index for PredicateFailedError,
// UnexpectedMatchError and PairwiseFailedError, and the outer index for
// ForAllExistsFailedError. All other variants, including NotAllEqualError
// and ExistsForAllFailedError, report no index.
func FailingIndex(err error) (int, bool) {
	var (
		predicate PredicateFailedError
		match     UnexpectedMatchError
		pair      PairwiseFailedError
		nested    ForAllExistsFailedError
	)
	switch {
	case errors.As(err, &predicate):
		return predicate.Index, true
	case errors.As(err, &match):
		return match.Index, true
	case errors.As(err, &pair):
		return pair.Index, true
	case errors.As(err, &nested):
		return nested.OuterIndex, true
	}
	return 0, false
}

// MatchCount extracts the observed match count from an ExactlyNFailedError.
// All other variants report no count.
func MatchCount(err error) (int, bool) {
	var counted ExactlyNFailedError
	if errors.As(err, &counted) {
		return counted.Found, true
	}
	return 0, false
}
