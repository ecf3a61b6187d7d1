package quantor

import (
	"errors"
	"fmt"
	"strings"
)

// Check pairs a quantifier invariant with a name used in aggregated
// diagnostics. Eval is expected to invoke one of the package evaluators.
type Check struct {
	Name string
	Eval func() error
}

// NamedFailure records one failed check together with its descriptor.
type NamedFailure struct {
	Name string
	Err  error
}

// Failures is the aggregate error returned by Apply when at least one
// check fails. It preserves check order.
type Failures []NamedFailure

func (fs Failures) Error() string {
	if len(fs) == 0 {
		return "quantifier checks failed"
	}

	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Name, f.Err))
	}
	return "quantifier checks failed: " + strings.Join(parts, "; ")
}

// Has reports whether a check with the given name failed.
func (fs Failures) Has(name string) bool {
	for _, f := range fs {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Get returns the descriptors of every failed check with the given name.
func (fs Failures) Get(name string) []error {
	var errs []error
	for _, f := range fs {
		if f.Name == name {
			errs = append(errs, f.Err)
		}
	}
	return errs
}

// Names returns the distinct names of failed checks, in first-failure order.
func (fs Failures) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for _, f := range fs {
		if !seen[f.Name] {
			names = append(names, f.Name)
			seen[f.Name] = true
		}
	}
	return names
}

// Apply evaluates every check and collects the failures. It returns nil
// when all checks pass; otherwise the returned error is a Failures value
// listing each violated invariant in order.
func Apply(checks ...Check) error {
	var failures Failures

	for _, c := range checks {
		if err := c.Eval(); err != nil {
			failures = append(failures, NamedFailure{Name: c.Name, Err: err})
		}
	}

	if len(failures) == 0 {
		return nil
	}

	return failures
}

// ExtractFailures unwraps a Failures value from err, or returns nil when
// err does not carry one.
func ExtractFailures(err error) Failures {
	if err == nil {
		return nil
	}

	var failures Failures
	if errors.As(err, &failures) {
		return failures
	}

	return nil
}
