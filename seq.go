package quantor

// Seq is a fluent façade over the free quantifier functions, usable with
// any slice whose element type is comparable: Seq[int](nums).Forall(pred).
// The comparable constraint is needed only by SelectUnique and
// SelectDuplicates; the remaining methods inherit it harmlessly.
//
// Methods forward 1:1 to the package-level functions and add no semantics.
// The two-sequence quantifiers ForallExists and ExistsForall stay free
// functions because methods cannot introduce the right-hand element type.
type Seq[T comparable] []T

// Forall checks that every element satisfies pred. See Forall.
func (s Seq[T]) Forall(pred func(T) bool) error { return Forall(s, pred) }

// Exists checks that at least one element satisfies pred. See Exists.
func (s Seq[T]) Exists(pred func(T) bool) error { return Exists(s, pred) }

// None checks that no element satisfies pred. See None.
func (s Seq[T]) None(pred func(T) bool) error { return None(s, pred) }

// ExactlyOne checks that exactly one element satisfies pred. See ExactlyOne.
func (s Seq[T]) ExactlyOne(pred func(T) bool) error { return ExactlyOne(s, pred) }

// ExactlyN checks that exactly n elements satisfy pred. See ExactlyN.
func (s Seq[T]) ExactlyN(n int, pred func(T) bool) error { return ExactlyN(s, n, pred) }

// AllEqual checks that all elements are equal. See AllEqual.
func (s Seq[T]) AllEqual() error { return AllEqual(s) }

// Pairwise checks that pred holds for every adjacent pair. See Pairwise.
func (s Seq[T]) Pairwise(pred func(a, b T) bool) error { return Pairwise(s, pred) }

// FailingElements returns the elements rejected by pred. See FailingElements.
func (s Seq[T]) FailingElements(pred func(T) bool) []T { return FailingElements(s, pred) }

// SelectWhere returns the elements satisfying pred. See SelectWhere.
func (s Seq[T]) SelectWhere(pred func(T) bool) []T { return SelectWhere(s, pred) }

// SelectUnique returns the distinct elements satisfying pred. See SelectUnique.
func (s Seq[T]) SelectUnique(pred func(T) bool) []T { return SelectUnique(s, pred) }

// SelectDuplicates returns one representative per repeated value. See SelectDuplicates.
func (s Seq[T]) SelectDuplicates() []T { return SelectDuplicates(s) }
