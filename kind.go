package quantor

// Kind identifies the quantifier operation that produced a failure.
// It is carried inside every failure descriptor so callers can route
// handling without matching on concrete error types.
type Kind uint8

const (
	KindForall Kind = iota
	KindExists
	KindNone
	KindExactlyOne
	KindExactlyN
	KindAllEqual
	KindPairwise
	KindForAllExists
	KindExistsForAll
	KindCustom
)

// String returns the lowercase quantifier name, e.g. "forall" or "exactly_one".
func (k Kind) String() string {
	switch k {
	case KindForall:
		return "forall"
	case KindExists:
		return "exists"
	case KindNone:
		return "none"
	case KindExactlyOne:
		return "exactly_one"
	case KindExactlyN:
		return "exactly_n"
	case KindAllEqual:
		return "all_equal"
	case KindPairwise:
		return "pairwise"
	case KindForAllExists:
		return "forallexists"
	case KindExistsForAll:
		return "existsforall"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}
