package quantor

import (
	"errors"
	"log/slog"
)

// KindAttr records the originating quantifier under the key "kind".
// If err carries no quantifier failure, it returns an empty Attr.
func KindAttr(err error) slog.Attr {
	k, ok := KindOf(err)
	if !ok {
		return slog.Attr{}
	}
	return slog.String("kind", k.String())
}

// FailureAttr groups the diagnostics of a failure descriptor under the key
// "failure": the quantifier kind, the failing index and match count where
// the variant carries them, and the rendered message. If err is nil or not
// a quantifier failure, it returns an empty Attr.
func FailureAttr(err error) slog.Attr {
	var f Failure
	if !errors.As(err, &f) {
		return slog.Attr{}
	}

	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs, slog.String("kind", f.QuantifierKind().String()))
	if idx, ok := FailingIndex(err); ok {
		attrs = append(attrs, slog.Int("index", idx))
	}
	if n, ok := MatchCount(err); ok {
		attrs = append(attrs, slog.Int("found", n))
	}
	attrs = append(attrs, slog.String("message", f.Error()))

	return slog.Attr{Key: "failure", Value: slog.GroupValue(attrs...)}
}
