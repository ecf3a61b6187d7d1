package quantor

import "log/slog"

// LogFailure emits a debug-level record describing err without failing the
// caller, the non-terminating counterpart of Must. A nil err emits nothing.
// A nil logger falls back to slog.Default.
func LogFailure(l *slog.Logger, err error) {
	if err == nil {
		return
	}
	if l == nil {
		l = slog.Default()
	}
	l.Debug("quantifier check failed", FailureAttr(err))
}

// Must panics with the rendered failure descriptor when err is non-nil.
// It is the explicit opt-in terminator for callers that treat a violated
// invariant as unrecoverable; the evaluators themselves never panic.
func Must(err error) {
	if err != nil {
		panic("quantor: " + err.Error())
	}
}
