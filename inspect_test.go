package quantor_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/quantor"
)

func TestLogFailure(t *testing.T) {
	newLogger := func() (*slog.Logger, *bytes.Buffer) {
		var buf bytes.Buffer
		l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		return l, &buf
	}

	t.Run("emits the failure diagnostics", func(t *testing.T) {
		l, buf := newLogger()
		quantor.LogFailure(l, quantor.Forall([]int{2, 4, 5}, isEven))

		out := buf.String()
		assert.Contains(t, out, "quantifier check failed")
		assert.Contains(t, out, "failure.kind=forall")
		assert.Contains(t, out, "failure.index=2")
	})

	t.Run("emits nothing for nil", func(t *testing.T) {
		l, buf := newLogger()
		quantor.LogFailure(l, nil)
		assert.Empty(t, buf.String())
	})
}

func TestMust(t *testing.T) {
	t.Run("is a no-op on success", func(t *testing.T) {
		assert.NotPanics(t, func() {
			quantor.Must(quantor.Forall([]int{2, 4}, isEven))
		})
	})

	t.Run("panics with the rendered descriptor on failure", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			assert.Equal(t, "quantor: forall: predicate failed at index 2", r)
		}()
		quantor.Must(quantor.Forall([]int{2, 4, 5}, isEven))
	})
}
