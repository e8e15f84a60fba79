package cli

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerFromContext(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		if loggerFromContext(context.Background()) == nil {
			t.Error("expected fallback logger, got nil")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		logger := newLogger(io.Discard, log.DebugLevel)
		ctx := withLogger(context.Background(), logger)
		if got := loggerFromContext(ctx); got != logger {
			t.Error("stored logger was not returned")
		}
	})
}
