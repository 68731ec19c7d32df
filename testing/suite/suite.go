package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

// Suite bundles what a test needs to drive a game through the console.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Input  io.Reader
	Output *bytes.Buffer
}

// New - returns a suite whose console input replays the given lines.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Input:  strings.NewReader(input),
		Output: &bytes.Buffer{},
	}
}
