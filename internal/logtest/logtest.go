// Package logtest builds slog loggers for tests: records go to the test log
// through slogt and are also kept as JSON lines for assertions.
package logtest

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// New returns a logger bound to t and the buffer that receives every record
// it emits, encoded by slog's JSON handler.
func New(t testing.TB) (*slog.Logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}

	logger := slogt.New(t, slogt.Factory(func(w io.Writer) slog.Handler {
		return slog.NewJSONHandler(io.MultiWriter(w, buf), nil)
	}))

	return logger, buf
}
