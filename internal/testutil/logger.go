// Package testutil holds small helpers shared by test suites.
package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger whose output is discarded, keeping test
// output free of application logs.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
