// Package logging builds the zerolog.Logger shared by the server and its
// middleware.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger writing to stderr at the given level.
func New(level string) (zerolog.Logger, error) {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl), nil
}
