package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/weaveworks/shopctl/pkg/config"
)

// Options controls how the structured logger is built.
type Options struct {
	Level       string
	Environment config.Environment
	Out         io.Writer
}

// New returns a zerolog logger. Production gets JSON lines, everything else
// a human readable console writer. Unknown levels fall back to info.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if opts.Environment.IsProduction() {
		return zerolog.New(out).With().Timestamp().Logger().Level(level)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
		With().Timestamp().Logger().
		Level(level)
}
