package logging

import (
	"io"
)

// Options are the user-facing logging settings collected from flags and
// the settings file.
type Options struct {
	Verbose bool
	Level   string
	Format  string
}

// NewFromOptions builds the process logger. Verbose forces debug level.
// Invalid level or format names fall back to the defaults and are
// reported through the returned error.
func NewFromOptions(name string, opts Options, out io.Writer) (*Logger, error) {
	var firstErr error

	level := LevelWarn
	if opts.Level != "" {
		parsed, err := ParseLevel(opts.Level)
		if err != nil {
			firstErr = err
		} else {
			level = parsed
		}
	}
	if opts.Verbose {
		level = LevelDebug
	}

	format, err := ParseFormat(opts.Format)
	if err != nil && firstErr == nil {
		firstErr = err
	}

	return NewWithConfig(Config{
		Name:   name,
		Level:  level,
		Format: format,
		Output: out,
	}), firstErr
}
