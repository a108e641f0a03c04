// Package terminal detects the output width.
package terminal

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/dpb1/tzgrid/pkg/core/tzerror"
)

// DefaultWidth is used when no terminal size can be found
const DefaultWidth = 80

// Detector finds the width of the terminal
type Detector struct {
	getenv     func(string) string
	isTerminal func(fd int) bool
	getSize    func(fd int) (width, height int, err error)
	fds        []int
}

// NewDetector returns a Detector for the process stdout and stdin
func NewDetector() *Detector {
	return &Detector{
		getenv:     os.Getenv,
		isTerminal: term.IsTerminal,
		getSize:    term.GetSize,
		fds:        []int{int(os.Stdout.Fd()), int(os.Stdin.Fd())},
	}
}

// Width returns $COLUMNS when it is a positive integer, else the width of
// the first terminal among stdout and stdin. When neither works it
// returns DefaultWidth together with a soft CodeGeometry error.
func (d *Detector) Width() (int, error) {
	if v := strings.TrimSpace(d.getenv("COLUMNS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n, nil
		}
	}

	var lastErr error
	for _, fd := range d.fds {
		if !d.isTerminal(fd) {
			continue
		}
		w, _, err := d.getSize(fd)
		if err == nil && w > 0 {
			return w, nil
		}
		lastErr = err
	}

	e := tzerror.New("terminal width not detected").
		WithCode(tzerror.CodeGeometry).
		WithDetail("fallback", DefaultWidth)
	if lastErr != nil {
		e = tzerror.Wrap(lastErr, "terminal width not detected").
			WithCode(tzerror.CodeGeometry).
			WithDetail("fallback", DefaultWidth)
	}
	return DefaultWidth, e
}

// Width detects the width of the process terminal
func Width() (int, error) {
	return NewDetector().Width()
}
