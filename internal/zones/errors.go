package zones

import (
	"fmt"
	"strings"

	"github.com/dpb1/tzgrid/pkg/core/tzerror"
)

// UnresolvedZoneError is returned when a token matches zero or several
// zones. It ends the invocation.
type UnresolvedZoneError struct {
	Token      string
	Candidates []Candidate
}

// Error implements error
func (e *UnresolvedZoneError) Error() string {
	return fmt.Sprintf("location %q has %d possible matches", e.Token, len(e.Candidates))
}

// Code implements tzerror.Coder
func (e *UnresolvedZoneError) Code() tzerror.Code {
	return tzerror.CodeUnresolvedZone
}

// Report is the message shown to the user, listing all candidates
func (e *UnresolvedZoneError) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Location '%s' has %d possible matches.  Specify the timezone\n", e.Token, len(e.Candidates))
	b.WriteString("directly if possible.  Use '--search STRING' to help narrow\n")
	b.WriteString("down your search string.\n")
	if len(e.Candidates) > 0 {
		b.WriteString("\n")
	}

	for _, c := range e.Candidates {
		fmt.Fprintf(&b, " * %s: %s\n", c.Name, c.Zone)
		if c.Record == nil {
			continue
		}
		fmt.Fprintf(&b, "   - Population: %d\n", c.Record.Population)
		fmt.Fprintf(&b, "   - ASCII Name: %s\n", c.Record.ASCIIName)
		fmt.Fprintf(&b, "   - Alternate Names: %s\n", c.Record.AlternateNames)
	}
	return b.String()
}
