package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	got := String()

	for _, want := range []string{Version, GitCommit, BuildDate, runtime.Version()} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
	if !strings.HasPrefix(got, Version+"\n") {
		t.Errorf("String() should start with the version line, got %q", got)
	}
}
