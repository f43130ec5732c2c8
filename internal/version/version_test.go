package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfoIncludesBuildMetadata(t *testing.T) {
	got := Info()
	for _, want := range []string{"vibe " + Version, "commit " + Commit, "built " + Date, runtime.Version()} {
		if !strings.Contains(got, want) {
			t.Fatalf("Info() = %q, missing %q", got, want)
		}
	}
}
