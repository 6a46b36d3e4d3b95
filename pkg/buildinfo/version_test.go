package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"
	defer func() { Version, Commit, Date = "dev", "none", "unknown" }()

	got := Template()
	if want := "{{.Name}} v1.2.3 (commit abc123, built 2026-01-02)\n"; got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
	if s := String(); !strings.Contains(s, "version: v1.2.3") {
		t.Errorf("String() = %q, want version line", s)
	}
}
