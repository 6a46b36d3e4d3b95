package fonts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveFallsBackWhenMissing(t *testing.T) {
	f := Resolve([]string{"definitely-not-a-font-9f2c.ttf"}, 36)
	if !f.Fallback {
		t.Fatalf("Resolve() Fallback = false, want true (path %q)", f.Path)
	}
	if f.Face != Fallback {
		t.Error("Resolve() did not return the fallback face")
	}
	if f.Path != "" {
		t.Errorf("Path = %q, want empty", f.Path)
	}
}

func TestResolveNoCandidates(t *testing.T) {
	if f := Resolve(nil, 12); !f.Fallback {
		t.Error("Resolve(nil) should use the fallback face")
	}
}

func TestResolveSkipsUnparseableFont(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "broken-face.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := Resolve([]string{bad}, 28)
	if !f.Fallback {
		t.Errorf("Resolve(%q) Fallback = false, want true", bad)
	}
}

func TestFallbackMetrics(t *testing.T) {
	m := Fallback.Metrics()
	if m.Height.Ceil() != 13 {
		t.Errorf("fallback height = %d, want 13", m.Height.Ceil())
	}
}
