package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		want ChangeKind
	}{
		{"prefabs/steptoline.yaml", ChangeStyle},
		{"prefabs/other.YML", ChangeStyle},
		{"prefabs/scripts/smoothstep.tengo", ChangeScript},
		{"prefabs/readme.md", 0},
		{"prefabs/.steptoline.yaml.swp", 0},
	}
	for _, c := range cases {
		if got := Classify(c.path); got != c.want {
			t.Fatalf("Classify(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestWatcherReportsStyleWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "steptoline.yaml")
	if err := os.WriteFile(target, []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ch := <-w.Changes:
		if ch.Path != target || ch.Kind != ChangeStyle {
			t.Fatalf("unexpected change %+v", ch)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for change")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Changes; ok {
		t.Fatalf("changes channel should be closed")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
