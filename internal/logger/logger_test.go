package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "matrica.log")
	cleanup, err := Setup(Config{Path: path, Debug: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	L().Debug("matrix.calculated", "destiny", 4)
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"msg":"logger.initialized"`, `"msg":"matrix.calculated"`, `"destiny":4`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in log output: %s", want, out)
		}
	}

	// After cleanup the discard logger is back and nothing more is written.
	L().Info("ignored")
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(after) != len(data) {
		t.Fatalf("expected no writes after cleanup")
	}
}

func TestSetupFailsOnUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	if _, err := Setup(Config{Path: filepath.Join(blocker, "matrica.log")}); err == nil {
		t.Fatalf("expected error when parent is a file")
	}
}
