//go:build !raylib

package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestViewNeedsRaylibTag(t *testing.T) {
	t.Setenv("STRATA_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	err := run("view", []string{filepath.Join("examples", "valley.strata")})
	if err == nil {
		t.Fatal("view succeeded without the raylib tag")
	}
	if !strings.Contains(err.Error(), "-tags=raylib") {
		t.Errorf("error = %v, want a hint about -tags=raylib", err)
	}

	if err := run("view", nil); err == nil || !strings.Contains(err.Error(), "expected 1 arguments") {
		t.Errorf("view without a script: error = %v", err)
	}
}
