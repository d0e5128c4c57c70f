package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"leafgrow/internal/tree"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("leafgrow", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-width", "320", "-seed", "9", "-debug", "-set", "level_score=3", "-set", " tick_interval = 2s "}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 800 || cfg.Seed != 9 || !cfg.Debug {
		t.Fatalf("flags not bound: %+v", cfg)
	}
	tc, err := cfg.TreeConfig()
	if err != nil {
		t.Fatalf("TreeConfig: %v", err)
	}
	if tc.LevelScore != 3 || tc.TickInterval != 2*time.Second {
		t.Fatalf("overrides not applied: %+v", tc)
	}
}

func TestConfigBindRejectsMalformedSet(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("leafgrow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("expected an error for -set without '='")
	}
}

func TestTreeConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(path, []byte("leaves_score: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.ConfigPath = path
	cfg.Overrides["level_score"] = "2"
	tc, err := cfg.TreeConfig()
	if err != nil {
		t.Fatalf("TreeConfig: %v", err)
	}
	if tc.LeavesScore != 50 || tc.LevelScore != 2 {
		t.Fatalf("file and overrides not merged: %+v", tc)
	}

	cfg.Overrides["min_leaves"] = "0"
	if _, err := cfg.TreeConfig(); !errors.Is(err, tree.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	cfg = NewConfig()
	cfg.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := cfg.TreeConfig(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
