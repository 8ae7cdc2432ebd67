package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("max_depth: 50\ncolor: never\nglobals:\n  tau: 6.5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.MaxDepth != 50 {
		t.Errorf("MaxDepth = %d, want 50", cfg.MaxDepth)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
	if cfg.Globals["tau"] != 6.5 {
		t.Errorf("Globals[tau] = %v, want 6.5", cfg.Globals["tau"])
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("history: runs.db\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.MaxDepth != DefaultMaxDepth || cfg.Color != ColorAuto {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.History != "runs.db" {
		t.Errorf("History = %q", cfg.History)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bad depth", "max_depth: 0", "max_depth must be positive"},
		{"bad color", "color: sometimes", "color must be one of"},
		{"predeclared global", "globals:\n  pi: 3", `global "pi" is predeclared`},
		{"bad yaml", "max_depth: [", "config parse error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbra.yaml")
	if err := os.WriteFile(path, []byte("max_depth: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxDepth != 7 {
		t.Errorf("MaxDepth = %d, want 7", cfg.MaxDepth)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
