package exporter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	install := t.TempDir()

	got, err := OutputPath(install, "exports", "/data/mods/frontend.gui")
	if err != nil {
		t.Fatalf("OutputPath: %v", err)
	}

	expected := filepath.Join(install, "exports", "frontend.gui.csv")
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}

	info, err := os.Stat(filepath.Join(install, "exports"))
	if err != nil {
		t.Fatalf("Exports directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Exports path is not a directory")
	}
}

// The ".csv" suffix is appended to the full original filename, extension
// included, so distinct inputs never collide.
func TestOutputPathKeepsOriginalExtension(t *testing.T) {
	install := t.TempDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"interface.gfx", "interface.gfx.csv"},
		{"noext", "noext.csv"},
		{"dotted.name.txt", "dotted.name.txt.csv"},
	}

	for _, tt := range tests {
		got, err := OutputPath(install, "exports", tt.input)
		if err != nil {
			t.Fatalf("OutputPath(%q): %v", tt.input, err)
		}
		if filepath.Base(got) != tt.expected {
			t.Errorf("OutputPath(%q) = %q, expected base %q", tt.input, got, tt.expected)
		}
	}
}

func TestOutputPathAbsoluteExportsDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "elsewhere")

	got, err := OutputPath("/irrelevant", dir, "file.txt")
	if err != nil {
		t.Fatalf("OutputPath: %v", err)
	}
	if got != filepath.Join(dir, "file.txt.csv") {
		t.Errorf("Absolute exports dir not honored: %q", got)
	}
}
