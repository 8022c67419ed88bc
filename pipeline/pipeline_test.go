package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleScript = `name = "Test Block"
size = 10
color = { 1.0 0.5 0.2 }
name = enabled
`

const sampleReport = `Keyword,Count
name,2
color,1
enabled,1
size,1
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunEndToEnd(t *testing.T) {
	input := writeInput(t, sampleScript)
	output := filepath.Join(t.TempDir(), "sample.txt.csv")

	var percents []int
	err := Run(input, output, Options{
		Encoding: "utf-8",
		Progress: func(p int) { percents = append(percents, p) },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != sampleReport {
		t.Errorf("Expected report %q, got %q", sampleReport, data)
	}

	if len(percents) == 0 || percents[len(percents)-1] != 100 {
		t.Errorf("Expected progress ending at 100, got %v", percents)
	}
}

func TestRunIdempotent(t *testing.T) {
	input := writeInput(t, sampleScript)
	dir := t.TempDir()

	read := func(name string) string {
		t.Helper()
		output := filepath.Join(dir, name)
		if err := Run(input, output, Options{Encoding: "utf-8"}); err != nil {
			t.Fatalf("Run: %v", err)
		}
		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		return string(data)
	}

	first := read("a.csv")
	second := read("b.csv")
	if first != second {
		t.Errorf("Reports differ between runs:\n%q\n%q", first, second)
	}
}

func TestRunMissingInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.csv")

	err := Run(filepath.Join(t.TempDir(), "nope.txt"), output, Options{})

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("No output file may be produced on a missing input")
	}
}

func TestRunWriteFailure(t *testing.T) {
	input := writeInput(t, sampleScript)
	output := filepath.Join(t.TempDir(), "missing-dir", "out.csv")

	err := Run(input, output, Options{})

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Expected WriteError, got %v", err)
	}
}

func TestRunUnsupportedEncoding(t *testing.T) {
	input := writeInput(t, sampleScript)
	output := filepath.Join(t.TempDir(), "out.csv")

	if err := Run(input, output, Options{Encoding: "ebcdic"}); err == nil {
		t.Fatal("Expected error for unsupported encoding")
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("No output file may be produced on a failed run")
	}
}

func TestRunEmptyInput(t *testing.T) {
	input := writeInput(t, "")
	output := filepath.Join(t.TempDir(), "out.csv")

	var percents []int
	err := Run(input, output, Options{
		Progress: func(p int) { percents = append(percents, p) },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(percents) != 1 || percents[0] != 100 {
		t.Errorf("Expected a single 100%% emission, got %v", percents)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "Keyword,Count\n" {
		t.Errorf("Expected header-only report, got %q", data)
	}
}

func TestReadErrorMessageCarriesHint(t *testing.T) {
	err := &ReadError{Path: "x.txt", Encoding: "utf-8", Err: errors.New("boom")}
	if !strings.Contains(err.Error(), "windows-1252") {
		t.Errorf("ReadError should hint at the fallback encoding: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "utf-8") {
		t.Errorf("ReadError should name the declared encoding: %q", err.Error())
	}
}
