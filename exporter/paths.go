package exporter

import (
	"fmt"
	"os"
	"path/filepath"
)

// InstallDir returns the directory holding the running binary, falling back
// to the working directory when the executable path cannot be resolved
// (e.g. under go run from a temp dir that has been removed).
func InstallDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// OutputPath derives the report destination for inputPath: the input's full
// base filename (extension included) with ".csv" appended, placed under
// exportsDir resolved against installDir. The directory is created if absent.
//
// "frontend.gui" becomes "<installDir>/<exportsDir>/frontend.gui.csv".
func OutputPath(installDir, exportsDir, inputPath string) (string, error) {
	dir := exportsDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(installDir, exportsDir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating exports directory: %w", err)
	}

	return filepath.Join(dir, filepath.Base(inputPath)+".csv"), nil
}
