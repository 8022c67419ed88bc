package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"kwcount/counter"
)

// WriteCSV serializes the report to w: a "Keyword,Count" header followed by
// one row per keyword in report order, each row ending in a newline. Cells
// containing commas, quotes or newlines are quoted per standard CSV rules;
// keyword tokens cannot currently contain those characters, but the writer
// stays general-purpose. Output is always UTF-8 regardless of the input
// encoding.
func WriteCSV(rows []counter.Row, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Keyword", "Count"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Keyword, strconv.Itoa(row.Count)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSVFile writes the report to path, creating or truncating the file.
func ExportCSVFile(rows []counter.Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	if err := WriteCSV(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}

	return f.Close()
}
