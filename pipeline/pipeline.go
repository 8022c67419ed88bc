// Package pipeline wires the tokenizer, the frequency counter and the CSV
// exporter into a single-pass run over one input file.
package pipeline

import (
	"io"
	"log/slog"
	"os"

	"kwcount/counter"
	"kwcount/exporter"
	"kwcount/tokenizer"
)

// Options configures one pipeline run.
type Options struct {
	// Encoding is the declared input text encoding (e.g. "utf-8",
	// "windows-1252"). Empty means tokenizer.DefaultEncoding.
	Encoding string

	// Progress, when set, receives deduplicated integer percentages of the
	// input consumed, ending with a single 100 after exhaustion.
	Progress tokenizer.ProgressFunc

	// Logger, when set, receives phase-transition logs.
	Logger *slog.Logger
}

// Run streams inputPath through the keyword pipeline and writes the sorted
// frequency report to outputPath. The run either fully completes or produces
// no report: any tokenizer failure discards the partial frequency map, and
// nothing is written before the stream is exhausted.
func Run(inputPath, outputPath string, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: inputPath}
		}
		return &ReadError{Path: inputPath, Encoding: opts.Encoding, Err: err}
	}

	f, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: inputPath}
		}
		return &ReadError{Path: inputPath, Encoding: opts.Encoding, Err: err}
	}
	defer f.Close()

	log.Info("analyzing file", "path", inputPath, "size", info.Size(), "encoding", opts.Encoding)

	tok, err := tokenizer.New(f, info.Size(), opts.Encoding, opts.Progress)
	if err != nil {
		return err
	}

	counts := counter.New()
	for keyword, ok := tok.Next(); ok; keyword, ok = tok.Next() {
		counts.Add(keyword)
	}
	if err := tok.Err(); err != nil {
		return &ReadError{Path: inputPath, Encoding: opts.Encoding, Err: err}
	}

	rows := counts.Report()
	log.Info("file reading complete", "keywords", len(rows), "bytes", tok.BytesRead)

	if err := exporter.ExportCSVFile(rows, outputPath); err != nil {
		return &WriteError{Path: outputPath, Err: err}
	}

	log.Info("csv file created", "path", outputPath, "rows", len(rows))
	return nil
}
