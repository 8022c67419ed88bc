package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"kwcount/config"
	"kwcount/exporter"
	"kwcount/logging"
	"kwcount/picker"
	"kwcount/pipeline"
	"kwcount/progress"
)

var cli struct {
	File       string `arg:"" optional:"" type:"path" help:"File to analyze. When omitted, an interactive picker opens."`
	Output     string `short:"o" placeholder:"PATH" help:"Report destination. Defaults to exports/<name>.csv next to the binary."`
	Encoding   string `short:"e" placeholder:"NAME" help:"Input text encoding (utf-8, windows-1252, iso-8859-1, cp437, cp850)."`
	Config     string `short:"c" type:"existingfile" placeholder:"FILE" help:"YAML configuration file."`
	NoProgress bool   `help:"Disable the progress indicator."`
	LogLevel   string `placeholder:"LEVEL" help:"Log level (debug, info, warn, error)."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("kwcount"),
		kong.Description("Counts keyword occurrences in Clausewitz-style script files and exports a sorted CSV report."),
	)
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	log := logging.New(cfg.LogLevel)

	fmt.Println("Clausewitz Keyword Counter")
	fmt.Println("--------------------------")

	input := cli.File
	if input == "" {
		pick, err := picker.New(".", cfg.Extensions)
		if err != nil {
			log.Error("cannot open file picker", "error", err)
			return 1
		}
		path, ok, err := pick.Run()
		if err != nil {
			log.Error("file picker failed", "error", err)
			return 1
		}
		if !ok {
			fmt.Println("File selection cancelled. Exiting.")
			return 0
		}
		input = path
	}

	output := cli.Output
	if output == "" {
		output, err = exporter.OutputPath(exporter.InstallDir(), cfg.ExportsDir, input)
		if err != nil {
			log.Error("cannot derive output path", "error", err)
			return 1
		}
	}
	fmt.Printf("Output will be saved to: %s\n", output)

	err = analyze(input, output, cfg.Encoding, log)

	// One retry under the fallback encoding, but only when the user did not
	// force an encoding explicitly.
	var readErr *pipeline.ReadError
	if errors.As(err, &readErr) && cli.Encoding == "" &&
		cfg.FallbackEncoding != "" && !strings.EqualFold(cfg.FallbackEncoding, cfg.Encoding) {
		log.Warn("read failed, retrying with fallback encoding",
			"encoding", cfg.Encoding, "fallback", cfg.FallbackEncoding, "error", err)
		err = analyze(input, output, cfg.FallbackEncoding, log)
	}

	if err != nil {
		log.Error("run failed", "error", err)
		return 1
	}

	fmt.Println("CSV file created successfully.")
	return 0
}

func analyze(input, output, encoding string, log *slog.Logger) error {
	printer := progress.NewPrinter(os.Stdout, !cli.NoProgress)
	defer printer.Done()

	return pipeline.Run(input, output, pipeline.Options{
		Encoding: encoding,
		Progress: printer.Update,
		Logger:   log,
	})
}

func loadConfig() (config.Config, error) {
	var cfg config.Config
	var err error
	if cli.Config != "" {
		cfg, err = config.LoadFile(cli.Config)
		if err != nil {
			return cfg, err
		}
	} else {
		cfg = config.Load()
	}

	if cli.Encoding != "" {
		cfg.Encoding = cli.Encoding
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	return cfg, nil
}
