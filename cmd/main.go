package main

import (
	"flag"
	"math/rand/v2"
	"os"

	"github.com/richard-senior/footballlab/internal/logger"
	"github.com/richard-senior/footballlab/pkg/util/fdl"
)

func main() {
	settings, err := fdl.LoadSettings()
	if err != nil {
		logger.Error("Failed to read settings:", err)
		os.Exit(1)
	}

	seed := flag.Int64("seed", settings.Seed, "random seed, 0 for a random one")
	out := flag.String("out", settings.OutputDir, "directory for the CSV files")
	configPath := flag.String("config", settings.ConfigPath, "YAML file overriding the default configuration")
	sqlitePath := flag.String("sqlite", settings.SQLitePath, "also export to this SQLite file")
	bundlePath := flag.String("bundle", settings.BundlePath, "also pack the CSV files into this brotli tar")
	report := flag.Bool("report", settings.Report, "write report.html and report.md next to the CSV files")
	logOutput := flag.String("log", "c", "log output: c (console), f (file) or b (both)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger.SetShowDateTime(true)
	if len(*logOutput) != 1 {
		logger.Error("Invalid log output:", *logOutput)
		os.Exit(1)
	}
	if err := logger.SetLogOutput(rune((*logOutput)[0])); err != nil {
		logger.Error("Invalid log output:", err)
		os.Exit(1)
	}
	defer logger.Close()
	level, err := logger.ParseLevel(settings.LogLevel)
	if err != nil {
		logger.Warn("Ignoring log level:", err)
		level = logger.INFO
	}
	if *debug {
		level = logger.DEBUG
	}
	logger.SetLevel(level)

	cfg, err := fdl.LoadConfig(*configPath)
	if err != nil {
		logger.Error("Failed to load configuration:", err)
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = rand.Int64N(1 << 31)
		logger.Info("Picked random seed", *seed)
	}

	ds, err := fdl.Generate(cfg, *seed)
	if err != nil {
		logger.Error("Generation failed:", err)
		os.Exit(1)
	}
	if err := ds.WriteCSV(*out); err != nil {
		logger.Error("Failed to write dataset:", err)
		os.Exit(1)
	}
	if *sqlitePath != "" {
		if err := ds.WriteSQLite(*sqlitePath); err != nil {
			logger.Error("SQLite export failed:", err)
			os.Exit(1)
		}
	}
	if *bundlePath != "" {
		if err := ds.WriteBundle(*bundlePath); err != nil {
			logger.Error("Bundle failed:", err)
			os.Exit(1)
		}
	}
	if *report {
		if err := fdl.WriteReport(*out, ds); err != nil {
			logger.Error("Report failed:", err)
			os.Exit(1)
		}
	}
	logger.Highlight("Dataset written to", *out)
}
