package main

import (
	"flag"
	"os"

	"github.com/richard-senior/footballlab/internal/logger"
	"github.com/richard-senior/footballlab/pkg/util/fdl"
)

// Recomputes the league table from the match file of a generated dataset and exits
// non-zero when it does not match the persisted table.
func main() {
	dir := flag.String("dir", "data", "directory holding the CSV files")
	season := flag.String("season", "", "season to verify, defaults to the dataset's current season")
	sqlitePath := flag.String("sqlite", "", "also verify this SQLite export")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	if *debug {
		logger.SetLevel(logger.DEBUG)
	}

	if err := fdl.VerifyDataset(*dir, *season); err != nil {
		logger.Error("Verification failed:", err)
		os.Exit(1)
	}
	if *sqlitePath != "" {
		if err := fdl.VerifySQLite(*sqlitePath, *season); err != nil {
			logger.Error("SQLite verification failed:", err)
			os.Exit(1)
		}
	}
	logger.Highlight("League table matches the results")
}
