package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/LerianStudio/lib-commons/commons/log"

	"payments-engine/internal/gateway"
	"payments-engine/internal/usecase"
)

func main() {
	format := flag.String("format", "csv", "Output format: csv or table")
	flag.Parse()

	// The input file is the single required positional argument.
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a single transactions CSV file is required.")
		fmt.Fprintln(os.Stderr, "Usage: payments [-format csv|table] <transactions.csv>")
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	logger := newLogger(os.Getenv("LOG_LEVEL"))

	// --- Dependency Injection (Wiring the application) ---
	// 1. Create the reader (the outermost layer)
	csvReader := gateway.NewCSVTransactionReader(logger)

	// 2. Create the usecase and inject the reader (the core logic layer)
	settlementUseCase := usecase.NewSettlementUseCase(csvReader, logger)

	// --- Execute the Usecase ---
	snapshots, err := settlementUseCase.Settle(context.Background(), inputPath)
	if err != nil {
		logger.Fatalf("Settlement failed: %v", err)
	}

	// --- Present the Output ---
	switch *format {
	case "csv":
		if err := gateway.WriteSnapshotsCSV(os.Stdout, snapshots); err != nil {
			logger.Fatalf("Failed to write snapshot CSV: %v", err)
		}
	case "table":
		gateway.WriteSnapshotsTable(os.Stdout, snapshots)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q (expected csv or table).\n", *format)
		os.Exit(1)
	}
}

// newLogger builds the diagnostic logger; verbosity comes from the
// LOG_LEVEL environment variable and defaults to warnings only.
func newLogger(level string) log.Logger {
	logLevel := log.WarnLevel

	switch strings.ToLower(level) {
	case "debug":
		logLevel = log.DebugLevel
	case "info":
		logLevel = log.InfoLevel
	case "error":
		logLevel = log.ErrorLevel
	}

	return &log.GoLogger{Level: logLevel}
}
