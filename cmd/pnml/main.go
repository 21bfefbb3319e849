// Command pnml loads PNML documents, checks their structural
// consistency, and prints summaries and incidence matrices.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "validate":
		if err := validateCmd(logger, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "summary":
		if err := summaryCmd(logger, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "matrix":
		if err := matrixCmd(logger, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "history":
		if err := historyCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("pnml version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pnml - Petri net structural analysis tool

Usage:
  pnml <command> [options]

Commands:
  validate   Check a PNML document for structural defects
  summary    Print counts, initial marking, and incidence matrix
  matrix     Print only the incidence matrix
  history    List recorded runs from a run database
  help       Show this help message
  version    Show version information

Examples:
  # Validate a document
  pnml validate net.pnml

  # Print the full summary (only when the consistency check passes)
  pnml summary net.pnml

  # Record runs while validating
  pnml validate net.pnml --db runs.db
  pnml history --db runs.db

For command-specific help, run:
  pnml <command> --help`)
}
