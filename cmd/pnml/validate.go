package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pflow-xyz/go-pnml/petri"
	"github.com/pflow-xyz/go-pnml/pnml"
	"github.com/pflow-xyz/go-pnml/store"
	"github.com/pflow-xyz/go-pnml/validation"
)

func validateCmd(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	outputJSON := fs.Bool("json", false, "Output the validation result as JSON")
	dbPath := fs.String("db", "", "Record the run in this SQLite database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pnml validate <net.pnml> [options]

Check a PNML document for structural defects.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Checks performed:
  - Net has at least one place and one transition
  - Every arc endpoint names a known place or transition
  - Warnings for same-kind arcs and disconnected nodes

Examples:
  pnml validate net.pnml
  pnml validate net.pnml --json
  pnml validate net.pnml --db runs.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("PNML file required")
	}
	path := fs.Arg(0)

	net, err := pnml.NewLoader(logger).LoadFile(path)
	if err != nil {
		return err
	}

	result := validation.NewValidator(net).Validate()

	if *dbPath != "" {
		if err := recordRun(*dbPath, path, net, result); err != nil {
			return err
		}
	}

	if *outputJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printResult(path, result)
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}

func printResult(path string, result *validation.Result) {
	fmt.Printf("%s: %d places, %d transitions, %d arcs\n",
		path, result.Summary.Places, result.Summary.Transitions, result.Summary.Arcs)

	if result.Valid {
		fmt.Println("PASSED: net is consistent")
	} else {
		fmt.Println("FAILED: structural defects found:")
		for _, msg := range result.Defects() {
			fmt.Printf("  - %s\n", msg)
		}
	}
	for _, w := range result.Warnings {
		fmt.Printf("  warning: %s\n", w.Message)
	}
}

func recordRun(dbPath, path string, net *petri.Net, result *validation.Result) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.RecordRun(context.Background(), path, net, result); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}
