package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pflow-xyz/go-pnml/pnml"
	"github.com/pflow-xyz/go-pnml/report"
	"github.com/pflow-xyz/go-pnml/validation"
)

func summaryCmd(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	dbPath := fs.String("db", "", "Record the run in this SQLite database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pnml summary <net.pnml> [options]

Print element counts, the initial marking, and the incidence matrix.
The summary is only printed when the consistency check passes; on a
failed check the defect list is printed instead.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  pnml summary net.pnml
  pnml summary net.pnml --db runs.db
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

	if !result.Valid {
		printResult(path, result)
		os.Exit(1)
	}

	return report.Build(net).WriteText(os.Stdout)
}
