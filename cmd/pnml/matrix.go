package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pflow-xyz/go-pnml/pnml"
	"github.com/pflow-xyz/go-pnml/report"
)

func matrixCmd(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("matrix", flag.ExitOnError)
	outputJSON := fs.Bool("json", false, "Output the matrix and id registry as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pnml matrix <net.pnml> [options]

Print the incidence matrix of a PNML document. Rows are places and
columns are transitions, both in sorted id order.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  pnml matrix net.pnml
  pnml matrix net.pnml --json
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

	r := report.Build(net)
	if *outputJSON {
		out := struct {
			PlaceIDs      []string `json:"place_ids"`
			TransitionIDs []string `json:"transition_ids"`
			Incidence     [][]int  `json:"incidence"`
		}{r.PlaceIDs, r.TransitionIDs, r.Incidence}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	return r.WriteMatrix(os.Stdout)
}
