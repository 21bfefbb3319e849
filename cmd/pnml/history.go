package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-pnml/store"
)

func historyCmd(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dbPath := fs.String("db", "runs.db", "SQLite database with recorded runs")
	limit := fs.Int("limit", 20, "Maximum number of runs to list (0 for all)")
	path := fs.String("path", "", "Only list runs for this document path")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pnml history [options]

List recorded load+validate runs, newest first.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  pnml history --db runs.db
  pnml history --db runs.db --path net.pnml --limit 5
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := store.Open(*dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	var runs []store.Run
	if *path != "" {
		runs, err = s.RunsForPath(ctx, *path)
	} else {
		runs, err = s.Runs(ctx, *limit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	for _, r := range runs {
		status := "ok"
		if !r.Valid {
			status = fmt.Sprintf("%d defects", len(r.Defects))
		}
		fmt.Printf("%s  %s  %s  %dP/%dT/%dA  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.ID[:8], r.Path, r.Places, r.Transitions, r.Arcs, status)
	}
	return nil
}
