// Package report builds a structured summary of a Petri net and
// renders it as text. The report is a pure value computed from core
// data; rendering carries no logic of its own.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pflow-xyz/go-pnml/petri"
)

// MarkedPlace is a place holding at least one initial token.
type MarkedPlace struct {
	ID     string `json:"id"`
	Tokens int    `json:"tokens"`
}

// Report summarizes a committed net: element counts, the initial
// marking aligned to PlaceIDs, the nonzero-marking listing, and the
// incidence matrix rows.
type Report struct {
	Places      int `json:"places"`
	Transitions int `json:"transitions"`
	Arcs        int `json:"arcs"`

	PlaceIDs       []string      `json:"place_ids"`
	TransitionIDs  []string      `json:"transition_ids"`
	InitialMarking []int         `json:"initial_marking"`
	Marked         []MarkedPlace `json:"marked,omitempty"`
	Incidence      [][]int       `json:"incidence"`
}

// Build computes a report from a net. BuildRelationships must have run
// so the registry and matrix are current.
func Build(net *petri.Net) *Report {
	r := &Report{
		Places:         len(net.Places),
		Transitions:    len(net.Transitions),
		Arcs:           len(net.Arcs),
		PlaceIDs:       net.PlaceIDs,
		TransitionIDs:  net.TransitionIDs,
		InitialMarking: net.InitialMarking(),
		Incidence:      net.Incidence,
	}
	for i, id := range r.PlaceIDs {
		if r.InitialMarking[i] > 0 {
			r.Marked = append(r.Marked, MarkedPlace{ID: id, Tokens: r.InitialMarking[i]})
		}
	}
	return r
}

// WriteText renders the full summary: counts, initial marking, and the
// incidence matrix table.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "=== PETRI NET SUMMARY ===\n"); err != nil {
		return err
	}
	fmt.Fprintf(w, "Places:      %d\n", r.Places)
	fmt.Fprintf(w, "Transitions: %d\n", r.Transitions)
	fmt.Fprintf(w, "Arcs:        %d\n", r.Arcs)

	fmt.Fprintf(w, "\n--- Initial Marking (M0) ---\n")
	fmt.Fprintf(w, "M0: %v\n", r.InitialMarking)
	for _, m := range r.Marked {
		fmt.Fprintf(w, "  %s: %d\n", m.ID, m.Tokens)
	}

	fmt.Fprintf(w, "\n--- Incidence Matrix (A) ---\n")
	return r.WriteMatrix(w)
}

// WriteMatrix renders only the incidence matrix as a table with
// transition ids as column headers, place ids as row headers, and
// right-aligned fixed-width integer cells.
func (r *Report) WriteMatrix(w io.Writer) error {
	rowWidth := len("place")
	for _, id := range r.PlaceIDs {
		if len(id) > rowWidth {
			rowWidth = len(id)
		}
	}
	colWidth := 4
	for _, id := range r.TransitionIDs {
		if len(id) > colWidth {
			colWidth = len(id)
		}
	}

	header := fmt.Sprintf("%*s |", rowWidth, "")
	for _, id := range r.TransitionIDs {
		header += fmt.Sprintf(" %*s", colWidth, id)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for i, row := range r.Incidence {
		line := fmt.Sprintf("%*s |", rowWidth, r.PlaceIDs[i])
		for _, v := range row {
			line += fmt.Sprintf(" %*d", colWidth, v)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
