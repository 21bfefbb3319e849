package report

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/pflow-xyz/go-pnml/petri"
)

func sampleNet() *petri.Net {
	return petri.Build().
		Place("p1", 1).
		Place("p2", 0).
		Transition("t1").
		Arc("p1", "t1").
		Arc("t1", "p2").
		Done()
}

func TestBuild(t *testing.T) {
	r := Build(sampleNet())

	if r.Places != 2 || r.Transitions != 1 || r.Arcs != 2 {
		t.Errorf("Expected counts 2/1/2, got %d/%d/%d", r.Places, r.Transitions, r.Arcs)
	}
	if !reflect.DeepEqual(r.InitialMarking, []int{1, 0}) {
		t.Errorf("Expected marking [1 0], got %v", r.InitialMarking)
	}
	if len(r.Marked) != 1 || r.Marked[0].ID != "p1" || r.Marked[0].Tokens != 1 {
		t.Errorf("Expected only p1 in the nonzero listing, got %v", r.Marked)
	}
	if !reflect.DeepEqual(r.Incidence, [][]int{{-1}, {1}}) {
		t.Errorf("Expected incidence [[-1] [1]], got %v", r.Incidence)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Build(sampleNet()).WriteText(&buf); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"=== PETRI NET SUMMARY ===",
		"Places:      2",
		"Transitions: 1",
		"Arcs:        2",
		"M0: [1 0]",
		"p1: 1",
		"Incidence Matrix",
		"t1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "p2: 0") {
		t.Error("Expected nonzero listing to skip unmarked places")
	}
}

func TestWriteMatrixAlignment(t *testing.T) {
	net := petri.Build().
		Place("waiting", 1).
		Place("p2", 0).
		Transition("dispatch").
		Arc("waiting", "dispatch").
		Arc("dispatch", "p2").
		Done()

	var buf bytes.Buffer
	if err := Build(net).WriteMatrix(&buf); err != nil {
		t.Fatalf("WriteMatrix failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header, rule, and 2 rows; got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "dispatch") {
		t.Errorf("Expected transition header, got %q", lines[0])
	}
	// Rows are right-aligned to a common width, so all lines match.
	if len(lines[0]) != len(lines[2]) || len(lines[2]) != len(lines[3]) {
		t.Errorf("Expected aligned columns, got widths %d/%d/%d",
			len(lines[0]), len(lines[2]), len(lines[3]))
	}
	if !strings.HasPrefix(lines[3], "waiting") {
		t.Errorf("Expected row header 'waiting' last (sorted), got %q", lines[3])
	}
}

func TestEmptyNetReport(t *testing.T) {
	net := petri.NewNet()
	net.BuildRelationships()

	var buf bytes.Buffer
	if err := Build(net).WriteText(&buf); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Places:      0") {
		t.Errorf("Expected zero counts, got:\n%s", buf.String())
	}
}
