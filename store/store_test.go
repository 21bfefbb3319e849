package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/pflow-xyz/go-pnml/petri"
	"github.com/pflow-xyz/go-pnml/validation"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func validatedNet(defective bool) (*petri.Net, *validation.Result) {
	b := petri.Build().
		Place("p1", 1).
		Place("p2", 0).
		Transition("t1").
		Arc("p1", "t1").
		Arc("t1", "p2")
	if defective {
		b.Arc("ghost", "t1")
	}
	net := b.Done()
	return net, validation.NewValidator(net).Validate()
}

func TestRecordAndListRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	net, res := validatedNet(false)
	id, err := s.RecordRun(ctx, "nets/demo.pnml", net, res)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty run id")
	}

	runs, err := s.Runs(ctx, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != id {
		t.Errorf("expected id %s, got %s", id, r.ID)
	}
	if r.Path != "nets/demo.pnml" {
		t.Errorf("expected recorded path, got %s", r.Path)
	}
	if r.CID != net.CID() {
		t.Errorf("expected cid %s, got %s", net.CID(), r.CID)
	}
	if r.Places != 2 || r.Transitions != 1 || r.Arcs != 2 {
		t.Errorf("expected counts 2/1/2, got %d/%d/%d", r.Places, r.Transitions, r.Arcs)
	}
	if !r.Valid {
		t.Error("expected valid run")
	}
	if len(r.Defects) != 0 {
		t.Errorf("expected no defects, got %v", r.Defects)
	}
	if !reflect.DeepEqual(r.Marking, []int{1, 0}) {
		t.Errorf("expected marking [1 0], got %v", r.Marking)
	}
}

func TestRecordDefectiveRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	net, res := validatedNet(true)
	if res.Valid {
		t.Fatal("expected defective fixture")
	}
	if _, err := s.RecordRun(ctx, "nets/bad.pnml", net, res); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	runs, err := s.Runs(ctx, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Valid {
		t.Error("expected run marked invalid")
	}
	if !reflect.DeepEqual(runs[0].Defects, res.Defects()) {
		t.Errorf("expected defects %v, got %v", res.Defects(), runs[0].Defects)
	}
}

func TestRunsForPath(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	net, res := validatedNet(false)
	for _, path := range []string{"a.pnml", "b.pnml", "a.pnml"} {
		if _, err := s.RecordRun(ctx, path, net, res); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	runs, err := s.RunsForPath(ctx, "a.pnml")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs for a.pnml, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Path != "a.pnml" {
			t.Errorf("expected only a.pnml runs, got %s", r.Path)
		}
	}
}

func TestRunsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	net, res := validatedNet(false)
	for i := 0; i < 5; i++ {
		if _, err := s.RecordRun(ctx, "n.pnml", net, res); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	runs, err := s.Runs(ctx, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("expected limit of 3 runs, got %d", len(runs))
	}
}
