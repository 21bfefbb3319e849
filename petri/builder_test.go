package petri

import (
	"reflect"
	"testing"
)

func TestBuilder(t *testing.T) {
	net := Build().
		Place("p1", 1).
		Place("p2", 0).
		Transition("t1").
		ArcWithID("a1", "p1", "t1").
		Arc("t1", "p2").
		Done()

	if len(net.Places) != 2 || len(net.Transitions) != 1 || len(net.Arcs) != 2 {
		t.Fatalf("Expected 2 places, 1 transition, 2 arcs; got %d/%d/%d",
			len(net.Places), len(net.Transitions), len(net.Arcs))
	}
	if net.Arcs[0].ID != "a1" {
		t.Errorf("Expected first arc id 'a1', got %q", net.Arcs[0].ID)
	}
	if net.Arcs[1].ID != "" {
		t.Errorf("Expected second arc without id, got %q", net.Arcs[1].ID)
	}
	if !reflect.DeepEqual(net.Transitions["t1"].Preset, []string{"p1"}) {
		t.Errorf("Expected Done to commit relationships, got preset %v", net.Transitions["t1"].Preset)
	}
	if len(net.Incidence) != 2 {
		t.Errorf("Expected committed incidence matrix, got %v", net.Incidence)
	}
}
