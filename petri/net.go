// Package petri implements the structural core of a Petri net.
// A net consists of Places (conditions holding tokens), Transitions
// (events consuming and producing tokens), and directed Arcs connecting
// them. The package derives each transition's preset/postset and the
// signed place×transition incidence matrix used by downstream analysis.
package petri

import (
	"sort"
)

// Place represents a condition that holds a non-negative token count.
type Place struct {
	ID     string
	Tokens int
}

// Transition represents an event. Preset holds the place ids feeding
// into it and Postset the place ids it feeds, both in arc order with
// duplicates preserved (parallel arcs count more than once).
type Transition struct {
	ID      string
	Preset  []string
	Postset []string
}

// Arc is a directed connection between a place and a transition.
// ID is optional and may be empty.
type Arc struct {
	ID     string
	Source string
	Target string
}

// Net is a complete Petri net model. Places and Transitions are keyed
// by id; Arcs keep document order. PlaceIDs, TransitionIDs, and
// Incidence are derived views refreshed by BuildRelationships and must
// not be mutated independently.
type Net struct {
	Places      map[string]*Place
	Transitions map[string]*Transition
	Arcs        []*Arc

	// Sorted, deduplicated identifier registry. Row and column order
	// of Incidence follows these slices exactly.
	PlaceIDs      []string
	TransitionIDs []string

	// Incidence[p][t] sums -1 per preset occurrence and +1 per postset
	// occurrence of place p at transition t.
	Incidence [][]int
}

// NewNet creates an empty net.
func NewNet() *Net {
	return &Net{
		Places:      make(map[string]*Place),
		Transitions: make(map[string]*Transition),
		Arcs:        make([]*Arc, 0),
	}
}

// AddPlace adds a place with the given initial token count.
// Re-adding an id overwrites the previous entry (last write wins).
func (n *Net) AddPlace(id string, tokens int) *Place {
	p := &Place{ID: id, Tokens: tokens}
	n.Places[id] = p
	return p
}

// AddTransition adds a transition. Re-adding an id overwrites the
// previous entry (last write wins).
func (n *Net) AddTransition(id string) *Transition {
	t := &Transition{ID: id}
	n.Transitions[id] = t
	return t
}

// AddArc appends an arc. id may be empty; arcs are kept in insertion
// order because that order determines preset/postset ordering.
func (n *Net) AddArc(id, source, target string) *Arc {
	a := &Arc{ID: id, Source: source, Target: target}
	n.Arcs = append(n.Arcs, a)
	return a
}

// BuildRelationships recomputes every derived view of the net: the
// sorted identifier registry, each transition's preset/postset, and
// the incidence matrix, in that order. It always starts from scratch,
// so calling it repeatedly on an unchanged net is idempotent.
//
// Arcs are classified by direction: place→transition appends the
// source to the target's preset, transition→place appends the target
// to the source's postset. Arcs matching neither pattern (same-kind
// endpoints, unknown ids) are skipped here; the validation package
// reports them.
func (n *Net) BuildRelationships() {
	n.PlaceIDs = sortedKeys(n.Places)
	n.TransitionIDs = sortedKeys(n.Transitions)

	for _, t := range n.Transitions {
		t.Preset = nil
		t.Postset = nil
	}

	for _, arc := range n.Arcs {
		if _, isPlace := n.Places[arc.Source]; isPlace {
			if t, ok := n.Transitions[arc.Target]; ok {
				t.Preset = append(t.Preset, arc.Source)
			}
			continue
		}
		if t, isTrans := n.Transitions[arc.Source]; isTrans {
			if _, ok := n.Places[arc.Target]; ok {
				t.Postset = append(t.Postset, arc.Target)
			}
		}
	}

	n.buildIncidence()
}

// InitialMarking returns the token counts in PlaceIDs order.
// BuildRelationships must have run for the ordering to be current.
func (n *Net) InitialMarking() []int {
	m := make([]int, len(n.PlaceIDs))
	for i, id := range n.PlaceIDs {
		m[i] = n.Places[id].Tokens
	}
	return m
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
