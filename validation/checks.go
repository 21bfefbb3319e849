package validation

import (
	"fmt"
	"sort"
)

// checkStructure validates the global shape of the net.
func (v *Validator) checkStructure() {
	if len(v.net.Places) == 0 {
		v.AddError("structure", "net has no places", nil)
	}
	if len(v.net.Transitions) == 0 {
		v.AddError("structure", "net has no transitions", nil)
	}
}

// checkArcs verifies that every arc endpoint names a known place or
// transition. Each missing endpoint produces its own error, source
// before target, in arc-list order.
func (v *Validator) checkArcs() {
	for _, arc := range v.net.Arcs {
		name := arc.ID
		if name == "" {
			name = "(no id)"
		}

		if !v.knownNode(arc.Source) {
			v.AddError("arc",
				fmt.Sprintf("arc %s references unknown source %q", name, arc.Source),
				[]string{arc.Source})
		}
		if !v.knownNode(arc.Target) {
			v.AddError("arc",
				fmt.Sprintf("arc %s references unknown target %q", name, arc.Target),
				[]string{arc.Target})
		}
	}
}

// checkConnectivity reports warning-level findings: arcs joining two
// nodes of the same kind (skipped by relationship building) and nodes
// no arc touches. Node warnings iterate sorted ids for determinism.
func (v *Validator) checkConnectivity() {
	for _, arc := range v.net.Arcs {
		_, srcPlace := v.net.Places[arc.Source]
		_, tgtPlace := v.net.Places[arc.Target]
		_, srcTrans := v.net.Transitions[arc.Source]
		_, tgtTrans := v.net.Transitions[arc.Target]

		name := arc.ID
		if name == "" {
			name = "(no id)"
		}
		if srcPlace && tgtPlace {
			v.AddWarning("connectivity",
				fmt.Sprintf("arc %s connects place %q to place %q and is ignored", name, arc.Source, arc.Target),
				[]string{arc.Source, arc.Target})
		}
		if srcTrans && tgtTrans {
			v.AddWarning("connectivity",
				fmt.Sprintf("arc %s connects transition %q to transition %q and is ignored", name, arc.Source, arc.Target),
				[]string{arc.Source, arc.Target})
		}
	}

	touched := make(map[string]bool)
	for _, arc := range v.net.Arcs {
		touched[arc.Source] = true
		touched[arc.Target] = true
	}

	for _, id := range sortedIDs(v.net.Places) {
		if !touched[id] {
			v.AddWarning("connectivity",
				fmt.Sprintf("place %q is not connected to any transition", id),
				[]string{id})
		}
	}
	for _, id := range sortedIDs(v.net.Transitions) {
		if !touched[id] {
			v.AddWarning("connectivity",
				fmt.Sprintf("transition %q is not connected to any place", id),
				[]string{id})
		}
	}
}

// knownNode reports whether id names a place or a transition.
func (v *Validator) knownNode(id string) bool {
	if _, ok := v.net.Places[id]; ok {
		return true
	}
	_, ok := v.net.Transitions[id]
	return ok
}

func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
