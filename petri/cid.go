package petri

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

type normalizedPlace struct {
	ID     string `json:"id"`
	Tokens int    `json:"tokens"`
}

type normalizedArc struct {
	ID     string `json:"id,omitempty"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type normalizedNet struct {
	Places      []normalizedPlace `json:"places"`
	Transitions []string          `json:"transitions"`
	Arcs        []normalizedArc   `json:"arcs"`
}

// CID computes the content-addressed identifier for this net.
// Any change to the net, including initial markings and arc ids,
// changes the CID.
func (n *Net) CID() string {
	data, err := json.Marshal(n.normalize(true))
	if err != nil {
		return ""
	}
	hash := sha256.Sum256(data)
	return "cid:" + hex.EncodeToString(hash[:])
}

// IdentityHash computes a structural fingerprint for matching.
// Two nets with the same places, transitions, and arc structure have
// the same identity hash even if markings or arc ids differ.
func (n *Net) IdentityHash() string {
	data, err := json.Marshal(n.normalize(false))
	if err != nil {
		return ""
	}
	hash := sha256.Sum256(data)
	return "idh:" + hex.EncodeToString(hash[:16])
}

// normalize creates a deterministically ordered copy for hashing.
// full includes markings and arc ids; otherwise only structure.
func (n *Net) normalize(full bool) normalizedNet {
	places := make([]normalizedPlace, 0, len(n.Places))
	for id, p := range n.Places {
		np := normalizedPlace{ID: id}
		if full {
			np.Tokens = p.Tokens
		}
		places = append(places, np)
	}
	sort.Slice(places, func(i, j int) bool { return places[i].ID < places[j].ID })

	arcs := make([]normalizedArc, 0, len(n.Arcs))
	for _, a := range n.Arcs {
		na := normalizedArc{Source: a.Source, Target: a.Target}
		if full {
			na.ID = a.ID
		}
		arcs = append(arcs, na)
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].Source != arcs[j].Source {
			return arcs[i].Source < arcs[j].Source
		}
		return arcs[i].Target < arcs[j].Target
	})

	return normalizedNet{
		Places:      places,
		Transitions: sortedKeys(n.Transitions),
		Arcs:        arcs,
	}
}

// StructurallyEqual returns true if two nets share the same structure,
// ignoring markings and arc ids.
func (n *Net) StructurallyEqual(other *Net) bool {
	if other == nil {
		return false
	}
	return n.IdentityHash() == other.IdentityHash()
}
