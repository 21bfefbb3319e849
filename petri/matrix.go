package petri

import (
	"gonum.org/v1/gonum/mat"
)

// buildIncidence rebuilds the incidence matrix from the current
// registry and preset/postset lists. The matrix has one row per place
// id and one column per transition id, both in registry order. A place
// appearing several times in a preset or postset accumulates, so a
// self-loop pair (p→t, t→p) nets to 0 and parallel arcs can produce
// entries outside {-1, 0, 1}.
func (n *Net) buildIncidence() {
	rows := len(n.PlaceIDs)
	cols := len(n.TransitionIDs)

	matrix := make([][]int, rows)
	for i := range matrix {
		matrix[i] = make([]int, cols)
	}

	placeIdx := make(map[string]int, rows)
	for i, id := range n.PlaceIDs {
		placeIdx[id] = i
	}

	for col, tid := range n.TransitionIDs {
		t := n.Transitions[tid]
		for _, pid := range t.Preset {
			matrix[placeIdx[pid]][col]--
		}
		for _, pid := range t.Postset {
			matrix[placeIdx[pid]][col]++
		}
	}

	n.Incidence = matrix
}

// IncidenceDense exports the incidence matrix as a gonum dense matrix
// for downstream linear-algebra consumers (invariant computation,
// state-equation solving). Returns nil for the empty net, which gonum
// cannot represent.
func (n *Net) IncidenceDense() *mat.Dense {
	rows := len(n.PlaceIDs)
	cols := len(n.TransitionIDs)
	if rows == 0 || cols == 0 {
		return nil
	}

	data := make([]float64, rows*cols)
	for i, row := range n.Incidence {
		for j, v := range row {
			data[i*cols+j] = float64(v)
		}
	}
	return mat.NewDense(rows, cols, data)
}
