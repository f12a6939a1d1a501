// SPDX-License-Identifier: MIT
package boruvka

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/katalvlaran/parboruvka/core"
)

// Candidate is the cheapest edge seen so far leaving one component.
// OK is false for an empty slot.
type Candidate struct {
	Edge core.Edge
	OK   bool
}

// CandidateTable holds one Candidate per vertex id. Only slots indexed by a
// current component representative are ever filled.
type CandidateTable []Candidate

// NewCandidateTable returns an empty table for v vertices.
func NewCandidateTable(v int) CandidateTable {
	return make(CandidateTable, v)
}

// Reset empties every slot.
func (t CandidateTable) Reset() {
	for i := range t {
		t[i] = Candidate{}
	}
}

// Offer stores e in slot c when the slot is empty or e is strictly preferred
// by tb over the current entry. Reports whether the slot changed.
func (t CandidateTable) Offer(c int, e core.Edge, tb TieBreak) bool {
	cur := &t[c]
	if cur.OK && !tb.prefers(e, cur.Edge) {
		return false
	}
	*cur = Candidate{Edge: e, OK: true}

	return true
}

// Combine folds other into t in place and returns t. On equal preference the
// receiver's entry wins, so a left fold over ranks keeps the lower rank.
// Tables must have the same length.
func (t CandidateTable) Combine(other CandidateTable, tb TieBreak) CandidateTable {
	for i, in := range other {
		if !in.OK {
			continue
		}
		t.Offer(i, in.Edge, tb)
	}

	return t
}

// Count returns the number of filled slots.
func (t CandidateTable) Count() int {
	n := 0
	for _, c := range t {
		if c.OK {
			n++
		}
	}

	return n
}

// Equal reports whether both tables hold the same candidates slot by slot.
func (t CandidateTable) Equal(o CandidateTable) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}

	return true
}

// wireTable is the sparse on-the-wire form: only filled slots travel.
type wireTable struct {
	N     int
	Index []int
	Edges []core.Edge
}

// GobEncode implements gob.GobEncoder.
func (t CandidateTable) GobEncode() ([]byte, error) {
	w := wireTable{N: len(t)}
	for i, c := range t {
		if c.OK {
			w.Index = append(w.Index, i)
			w.Edges = append(w.Edges, c.Edge)
		}
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, fmt.Errorf("CandidateTable: %w", err)
	}

	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (t *CandidateTable) GobDecode(data []byte) error {
	var w wireTable
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return fmt.Errorf("CandidateTable: %w", err)
	}
	if w.N < 0 || len(w.Index) != len(w.Edges) {
		return fmt.Errorf("CandidateTable: %d slots, %d indices, %d edges: %w",
			w.N, len(w.Index), len(w.Edges), ErrTableSize)
	}
	out := make(CandidateTable, w.N)
	for k, i := range w.Index {
		if i < 0 || i >= w.N {
			return fmt.Errorf("CandidateTable: slot %d of %d: %w", i, w.N, ErrTableSize)
		}
		out[i] = Candidate{Edge: w.Edges[k], OK: true}
	}
	*t = out

	return nil
}

// prefers reports whether a should replace b.
func (tb TieBreak) prefers(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if tb != TieBreakLowestID {
		return false
	}
	ca, cb := a.Canonical(), b.Canonical()
	if ca.Src != cb.Src {
		return ca.Src < cb.Src
	}

	return ca.Dest < cb.Dest
}
