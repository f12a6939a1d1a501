// SPDX-License-Identifier: MIT
package serial

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/parboruvka/core"
)

// ErrInvalidGraph indicates a nil graph.
var ErrInvalidGraph = errors.New("serial: nil graph")

// ErrUnknownMethod indicates an unsupported algorithm name.
var ErrUnknownMethod = errors.New("serial: unknown method")

// MethodBoruvka selects Borůvka's algorithm (rounds of cheapest edges).
const MethodBoruvka = "boruvka"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow each tree with a min-heap).
const MethodPrim = "prim"

// Forest is a minimum spanning forest.
type Forest struct {
	// Edges in the order the algorithm accepted them.
	Edges []core.Edge

	// Weight is the sum of Edges' weights.
	Weight int64

	// Components is the number of trees; 1 for a connected graph, 0 for V=0.
	Components int

	// Rounds is the number of Borůvka rounds; 0 for the other methods.
	Rounds int
}

// Spanning reports whether the forest is a single tree.
func (f Forest) Spanning() bool { return f.Components <= 1 }

// Options configures Compute.
//
// Fields:
//
//	Method   string - one of MethodBoruvka, MethodKruskal, MethodPrim.
//	LowestID bool   - Borůvka only: break equal weights by lower canonical
//	                  endpoints instead of keeping the first edge seen.
type Options struct {
	Method   string
	LowestID bool
}

// Option configures Options.
type Option func(*Options)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithLowestID makes Borůvka prefer the lowest (min, max) endpoint pair
// among equally cheap edges.
func WithLowestID() Option {
	return func(o *Options) {
		o.LowestID = true
	}
}

// DefaultOptions returns Options for first-seen Borůvka.
func DefaultOptions() Options {
	return Options{Method: MethodBoruvka}
}

// Compute dispatches to the algorithm selected by opts.
//
//	- MethodBoruvka: Boruvka(graph, opts...).
//	- MethodKruskal: Kruskal(graph).
//	- MethodPrim:    Prim(graph).
//	- otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodBoruvka:
		return Boruvka(graph, opts...)
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph)
	default:
		return Forest{}, fmt.Errorf("Compute(%q): %w", o.Method, ErrUnknownMethod)
	}
}
