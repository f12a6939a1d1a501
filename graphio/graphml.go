// SPDX-License-Identifier: MIT
package graphio

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/parboruvka/core"
)

// ErrUnknownNode indicates an XML edge referencing an undeclared node.
var ErrUnknownNode = errors.New("graphio: edge references unknown node")

type xmlGraph struct {
	Nodes []xmlNode `xml:"graph>node"`
	Edges []xmlEdge `xml:"graph>edge"`
}

type xmlNode struct {
	ID string `xml:"id,attr"`
}

type xmlEdge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	Weight string `xml:"weight,attr"`
}

// ParseGraphML reads a GraphML-style document. V is the number of nodes. When
// every node id is an integer in [0, V) ids are kept; otherwise nodes are
// numbered in document order.
func ParseGraphML(r io.Reader) (*core.Graph, error) {
	var doc xmlGraph
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: xml: %w", err)
	}

	index := nodeIndex(doc.Nodes)
	edges := make([]core.Edge, 0, len(doc.Edges))
	for k, x := range doc.Edges {
		src, ok1 := index[x.Source]
		dest, ok2 := index[x.Target]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("edge %d (%s-%s): %w", k, x.Source, x.Target, ErrUnknownNode)
		}
		w, err := strconv.ParseInt(x.Weight, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("edge %d weight %q: %w", k, x.Weight, ErrMalformedEdge)
		}
		edges = append(edges, core.Edge{Src: src, Dest: dest, Weight: w})
	}

	return core.NewGraph(len(doc.Nodes), edges)
}

func nodeIndex(nodes []xmlNode) map[string]int {
	index := make(map[string]int, len(nodes))
	numeric := true
	for _, n := range nodes {
		id, err := strconv.Atoi(n.ID)
		if err != nil || id < 0 || id >= len(nodes) {
			numeric = false
			break
		}
		index[n.ID] = id
	}
	if numeric && len(index) == len(nodes) {
		return index
	}

	clear(index)
	for i, n := range nodes {
		index[n.ID] = i
	}

	return index
}
