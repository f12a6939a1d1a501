// SPDX-License-Identifier: MIT
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/parboruvka/core"
)

// Sentinel errors.
var (
	ErrHeader            = errors.New("graphio: invalid header, expected '<V> <E>'")
	ErrMalformedEdge     = errors.New("graphio: malformed edge line")
	ErrTooManyEdges      = errors.New("graphio: more edges than declared in header")
	ErrEdgeCountMismatch = errors.New("graphio: edge count mismatch")
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Parse reads a graph in edge-list format from r.
func Parse(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		lineNo   int
		haveHead bool
		v, e     int
		edges    []core.Edge
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if !haveHead {
			var err error
			if v, e, err = parseHeader(fields); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			haveHead = true
			edges = make([]core.Edge, 0, e)
			continue
		}

		edge, err := parseEdge(fields, v)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(edges) == e {
			return nil, fmt.Errorf("line %d: header declares %d: %w", lineNo, e, ErrTooManyEdges)
		}
		edges = append(edges, edge)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}
	if !haveHead {
		return nil, fmt.Errorf("no header line: %w", ErrHeader)
	}
	if len(edges) != e {
		return nil, fmt.Errorf("expected %d, got %d: %w", e, len(edges), ErrEdgeCountMismatch)
	}

	return core.NewGraph(v, edges)
}

func parseHeader(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%d fields: %w", len(fields), ErrHeader)
	}
	v, err1 := strconv.Atoi(fields[0])
	e, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || v < 0 || e < 0 {
		return 0, 0, fmt.Errorf("%q %q: %w", fields[0], fields[1], ErrHeader)
	}

	return v, e, nil
}

func parseEdge(fields []string, v int) (core.Edge, error) {
	if len(fields) != 3 {
		return core.Edge{}, fmt.Errorf("%d fields: %w", len(fields), ErrMalformedEdge)
	}
	src, err1 := strconv.Atoi(fields[0])
	dest, err2 := strconv.Atoi(fields[1])
	w, err3 := strconv.ParseInt(fields[2], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return core.Edge{}, fmt.Errorf("%s: %w", strings.Join(fields, " "), ErrMalformedEdge)
	}
	if src < 0 || src >= v || dest < 0 || dest >= v {
		return core.Edge{}, fmt.Errorf("endpoint of %d-%d outside [0,%d): %w", src, dest, v, ErrMalformedEdge)
	}

	return core.Edge{Src: src, Dest: dest, Weight: w}, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Write emits g in edge-list format, preceded by a comment line.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Vertices %d Edges %d\n", g.VertexCount(), g.EdgeCount())
	fmt.Fprintf(bw, "%d %d\n", g.VertexCount(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d %d\n", e.Src, e.Dest, e.Weight)
	}

	return bw.Flush()
}

// WriteFile writes g to path, creating parent directories as needed.
func WriteFile(path string, g *core.Graph) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, g)
}

// Resolve finds an input graph: path itself when it exists, otherwise path
// joined under datasetDir.
func Resolve(datasetDir, path string) string {
	if _, err := os.Stat(path); err == nil || datasetDir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(datasetDir, path)
}

// OutputPath places a bare file name under <datasetDir>/generated. Paths with
// a directory component are returned unchanged.
func OutputPath(datasetDir, name string) string {
	if datasetDir == "" || filepath.Base(name) != name {
		return name
	}

	return filepath.Join(datasetDir, "generated", name)
}
