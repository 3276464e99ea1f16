// File: json.go
// Role: JSON codec and file persistence for Graph.
//
// Wire shape (identical for input and output):
//
//	{
//	  "0": {"12": 0.1, "3": 1},
//	  "1": {}
//	}
//
// Determinism:
//   - MarshalJSON emits vertices and targets in CompareIDs order, so "10"
//     follows "9" rather than "1".

package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File permissions for SaveGraph.
const (
	dirPerm  = 0o755
	filePerm = 0o644
	indent   = "  "
)

// MarshalJSON encodes the graph as an ordered object of objects.
// Non-finite weights cannot be represented in JSON and yield an error.
func (g *Graph) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, from := range g.Vertices() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, from); err != nil {
			return nil, err
		}
		targets, err := g.Neighbors(from)
		if err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, to := range targets {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err = writeKey(&buf, to); err != nil {
				return nil, err
			}
			w, _ := g.Weight(from, to)
			raw, err := json.Marshal(w)
			if err != nil {
				return nil, fmt.Errorf("MarshalJSON: weight %s→%s: %w", from, to, err)
			}
			buf.Write(raw)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// writeKey writes a quoted object key followed by a colon.
func writeKey(buf *bytes.Buffer, key string) error {
	raw, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(raw)
	buf.WriteByte(':')

	return nil
}

// UnmarshalJSON replaces the graph contents with the decoded document.
// Vertices with an empty or null adjacency object are kept as isolated
// vertices. Loop policy of the receiver is honored.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var doc map[string]map[string]float64
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if doc == nil {
		return fmt.Errorf("%w: document is null", ErrDecode)
	}

	g.mu.Lock()
	g.adjacency = make(map[string]map[string]float64, len(doc))
	g.edgeCount = 0
	g.mu.Unlock()

	for from, out := range doc {
		if err := g.AddVertex(from); err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		for to, w := range out {
			if err := g.AddEdge(from, to, w); err != nil {
				return fmt.Errorf("%w: %w", ErrDecode, err)
			}
		}
	}

	return nil
}

// LoadGraph reads a graph document from path. Self-loops in the file are
// accepted. Any I/O or parse failure is returned wrapped with the path.
func LoadGraph(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadGraph(%s): %w", path, err)
	}
	g := NewGraph(WithLoops())
	if err = json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("LoadGraph(%s): %w", path, err)
	}

	return g, nil
}

// SaveGraph writes g to path with two-space indentation, creating the
// parent directory if it does not exist.
func SaveGraph(path string, g *Graph) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("SaveGraph(%s): %w", path, err)
		}
	}
	data, err := json.MarshalIndent(g, "", indent)
	if err != nil {
		return fmt.Errorf("SaveGraph(%s): %w", path, err)
	}
	data = append(data, '\n')
	if err = os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("SaveGraph(%s): %w", path, err)
	}

	return nil
}
