// Package core provides the directed, weighted adjacency graph that every
// other hubwalk package builds, verifies, scores and persists.
//
// The Graph G = (V,E) mirrors the on-disk shape used by the random-walk
// evaluation harness: a mapping from vertex ID to a mapping from target ID to
// a positive real weight. Weights are unnormalised sampling weights; the
// walker normalises them per vertex.
//
//   - Directed edges only; AddEdge(u,v,w) never creates v→u.
//   - At most one edge per ordered pair; re-adding (u,v) overwrites its weight.
//   - Self-loops only when the graph is created WithLoops().
//   - Deterministic enumeration: Vertices(), Neighbors() and Edges() use the
//     ID order defined by CompareIDs (numeric IDs first, ascending).
//   - A single sync.RWMutex guards the vertex catalog and adjacency.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) error  // O(1), auto-adds endpoints
//	RemoveEdge(from, to string) error          // O(1)
//	HasEdge(from, to string) bool              // O(1)
//	Weight(from, to string) (float64, bool)    // O(1)
//
//	// Query
//	Neighbors(id string) ([]string, error)     // O(d·log d)
//	OutDegree(id string) int                   // O(1)
//	MaxOutDegree() (string, int)               // O(V)
//	Vertices() []string                        // O(V·log V)
//	Edges() []Edge                             // O(E·log E)
//	VertexCount(), EdgeCount() int             // O(1)
//
//	// Cloning & persistence
//	Clone() *Graph                             // O(V+E)
//	MarshalJSON / UnmarshalJSON                // ordered object-of-objects
//	LoadGraph(path) / SaveGraph(path, g)       // two-space indented files
//
// Validation of structural limits (edge budgets, weight range, node set) is
// deliberately not enforced here: a loaded graph may violate them, and the
// constraints package reports that.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
//	ErrLoopNotAllowed – self-loop when loops disabled
//	ErrBadWeight      – NaN weight
//	ErrDecode         – malformed graph document
package core
