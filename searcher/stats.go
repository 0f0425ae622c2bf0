package searcher

// Stats counts the work done by a depth-limited search.
type Stats struct {
	Nodes       int // States visited, root included
	Evaluations int // Utility calls on leaves
}
