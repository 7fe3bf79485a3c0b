package navigator

import (
	"gonavigate/detour"
)

// Corridor is the agent's planned route: a bounded sequence of
// graph-adjacent polygon references, front at the agent's current
// polygon, back at the polygon nearest the goal. Adjacency is maintained
// by the query engine and never verified locally.
type Corridor struct {
	path    []detour.DtPolyRef
	maxPath int
}

func NewCorridor(maxPath int) *Corridor {
	return &Corridor{
		path:    make([]detour.DtPolyRef, 0, maxPath),
		maxPath: maxPath,
	}
}

// Set replaces the corridor contents, clipping to capacity.
func (c *Corridor) Set(refs []detour.DtPolyRef) {
	n := min(len(refs), c.maxPath)
	c.path = c.path[:n]
	copy(c.path, refs[:n])
}

func (c *Corridor) Len() int      { return len(c.path) }
func (c *Corridor) IsEmpty() bool { return len(c.path) == 0 }

// First returns the agent's current polygon.
func (c *Corridor) First() detour.DtPolyRef { return c.path[0] }

// Last returns the polygon nearest the goal.
func (c *Corridor) Last() detour.DtPolyRef { return c.path[len(c.path)-1] }

// Refs exposes the live corridor for engine queries. Callers must not
// retain it across a mutation.
func (c *Corridor) Refs() []detour.DtPolyRef { return c.path }

// findCommon locates the deepest common reference between the corridor
// and a visited trace, preferring the match closest to the end of both
// sequences.
func findCommon(path, visited []detour.DtPolyRef) (furthestPath, furthestVisited int, ok bool) {
	for i := len(path) - 1; i >= 0; i-- {
		for j := len(visited) - 1; j >= 0; j-- {
			if path[i] == visited[j] {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Merge reconciles the corridor with the polygon trace of the last
// surface-constrained move. The trailing visited entries become the new
// corridor front in reverse order, followed by the old corridor tail
// past the match, clipped so the result never exceeds capacity; the
// freshly visited prefix always wins over stale tail data.
//
// Returns ErrNoCommonPolygon if the trace shares no reference with the
// corridor; movement is contractually required to report at least the
// polygon the step started on.
func (c *Corridor) Merge(visited []detour.DtPolyRef) error {
	furthestPath, furthestVisited, ok := findCommon(c.path, visited)
	if !ok {
		return ErrNoCommonPolygon
	}

	// Adjust beginning of the buffer to include the visited.
	req := min(len(visited)-furthestVisited, c.maxPath)
	orig := min(furthestPath+1, len(c.path))
	size := max(0, len(c.path)-orig)
	if req+size > c.maxPath {
		size = max(0, c.maxPath-req)
	}

	c.path = c.path[:req+size]
	if size > 0 {
		copy(c.path[req:req+size], c.path[orig:orig+size])
	}

	// Store visited, most recent first.
	for i := 0; i < req; i++ {
		c.path[i] = visited[(len(visited)-1)-i]
	}

	return nil
}
