package detour

import (
	"fmt"
)

// QueryFilter selects which polygons a query may traverse, by area flag.
type QueryFilter struct {
	includeFlags uint16
	excludeFlags uint16
}

// NewQueryFilter returns a filter that includes everything.
func NewQueryFilter() *QueryFilter {
	return &QueryFilter{includeFlags: 0xffff}
}

func (f *QueryFilter) SetIncludeFlags(flags uint16) { f.includeFlags = flags }
func (f *QueryFilter) IncludeFlags() uint16         { return f.includeFlags }
func (f *QueryFilter) SetExcludeFlags(flags uint16) { f.excludeFlags = flags }
func (f *QueryFilter) ExcludeFlags() uint16         { return f.excludeFlags }

// NavMesh is the mutable mesh state held by the query engine. Tiles are
// registered through it; the mesh owns the tile data afterwards.
// Implementations are not safe for concurrent use.
type NavMesh interface {
	// AddTile registers a raw tile payload with the mesh.
	AddTile(data []byte) (DtTileRef, error)
}

// NavQuery is the set of geometric primitives the navigation layer is
// built on. The engine behind it is an external collaborator; every
// method is a deterministic, blocking call against the mesh the query
// was created over.
type NavQuery interface {
	// FindNearestPoly locates the polygon nearest to center within the
	// search extents, returning its reference and the closest point on
	// it. A zero reference means nothing was found.
	FindNearestPoly(center, extents Vector, filter *QueryFilter) (DtPolyRef, Vector, error)

	// FindPath computes a polygon corridor between two polygons, at most
	// maxPath entries long. The returned status may carry
	// DT_PARTIAL_RESULT when only the closest reachable polygon could be
	// reached.
	FindPath(startRef, endRef DtPolyRef, startPos, endPos Vector, filter *QueryFilter, maxPath int) ([]DtPolyRef, DtStatus, error)

	// FindStraightPath projects a straight-line path over the corridor,
	// returning at most maxPoints annotated vertices.
	FindStraightPath(startPos, endPos Vector, path []DtPolyRef, maxPoints, options int) ([]StraightPathPoint, error)

	// MoveAlongSurface walks from startPos toward endPos constrained to
	// the mesh surface, visiting at most maxVisited polygons. The visited
	// trace always contains at least the starting polygon and is ordered
	// oldest to most recent.
	MoveAlongSurface(startRef DtPolyRef, startPos, endPos Vector, filter *QueryFilter, maxVisited int) (Vector, []DtPolyRef, error)

	// ClosestPointOnPolyBoundary returns the point on the polygon's
	// boundary closest to pos.
	ClosestPointOnPolyBoundary(ref DtPolyRef, pos Vector) (Vector, error)

	// GetPolyHeight returns the surface height at a horizontal position
	// on the polygon.
	GetPolyHeight(ref DtPolyRef, pos Vector) (float32, error)
}

// MeshBuilder constructs an engine mesh and its query object from a
// parameter record. Implementations own handle allocation and report
// allocation failures through the returned error.
type MeshBuilder interface {
	Build(params *DtNavMeshParams, maxQueryNodes int) (NavMesh, NavQuery, error)
}

// Op names the engine primitive a StatusError originated from.
type Op string

const (
	OpAddTile                    Op = "addTile"
	OpFindNearestPoly            Op = "findNearestPoly"
	OpFindPath                   Op = "findPath"
	OpFindStraightPath           Op = "findStraightPath"
	OpMoveAlongSurface           Op = "moveAlongSurface"
	OpClosestPointOnPolyBoundary Op = "closestPointOnPolyBoundary"
	OpGetPolyHeight              Op = "getPolyHeight"
)

// StatusError reports a failed status from a specific engine primitive,
// carrying the raw status word.
type StatusError struct {
	Op     Op
	Status DtStatus
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("detour: %s failed with status 0x%08x", e.Op, uint32(e.Status))
}
