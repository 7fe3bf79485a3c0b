package detour

// DtPolyRef is an opaque handle to a polygon in the navigation mesh graph.
// References support equality only; no ordering or arithmetic.
type DtPolyRef uint64

// DtTileRef is an opaque handle to a tile registered with the navigation mesh.
type DtTileRef uint64

// DtStatus is the raw status word returned by the query engine primitives.
type DtStatus uint32

const (
	// High level status.
	DT_FAILURE     DtStatus = 1 << 31 // Operation failed.
	DT_SUCCESS     DtStatus = 1 << 30 // Operation succeed.
	DT_IN_PROGRESS DtStatus = 1 << 29 // Operation still in progress.

	// Detail information for status.
	DT_STATUS_DETAIL_MASK DtStatus = 0x0ffffff
	DT_WRONG_MAGIC        DtStatus = 1 << 0 // Input data is not recognized.
	DT_WRONG_VERSION      DtStatus = 1 << 1 // Input data is in wrong version.
	DT_OUT_OF_MEMORY      DtStatus = 1 << 2 // Operation ran out of memory.
	DT_INVALID_PARAM      DtStatus = 1 << 3 // An input parameter was invalid.
	DT_BUFFER_TOO_SMALL   DtStatus = 1 << 4 // Result buffer for the query was too small to store all results.
	DT_OUT_OF_NODES       DtStatus = 1 << 5 // Query ran out of nodes during search.
	DT_PARTIAL_RESULT     DtStatus = 1 << 6 // Query did not reach the end location, returning best guess.
	DT_ALREADY_OCCUPIED   DtStatus = 1 << 7 // A tile has already been assigned to the given x,y coordinate.
)

// Succeed returns true if status is success.
func (status DtStatus) Succeed() bool {
	return (status & DT_SUCCESS) != 0
}

// Failed returns true if status is failure.
func (status DtStatus) Failed() bool {
	return (status & DT_FAILURE) != 0
}

// InProgress returns true if status is in progress.
func (status DtStatus) InProgress() bool {
	return (status & DT_IN_PROGRESS) != 0
}

// Detail returns true if the specific detail bit is set.
func (status DtStatus) Detail(detail DtStatus) bool {
	return (status & detail) != 0
}

// Partial returns true for a query that reached the closest feasible
// point rather than the requested target.
func (status DtStatus) Partial() bool {
	return status.Detail(DT_PARTIAL_RESULT)
}

// DtStraightPathFlags annotate vertices returned by FindStraightPath.
type DtStraightPathFlags uint8

const (
	DT_STRAIGHTPATH_START              DtStraightPathFlags = 0x01 // The vertex is the start position in the path.
	DT_STRAIGHTPATH_END                DtStraightPathFlags = 0x02 // The vertex is the end position in the path.
	DT_STRAIGHTPATH_OFFMESH_CONNECTION DtStraightPathFlags = 0x04 // The vertex is the start of an off-mesh connection.
)

// Has returns true if the flag bit is set.
func (f DtStraightPathFlags) Has(flag DtStraightPathFlags) bool {
	return (f & flag) != 0
}

// StraightPathPoint is one vertex of a straight-line path projection.
type StraightPathPoint struct {
	Point Vector
	Flags DtStraightPathFlags
	Poly  DtPolyRef
}
