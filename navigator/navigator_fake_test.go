package navigator

import (
	"gonavigate/common/rw"
	"gonavigate/detour"
)

// fakeMesh and fakeQuery are scripted engine stands-ins: unset hooks
// fall back to permissive defaults so each test wires only what it
// cares about.

type fakeMesh struct {
	addTile func(data []byte) (detour.DtTileRef, error)
}

func (m *fakeMesh) AddTile(data []byte) (detour.DtTileRef, error) {
	if m.addTile == nil {
		return 1, nil
	}
	return m.addTile(data)
}

type fakeQuery struct {
	findNearestPoly            func(center, extents detour.Vector, filter *detour.QueryFilter) (detour.DtPolyRef, detour.Vector, error)
	findPath                   func(startRef, endRef detour.DtPolyRef, startPos, endPos detour.Vector, filter *detour.QueryFilter, maxPath int) ([]detour.DtPolyRef, detour.DtStatus, error)
	findStraightPath           func(startPos, endPos detour.Vector, path []detour.DtPolyRef, maxPoints, options int) ([]detour.StraightPathPoint, error)
	moveAlongSurface           func(startRef detour.DtPolyRef, startPos, endPos detour.Vector, filter *detour.QueryFilter, maxVisited int) (detour.Vector, []detour.DtPolyRef, error)
	closestPointOnPolyBoundary func(ref detour.DtPolyRef, pos detour.Vector) (detour.Vector, error)
	getPolyHeight              func(ref detour.DtPolyRef, pos detour.Vector) (float32, error)
}

func (q *fakeQuery) FindNearestPoly(center, extents detour.Vector, filter *detour.QueryFilter) (detour.DtPolyRef, detour.Vector, error) {
	if q.findNearestPoly == nil {
		return 1, center, nil
	}
	return q.findNearestPoly(center, extents, filter)
}

func (q *fakeQuery) FindPath(startRef, endRef detour.DtPolyRef, startPos, endPos detour.Vector, filter *detour.QueryFilter, maxPath int) ([]detour.DtPolyRef, detour.DtStatus, error) {
	if q.findPath == nil {
		return []detour.DtPolyRef{startRef}, detour.DT_SUCCESS, nil
	}
	return q.findPath(startRef, endRef, startPos, endPos, filter, maxPath)
}

func (q *fakeQuery) FindStraightPath(startPos, endPos detour.Vector, path []detour.DtPolyRef, maxPoints, options int) ([]detour.StraightPathPoint, error) {
	if q.findStraightPath == nil {
		return []detour.StraightPathPoint{
			{Point: startPos, Flags: detour.DT_STRAIGHTPATH_START, Poly: path[0]},
			{Point: endPos, Flags: detour.DT_STRAIGHTPATH_END},
		}, nil
	}
	return q.findStraightPath(startPos, endPos, path, maxPoints, options)
}

func (q *fakeQuery) MoveAlongSurface(startRef detour.DtPolyRef, startPos, endPos detour.Vector, filter *detour.QueryFilter, maxVisited int) (detour.Vector, []detour.DtPolyRef, error) {
	if q.moveAlongSurface == nil {
		return endPos, []detour.DtPolyRef{startRef}, nil
	}
	return q.moveAlongSurface(startRef, startPos, endPos, filter, maxVisited)
}

func (q *fakeQuery) ClosestPointOnPolyBoundary(ref detour.DtPolyRef, pos detour.Vector) (detour.Vector, error) {
	if q.closestPointOnPolyBoundary == nil {
		return pos, nil
	}
	return q.closestPointOnPolyBoundary(ref, pos)
}

func (q *fakeQuery) GetPolyHeight(ref detour.DtPolyRef, pos detour.Vector) (float32, error) {
	if q.getPolyHeight == nil {
		return 0.0, nil
	}
	return q.getPolyHeight(ref, pos)
}

type fakeProvider struct {
	read func(mapID, tileX, tileY uint32) ([]byte, error)
}

func (p *fakeProvider) ReadTileData(mapID, tileX, tileY uint32) ([]byte, error) {
	return p.read(mapID, tileX, tileY)
}

// makeTileData wraps a payload in a valid mmtile header.
func makeTileData(payload []byte) []byte {
	w := rw.NewLittleEndianWriter()
	w.WriteUInt32(tileMagic)
	w.WriteUInt32(7) // dtVersion
	w.WriteUInt32(15)
	w.WriteUInt32(uint32(len(payload)))
	w.WriteUInt32(0)
	w.WriteBytes(payload)
	return w.Bytes()
}
