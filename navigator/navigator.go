package navigator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"gonavigate/detour"
)

// defaultIncludeFlags covers ground, water, magma and slime surfaces.
const defaultIncludeFlags = 1 | 2 | 4 | 8

// Navigator computes walkable paths over a streamed navigation mesh.
// It is single-threaded: a Navigator runs one request at a time, and
// two Navigators must not share an engine mesh without external
// serialization. Scale with one Navigator per worker.
type Navigator struct {
	mesh     detour.NavMesh
	query    detour.NavQuery
	filter   *detour.QueryFilter
	tiles    *TileStore
	settings *NavigatorSettings
	smoother *PathSmoother
	log      *zap.Logger
}

// Option customizes Navigator construction.
type Option func(*Navigator)

// WithLogger sets the structured logger; the default discards.
func WithLogger(log *zap.Logger) Option {
	return func(n *Navigator) { n.log = log }
}

// WithFilter replaces the default traversal filter.
func WithFilter(filter *detour.QueryFilter) Option {
	return func(n *Navigator) { n.filter = filter }
}

// NewNavigator wires a Navigator over pre-built engine collaborators.
func NewNavigator(mapID uint32, mesh detour.NavMesh, query detour.NavQuery, provider TileProvider, settings *NavigatorSettings, opts ...Option) *Navigator {
	if settings == nil {
		settings = DefaultSettings()
	}

	filter := detour.NewQueryFilter()
	filter.SetIncludeFlags(defaultIncludeFlags)
	filter.SetExcludeFlags(0)

	n := &Navigator{
		mesh:     mesh,
		query:    query,
		filter:   filter,
		settings: settings,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}

	n.tiles = NewTileStore(mapID, mesh, provider, n.log)
	n.smoother = NewPathSmoother(query, n.filter, settings)
	return n
}

// OpenNavigator reads the map's mesh parameter record from
// <dir>/<mapid>.mmap, constructs the engine mesh and query through the
// builder, and wires a Navigator around them.
func OpenNavigator(dir string, mapID uint32, builder detour.MeshBuilder, provider TileProvider, settings *NavigatorSettings, opts ...Option) (*Navigator, error) {
	if settings == nil {
		settings = DefaultSettings()
	}

	f, err := os.Open(filepath.Join(dir, fmt.Sprintf("%03d.mmap", mapID)))
	if err != nil {
		return nil, fmt.Errorf("navigator: open map params: %w", err)
	}
	defer f.Close()

	params, err := detour.ReadNavMeshParams(f)
	if err != nil {
		return nil, err
	}

	mesh, query, err := builder.Build(params, settings.MaxQueryNodes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceAllocation, err)
	}

	return NewNavigator(mapID, mesh, query, provider, settings, opts...), nil
}

// FindPath computes a dense waypoint path from start to end. Both
// endpoint tiles are made resident first; intermediate tiles along the
// route are never prefetched. A PARTIAL_RESULT corridor is not an
// error: smoothing proceeds toward the closest reachable polygon.
func (n *Navigator) FindPath(start, end detour.Vector) ([]detour.Vector, error) {
	if err := n.tiles.EnsureLoaded(start); err != nil {
		return nil, err
	}
	if err := n.tiles.EnsureLoaded(end); err != nil {
		return nil, err
	}

	startRef, startPos, err := n.nearestPoly(start)
	if err != nil {
		return nil, err
	}
	endRef, endPos, err := n.nearestPoly(end)
	if err != nil {
		return nil, err
	}

	refs, status, err := n.query.FindPath(startRef, endRef, startPos, endPos, n.filter, n.settings.MaxPath)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, &detour.StatusError{Op: detour.OpFindPath, Status: status}
	}
	if status.Partial() {
		n.log.Debug("partial corridor, smoothing toward closest reachable polygon",
			zap.Int("corridor", len(refs)))
	}

	corridor := NewCorridor(n.settings.MaxPath)
	corridor.Set(refs)

	return n.smoother.Smooth(corridor, startPos, endPos)
}

// nearestPoly locates the polygon closest to pos within the fixed
// search extents of 3 horizontal and 5 vertical units.
func (n *Navigator) nearestPoly(pos detour.Vector) (detour.DtPolyRef, detour.Vector, error) {
	extents := detour.FromYZX(3.0, 5.0, 3.0)
	ref, point, err := n.query.FindNearestPoly(pos, extents, n.filter)
	if err != nil {
		return 0, detour.Vector{}, err
	}
	if ref == 0 {
		return 0, detour.Vector{}, ErrNoNearbyPolygon
	}
	return ref, point, nil
}

// Close releases any engine collaborator that exposes a Close method.
// Safe to call once; the Navigator must not be used afterwards.
func (n *Navigator) Close() error {
	var first error
	for _, c := range []any{n.query, n.mesh, n.tiles.provider} {
		if closer, ok := c.(io.Closer); ok {
			if err := closer.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
