package navigator

import (
	"errors"
	"fmt"
)

var (
	// ErrNoNearbyPolygon reports that no polygon lies within the search
	// extents around a requested endpoint.
	ErrNoNearbyPolygon = errors.New("navigator: no polygon within search extents")

	// ErrNoCommonPolygon reports a corridor merge whose visited trace
	// shares no polygon with the planned corridor. Surface-constrained
	// movement is required to report at least the polygon the step
	// started on, so this is a broken engine contract, not a recoverable
	// condition.
	ErrNoCommonPolygon = errors.New("navigator: corridor and visited trace share no polygon")

	// ErrResourceAllocation reports a failed engine handle construction.
	ErrResourceAllocation = errors.New("navigator: engine resource allocation failed")
)

// TileLoadError reports that the tile source could not produce bytes for
// a tile.
type TileLoadError struct {
	MapID uint32
	TX    uint32
	TY    uint32
	Err   error
}

func (e *TileLoadError) Error() string {
	return fmt.Sprintf("navigator: load tile (%d,%d) of map %d: %v", e.TX, e.TY, e.MapID, e.Err)
}

func (e *TileLoadError) Unwrap() error { return e.Err }

// TileRejectedError reports that a loaded tile failed header validation
// or was refused by the query engine.
type TileRejectedError struct {
	MapID uint32
	TX    uint32
	TY    uint32
	Err   error
}

func (e *TileRejectedError) Error() string {
	return fmt.Sprintf("navigator: tile (%d,%d) of map %d rejected: %v", e.TX, e.TY, e.MapID, e.Err)
}

func (e *TileRejectedError) Unwrap() error { return e.Err }
