package detour

import (
	"fmt"
	"io"

	"gonavigate/common/rw"
)

// DtNavMeshParams describes the tiled mesh layout the engine is
// initialized with. On disk it is a little-endian record of
// origin (3xfloat32), tile width/height (float32) and the tile and
// polygon limits (int32).
type DtNavMeshParams struct {
	Orig       [3]float32
	TileWidth  float32
	TileHeight float32
	MaxTiles   int32
	MaxPolys   int32
}

const navMeshParamsSize = 3*4 + 2*4 + 2*4

// ReadNavMeshParams decodes a mesh parameter record from r.
func ReadNavMeshParams(r io.Reader) (*DtNavMeshParams, error) {
	data := make([]byte, navMeshParamsSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("detour: read nav mesh params: %w", err)
	}

	rd := rw.NewLittleEndianReader(data)
	p := &DtNavMeshParams{}
	rd.ReadFloat32s(p.Orig[:])
	p.TileWidth = rd.ReadFloat32()
	p.TileHeight = rd.ReadFloat32()
	p.MaxTiles = rd.ReadInt32()
	p.MaxPolys = rd.ReadInt32()
	if err := rd.Err(); err != nil {
		return nil, fmt.Errorf("detour: decode nav mesh params: %w", err)
	}
	return p, nil
}
