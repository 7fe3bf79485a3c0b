package navigator

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"gonavigate/common/rw"
	"gonavigate/detour"
)

// GridSize is the world-unit span of one navmesh tile.
const GridSize = 533.3333

// mmtile header: magic, dtVersion, mmapVersion, payload size, flags.
const (
	tileHeaderSize = 20
	tileMagic      = 0x4d4d4150 // 'MMAP'
)

// PackTileID packs a tile coordinate into the 32-bit membership key.
// Valid only for tileX, tileY < 65536.
func PackTileID(tileX, tileY uint32) uint32 {
	return tileX<<16 | tileY
}

// UnpackTileID is the inverse of PackTileID.
func UnpackTileID(id uint32) (tileX, tileY uint32) {
	return id >> 16, id & 0xffff
}

// WorldToTile maps a world position to its tile coordinate. The mapping
// is monotonically non-increasing in each world axis within the valid
// map span.
func WorldToTile(pos detour.Vector) (tileX, tileY uint32) {
	tileX = uint32(math.Floor(float64(32 - pos.X/GridSize)))
	tileY = uint32(math.Floor(float64(32 - pos.Y/GridSize)))
	return tileX, tileY
}

// TileStore tracks which mesh tiles are resident and loads missing ones
// on demand through a TileProvider, registering them with the engine
// mesh. The resident set grows for the lifetime of the store; tiles are
// never evicted, which trades unbounded memory on large maps for never
// having to re-register.
type TileStore struct {
	mapID    uint32
	mesh     detour.NavMesh
	provider TileProvider
	resident map[uint32]struct{}
	log      *zap.Logger
}

func NewTileStore(mapID uint32, mesh detour.NavMesh, provider TileProvider, log *zap.Logger) *TileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &TileStore{
		mapID:    mapID,
		mesh:     mesh,
		provider: provider,
		resident: make(map[uint32]struct{}, 8),
		log:      log,
	}
}

// HasTile reports whether the tile at the coordinate is resident.
func (s *TileStore) HasTile(tileX, tileY uint32) bool {
	_, ok := s.resident[PackTileID(tileX, tileY)]
	return ok
}

// EnsureLoaded makes the tile under pos resident, loading and
// registering it if needed. Loading is idempotent; an already resident
// tile is skipped without touching the provider or the engine.
func (s *TileStore) EnsureLoaded(pos detour.Vector) error {
	tileX, tileY := WorldToTile(pos)
	if s.HasTile(tileX, tileY) {
		s.log.Debug("skipping resident tile",
			zap.Uint32("tx", tileX), zap.Uint32("ty", tileY))
		return nil
	}
	return s.addTile(tileX, tileY)
}

func (s *TileStore) addTile(tileX, tileY uint32) error {
	s.log.Info("loading tile",
		zap.Uint32("map", s.mapID), zap.Uint32("tx", tileX), zap.Uint32("ty", tileY))

	data, err := s.provider.ReadTileData(s.mapID, tileX, tileY)
	if err != nil {
		return &TileLoadError{MapID: s.mapID, TX: tileX, TY: tileY, Err: err}
	}

	payload, err := parseTileHeader(data)
	if err != nil {
		return &TileRejectedError{MapID: s.mapID, TX: tileX, TY: tileY, Err: err}
	}

	if _, err := s.mesh.AddTile(payload); err != nil {
		return &TileRejectedError{MapID: s.mapID, TX: tileX, TY: tileY, Err: err}
	}

	s.resident[PackTileID(tileX, tileY)] = struct{}{}
	return nil
}

// parseTileHeader validates the fixed-size tile file header and returns
// the engine payload that follows it.
func parseTileHeader(data []byte) ([]byte, error) {
	if len(data) < tileHeaderSize {
		return nil, fmt.Errorf("tile data truncated: %d bytes", len(data))
	}

	rd := rw.NewLittleEndianReader(data[:tileHeaderSize])
	magic := rd.ReadUInt32()
	_ = rd.ReadUInt32() // dtVersion, validated by the engine
	_ = rd.ReadUInt32() // mmapVersion
	size := rd.ReadUInt32()
	_ = rd.ReadUInt32() // flags
	if err := rd.Err(); err != nil {
		return nil, err
	}

	if magic != tileMagic {
		return nil, fmt.Errorf("bad tile magic 0x%08x", magic)
	}
	payload := data[tileHeaderSize:]
	if int(size) != len(payload) {
		return nil, fmt.Errorf("tile payload size mismatch: header %d, got %d", size, len(payload))
	}
	return payload, nil
}
