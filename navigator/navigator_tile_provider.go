package navigator

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
)

// TileProvider produces the raw on-disk bytes of one navmesh tile,
// header included. Implementations back the TileStore with a
// filesystem, a network service or an embedded archive; TileStore logic
// never changes across backends.
type TileProvider interface {
	ReadTileData(mapID, tileX, tileY uint32) ([]byte, error)
}

func tileFileName(mapID, tileX, tileY uint32) string {
	return fmt.Sprintf("%03d%02d%02d.mmtile", mapID, tileX, tileY)
}

// DirTileProvider reads tiles from a per-map directory layout,
// <root>/<mapid><tx><ty>.mmtile.
type DirTileProvider struct {
	root string
}

func NewDirTileProvider(root string) *DirTileProvider {
	return &DirTileProvider{root: root}
}

func (p *DirTileProvider) ReadTileData(mapID, tileX, tileY uint32) ([]byte, error) {
	return os.ReadFile(filepath.Join(p.root, tileFileName(mapID, tileX, tileY)))
}

// HTTPTileProvider fetches tiles from <base>/<mapid><tx><ty>.mmtile.
type HTTPTileProvider struct {
	base   string
	client *http.Client
}

func NewHTTPTileProvider(base string, client *http.Client) *HTTPTileProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTileProvider{base: base, client: client}
}

func (p *HTTPTileProvider) ReadTileData(mapID, tileX, tileY uint32) ([]byte, error) {
	url := p.base + "/" + tileFileName(mapID, tileX, tileY)
	resp, err := p.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// BadgerTileProvider serves tiles out of an embedded badger archive.
type BadgerTileProvider struct {
	db *badger.DB
}

// OpenBadgerTileProvider opens (or creates) a tile archive at dir.
func OpenBadgerTileProvider(dir string) (*BadgerTileProvider, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open tile archive: %w", err)
	}
	return &BadgerTileProvider{db: db}, nil
}

func badgerTileKey(mapID, tileX, tileY uint32) []byte {
	return []byte(fmt.Sprintf("tile/%03d/%02d/%02d", mapID, tileX, tileY))
}

func (p *BadgerTileProvider) ReadTileData(mapID, tileX, tileY uint32) ([]byte, error) {
	var data []byte
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerTileKey(mapID, tileX, tileY))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// WriteTileData stores a tile in the archive; used when populating it
// from another provider.
func (p *BadgerTileProvider) WriteTileData(mapID, tileX, tileY uint32, data []byte) error {
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerTileKey(mapID, tileX, tileY), data)
	})
}

func (p *BadgerTileProvider) Close() error {
	return p.db.Close()
}
