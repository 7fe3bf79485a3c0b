package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonavigate/detour"
)

func refs(vals ...int) []detour.DtPolyRef {
	out := make([]detour.DtPolyRef, len(vals))
	for i, v := range vals {
		out[i] = detour.DtPolyRef(v)
	}
	return out
}

func TestCorridorSetClipsToCapacity(t *testing.T) {
	c := NewCorridor(3)
	c.Set(refs(1, 2, 3, 4, 5))
	assert.Equal(t, refs(1, 2, 3), c.Refs())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, detour.DtPolyRef(1), c.First())
	assert.Equal(t, detour.DtPolyRef(3), c.Last())
}

func TestCorridorMerge(t *testing.T) {
	tests := []struct {
		name    string
		maxPath int
		path    []detour.DtPolyRef
		visited []detour.DtPolyRef
		want    []detour.DtPolyRef
	}{
		{
			name:    "deflected along edge",
			maxPath: 8,
			path:    refs(1, 2, 3, 4, 5),
			visited: refs(1, 2, 6),
			want:    refs(6, 2, 3, 4, 5),
		},
		{
			name:    "visited only start polygon",
			maxPath: 8,
			path:    refs(7, 8, 9),
			visited: refs(7),
			want:    refs(7, 8, 9),
		},
		{
			name:    "advanced along corridor",
			maxPath: 8,
			path:    refs(1, 2, 3, 4),
			visited: refs(1, 2, 3),
			want:    refs(3, 4),
		},
		{
			name:    "clip to capacity keeps fresh prefix",
			maxPath: 4,
			path:    refs(1, 2, 3, 4),
			visited: refs(1, 5, 6),
			want:    refs(6, 5, 1, 2),
		},
		{
			name:    "match closest to both tails wins",
			maxPath: 8,
			path:    refs(1, 2, 1, 3),
			visited: refs(1, 4),
			want:    refs(4, 1, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCorridor(tt.maxPath)
			c.Set(tt.path)
			require.NoError(t, c.Merge(tt.visited))
			assert.Equal(t, tt.want, c.Refs())
			assert.LessOrEqual(t, c.Len(), tt.maxPath)
		})
	}
}

func TestCorridorMergeProperties(t *testing.T) {
	// Prefix equals the reversed visited tail from the deepest match;
	// suffix is a capacity-clipped slice of the old tail past the match.
	path := refs(10, 11, 12, 13, 14, 15)
	visited := refs(10, 11, 20, 21)

	c := NewCorridor(5)
	c.Set(path)
	require.NoError(t, c.Merge(visited))

	// Match at path[1]==visited[1]; reversed tail of visited is 21,20,11.
	got := c.Refs()
	assert.Equal(t, refs(21, 20, 11), got[:3])
	// Old tail past the match is 12,13,14,15; clipped to capacity 5.
	assert.Equal(t, refs(12, 13), got[3:])
	assert.Equal(t, 5, c.Len())
}

func TestCorridorMergeNoCommonPolygon(t *testing.T) {
	c := NewCorridor(8)
	c.Set(refs(1, 2, 3))
	err := c.Merge(refs(4, 5))
	require.ErrorIs(t, err, ErrNoCommonPolygon)
	// Corridor is left untouched for post-mortem inspection.
	assert.Equal(t, refs(1, 2, 3), c.Refs())
}

func TestCorridorMergeEmptyVisited(t *testing.T) {
	c := NewCorridor(8)
	c.Set(refs(1, 2))
	require.ErrorIs(t, c.Merge(nil), ErrNoCommonPolygon)
}
