package navigator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 64, s.MaxPath)
	assert.Equal(t, 128, s.MaxSmoothPath)
	assert.Equal(t, 3, s.MaxSteerPoints)
	assert.Equal(t, 16, s.MaxMoveVisits)
	assert.Equal(t, 2048, s.MaxQueryNodes)
	assert.Equal(t, float32(0.3), s.SteerTargetRadius)
	assert.Equal(t, float32(1000.0), s.SteerTargetHeight)
	assert.Equal(t, float32(2.0), s.SmoothStepSize)
}

func TestLoadSettingsPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navigator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_path: 16\nsmooth_step_size: 1.5\n"), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 16, s.MaxPath)
	assert.Equal(t, float32(1.5), s.SmoothStepSize)
	// Unset fields fall back to defaults.
	assert.Equal(t, 128, s.MaxSmoothPath)
	assert.Equal(t, float32(0.3), s.SteerTargetRadius)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSettingsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navigator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_path: [oops"), 0o644))

	_, err := LoadSettings(path)
	require.Error(t, err)
}
