package configfunc

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, Default(), cfg)
}

func TestLoadMalformedReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{not yaml"), 0644))
	assert.Equal(t, Default(), Load(path))
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render_debounce_ms: 300\nlanguage: de\n"), 0644))

	cfg := Load(path)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, 300*time.Millisecond, cfg.RenderDebounce())
	// Unset fields keep their defaults.
	assert.Equal(t, Default().CheckpointDebounceMs, cfg.CheckpointDebounceMs)
	assert.Equal(t, Default().MaxCheckpoints, cfg.MaxCheckpoints)
	assert.Equal(t, Default().DBPath, cfg.DBPath)
}
