package storefunc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetDelete(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "test.db"))
	defer s.Close()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("keyvars", `{"Alice":"aa"}`)
	v, ok := s.Get("keyvars")
	require.True(t, ok)
	assert.Equal(t, `{"Alice":"aa"}`, v)

	s.Set("keyvars", `{"Alice":"bb"}`)
	v, _ = s.Get("keyvars")
	assert.Equal(t, `{"Alice":"bb"}`, v)

	s.Delete("keyvars")
	_, ok = s.Get("keyvars")
	assert.False(t, ok)
	s.Delete("keyvars") // deleting a missing key is fine
}

func TestKeysWithPrefix(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "test.db"))
	defer s.Close()

	s.Set("saved:beta", "b")
	s.Set("saved:alpha", "a")
	s.Set("keyvars", "k")

	assert.Equal(t, []string{"saved:alpha", "saved:beta"}, s.Keys("saved:"))
	assert.Empty(t, s.Keys("nope:"))

	// The in-memory map serves listings too when there is no database.
	m := OpenInMemory()
	m.Set("saved:x", "1")
	assert.Equal(t, []string{"saved:x"}, m.Keys("saved:"))
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s := Open(path)
	s.Set("saved_policies", `[{"name":"p1"}]`)
	require.NoError(t, s.Close())

	s = Open(path)
	defer s.Close()
	v, ok := s.Get("saved_policies")
	require.True(t, ok)
	assert.Equal(t, `[{"name":"p1"}]`, v)
}

func TestDegradesToMemory(t *testing.T) {
	// A path inside a directory that does not exist cannot be opened; the
	// store must still work, in memory only.
	s := Open(filepath.Join(t.TempDir(), "no", "such", "dir", "test.db"))
	defer s.Close()

	s.Set("keyvars", "blob")
	v, ok := s.Get("keyvars")
	require.True(t, ok)
	assert.Equal(t, "blob", v)

	s.Delete("keyvars")
	_, ok = s.Get("keyvars")
	assert.False(t, ok)
}

func TestOpenInMemory(t *testing.T) {
	s := OpenInMemory()
	s.Set("a", "1")
	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	assert.NoError(t, s.Close())
}
