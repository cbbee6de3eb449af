package shorts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trektribe/backend/internal/models"
)

func readShorts(t *testing.T, path string) []models.Short {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out []models.Short
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestStore_AddCreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blogs.json")
	s := NewStore(path)

	require.NoError(t, s.Add(models.Short{Title: "Valley trail", Location: "Manali"}))

	got := readShorts(t, path)
	require.Len(t, got, 1)
	assert.Equal(t, "Valley trail", got[0].Title)
}

func TestStore_AddAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blogs.json")
	s := NewStore(path)

	require.NoError(t, s.Add(models.Short{Title: "one"}))
	require.NoError(t, s.Add(models.Short{Title: "two"}))

	got := readShorts(t, path)
	require.Len(t, got, 2)
	assert.Equal(t, "two", got[1].Title)
}

func TestStore_CorruptFileIsReset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blogs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewStore(path)
	require.NoError(t, s.Add(models.Short{Title: "fresh"}))

	got := readShorts(t, path)
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].Title)
}
