package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOutputFileName(t *testing.T) {
	clock := FixedClock{T: time.Date(2025, 2, 3, 11, 0, 0, 0, time.UTC)}

	t.Run("expands voyage and timestamp", func(t *testing.T) {
		name := GenerateOutputFileName("voyage_{voyage}_{timestamp}.json", "V-042", clock)
		assert.Equal(t, "voyage_V-042_20250203_110000.json", name)
	})

	t.Run("sanitizes the voyage number", func(t *testing.T) {
		name := GenerateOutputFileName("voyage_{voyage}.json", "202502 VNGDA/ESCAD", clock)
		assert.Equal(t, "voyage_202502-VNGDAESCAD.json", name)
	})

	t.Run("empty voyage number becomes unknown", func(t *testing.T) {
		name := GenerateOutputFileName("voyage_{voyage}.json", "", clock)
		assert.Equal(t, "voyage_unknown.json", name)
	})

	t.Run("uuid placeholder produces a valid uuid", func(t *testing.T) {
		name := GenerateOutputFileName("{uuid}.json", "", clock)
		_, err := uuid.Parse(strings.TrimSuffix(name, ".json"))
		assert.NoError(t, err)
	})

	t.Run("deterministic with a fixed clock", func(t *testing.T) {
		a := GenerateOutputFileName("v_{timestamp}.json", "", clock)
		b := GenerateOutputFileName("v_{timestamp}.json", "", clock)
		assert.Equal(t, a, b)
	})
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	nested := filepath.Join(base, "a", "b", "c")
	require.NoError(t, EnsureDirectories(nested, filepath.Join(base, "d"), ""))
	assert.DirExists(t, nested)
	assert.DirExists(t, filepath.Join(base, "d"))
}

func TestFileExists(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "f.txt")
	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))
}

func TestArchiveFile(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "voyage.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"vessel":"Alpha"}`), 0644))

	archiveDir := filepath.Join(base, "archive")
	dst, err := ArchiveFile(src, archiveDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(archiveDir, "voyage.json"), dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, `{"vessel":"Alpha"}`, string(data))

	// The original stays in place.
	assert.FileExists(t, src)
}
