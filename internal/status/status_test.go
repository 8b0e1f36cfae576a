package status

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_SetAndClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "status")
	r := NewReporter(path)

	r.Set("Fetching captions...")

	data, err := os.ReadFile(path) // #nosec G304
	require.NoError(t, err)
	assert.Equal(t, "Fetching captions...", string(data))

	r.Set("Transcribing audio...")
	data, err = os.ReadFile(path) // #nosec G304
	require.NoError(t, err)
	assert.Equal(t, "Transcribing audio...", string(data))

	r.Clear()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReporter_DisabledPath(t *testing.T) {
	r := NewReporter("")

	// Must not panic or create anything.
	r.Set("ignored")
	r.Clear()
}

func TestReporter_ClearMissingFile(t *testing.T) {
	r := NewReporter(filepath.Join(t.TempDir(), "never-written"))

	// Clearing a file that was never written is not an error.
	r.Clear()
}
