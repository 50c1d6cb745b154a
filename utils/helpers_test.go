package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTextFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "spheremap")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	var path = filepath.Join(dir, "shader.vert")
	require.NoError(t, os.WriteFile(path, []byte("#version 150 core\nvoid main() {}"), 0o644))

	body, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#version 150 core\nvoid main() {}\n", body)
}

func TestReadTextFileMissing(t *testing.T) {
	_, err := ReadTextFile(filepath.Join(os.TempDir(), "spheremap-does-not-exist.frag"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFrameCounter(t *testing.T) {
	var start = time.Unix(1000, 0)
	var counter = NewFrameCounter(time.Second, start)

	for i := 1; i < 60; i++ {
		assert.False(t, counter.Tick(start.Add(time.Duration(i)*time.Second/60)))
	}
	assert.True(t, counter.Tick(start.Add(time.Second)))
	assert.InDelta(t, 60.0, counter.FPS(), 1e-9)
	assert.Equal(t, uint64(60), counter.Total())

	// The window restarts after each sample.
	assert.False(t, counter.Tick(start.Add(time.Second+time.Millisecond)))
	assert.True(t, counter.Tick(start.Add(3*time.Second)))
	assert.InDelta(t, 1.0, counter.FPS(), 1e-9)
}
