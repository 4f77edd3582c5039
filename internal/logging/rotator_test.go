package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatingFile_ShiftsBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := OpenRotatingFile(dir, "test.log", 1, 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	// tiny limit so every write past the first rotates
	r.maxSize = 8

	for _, line := range []string{"one\n", "two-two\n", "three\n", "four\n"} {
		_, err := r.Write([]byte(line))
		require.NoError(t, err)
	}

	current, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "four\n", string(current))

	b1, err := os.ReadFile(filepath.Join(dir, "test.log.1"))
	require.NoError(t, err)
	assert.Equal(t, "three\n", string(b1))

	b2, err := os.ReadFile(filepath.Join(dir, "test.log.2"))
	require.NoError(t, err)
	assert.Equal(t, "two-two\n", string(b2))

	_, err = os.Stat(filepath.Join(dir, "test.log.3"))
	assert.True(t, os.IsNotExist(err), "only maxBackups files are kept")
}

func TestRotatingFile_NoBackupsTruncates(t *testing.T) {
	dir := t.TempDir()
	r, err := OpenRotatingFile(dir, "test.log", 1, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	r.maxSize = 4

	_, _ = r.Write([]byte("aaaa"))
	_, _ = r.Write([]byte("bb"))

	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "bb", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", ParseLevel("DEBUG").String())
	assert.Equal(t, "warn", ParseLevel("warning").String())
	assert.Equal(t, "info", ParseLevel("").String())
	assert.Equal(t, "info", ParseLevel("nonsense").String())
}

func TestNewWithFile_WritesJSON(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()

	logger, cleanup, err := NewWithFile(cfg, FileConfig{Enabled: true, Dir: dir, MaxBackups: 1})
	require.NoError(t, err)
	logger.Info().Str("node_id", "a").Msg("split")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "splitpane.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"node_id":"a"`), string(data))
}
