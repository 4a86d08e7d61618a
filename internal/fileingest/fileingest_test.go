package fileingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverResumeFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"a.txt", "b.MD", "nested/c.txt", "skip.pdf", "skip.docx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("resume"), 0o644))
	}

	files, err := DiscoverResumeFiles(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, files, 3)

	names := make(map[string]bool, len(files))
	for _, f := range files {
		names[f.Name] = true
		assert.Equal(t, int64(6), f.Size)
		assert.False(t, f.ModTime.IsZero())
	}
	assert.True(t, names["a.txt"])
	assert.True(t, names["b.MD"])
	assert.True(t, names["c.txt"])
}

func TestDiscoverResumeFilesEmptyDir(t *testing.T) {
	files, err := DiscoverResumeFiles(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscoverResumeFilesMissingDir(t *testing.T) {
	_, err := DiscoverResumeFiles(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestExtractFileMeta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	meta, err := ExtractFileMeta(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", meta.Name)
	assert.Equal(t, int64(5), meta.Size)
}
