package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesUploadTree(t *testing.T) {
	root := t.TempDir()
	_, err := New(filepath.Join(root, "uploads"), 1024)
	require.NoError(t, err)

	for _, dir := range []string{"images", "documents", "media", "profiles", "books"} {
		info, err := os.Stat(filepath.Join(root, "uploads", dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestCategoryDir(t *testing.T) {
	assert.Equal(t, "images", CategoryDir("image/png"))
	assert.Equal(t, "media", CategoryDir("video/mp4"))
	assert.Equal(t, "media", CategoryDir("audio/mpeg"))
	assert.Equal(t, "documents", CategoryDir("application/pdf"))
	assert.Equal(t, "documents", CategoryDir("text/plain"))
}

func TestUniqueNameSanitizes(t *testing.T) {
	name := UniqueName("annual report (final).pdf")
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.True(t, strings.HasPrefix(name, "annual_report__final__"))
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "(")

	// Two calls never collide.
	assert.NotEqual(t, name, UniqueName("annual report (final).pdf"))
}

func TestPublicURL(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "uploads"), 1024)
	require.NoError(t, err)

	path := filepath.Join(s.Root(), "images", "deity.png")
	assert.Equal(t, "/uploads/images/deity.png", s.PublicURL(path))
}

func TestRemoveIsBestEffort(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "uploads"), 1024)
	require.NoError(t, err)

	path := filepath.Join(s.Root(), "images", "gone.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	s.Remove(path)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Missing files and empty paths do not panic or error.
	s.Remove(path)
	s.Remove("")
}

func TestAllowed(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "uploads"), 1024)
	require.NoError(t, err)

	assert.True(t, s.Allowed("image/png"))
	assert.True(t, s.Allowed("application/pdf"))
	assert.False(t, s.Allowed("application/x-msdownload"))
}
