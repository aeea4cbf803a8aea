package storage

import (
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smallest valid PNG header; enough for mimetype sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func setupTestStore(t *testing.T) (*ImageStore, *mem.FS) {
	t.Helper()

	fs, err := mem.NewFS()
	require.NoError(t, err)

	store, err := NewImageStore(fs, "world/uploads")
	require.NoError(t, err)
	return store, fs
}

func TestImageStore_SaveAndRead(t *testing.T) {
	store, fs := setupTestStore(t)

	desc, err := store.Save([]byte("fake jpeg bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.NotEmpty(t, desc.Filename)
	assert.Equal(t, "image/jpeg", desc.MimeType)

	data, err := hackpadfs.ReadFile(fs, "world/uploads/"+desc.Filename)
	require.NoError(t, err)
	assert.Equal(t, "fake jpeg bytes", string(data))

	data, err = store.Read(desc.Filename)
	require.NoError(t, err)
	assert.Equal(t, "fake jpeg bytes", string(data))

	other, err := store.Save([]byte("fake jpeg bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.NotEqual(t, desc.Filename, other.Filename, "filenames are unique per save")
}

func TestImageStore_SaveSniffsGenericTypes(t *testing.T) {
	store, _ := setupTestStore(t)

	tests := []struct {
		name     string
		declared string
		expected string
	}{
		{"Empty declared type", "", "image/png"},
		{"Octet stream", "application/octet-stream", "image/png"},
		{"Explicit type wins", "image/gif", "image/gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := store.Save(pngHeader, tt.declared)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, desc.MimeType)
		})
	}
}

func TestImageStore_SaveRejectsEmptyData(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.Save(nil, "image/png")
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestImageStore_ReadMissing(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.Read("doesnotexist")
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestImageStore_Delete(t *testing.T) {
	store, _ := setupTestStore(t)

	desc, err := store.Save([]byte("bytes"), "image/png")
	require.NoError(t, err)

	exists, err := store.Exists(desc.Filename)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(desc.Filename))

	exists, err = store.Exists(desc.Filename)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting twice is fine
	assert.NoError(t, store.Delete(desc.Filename))
}

func TestImageStore_RejectsPathTraversal(t *testing.T) {
	store, _ := setupTestStore(t)

	for _, name := range []string{"", "..", "../database.sqlite", `a\b`, "a/b"} {
		t.Run(name, func(t *testing.T) {
			_, err := store.Read(name)
			assert.ErrorIs(t, err, ErrInvalidFilename)
			assert.ErrorIs(t, store.Delete(name), ErrInvalidFilename)
		})
	}
}

func TestNewOSImageStore(t *testing.T) {
	dir := t.TempDir()

	store, err := NewOSImageStore(dir + "/uploads")
	require.NoError(t, err)

	desc, err := store.Save([]byte("on disk"), "image/webp")
	require.NoError(t, err)

	data, err := store.Read(desc.Filename)
	require.NoError(t, err)
	assert.Equal(t, "on disk", string(data))
}
