package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mimarlik-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueObjectPath(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		folder     string
		wantPrefix string
		wantExt    string
	}{
		{"plain", "villa.jpg", "photos", "photos/villa_", ".jpg"},
		{"spaces", "my villa.PNG", "photos", "photos/my-villa_", ".png"},
		{"nested name", "../../etc/passwd.jpg", "photos", "photos/passwd_", ".jpg"},
		{"no folder", "a.webp", "", "a_", ".webp"},
		{"only symbols", "$$$.gif", "/photos/", "photos/file_", ".gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uniqueObjectPath(tt.file, tt.folder)
			assert.True(t, strings.HasPrefix(got, tt.wantPrefix), got)
			assert.True(t, strings.HasSuffix(got, tt.wantExt), got)
		})
	}

	assert.NotEqual(t, uniqueObjectPath("a.jpg", "x"), uniqueObjectPath("a.jpg", "x"))
}

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewLocalStorage(root, "http://cdn.test/uploads/", testutil.TestLogger())
	require.NoError(t, err)

	rel, err := s.StoreFile(ctx, []byte("jpeg-bytes"), "house.jpg", "photos")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "photos/house_"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	assert.Equal(t, "http://cdn.test/uploads/"+rel, s.URLFor(rel))

	require.NoError(t, s.DeleteFile(ctx, rel))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	// A second delete is a no-op.
	require.NoError(t, s.DeleteFile(ctx, rel))
}

func TestLocalStorageStaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(filepath.Dir(root), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))
	t.Cleanup(func() { _ = os.Remove(outside) })

	s, err := NewLocalStorage(root, "", testutil.TestLogger())
	require.NoError(t, err)

	require.NoError(t, s.DeleteFile(context.Background(), "../outside.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err, "file outside the uploads root must survive")
}

func TestMinIOObjectKey(t *testing.T) {
	s := &MinIOStorage{bucket: "mimarlik", publicURL: "https://cdn.example.com/mimarlik"}

	tests := []struct {
		in   string
		want string
	}{
		{"photos/a_1234.jpg", "photos/a_1234.jpg"},
		{"https://cdn.example.com/mimarlik/photos/a_1234.jpg", "photos/a_1234.jpg"},
		{"https://cdn.example.com/mimarlik/photos/a_1234.jpg?X-Amz-Signature=abc", "photos/a_1234.jpg"},
		{"/mimarlik/photos/a.jpg", "photos/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, s.objectKey(tt.in))
		})
	}

	assert.Equal(t, "https://cdn.example.com/mimarlik/photos/a.jpg", s.URLFor("photos/a.jpg"))
	assert.Empty(t, s.URLFor(""))
}
