package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage(root, "/uploads")
	ctx := context.Background()

	ref, err := s.Save(ctx, fileHeader(t, "cover.jpg", "jpeg-bytes"), "packages")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/packages/"))
	assert.True(t, strings.HasSuffix(ref, "_cover.jpg"))

	onDisk := filepath.Join(root, "packages", filepath.Base(ref))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	require.NoError(t, s.Delete(ctx, ref))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Delete(ctx, "https://elsewhere/x.png"))
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage(&multipart.FileHeader{Filename: "a.PNG"}))
	assert.Error(t, ValidateImage(&multipart.FileHeader{Filename: "a.exe"}))
}

func TestPublicIDFromURL(t *testing.T) {
	assert.Equal(t, "packages/abc", PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/v1712/packages/abc.jpg"))
	assert.Equal(t, "abc", PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/abc.png"))
	assert.Equal(t, "", PublicIDFromURL("/uploads/packages/abc.png"))
}
