package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("doc", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["doc"][0]
}

func TestSaveWritesFileWithGeneratedName(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save(fileHeader(t, "ktp.png", "image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".png"), "original extension kept: %s", name)
	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}

func TestSaveGeneratesDistinctNames(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(fileHeader(t, "sim.jpg", "a"))
	require.NoError(t, err)
	second, err := store.Save(fileHeader(t, "sim.jpg", "b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRemove(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save(fileHeader(t, "ktp.png", "x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(filepath.Join(store.Dir(), name))
	assert.True(t, os.IsNotExist(err))
}
