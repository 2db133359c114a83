package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"armada_api/internal/config"
	"armada_api/internal/middleware"
	"armada_api/internal/models"
	"armada_api/internal/routes"
)

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	auth      *middleware.Auth
	uploadDir string
}

// newTestEnv builds the full router against an in-memory SQLite database and
// a temporary upload directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Company{}, &models.User{}, &models.Driver{}, &models.Vehicle{}))

	cfg := config.Config{
		JWTSecret: "test-secret",
		UploadDir: t.TempDir(),
	}
	router, err := routes.SetupRouter(cfg, db)
	require.NoError(t, err)

	return &testEnv{
		router:    router,
		db:        db,
		auth:      middleware.NewAuth(cfg.JWTSecret),
		uploadDir: cfg.UploadDir,
	}
}

func (e *testEnv) token(t *testing.T, id uint, role string) string {
	t.Helper()
	token, err := e.auth.GenerateToken(id, role)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return e.do(method, path, token, bytes.NewReader(b), "application/json")
}

// multipartForm builds a driver form; files maps field name to original
// filename, with fixed fake content.
func multipartForm(t *testing.T, fields map[string]string, files map[string]string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, filename := range files {
		fw, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
