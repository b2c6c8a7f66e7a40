package poster

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webtor-io/movie-card/models"
	ml "github.com/webtor-io/movie-card/services/movie_loader"
	"github.com/webtor-io/movie-card/services/poster"
)

type staticFetcher struct {
	m *models.Movie
}

func (f *staticFetcher) GetRandomMovie(_ context.Context) (*models.Movie, error) {
	return f.m, nil
}

func setup(t *testing.T, posterURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := ml.NewLoader(&staticFetcher{m: &models.Movie{ID: "1", Title: "Test", PosterPath: posterURL}}, ml.PolicyError)
	l.Load(context.Background())
	r := gin.New()
	RegisterHandler(r, l, poster.New(&http.Client{}))
	return r
}

func TestHandler_Get(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 60))))
	img := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	defer img.Close()

	r := setup(t, img.URL+"/p.png")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/poster/20", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/poster/20", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotModified, w.Code)
}

func TestHandler_GetErrors(t *testing.T) {
	r := setup(t, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/poster/20", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/poster/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/poster/5000", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
