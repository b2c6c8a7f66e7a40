package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(withSession bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if withSession {
		r.Use(sessions.Sessions("test", cookie.NewStore([]byte("secret"))))
	}
	r.POST("/add", func(c *gin.Context) {
		RedirectWithSuccessAndMessage(c, "Commentaire ajouté")
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, NewContext(c).Messages)
	})
	return r
}

func messages(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var msgs []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msgs))
	return msgs
}

func TestRedirectWithSuccessAndMessage(t *testing.T) {
	r := setupRouter(true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/add", nil))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, []string{"Commentaire ajouté"}, messages(t, w))

	next := w.Result().Cookies()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range next {
		req.AddCookie(ck)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, messages(t, w))
}

func TestNewContext_WithoutSession(t *testing.T) {
	r := setupRouter(false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/add", nil))
	assert.Equal(t, http.StatusFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, messages(t, w))
}
