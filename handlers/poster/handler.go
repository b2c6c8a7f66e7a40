package poster

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	ml "github.com/webtor-io/movie-card/services/movie_loader"
	"github.com/webtor-io/movie-card/services/poster"
)

type Handler struct {
	loader *ml.Loader
	poster *poster.Poster
}

func RegisterHandler(r *gin.Engine, loader *ml.Loader, p *poster.Poster) {
	h := &Handler{
		loader: loader,
		poster: p,
	}
	r.GET("/poster/:width", h.get)
}

func (s *Handler) get(c *gin.Context) {
	width, err := strconv.Atoi(c.Param("width"))
	if err != nil || width <= 0 || width > poster.MaxWidth {
		c.Status(http.StatusBadRequest)
		return
	}
	m := s.loader.Snapshot().Movie
	if m == nil || !m.HasPoster() {
		c.Status(http.StatusNotFound)
		return
	}

	b, err := s.poster.Get(c.Request.Context(), m.PosterPath, width)
	if err != nil {
		log.WithError(err).Error("failed to get resized poster")
		_ = c.AbortWithError(http.StatusBadGateway, err)
		return
	}

	etag := generateETag(b)
	if match := c.Request.Header.Get("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Header("ETag", etag)
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/jpeg", b)
}

func generateETag(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf(`"%x"`, sum[:])
}
