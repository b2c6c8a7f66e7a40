package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/webtor-io/movie-card/models"
	"github.com/webtor-io/movie-card/services/comment"
	ml "github.com/webtor-io/movie-card/services/movie_loader"
)

type StateResponse struct {
	State    string            `json:"state"`
	Movie    *models.Movie     `json:"movie"`
	Error    string            `json:"error,omitempty"`
	Comments []*models.Comment `json:"comments"`
}

type Handler struct {
	loader *ml.Loader
	store  *comment.Store
}

func RegisterHandler(r *gin.Engine, loader *ml.Loader, store *comment.Store) {
	h := &Handler{
		loader: loader,
		store:  store,
	}
	gr := r.Group("/api")
	gr.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	gr.GET("/state", h.state)
	// cors answers preflight itself but only for routes that exist
	gr.OPTIONS("/state", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func (s *Handler) state(c *gin.Context) {
	sn := s.loader.Snapshot()
	res := &StateResponse{
		State:    sn.State.String(),
		Movie:    sn.Movie,
		Comments: s.store.List(),
	}
	if sn.Err != nil {
		res.Error = sn.Err.Error()
	}
	c.JSON(http.StatusOK, res)
}
