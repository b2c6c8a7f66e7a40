package movie

import (
	"github.com/gin-gonic/gin"
	"github.com/webtor-io/movie-card/services/comment"
	ml "github.com/webtor-io/movie-card/services/movie_loader"
	"github.com/webtor-io/movie-card/services/template"
	"github.com/webtor-io/movie-card/services/web"
)

type Handler struct {
	tb     template.Builder[*web.Context]
	loader *ml.Loader
	store  *comment.Store
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], loader *ml.Loader, store *comment.Store) {
	h := &Handler{
		tb:     tm.MustRegisterViews("movie/*").WithLayout("main"),
		loader: loader,
		store:  store,
	}
	r.GET("/", h.index)
	r.POST("/comments", h.add)
	r.POST("/comments/:id/delete", h.remove)
}
