package movie

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webtor-io/movie-card/models"
	"github.com/webtor-io/movie-card/services/comment"
	ml "github.com/webtor-io/movie-card/services/movie_loader"
	"github.com/webtor-io/movie-card/services/web"
)

type IndexData struct {
	State    ml.State
	Movie    *models.Movie
	Comments []*models.Comment
	Form     comment.Form
	Errors   comment.FieldErrors
}

func (s *IndexData) Loading() bool {
	return !s.State.IsTerminal()
}

func (s *IndexData) Failed() bool {
	return s.State == ml.StateError || s.State == ml.StateErrorWithFallback
}

func (s *Handler) index(c *gin.Context) {
	s.render(c, http.StatusOK, comment.Form{}, nil)
}

func (s *Handler) render(c *gin.Context, code int, f comment.Form, errs comment.FieldErrors) {
	sn := s.loader.Snapshot()
	d := &IndexData{
		State:    sn.State,
		Movie:    sn.Movie,
		Comments: s.store.List(),
		Form:     f,
		Errors:   errs,
	}
	s.tb.Build("movie/index").HTML(code, web.NewContext(c).WithData(d))
}
