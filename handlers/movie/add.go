package movie

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/webtor-io/movie-card/services/comment"
	"github.com/webtor-io/movie-card/services/web"
)

func (s *Handler) add(c *gin.Context) {
	f := comment.Form{
		Body:     c.PostForm("body"),
		Rating:   c.PostForm("rating"),
		Accepted: c.PostForm("accepted"),
	}
	d, errs := comment.Validate(f)
	if !errs.Valid() {
		s.render(c, http.StatusUnprocessableEntity, f, errs)
		return
	}
	cm := s.store.Add(d)
	log.WithField("comment_id", cm.ID).Debug("comment added")
	web.RedirectWithSuccessAndMessage(c, "Commentaire ajouté")
}
