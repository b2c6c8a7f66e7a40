package movie

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/webtor-io/movie-card/services/web"
)

func (s *Handler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, errors.Wrap(err, "wrong comment id"))
		return
	}
	if !s.store.RemoveByID(id) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	web.RedirectWithSuccessAndMessage(c, "Commentaire supprimé")
}
