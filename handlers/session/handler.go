package session

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	csrf "github.com/utrack/gin-csrf"
	"github.com/webtor-io/movie-card/services/common"
)

const sessionName = "movie-card"

func RegisterHandler(c *cli.Context, r *gin.Engine) error {
	secret := c.String(common.SessionSecretFlag)
	if secret == "" {
		return errors.New("session secret must not be empty")
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))
	if !c.BoolT(common.UseCSRFFlag) {
		return nil
	}
	r.Use(csrf.Middleware(csrf.Options{
		Secret:        secret,
		IgnoreMethods: []string{"GET", "HEAD", "OPTIONS"},
		ErrorFunc: func(c *gin.Context) {
			log.Warn("csrf token mismatch")
			c.String(http.StatusBadRequest, "Jeton CSRF invalide")
			c.Abort()
		},
	}))
	return nil
}
