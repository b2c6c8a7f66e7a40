package web

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	csrf "github.com/utrack/gin-csrf"
)

const (
	csrfSecretKey = "csrfSecret"
	successFlash  = "success"
)

// Context is what every view receives.
type Context struct {
	Data     any
	CSRF     string
	Messages []string
	c        *gin.Context
}

func NewContext(c *gin.Context) *Context {
	return &Context{
		c:        c,
		CSRF:     getCSRF(c),
		Messages: popMessages(c),
	}
}

func (s *Context) WithData(d any) *Context {
	s.Data = d
	return s
}

func (s *Context) GetGinContext() *gin.Context {
	return s.c
}

func getCSRF(c *gin.Context) string {
	if _, ok := c.Get(csrfSecretKey); !ok {
		return ""
	}
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return ""
	}
	return csrf.GetToken(c)
}

func session(c *gin.Context) sessions.Session {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return nil
	}
	return sessions.Default(c)
}

func popMessages(c *gin.Context) (msgs []string) {
	s := session(c)
	if s == nil {
		return
	}
	flashes := s.Flashes(successFlash)
	if len(flashes) == 0 {
		return
	}
	for _, f := range flashes {
		if m, ok := f.(string); ok {
			msgs = append(msgs, m)
		}
	}
	if err := s.Save(); err != nil {
		log.WithError(err).Warn("failed to save session")
	}
	return
}

// RedirectWithSuccessAndMessage stores msg as a flash message and
// redirects back to the page.
func RedirectWithSuccessAndMessage(c *gin.Context, msg string) {
	if s := session(c); s != nil {
		s.AddFlash(msg, successFlash)
		if err := s.Save(); err != nil {
			log.WithError(err).Warn("failed to save session")
		}
	}
	c.Redirect(http.StatusFound, "/")
}
