package main

import (
	"net/http"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"
	"github.com/webtor-io/movie-card/handlers/api"
	"github.com/webtor-io/movie-card/handlers/movie"
	"github.com/webtor-io/movie-card/handlers/movie/helpers"
	wp "github.com/webtor-io/movie-card/handlers/poster"
	sess "github.com/webtor-io/movie-card/handlers/session"
	"github.com/webtor-io/movie-card/services/comment"
	"github.com/webtor-io/movie-card/services/common"
	"github.com/webtor-io/movie-card/services/poster"
	"github.com/webtor-io/movie-card/services/template"
	w "github.com/webtor-io/movie-card/services/web"
	"github.com/webtor-io/movie-card/templates"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = common.RegisterFlags(c.Flags)
	c.Flags = configureMovie(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting Loader
	loader, err := makeLoader(c, cl)
	if err != nil {
		return err
	}
	loader.Start()

	// Setting Comment Store
	store := comment.NewStore()

	// Setting template renderer
	re := multitemplate.NewRenderer()

	// Setting TemplateManager
	tm := template.NewManager[*w.Context](re, templates.FS).
		WithHelper(helpers.NewStarsHelper()).
		WithHelper(helpers.NewFormatHelper())

	var servers []cs.Servable
	// Setting Health Check
	health := cs.NewProbe(c)
	if health != nil {
		servers = append(servers, health)
		defer health.Close()
	}

	// Setting Gin
	r := gin.Default()
	r.HTMLRender = re

	// Setting Web
	web, err := w.New(c, r)
	if err != nil {
		return err
	}
	servers = append(servers, web)
	defer web.Close()

	// Setting Session
	err = sess.RegisterHandler(c, r)
	if err != nil {
		return err
	}

	// Setting MovieHandler
	movie.RegisterHandler(r, tm, loader, store)

	// Setting PosterHandler
	wp.RegisterHandler(r, loader, poster.New(cl))

	// Setting ApiHandler
	api.RegisterHandler(r, loader, store)

	// Render templates
	err = tm.Init()
	if err != nil {
		return err
	}

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}
