package main

import (
	"net/http"

	"github.com/urfave/cli"
	"github.com/webtor-io/movie-card/services/movie_api"
	ml "github.com/webtor-io/movie-card/services/movie_loader"
)

func configureMovie(f []cli.Flag) []cli.Flag {
	f = movie_api.RegisterFlags(f)
	f = ml.RegisterFlags(f)
	return f
}

func makeLoader(c *cli.Context, cl *http.Client) (*ml.Loader, error) {
	// Setting Movie API
	api := movie_api.New(c, cl)

	// Setting Loader
	return ml.New(c, api)
}
