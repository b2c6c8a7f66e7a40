package movie_api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/movie-card/models"
)

const (
	movieApiHostFlag    = "movie-api-host"
	movieApiPortFlag    = "movie-api-port"
	movieApiSecureFlag  = "movie-api-secure"
	movieApiPathFlag    = "movie-api-path"
	movieApiTimeoutFlag = "movie-api-timeout"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   movieApiHostFlag,
			Usage:  "movie api host",
			EnvVar: "MOVIE_API_HOST",
			Value:  "jsonfakery.com",
		},
		cli.IntFlag{
			Name:   movieApiPortFlag,
			Usage:  "movie api port",
			EnvVar: "MOVIE_API_PORT",
			Value:  443,
		},
		cli.BoolTFlag{
			Name:   movieApiSecureFlag,
			Usage:  "movie api secure (https)",
			EnvVar: "MOVIE_API_SECURE",
		},
		cli.StringFlag{
			Name:   movieApiPathFlag,
			Usage:  "movie api path returning a single random movie",
			EnvVar: "MOVIE_API_PATH",
			Value:  "/movies/random/1",
		},
		cli.DurationFlag{
			Name:   movieApiTimeoutFlag,
			Usage:  "movie api request timeout (0 disables it)",
			EnvVar: "MOVIE_API_TIMEOUT",
		},
	)
}

type Api struct {
	url string
	cl  *http.Client
}

func New(c *cli.Context, cl *http.Client) *Api {
	host := c.String(movieApiHostFlag)
	port := c.Int(movieApiPortFlag)
	secure := c.BoolT(movieApiSecureFlag)
	path := c.String(movieApiPathFlag)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	protocol := "http"
	if secure {
		protocol = "https"
	}
	if timeout := c.Duration(movieApiTimeoutFlag); timeout > 0 {
		cl = &http.Client{
			Transport: cl.Transport,
			Timeout:   timeout,
		}
	}
	u := fmt.Sprintf("%v://%v:%v%v", protocol, host, port, path)
	log.Infof("movie api endpoint %v", u)
	return NewWithURL(u, cl)
}

func NewWithURL(u string, cl *http.Client) *Api {
	return &Api{
		url: u,
		cl:  cl,
	}
}

// GetRandomMovie fetches the endpoint and returns the first element of
// the array it responds with.
func (api *Api) GetRandomMovie(ctx context.Context) (*models.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", api.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := api.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	log.WithField("status", resp.StatusCode).
		WithField("duration", time.Since(start)).
		Debug("movie api responded")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var movies []*models.Movie
	if err := json.NewDecoder(resp.Body).Decode(&movies); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	if len(movies) == 0 || movies[0] == nil {
		return nil, errors.New("empty response")
	}

	return movies[0].Normalize(), nil
}
