package movie_loader

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/movie-card/models"
)

const (
	failurePolicyFlag = "movie-failure-policy"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   failurePolicyFlag,
			Usage:  "what to show when the movie cannot be loaded: fallback or error",
			EnvVar: "MOVIE_FAILURE_POLICY",
			Value:  string(PolicyFallback),
		},
	)
}

type Policy string

const (
	// PolicyFallback substitutes models.FallbackMovie on failure.
	PolicyFallback Policy = "fallback"
	// PolicyError shows an error indicator and no movie on failure.
	PolicyError Policy = "error"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyFallback, PolicyError:
		return p, nil
	}
	return "", errors.Errorf("unknown movie failure policy %q", s)
}

type State int

const (
	StateLoading State = iota
	StateReady
	StateError
	StateErrorWithFallback
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	case StateErrorWithFallback:
		return "error_with_fallback"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) IsTerminal() bool {
	return s != StateLoading
}

type Snapshot struct {
	State State
	Movie *models.Movie
	Err   error
}

type MovieFetcher interface {
	GetRandomMovie(ctx context.Context) (*models.Movie, error)
}

type Loader struct {
	fetcher  MovieFetcher
	policy   Policy
	once     sync.Once
	done     chan struct{}
	mux      sync.RWMutex
	snapshot Snapshot
}

func New(c *cli.Context, f MovieFetcher) (*Loader, error) {
	p, err := ParsePolicy(c.String(failurePolicyFlag))
	if err != nil {
		return nil, err
	}
	log.Infof("movie failure policy %v", p)
	return NewLoader(f, p), nil
}

func NewLoader(f MovieFetcher, p Policy) *Loader {
	return &Loader{
		fetcher: f,
		policy:  p,
		done:    make(chan struct{}),
	}
}

// Start runs Load in the background.
func (s *Loader) Start() {
	go s.Load(context.Background())
}

// Load fetches the movie on the first call only. Every call returns
// the terminal snapshot.
func (s *Loader) Load(ctx context.Context) Snapshot {
	s.once.Do(func() {
		s.settle(s.fetch(ctx))
	})
	return s.Snapshot()
}

// Wait blocks until the loader settles or ctx is done.
func (s *Loader) Wait(ctx context.Context) (Snapshot, error) {
	select {
	case <-s.done:
		return s.Snapshot(), nil
	case <-ctx.Done():
		return s.Snapshot(), ctx.Err()
	}
}

func (s *Loader) Snapshot() Snapshot {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.snapshot
}

func (s *Loader) fetch(ctx context.Context) (m *models.Movie, err error) {
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = errors.Errorf("movie fetch panicked: %v", r)
		}
	}()
	m, err = s.fetcher.GetRandomMovie(ctx)
	if err == nil && m == nil {
		err = errors.New("no movie returned")
	}
	return
}

func (s *Loader) settle(m *models.Movie, err error) {
	var sn Snapshot
	switch {
	case err == nil:
		sn = Snapshot{State: StateReady, Movie: m}
	case s.policy == PolicyFallback:
		log.WithError(err).Warn("failed to load movie, using fallback")
		sn = Snapshot{State: StateErrorWithFallback, Movie: models.FallbackMovie(), Err: err}
	default:
		log.WithError(err).Warn("failed to load movie")
		sn = Snapshot{State: StateError, Err: err}
	}
	s.mux.Lock()
	s.snapshot = sn
	s.mux.Unlock()
	close(s.done)
}
