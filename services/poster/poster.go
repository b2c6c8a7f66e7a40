package poster

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/webtor-io/lazymap"
)

const (
	JPEGQuality = 85
	MaxWidth    = 1000
)

// Poster downloads remote posters and keeps resized JPEG copies in
// memory.
type Poster struct {
	cl    *http.Client
	cache lazymap.LazyMap[[]byte]
}

func New(cl *http.Client) *Poster {
	return &Poster{
		cl: cl,
		cache: lazymap.New[[]byte](&lazymap.Config{
			Expire:      time.Hour,
			ErrorExpire: 10 * time.Second,
		}),
	}
}

func (s *Poster) Get(ctx context.Context, url string, width int) ([]byte, error) {
	if width <= 0 || width > MaxWidth {
		return nil, errors.Errorf("wrong width %v", width)
	}
	key := fmt.Sprintf("%v:%v", width, url)
	return s.cache.Get(key, func() ([]byte, error) {
		return s.get(ctx, url, width)
	})
}

func (s *Poster) get(ctx context.Context, url string, width int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	resp, err := s.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	src, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}
	resized := imaging.Resize(src, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: JPEGQuality})
	if err != nil {
		return nil, errors.Wrap(err, "encode jpeg")
	}
	log.WithField("url", url).
		WithField("width", width).
		WithField("size", humanize.Bytes(uint64(buf.Len()))).
		Info("poster resized")
	return buf.Bytes(), nil
}
