package models

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const MaxTopCast = 5

type CastMember struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
}

type Movie struct {
	ID          ID           `json:"id"`
	Title       string       `json:"original_title"`
	Overview    string       `json:"overview"`
	ReleaseDate string       `json:"release_date"`
	VoteAverage float64      `json:"vote_average"`
	VoteCount   Count        `json:"vote_count"`
	PosterPath  string       `json:"poster_path"`
	Casts       []CastMember `json:"casts"`
}

// Normalize applies defaults for optional fields and cleans up
// values coming from the remote api.
func (s *Movie) Normalize() *Movie {
	if s.Casts == nil {
		s.Casts = []CastMember{}
	}
	if s.VoteCount < 0 {
		s.VoteCount = 0
	}
	s.PosterPath = SanitizePosterPath(s.PosterPath)
	s.Overview = PlainText(s.Overview)
	s.Title = strings.TrimSpace(s.Title)
	return s
}

func (s *Movie) TopCast() []CastMember {
	if len(s.Casts) > MaxTopCast {
		return s.Casts[:MaxTopCast]
	}
	return s.Casts
}

func (s *Movie) HasPoster() bool {
	return s.PosterPath != ""
}

// SanitizePosterPath removes literal backslashes the api leaves in
// escaped urls, e.g. "https:\/\/image.tmdb.org\/t\/p\/w500\/x.jpg".
func SanitizePosterPath(p string) string {
	return strings.TrimSpace(strings.ReplaceAll(p, `\`, ""))
}

// PlainText strips any markup from untrusted text.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
