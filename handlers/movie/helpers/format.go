package helpers

import (
	"strconv"
	"time"

	"github.com/webtor-io/movie-card/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type FormatHelper struct {
	p *message.Printer
}

func NewFormatHelper() *FormatHelper {
	return &FormatHelper{
		p: message.NewPrinter(language.French),
	}
}

// FormatVoteCount groups digits the French way, e.g. "12 345".
func (s *FormatHelper) FormatVoteCount(n models.Count) string {
	return s.p.Sprintf("%d", n)
}

// FormatRating prints a vote average with a decimal comma, e.g. "7,5".
func (s *FormatHelper) FormatRating(r float64) string {
	return s.p.Sprintf("%.1f", r)
}

// FormatReleaseDate turns an ISO date into dd/mm/yyyy and leaves
// anything else untouched.
func (s *FormatHelper) FormatReleaseDate(d string) string {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return d
	}
	return t.Format("02/01/2006")
}

func (s *FormatHelper) Itoa(n int) string {
	return strconv.Itoa(n)
}
