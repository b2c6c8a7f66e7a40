package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStarsHelper_MakeStars(t *testing.T) {
	h := NewStarsHelper()
	stars := h.MakeStars(7)
	assert.Len(t, stars, 11)

	var selected []float64
	for _, s := range stars {
		if s.Selected {
			selected = append(selected, s.Value)
		}
	}
	assert.Equal(t, []float64{3.5}, selected)
	assert.True(t, stars[1].HalfStep)
	assert.False(t, stars[2].HalfStep)
}

func TestStarsHelper_RatingStars(t *testing.T) {
	h := NewStarsHelper()
	assert.Equal(t, "★★★☆☆", h.RatingStars(3))
	assert.Equal(t, "★★★★★", h.RatingStars(9))
	assert.Equal(t, "☆☆☆☆☆", h.RatingStars(-1))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, h.RatingOptions())
}

func TestFormatHelper(t *testing.T) {
	h := NewFormatHelper()

	assert.Equal(t, "7,5", h.FormatRating(7.5))

	count := h.FormatVoteCount(12345)
	assert.True(t, strings.HasPrefix(count, "12"), count)
	assert.True(t, strings.HasSuffix(count, "345"), count)
	assert.NotEqual(t, "12345", count)
	assert.Equal(t, "0", h.FormatVoteCount(0))

	assert.Equal(t, "15/07/2010", h.FormatReleaseDate("2010-07-15"))
	assert.Equal(t, "bientôt", h.FormatReleaseDate("bientôt"))
}
