package helpers

import (
	"fmt"
	"strings"
)

type Star struct {
	Value    float64
	Title    string
	Selected bool
	HalfStep bool
}

// MakeStars maps a 0-10 vote average onto half-step stars out of 5.
func (s *StarsHelper) MakeStars(r float64) (stars []Star) {
	step := 0.5
	maxStar := 5.0
	maxRating := 10.0
	rating := r / maxRating * maxStar
	for i := float64(0); i <= maxStar; i = i + step {
		stars = append(stars, Star{
			Value:    i,
			Title:    fmt.Sprintf("%.1f", i),
			Selected: rating >= i && rating < i+step,
			HalfStep: int((i-float64(int(i)))*2) == 1,
		})
	}
	return stars
}

// RatingStars renders a 1-5 comment rating as filled and empty stars.
func (s *StarsHelper) RatingStars(r int) string {
	if r < 0 {
		r = 0
	}
	if r > 5 {
		r = 5
	}
	return strings.Repeat("★", r) + strings.Repeat("☆", 5-r)
}

// RatingOptions lists the values offered by the rating select.
func (s *StarsHelper) RatingOptions() []int {
	return []int{1, 2, 3, 4, 5}
}

type StarsHelper struct {
}

func NewStarsHelper() *StarsHelper {
	return &StarsHelper{}
}
