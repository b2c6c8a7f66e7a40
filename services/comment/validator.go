package comment

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxBodyLength = 500
	MinRating     = 1
	MaxRating     = 5
)

const (
	FieldBody     = "body"
	FieldRating   = "rating"
	FieldAccepted = "accepted"
)

const (
	msgBodyRequired     = "Le commentaire est obligatoire"
	msgBodyTooLong      = "Le commentaire ne doit pas dépasser 500 caractères"
	msgRatingRequired   = "La note est obligatoire"
	msgRatingOutOfRange = "La note doit être comprise entre 1 et 5"
	msgAcceptedRequired = "Vous devez accepter les conditions générales"
)

// Form holds raw values as they come from the comment form.
type Form struct {
	Body     string `form:"body"`
	Rating   string `form:"rating"`
	Accepted string `form:"accepted"`
}

// IsAccepted reports whether the terms checkbox holds a checked value.
func (f Form) IsAccepted() bool {
	return isChecked(f.Accepted)
}

// Draft is a validated comment that is ready to be stored.
type Draft struct {
	Body   string
	Rating int
}

// FieldErrors maps a form field to a human readable message.
type FieldErrors map[string]string

func (s FieldErrors) Valid() bool {
	return len(s) == 0
}

func (s FieldErrors) Get(field string) string {
	return s[field]
}

func (s FieldErrors) check(ok bool, field, msg string) {
	if ok {
		return
	}
	if _, exists := s[field]; !exists {
		s[field] = msg
	}
}

// Validate checks every field independently. It returns either a
// draft or a non-empty set of field errors.
func Validate(f Form) (*Draft, FieldErrors) {
	errs := FieldErrors{}

	errs.check(strings.TrimSpace(f.Body) != "", FieldBody, msgBodyRequired)
	errs.check(utf8.RuneCountInString(f.Body) <= MaxBodyLength, FieldBody, msgBodyTooLong)

	rating, ratingErr := parseRating(f.Rating)
	if ratingErr != "" {
		errs[FieldRating] = ratingErr
	}

	errs.check(f.IsAccepted(), FieldAccepted, msgAcceptedRequired)

	if !errs.Valid() {
		return nil, errs
	}
	return &Draft{
		Body:   f.Body,
		Rating: rating,
	}, nil
}

func parseRating(v string) (int, string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, msgRatingRequired
	}
	r, err := strconv.Atoi(v)
	if err != nil || r < MinRating || r > MaxRating {
		return 0, msgRatingOutOfRange
	}
	return r, ""
}

func isChecked(v string) bool {
	switch v {
	case "on", "true", "1":
		return true
	}
	return false
}
