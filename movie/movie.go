package movie

import (
	"strings"

	"moviecredits/credit"
	"moviecredits/errs"
)

const (
	MinRating = 1
	MaxRating = 10
)

// Genres lists every genre a movie may be filed under.
var Genres = []string{
	"Action",
	"Adventure",
	"Animation",
	"Comedy",
	"Crime",
	"Documentary",
	"Drama",
	"Family",
	"Fantasy",
	"Horror",
	"Musical",
	"Mystery",
	"Romance",
	"Science Fiction",
	"Thriller",
}

var (
	ErrNotFound      = errs.Errorf(errs.ENOTFOUND, "Movie not found")
	ErrInvalidRating = errs.Errorf(errs.EINVALID, "rating must be between %d and %d", MinRating, MaxRating)
	ErrInvalidGenre  = errs.Errorf(errs.EINVALID, "genre must be one of: %s", strings.Join(Genres, ", "))
)

type Movie struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Genre       string          `json:"genre"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Rating      int             `json:"rating"`
	Credits     []credit.Credit `json:"credits"`
}

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

func ValidateGenre(genre string) error {
	for _, g := range Genres {
		if g == genre {
			return nil
		}
	}
	return ErrInvalidGenre
}

func (m Movie) Validate() error {
	if err := ValidateGenre(m.Genre); err != nil {
		return err
	}
	return ValidateRating(m.Rating)
}

// Patch holds the fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Genre       *string
	Image       *string
	Description *string
	Rating      *int
}

// Apply validates every provided field and returns the patched copy.
// The receiver is never modified, so a rejected patch leaves m unchanged.
func (m Movie) Apply(p Patch) (Movie, error) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Genre != nil {
		if err := ValidateGenre(*p.Genre); err != nil {
			return m, &errs.FieldError{Field: "genre", Err: err}
		}
		m.Genre = *p.Genre
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Rating != nil {
		if err := ValidateRating(*p.Rating); err != nil {
			return m, &errs.FieldError{Field: "rating", Err: err}
		}
		m.Rating = *p.Rating
	}
	return m, nil
}
