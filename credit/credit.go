package credit

import (
	"strings"

	"moviecredits/errs"
)

// Roles lists every role a credit may carry.
var Roles = []string{
	"Performer",
	"Director",
	"Producer",
	"Playwright",
	"Lighting Design",
	"Sound Design",
	"Set Design",
}

var (
	ErrNotFound      = errs.Errorf(errs.ENOTFOUND, "Credit not found")
	ErrInvalidRole   = errs.Errorf(errs.EINVALID, "role must be one of: %s", strings.Join(Roles, ", "))
	ErrMissingMovie  = errs.Errorf(errs.EINVALID, "credit must reference an existing movie")
	ErrMissingActor  = errs.Errorf(errs.EINVALID, "credit must reference an existing actor")
	ErrInvalidParent = errs.Errorf(errs.EINVALID, "movie_id and actor_id are required")
)

// Credit is one actor's role in one movie. Movie and Actor are filled in
// when the credit is loaded through its movie, its actor or on its own;
// they never carry credit lists of their own.
type Credit struct {
	ID      int64     `json:"id"`
	Role    string    `json:"role"`
	MovieID int64     `json:"movie_id"`
	ActorID int64     `json:"actor_id"`
	Movie   *MovieRef `json:"movie,omitempty"`
	Actor   *ActorRef `json:"actor,omitempty"`
}

// MovieRef is the movie side of a credit.
type MovieRef struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
}

// ActorRef is the actor side of a credit.
type ActorRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func ValidateRole(role string) error {
	for _, r := range Roles {
		if r == role {
			return nil
		}
	}
	return ErrInvalidRole
}

func (c Credit) Validate() error {
	if c.MovieID <= 0 || c.ActorID <= 0 {
		return ErrInvalidParent
	}
	return ValidateRole(c.Role)
}
