package actor

import (
	"strings"

	"moviecredits/credit"
	"moviecredits/errs"
)

// MinAge is the youngest age an actor may be recorded with.
const MinAge = 11

var (
	ErrNotFound    = errs.Errorf(errs.ENOTFOUND, "Actor not found")
	ErrInvalidName = errs.Errorf(errs.EINVALID, "name is required")
	ErrInvalidAge  = errs.Errorf(errs.EINVALID, "age must be at least %d", MinAge)
)

type Actor struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Age     int             `json:"age"`
	Credits []credit.Credit `json:"credits"`
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	return nil
}

func ValidateAge(age int) error {
	if age < MinAge {
		return ErrInvalidAge
	}
	return nil
}

func (a Actor) Validate() error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}
	return ValidateAge(a.Age)
}

// Patch holds the fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Name *string
	Age  *int
}

// Apply validates every provided field and returns the patched copy.
// The receiver is never modified, so a rejected patch leaves a unchanged.
func (a Actor) Apply(p Patch) (Actor, error) {
	if p.Name != nil {
		if err := ValidateName(*p.Name); err != nil {
			return a, &errs.FieldError{Field: "name", Err: err}
		}
		a.Name = *p.Name
	}
	if p.Age != nil {
		if err := ValidateAge(*p.Age); err != nil {
			return a, &errs.FieldError{Field: "age", Err: err}
		}
		a.Age = *p.Age
	}
	return a, nil
}
