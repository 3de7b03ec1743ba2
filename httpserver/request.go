package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"sort"
	"strconv"

	"moviecredits/actor"
	"moviecredits/credit"
	"moviecredits/errs"
	"moviecredits/movie"

	"github.com/labstack/echo/v4"
)

var ErrNoInput = errs.Errorf(errs.EINVALID, "No input data provided")

// Fields accepted by the PATCH endpoints.
var (
	actorUpdatableFields = []string{"name", "age"}
	movieUpdatableFields = []string{"title", "genre", "image", "description", "rating"}
)

// Integer fields also accept integral JSON numbers such as 11.0.
var (
	actorIntFields  = []string{"age"}
	movieIntFields  = []string{"rating"}
	creditIntFields = []string{"movie_id", "actor_id"}
)

type AddMovieRequest struct {
	Title       *string `json:"title" validate:"required"`
	Genre       *string `json:"genre" validate:"required"`
	Image       *string `json:"image" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Rating      *int    `json:"rating" validate:"required"`
}

func (r AddMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Title:       *r.Title,
		Genre:       *r.Genre,
		Image:       *r.Image,
		Description: *r.Description,
		Rating:      *r.Rating,
	}
}

type AddActorRequest struct {
	Name *string `json:"name" validate:"required"`
	Age  *int    `json:"age" validate:"required"`
}

func (r AddActorRequest) ToActor() actor.Actor {
	return actor.Actor{Name: *r.Name, Age: *r.Age}
}

type AddCreditRequest struct {
	Role    *string `json:"role" validate:"required"`
	MovieID *int64  `json:"movie_id" validate:"required"`
	ActorID *int64  `json:"actor_id" validate:"required"`
}

func (r AddCreditRequest) ToCredit() credit.Credit {
	return credit.Credit{Role: *r.Role, MovieID: *r.MovieID, ActorID: *r.ActorID}
}

// readInput decodes the request body as a JSON object. An absent, null or
// empty object body is ErrNoInput.
func readInput(c echo.Context) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNoInput
	}

	var input map[string]json.RawMessage
	if err := json.Unmarshal(body, &input); err != nil {
		return nil, errs.Errorf(errs.EINVALID, "request body must be a JSON object")
	}
	if len(input) == 0 {
		return nil, ErrNoInput
	}
	return input, nil
}

// bindInput decodes a create request and runs the struct validator on it.
func bindInput(c echo.Context, input map[string]json.RawMessage, req interface{}, intFields ...string) error {
	normalizeInts(input, intFields)
	raw, err := json.Marshal(input)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, req); err != nil {
		return typeError(err, "value")
	}
	return c.Validate(req)
}

// decodeField decodes one patch value. The field name is part of the error
// so the handler can report which field was rejected.
func decodeField(field string, raw json.RawMessage, dst interface{}) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return &errs.FieldError{Field: field, Err: errs.Errorf(errs.EINVALID, "%s must not be null", field)}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &errs.FieldError{Field: field, Err: typeError(err, field)}
	}
	return nil
}

// normalizeInts rewrites integral numbers like 11.0 or 1.1e1 in the named
// fields to plain integer literals. Anything else is left for the decoder
// to reject.
func normalizeInts(input map[string]json.RawMessage, fields []string) {
	for _, field := range fields {
		raw, ok := input[field]
		if !ok || bytes.HasPrefix(bytes.TrimSpace(raw), []byte(`"`)) {
			continue
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			continue
		}
		if _, err := n.Int64(); err == nil {
			continue
		}
		f, err := n.Float64()
		if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
			continue
		}
		input[field] = json.RawMessage(strconv.FormatInt(int64(f), 10))
	}
}

func typeError(err error, field string) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			field = typeErr.Field
		}
		return errs.Errorf(errs.EINVALID, "%s must be of type %s", field, typeErr.Type.String())
	}
	return errs.Errorf(errs.EINVALID, "malformed JSON value")
}

// checkAllowed rejects the first field, in name order, that is not allowed.
func checkAllowed(input map[string]json.RawMessage, allowed []string) error {
	fields := make([]string, 0, len(input))
	for field := range input {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if !contains(allowed, field) {
			return errs.Errorf(errs.EINVALID, "Field '%s' is not allowed to be updated", field)
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func parseActorPatch(input map[string]json.RawMessage) (actor.Patch, error) {
	normalizeInts(input, actorIntFields)
	var p actor.Patch
	if raw, ok := input["name"]; ok {
		if err := decodeField("name", raw, &p.Name); err != nil {
			return p, err
		}
	}
	if raw, ok := input["age"]; ok {
		if err := decodeField("age", raw, &p.Age); err != nil {
			return p, err
		}
	}
	return p, nil
}

func parseMoviePatch(input map[string]json.RawMessage) (movie.Patch, error) {
	normalizeInts(input, movieIntFields)
	var p movie.Patch
	targets := map[string]interface{}{
		"title":       &p.Title,
		"genre":       &p.Genre,
		"image":       &p.Image,
		"description": &p.Description,
		"rating":      &p.Rating,
	}
	for _, field := range movieUpdatableFields {
		raw, ok := input[field]
		if !ok {
			continue
		}
		if err := decodeField(field, raw, targets[field]); err != nil {
			return p, err
		}
	}
	return p, nil
}

// parseID follows the routing rule that a non-numeric id matches nothing.
func parseID(c echo.Context, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}

// updateError turns a rejected patch field into the client facing message.
func updateError(err error) error {
	var fe *errs.FieldError
	if errors.As(err, &fe) && errs.ErrorCode(err) == errs.EINVALID {
		return errs.Errorf(errs.EINVALID, "Error updating field '%s': %s", fe.Field, errs.ErrorMessage(fe.Err))
	}
	return err
}

// createError prefixes validation failures with the entity being created.
func createError(entity string, err error) error {
	if errs.ErrorCode(err) == errs.EINVALID {
		return errs.Errorf(errs.EINVALID, "Error creating %s: %s", entity, errs.ErrorMessage(err))
	}
	return err
}
