package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"moviecredits/actor"
	"moviecredits/credit"
	"moviecredits/movie"
)

//go:embed sample.json
var sampleJSON []byte

type sample struct {
	Movies  []movie.Movie `json:"movies"`
	Actors  []actor.Actor `json:"actors"`
	Credits []struct {
		Movie string `json:"movie"`
		Actor string `json:"actor"`
		Role  string `json:"role"`
	} `json:"credits"`
}

type sampleCounts struct {
	movies, actors, credits int
}

func loadSample() (sample, error) {
	var s sample
	if err := json.Unmarshal(sampleJSON, &s); err != nil {
		return s, fmt.Errorf("decode sample: %w", err)
	}
	return s, nil
}

// insert writes the sample through the services so every record is
// validated. Credits refer to movies by title and actors by name.
func (s sample) insert(ctx context.Context, svc services) (sampleCounts, error) {
	var n sampleCounts
	movieIDs := make(map[string]int64, len(s.Movies))
	for _, m := range s.Movies {
		created, err := svc.movies.AddMovie(ctx, m)
		if err != nil {
			return n, fmt.Errorf("movie %q: %w", m.Title, err)
		}
		movieIDs[m.Title] = created.ID
		n.movies++
	}

	actorIDs := make(map[string]int64, len(s.Actors))
	for _, a := range s.Actors {
		created, err := svc.actors.AddActor(ctx, a)
		if err != nil {
			return n, fmt.Errorf("actor %q: %w", a.Name, err)
		}
		actorIDs[a.Name] = created.ID
		n.actors++
	}

	for _, c := range s.Credits {
		_, err := svc.credits.AddCredit(ctx, credit.Credit{
			Role:    c.Role,
			MovieID: movieIDs[c.Movie],
			ActorID: actorIDs[c.Actor],
		})
		if err != nil {
			return n, fmt.Errorf("credit %s/%s: %w", c.Movie, c.Actor, err)
		}
		n.credits++
	}
	return n, nil
}
