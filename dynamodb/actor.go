package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"moviecredits/actor"
	"moviecredits/credit"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ActorRepository implements actor.Repository on DynamoDB.
type ActorRepository struct {
	store
}

func NewActorRepository(client *dynamodb.Client, tables Tables) *ActorRepository {
	return &ActorRepository{store: newStore(client, tables)}
}

func (r *ActorRepository) AllActors(ctx context.Context) ([]actor.Actor, error) {
	if err := validateTables(r.tables); err != nil {
		return nil, err
	}

	var items []actorItem
	if err := r.scan(ctx, r.tables.Actors, "", 0, &items); err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	actors := make([]actor.Actor, len(items))
	for i, item := range items {
		a, err := r.withCredits(ctx, item)
		if err != nil {
			return nil, err
		}
		actors[i] = a
	}
	return actors, nil
}

func (r *ActorRepository) CreateActor(ctx context.Context, a actor.Actor) (actor.Actor, error) {
	if err := validateTables(r.tables); err != nil {
		return actor.Actor{}, err
	}

	item := actorItem{ID: newID(r.now), Name: a.Name, Age: a.Age}
	if err := r.put(ctx, r.tables.Actors, item, "attribute_not_exists(id)"); err != nil {
		return actor.Actor{}, fmt.Errorf("dynamodb: put actor: %w", err)
	}
	return toActor(item, []credit.Credit{}), nil
}

func (r *ActorRepository) GetActor(ctx context.Context, id int64) (actor.Actor, error) {
	if err := validateTables(r.tables); err != nil {
		return actor.Actor{}, err
	}

	var item actorItem
	found, err := r.getItem(ctx, r.tables.Actors, id, &item)
	if err != nil {
		return actor.Actor{}, err
	}
	if !found {
		return actor.Actor{}, actor.ErrNotFound
	}
	return r.withCredits(ctx, item)
}

func (r *ActorRepository) UpdateActor(ctx context.Context, a actor.Actor) (actor.Actor, error) {
	if err := validateTables(r.tables); err != nil {
		return actor.Actor{}, err
	}

	item := actorItem{ID: a.ID, Name: a.Name, Age: a.Age}
	if err := r.put(ctx, r.tables.Actors, item, "attribute_exists(id)"); err != nil {
		if conditionFailed(err) {
			return actor.Actor{}, actor.ErrNotFound
		}
		return actor.Actor{}, fmt.Errorf("dynamodb: put actor: %w", err)
	}
	return r.withCredits(ctx, item)
}

func (r *ActorRepository) DeleteActor(ctx context.Context, id int64) error {
	if err := validateTables(r.tables); err != nil {
		return err
	}

	return r.deleteWithCredits(ctx, r.tables.Actors, "actor_id", id, actor.ErrNotFound)
}

func (r *ActorRepository) withCredits(ctx context.Context, item actorItem) (actor.Actor, error) {
	items, err := r.creditsOf(ctx, "actor_id", item.ID)
	if err != nil {
		return actor.Actor{}, err
	}

	credits := make([]credit.Credit, 0, len(items))
	for _, ci := range items {
		c := ci.toCredit()
		var m movieItem
		found, err := r.getItem(ctx, r.tables.Movies, ci.MovieID, &m)
		if err != nil {
			return actor.Actor{}, err
		}
		if found {
			c.Movie = m.ref()
		}
		credits = append(credits, c)
	}
	return toActor(item, credits), nil
}

func toActor(item actorItem, credits []credit.Credit) actor.Actor {
	return actor.Actor{
		ID:      item.ID,
		Name:    item.Name,
		Age:     item.Age,
		Credits: credits,
	}
}
