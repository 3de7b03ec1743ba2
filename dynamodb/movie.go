package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"moviecredits/credit"
	"moviecredits/movie"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// MovieRepository implements movie.Repository on DynamoDB.
type MovieRepository struct {
	store
}

func NewMovieRepository(client *dynamodb.Client, tables Tables) *MovieRepository {
	return &MovieRepository{store: newStore(client, tables)}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	if err := validateTables(r.tables); err != nil {
		return nil, err
	}

	var items []movieItem
	if err := r.scan(ctx, r.tables.Movies, "", 0, &items); err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	movies := make([]movie.Movie, len(items))
	for i, item := range items {
		m, err := r.withCredits(ctx, item)
		if err != nil {
			return nil, err
		}
		movies[i] = m
	}
	return movies, nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	if err := validateTables(r.tables); err != nil {
		return movie.Movie{}, err
	}

	item := movieItem{
		ID:          newID(r.now),
		Title:       m.Title,
		Genre:       m.Genre,
		Image:       m.Image,
		Description: m.Description,
		Rating:      m.Rating,
	}
	if err := r.put(ctx, r.tables.Movies, item, "attribute_not_exists(id)"); err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: put movie: %w", err)
	}
	return toMovie(item, []credit.Credit{}), nil
}

func (r *MovieRepository) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	if err := validateTables(r.tables); err != nil {
		return movie.Movie{}, err
	}

	var item movieItem
	found, err := r.getItem(ctx, r.tables.Movies, id, &item)
	if err != nil {
		return movie.Movie{}, err
	}
	if !found {
		return movie.Movie{}, movie.ErrNotFound
	}
	return r.withCredits(ctx, item)
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	if err := validateTables(r.tables); err != nil {
		return movie.Movie{}, err
	}

	item := movieItem{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		Image:       m.Image,
		Description: m.Description,
		Rating:      m.Rating,
	}
	if err := r.put(ctx, r.tables.Movies, item, "attribute_exists(id)"); err != nil {
		if conditionFailed(err) {
			return movie.Movie{}, movie.ErrNotFound
		}
		return movie.Movie{}, fmt.Errorf("dynamodb: put movie: %w", err)
	}
	return r.withCredits(ctx, item)
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	if err := validateTables(r.tables); err != nil {
		return err
	}

	return r.deleteWithCredits(ctx, r.tables.Movies, "movie_id", id, movie.ErrNotFound)
}

func (r *MovieRepository) withCredits(ctx context.Context, item movieItem) (movie.Movie, error) {
	items, err := r.creditsOf(ctx, "movie_id", item.ID)
	if err != nil {
		return movie.Movie{}, err
	}

	credits := make([]credit.Credit, 0, len(items))
	for _, ci := range items {
		c := ci.toCredit()
		var a actorItem
		found, err := r.getItem(ctx, r.tables.Actors, ci.ActorID, &a)
		if err != nil {
			return movie.Movie{}, err
		}
		if found {
			c.Actor = a.ref()
		}
		credits = append(credits, c)
	}
	return toMovie(item, credits), nil
}

func toMovie(item movieItem, credits []credit.Credit) movie.Movie {
	return movie.Movie{
		ID:          item.ID,
		Title:       item.Title,
		Genre:       item.Genre,
		Image:       item.Image,
		Description: item.Description,
		Rating:      item.Rating,
		Credits:     credits,
	}
}
