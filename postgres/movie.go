package postgres

import (
	"context"
	"errors"
	"fmt"

	"moviecredits/credit"
	"moviecredits/errs"
	"moviecredits/movie"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies
type MovieModel struct {
	ID          int64  `gorm:"primaryKey"`
	Title       string `gorm:"not null;default:''"`
	Genre       string `gorm:"not null"`
	Image       string `gorm:"not null;default:''"`
	Description string `gorm:"not null;default:''"`
	Rating      int    `gorm:"not null"`

	Credits []CreditModel `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

func (m MovieModel) toMovie() movie.Movie {
	return movie.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		Image:       m.Image,
		Description: m.Description,
		Rating:      m.Rating,
		Credits:     toCredits(m.Credits),
	}
}

func (m MovieModel) toRef() *credit.MovieRef {
	return &credit.MovieRef{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		Image:       m.Image,
		Description: m.Description,
		Rating:      m.Rating,
	}
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) withCredits(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Credits", func(db *gorm.DB) *gorm.DB {
		return db.Order("credits.id")
	}).Preload("Credits.Actor")
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.withCredits(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("postgres: list movies: %w", err)
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies, nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := MovieModel{
		Title:       m.Title,
		Genre:       m.Genre,
		Image:       m.Image,
		Description: m.Description,
		Rating:      m.Rating,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return movie.Movie{}, fmt.Errorf("postgres: create movie: %w", err)
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel
	if err := r.withCredits(ctx).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return movie.Movie{}, movie.ErrNotFound
		}
		return movie.Movie{}, fmt.Errorf("postgres: get movie: %w", err)
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	res := r.db.WithContext(ctx).Model(&MovieModel{ID: m.ID}).Updates(map[string]interface{}{
		"title":       m.Title,
		"genre":       m.Genre,
		"image":       m.Image,
		"description": m.Description,
		"rating":      m.Rating,
	})
	if res.Error != nil {
		return movie.Movie{}, fmt.Errorf("postgres: update movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return movie.Movie{}, movie.ErrNotFound
	}
	return r.GetMovie(ctx, m.ID)
}

// DeleteMovie removes the movie's credits and then the movie in one transaction.
func (r *MovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model MovieModel
		if err := tx.Select("id").First(&model, id).Error; err != nil {
			if isNotFound(err) {
				return movie.ErrNotFound
			}
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&CreditModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model).Error
	})
	return wrap("delete movie", err)
}

// wrap leaves application errors untouched so their codes reach the handler.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return err
	}
	return fmt.Errorf("postgres: %s: %w", op, err)
}
