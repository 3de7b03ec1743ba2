package postgres

import (
	"context"
	"fmt"

	"moviecredits/actor"
	"moviecredits/credit"

	"gorm.io/gorm"
)

// ActorModel represents the database model for actors
type ActorModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	Age  int    `gorm:"not null"`

	Credits []CreditModel `gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ActorModel) TableName() string {
	return "actors"
}

func (m ActorModel) toActor() actor.Actor {
	return actor.Actor{
		ID:      m.ID,
		Name:    m.Name,
		Age:     m.Age,
		Credits: toCredits(m.Credits),
	}
}

func (m ActorModel) toRef() *credit.ActorRef {
	return &credit.ActorRef{ID: m.ID, Name: m.Name, Age: m.Age}
}

// ActorRepository implements actor.Repository interface
type ActorRepository struct {
	db *gorm.DB
}

// NewActorRepository creates a new actor repository
func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

func (r *ActorRepository) withCredits(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Credits", func(db *gorm.DB) *gorm.DB {
		return db.Order("credits.id")
	}).Preload("Credits.Movie")
}

func (r *ActorRepository) AllActors(ctx context.Context) ([]actor.Actor, error) {
	var models []ActorModel
	if err := r.withCredits(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("postgres: list actors: %w", err)
	}

	actors := make([]actor.Actor, len(models))
	for i, model := range models {
		actors[i] = model.toActor()
	}
	return actors, nil
}

func (r *ActorRepository) CreateActor(ctx context.Context, a actor.Actor) (actor.Actor, error) {
	model := ActorModel{Name: a.Name, Age: a.Age}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return actor.Actor{}, fmt.Errorf("postgres: create actor: %w", err)
	}
	return model.toActor(), nil
}

func (r *ActorRepository) GetActor(ctx context.Context, id int64) (actor.Actor, error) {
	var model ActorModel
	if err := r.withCredits(ctx).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return actor.Actor{}, actor.ErrNotFound
		}
		return actor.Actor{}, fmt.Errorf("postgres: get actor: %w", err)
	}
	return model.toActor(), nil
}

func (r *ActorRepository) UpdateActor(ctx context.Context, a actor.Actor) (actor.Actor, error) {
	res := r.db.WithContext(ctx).Model(&ActorModel{ID: a.ID}).Updates(map[string]interface{}{
		"name": a.Name,
		"age":  a.Age,
	})
	if res.Error != nil {
		return actor.Actor{}, fmt.Errorf("postgres: update actor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return actor.Actor{}, actor.ErrNotFound
	}
	return r.GetActor(ctx, a.ID)
}

// DeleteActor removes the actor's credits and then the actor in one transaction.
func (r *ActorRepository) DeleteActor(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model ActorModel
		if err := tx.Select("id").First(&model, id).Error; err != nil {
			if isNotFound(err) {
				return actor.ErrNotFound
			}
			return err
		}
		if err := tx.Where("actor_id = ?", id).Delete(&CreditModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model).Error
	})
	return wrap("delete actor", err)
}
