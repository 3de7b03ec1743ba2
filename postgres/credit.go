package postgres

import (
	"context"
	"fmt"

	"moviecredits/credit"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreditModel represents the database model for credits
type CreditModel struct {
	ID      int64  `gorm:"primaryKey"`
	Role    string `gorm:"not null"`
	MovieID int64  `gorm:"not null;index"`
	ActorID int64  `gorm:"not null;index"`

	Movie *MovieModel `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	Actor *ActorModel `gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (CreditModel) TableName() string {
	return "credits"
}

func (m CreditModel) toCredit() credit.Credit {
	c := credit.Credit{
		ID:      m.ID,
		Role:    m.Role,
		MovieID: m.MovieID,
		ActorID: m.ActorID,
	}
	if m.Movie != nil {
		c.Movie = m.Movie.toRef()
	}
	if m.Actor != nil {
		c.Actor = m.Actor.toRef()
	}
	return c
}

func toCredits(models []CreditModel) []credit.Credit {
	credits := make([]credit.Credit, len(models))
	for i, model := range models {
		credits[i] = model.toCredit()
	}
	return credits
}

// CreditRepository implements credit.Repository interface
type CreditRepository struct {
	db *gorm.DB
}

// NewCreditRepository creates a new credit repository
func NewCreditRepository(db *gorm.DB) *CreditRepository {
	return &CreditRepository{db: db}
}

func (r *CreditRepository) AllCredits(ctx context.Context) ([]credit.Credit, error) {
	var models []CreditModel
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Actor").
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("postgres: list credits: %w", err)
	}
	return toCredits(models), nil
}

// CreateCredit checks both parents inside the insert transaction so a
// credit never points at a missing movie or actor.
func (r *CreditRepository) CreateCredit(ctx context.Context, c credit.Credit) (credit.Credit, error) {
	model := CreditModel{
		Role:    c.Role,
		MovieID: c.MovieID,
		ActorID: c.ActorID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent MovieModel
		if err := tx.First(&parent, c.MovieID).Error; err != nil {
			if isNotFound(err) {
				return credit.ErrMissingMovie
			}
			return err
		}
		model.Movie = &parent

		var actor ActorModel
		if err := tx.First(&actor, c.ActorID).Error; err != nil {
			if isNotFound(err) {
				return credit.ErrMissingActor
			}
			return err
		}
		model.Actor = &actor

		return tx.Omit(clause.Associations).Create(&model).Error
	})
	if err != nil {
		return credit.Credit{}, wrap("create credit", err)
	}

	return model.toCredit(), nil
}

func (r *CreditRepository) GetCredit(ctx context.Context, id int64) (credit.Credit, error) {
	var model CreditModel
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Actor").
		First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return credit.Credit{}, credit.ErrNotFound
		}
		return credit.Credit{}, fmt.Errorf("postgres: get credit: %w", err)
	}
	return model.toCredit(), nil
}

func (r *CreditRepository) DeleteCredit(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&CreditModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("postgres: delete credit: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return credit.ErrNotFound
	}
	return nil
}
