// Package storage opens the repositories selected by DB_DRIVER.
package storage

import (
	"context"
	"fmt"
	"strconv"

	"moviecredits/actor"
	"moviecredits/credit"
	"moviecredits/dynamodb"
	"moviecredits/movie"
	"moviecredits/pkg/config"
	"moviecredits/postgres"
	"moviecredits/sqlite"

	"gorm.io/gorm"
)

type Repositories struct {
	Movies  movie.Repository
	Actors  actor.Repository
	Credits credit.Repository

	close func() error
}

func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     strconv.Itoa(cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("open postgres connection: %w", err)
		}
		return fromGorm(db)

	case config.DriverSQLite:
		db, err := sqlite.NewConnection(cfg.DB.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		return fromGorm(db)

	case config.DriverDynamoDB:
		client, err := dynamodb.NewClient(ctx, dynamodb.Options{
			Region:       cfg.DynamoDB.Region,
			Endpoint:     cfg.DynamoDB.Endpoint,
			AccessKey:    cfg.DynamoDB.AccessKey,
			SecretKey:    cfg.DynamoDB.SecretKey,
			SessionToken: cfg.DynamoDB.SessionToken,
		})
		if err != nil {
			return nil, err
		}
		tables := dynamodb.Tables{
			Movies:  cfg.DynamoDB.MoviesTable,
			Actors:  cfg.DynamoDB.ActorsTable,
			Credits: cfg.DynamoDB.CreditsTable,
		}
		if err := dynamodb.EnsureTables(ctx, client, tables); err != nil {
			return nil, err
		}
		return &Repositories{
			Movies:  dynamodb.NewMovieRepository(client, tables),
			Actors:  dynamodb.NewActorRepository(client, tables),
			Credits: dynamodb.NewCreditRepository(client, tables),
		}, nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
}

func fromGorm(db *gorm.DB) (*Repositories, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get db instance: %w", err)
	}
	return &Repositories{
		Movies:  postgres.NewMovieRepository(db),
		Actors:  postgres.NewActorRepository(db),
		Credits: postgres.NewCreditRepository(db),
		close:   sqlDB.Close,
	}, nil
}
