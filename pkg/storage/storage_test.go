package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"moviecredits/actor"
	"moviecredits/movie"
	"moviecredits/pkg/config"
	"moviecredits/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("sqlite file database", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.DB.Driver = config.DriverSQLite
		cfg.DB.Path = filepath.Join(t.TempDir(), "movies.db")

		repos, err := storage.Open(context.Background(), cfg)
		require.NoError(t, err)
		defer repos.Close()

		m, err := repos.Movies.CreateMovie(context.Background(), movie.Movie{Title: "Up", Genre: "Animation", Rating: 8})
		require.NoError(t, err)
		assert.NotZero(t, m.ID)

		_, err = repos.Actors.GetActor(context.Background(), 1)
		assert.ErrorIs(t, err, actor.ErrNotFound)
	})

	t.Run("dynamodb requires a region", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.DB.Driver = config.DriverDynamoDB

		_, err := storage.Open(context.Background(), cfg)
		assert.ErrorContains(t, err, "region is required")
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.DB.Driver = "mysql"

		_, err := storage.Open(context.Background(), cfg)
		assert.EqualError(t, err, `unsupported DB_DRIVER "mysql"`)
	})
}
