package postgres_test

import (
	"context"
	"testing"

	"moviecredits/actor"
	"moviecredits/credit"
	"moviecredits/movie"
	"moviecredits/postgres"
	"moviecredits/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustCreateMemoryDatabase(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := sqlite.NewConnection(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

type fixture struct {
	movies  *postgres.MovieRepository
	actors  *postgres.ActorRepository
	credits *postgres.CreditRepository
}

func newFixture(t testing.TB) fixture {
	db := mustCreateMemoryDatabase(t)
	return fixture{
		movies:  postgres.NewMovieRepository(db),
		actors:  postgres.NewActorRepository(db),
		credits: postgres.NewCreditRepository(db),
	}
}

func (f fixture) mustCreateMovie(t testing.TB, title string) movie.Movie {
	t.Helper()
	m, err := f.movies.CreateMovie(context.Background(), movie.Movie{
		Title:       title,
		Genre:       "Drama",
		Image:       "https://example.com/" + title + ".jpg",
		Description: title + " description",
		Rating:      7,
	})
	require.NoError(t, err)
	return m
}

func (f fixture) mustCreateActor(t testing.TB, name string) actor.Actor {
	t.Helper()
	a, err := f.actors.CreateActor(context.Background(), actor.Actor{Name: name, Age: 40})
	require.NoError(t, err)
	return a
}

func (f fixture) mustCreateCredit(t testing.TB, role string, m movie.Movie, a actor.Actor) credit.Credit {
	t.Helper()
	c, err := f.credits.CreateCredit(context.Background(), credit.Credit{Role: role, MovieID: m.ID, ActorID: a.ID})
	require.NoError(t, err)
	return c
}

func TestMovieRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and loads movie with credits", func(t *testing.T) {
		f := newFixture(t)
		m := f.mustCreateMovie(t, "Arrival")
		a := f.mustCreateActor(t, "Amy Adams")
		f.mustCreateCredit(t, "Performer", m, a)

		got, err := f.movies.GetMovie(ctx, m.ID)

		require.NoError(t, err)
		assert.Equal(t, "Arrival", got.Title)
		require.Len(t, got.Credits, 1)
		assert.Equal(t, "Performer", got.Credits[0].Role)
		require.NotNil(t, got.Credits[0].Actor)
		assert.Equal(t, "Amy Adams", got.Credits[0].Actor.Name)
		assert.Nil(t, got.Credits[0].Movie)
	})

	t.Run("new movie has empty credit list", func(t *testing.T) {
		f := newFixture(t)

		m := f.mustCreateMovie(t, "Solaris")

		assert.NotZero(t, m.ID)
		assert.NotNil(t, m.Credits)
		assert.Empty(t, m.Credits)
	})

	t.Run("lists movies in id order", func(t *testing.T) {
		f := newFixture(t)
		f.mustCreateMovie(t, "First")
		f.mustCreateMovie(t, "Second")

		movies, err := f.movies.AllMovies(ctx)

		require.NoError(t, err)
		require.Len(t, movies, 2)
		assert.Equal(t, "First", movies[0].Title)
		assert.Equal(t, "Second", movies[1].Title)
	})

	t.Run("updates movie fields", func(t *testing.T) {
		f := newFixture(t)
		m := f.mustCreateMovie(t, "Draft")
		m.Title = "Final"
		m.Rating = 10

		got, err := f.movies.UpdateMovie(ctx, m)

		require.NoError(t, err)
		assert.Equal(t, "Final", got.Title)
		assert.Equal(t, 10, got.Rating)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.movies.GetMovie(ctx, 404)
		assert.Equal(t, movie.ErrNotFound, err)

		err = f.movies.DeleteMovie(ctx, 404)
		assert.Equal(t, movie.ErrNotFound, err)

		_, err = f.movies.UpdateMovie(ctx, movie.Movie{ID: 404, Genre: "Drama", Rating: 5})
		assert.Equal(t, movie.ErrNotFound, err)
	})

	t.Run("delete cascades to credits only", func(t *testing.T) {
		f := newFixture(t)
		doomed := f.mustCreateMovie(t, "Doomed")
		kept := f.mustCreateMovie(t, "Kept")
		a := f.mustCreateActor(t, "Ensemble")
		gone := f.mustCreateCredit(t, "Performer", doomed, a)
		stays := f.mustCreateCredit(t, "Director", kept, a)

		require.NoError(t, f.movies.DeleteMovie(ctx, doomed.ID))

		_, err := f.credits.GetCredit(ctx, gone.ID)
		assert.Equal(t, credit.ErrNotFound, err)
		_, err = f.credits.GetCredit(ctx, stays.ID)
		assert.NoError(t, err)
		survivor, err := f.actors.GetActor(ctx, a.ID)
		require.NoError(t, err)
		assert.Len(t, survivor.Credits, 1)
	})
}

func TestActorRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("loads actor credits with embedded movie", func(t *testing.T) {
		f := newFixture(t)
		m := f.mustCreateMovie(t, "Aliens")
		a := f.mustCreateActor(t, "Sigourney Weaver")
		f.mustCreateCredit(t, "Performer", m, a)

		got, err := f.actors.GetActor(ctx, a.ID)

		require.NoError(t, err)
		require.Len(t, got.Credits, 1)
		require.NotNil(t, got.Credits[0].Movie)
		assert.Equal(t, "Aliens", got.Credits[0].Movie.Title)
		assert.Nil(t, got.Credits[0].Actor)
	})

	t.Run("updates actor", func(t *testing.T) {
		f := newFixture(t)
		a := f.mustCreateActor(t, "Old Name")
		a.Name, a.Age = "New Name", 41

		got, err := f.actors.UpdateActor(ctx, a)

		require.NoError(t, err)
		assert.Equal(t, "New Name", got.Name)
		assert.Equal(t, 41, got.Age)
	})

	t.Run("delete cascades to credits", func(t *testing.T) {
		f := newFixture(t)
		m := f.mustCreateMovie(t, "Heat")
		a := f.mustCreateActor(t, "Val Kilmer")
		c := f.mustCreateCredit(t, "Performer", m, a)

		require.NoError(t, f.actors.DeleteActor(ctx, a.ID))

		_, err := f.actors.GetActor(ctx, a.ID)
		assert.Equal(t, actor.ErrNotFound, err)
		_, err = f.credits.GetCredit(ctx, c.ID)
		assert.Equal(t, credit.ErrNotFound, err)
		remaining, err := f.movies.GetMovie(ctx, m.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining.Credits)
	})

	t.Run("delete unknown actor", func(t *testing.T) {
		f := newFixture(t)

		err := f.actors.DeleteActor(ctx, 12)

		assert.Equal(t, actor.ErrNotFound, err)
	})
}

func TestCreditRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects credit for missing movie", func(t *testing.T) {
		f := newFixture(t)
		a := f.mustCreateActor(t, "Nobody")

		_, err := f.credits.CreateCredit(ctx, credit.Credit{Role: "Producer", MovieID: 99, ActorID: a.ID})

		assert.Equal(t, credit.ErrMissingMovie, err)
	})

	t.Run("rejects credit for missing actor", func(t *testing.T) {
		f := newFixture(t)
		m := f.mustCreateMovie(t, "Orphan")

		_, err := f.credits.CreateCredit(ctx, credit.Credit{Role: "Producer", MovieID: m.ID, ActorID: 99})

		assert.Equal(t, credit.ErrMissingActor, err)
	})

	t.Run("lists credits with both sides", func(t *testing.T) {
		f := newFixture(t)
		m := f.mustCreateMovie(t, "Up")
		a := f.mustCreateActor(t, "Ed Asner")
		created := f.mustCreateCredit(t, "Sound Design", m, a)

		credits, err := f.credits.AllCredits(ctx)

		require.NoError(t, err)
		require.Len(t, credits, 1)
		assert.Equal(t, created, credits[0])
		assert.Equal(t, "Up", credits[0].Movie.Title)
		assert.Equal(t, "Ed Asner", credits[0].Actor.Name)
	})

	t.Run("deletes single credit", func(t *testing.T) {
		f := newFixture(t)
		m := f.mustCreateMovie(t, "Coco")
		a := f.mustCreateActor(t, "Gael")
		c := f.mustCreateCredit(t, "Performer", m, a)

		require.NoError(t, f.credits.DeleteCredit(ctx, c.ID))

		assert.Equal(t, credit.ErrNotFound, f.credits.DeleteCredit(ctx, c.ID))
		_, err := f.movies.GetMovie(ctx, m.ID)
		assert.NoError(t, err)
	})

	t.Run("fails with closed database connection", func(t *testing.T) {
		db := mustCreateMemoryDatabase(t)
		repo := postgres.NewCreditRepository(db)
		sqlDB, _ := db.DB()
		sqlDB.Close()

		_, err := repo.AllCredits(ctx)

		assert.Error(t, err)
	})
}
