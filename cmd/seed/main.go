package main

import (
	"context"
	"os"

	"moviecredits/actor"
	"moviecredits/credit"
	"moviecredits/movie"
	"moviecredits/pkg/config"
	"moviecredits/pkg/logger"
	"moviecredits/pkg/storage"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
)

const defaultMovieLensURL = "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip"

type services struct {
	movies  movie.Service
	actors  actor.Service
	credits credit.Service
}

func main() {
	app := kingpin.New("seed", "Load movies, actors and credits into the configured database.")
	debug := app.Flag("debug", "Enable debug logging.").Bool()

	sampleCmd := app.Command("sample", "Insert the bundled sample movies, actors and credits.")

	lensCmd := app.Command("movielens", "Import movies from a MovieLens dataset.")
	csvDir := lensCmd.Flag("dir", "Directory holding movies.csv and ratings.csv (skips download).").ExistingDir()
	zipURL := lensCmd.Flag("url", "MovieLens zip URL.").Default(defaultMovieLensURL).URL()
	limit := lensCmd.Flag("limit", "Limit number of movies to import (0 = all).").Default("0").Int()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logger.New(logger.Options{Debug: *debug})
	defer log.Sync() // nolint: errcheck

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("load config failed", "error", err)
	}

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalw("cannot open storage", "driver", cfg.DB.Driver, "error", err)
	}
	defer repos.Close()

	svc := services{
		movies:  movie.NewUsecase(repos.Movies),
		actors:  actor.NewUsecase(repos.Actors),
		credits: credit.NewUsecase(repos.Credits),
	}

	switch command {
	case sampleCmd.FullCommand():
		err = runSample(ctx, log, svc)
	case lensCmd.FullCommand():
		err = runMovieLens(ctx, log, svc.movies, *csvDir, (*zipURL).String(), *limit)
	}
	if err != nil {
		log.Fatalw("seed failed", "command", command, "error", err)
	}
}

func runSample(ctx context.Context, log *zap.SugaredLogger, svc services) error {
	s, err := loadSample()
	if err != nil {
		return err
	}
	n, err := s.insert(ctx, svc)
	if err != nil {
		return err
	}
	log.Infow("sample inserted", "movies", n.movies, "actors", n.actors, "credits", n.credits)
	return nil
}

func runMovieLens(ctx context.Context, log *zap.SugaredLogger, movies movie.Service, dir, zipURL string, limit int) error {
	if dir == "" {
		path, cleanup, err := downloadAndExtract(zipURL)
		if err != nil {
			return err
		}
		defer cleanup()
		dir = path
	}

	imported, skipped, err := importMovies(ctx, movies, dir, limit)
	if err != nil {
		return err
	}
	log.Infow("import completed", "imported", imported, "skipped", skipped)
	return nil
}
