package movie

import "context"

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	GetMovie(ctx context.Context, id int64) (Movie, error)
	UpdateMovie(ctx context.Context, id int64, p Patch) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// Repository stores movies. DeleteMovie removes the movie's credits in
// the same transaction.
type Repository interface {
	AllMovies(ctx context.Context) ([]Movie, error)
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	GetMovie(ctx context.Context, id int64) (Movie, error)
	UpdateMovie(ctx context.Context, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.AllMovies(ctx)
}

func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.CreateMovie(ctx, m)
}

func (uc *Usecase) GetMovie(ctx context.Context, id int64) (Movie, error) {
	return uc.r.GetMovie(ctx, id)
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id int64, p Patch) (Movie, error) {
	current, err := uc.r.GetMovie(ctx, id)
	if err != nil {
		return Movie{}, err
	}

	updated, err := current.Apply(p)
	if err != nil {
		return Movie{}, err
	}
	return uc.r.UpdateMovie(ctx, updated)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id int64) error {
	return uc.r.DeleteMovie(ctx, id)
}
