package credit

import "context"

type Service interface {
	ListCredits(ctx context.Context) ([]Credit, error)
	AddCredit(ctx context.Context, c Credit) (Credit, error)
	GetCredit(ctx context.Context, id int64) (Credit, error)
	DeleteCredit(ctx context.Context, id int64) error
}

// Repository stores credits. CreateCredit returns ErrMissingMovie or
// ErrMissingActor when a referenced record does not exist.
type Repository interface {
	AllCredits(ctx context.Context) ([]Credit, error)
	CreateCredit(ctx context.Context, c Credit) (Credit, error)
	GetCredit(ctx context.Context, id int64) (Credit, error)
	DeleteCredit(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListCredits(ctx context.Context) ([]Credit, error) {
	return uc.r.AllCredits(ctx)
}

func (uc *Usecase) AddCredit(ctx context.Context, c Credit) (Credit, error) {
	if err := c.Validate(); err != nil {
		return Credit{}, err
	}
	return uc.r.CreateCredit(ctx, c)
}

func (uc *Usecase) GetCredit(ctx context.Context, id int64) (Credit, error) {
	return uc.r.GetCredit(ctx, id)
}

func (uc *Usecase) DeleteCredit(ctx context.Context, id int64) error {
	return uc.r.DeleteCredit(ctx, id)
}
