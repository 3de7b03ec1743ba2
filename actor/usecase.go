package actor

import "context"

type Service interface {
	ListActors(ctx context.Context) ([]Actor, error)
	AddActor(ctx context.Context, a Actor) (Actor, error)
	GetActor(ctx context.Context, id int64) (Actor, error)
	UpdateActor(ctx context.Context, id int64, p Patch) (Actor, error)
	DeleteActor(ctx context.Context, id int64) error
}

// Repository stores actors. DeleteActor removes the actor's credits in
// the same transaction.
type Repository interface {
	AllActors(ctx context.Context) ([]Actor, error)
	CreateActor(ctx context.Context, a Actor) (Actor, error)
	GetActor(ctx context.Context, id int64) (Actor, error)
	UpdateActor(ctx context.Context, a Actor) (Actor, error)
	DeleteActor(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListActors(ctx context.Context) ([]Actor, error) {
	return uc.r.AllActors(ctx)
}

func (uc *Usecase) AddActor(ctx context.Context, a Actor) (Actor, error) {
	if err := a.Validate(); err != nil {
		return Actor{}, err
	}
	return uc.r.CreateActor(ctx, a)
}

func (uc *Usecase) GetActor(ctx context.Context, id int64) (Actor, error) {
	return uc.r.GetActor(ctx, id)
}

func (uc *Usecase) UpdateActor(ctx context.Context, id int64, p Patch) (Actor, error) {
	current, err := uc.r.GetActor(ctx, id)
	if err != nil {
		return Actor{}, err
	}

	updated, err := current.Apply(p)
	if err != nil {
		return Actor{}, err
	}
	return uc.r.UpdateActor(ctx, updated)
}

func (uc *Usecase) DeleteActor(ctx context.Context, id int64) error {
	return uc.r.DeleteActor(ctx, id)
}
