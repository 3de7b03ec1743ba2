package credit_test

import (
	"context"
	"testing"

	"moviecredits/credit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) AllCredits(ctx context.Context) ([]credit.Credit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]credit.Credit), args.Error(1)
}

func (m *MockCreditRepository) CreateCredit(ctx context.Context, c credit.Credit) (credit.Credit, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(credit.Credit), args.Error(1)
}

func (m *MockCreditRepository) GetCredit(ctx context.Context, id int64) (credit.Credit, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(credit.Credit), args.Error(1)
}

func (m *MockCreditRepository) DeleteCredit(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAddCredit(t *testing.T) {
	tests := []struct {
		name    string
		credit  credit.Credit
		wantErr error
	}{
		{
			name:   "valid performer credit",
			credit: credit.Credit{Role: "Performer", MovieID: 1, ActorID: 2},
		},
		{
			name:   "valid multi word role",
			credit: credit.Credit{Role: "Lighting Design", MovieID: 1, ActorID: 2},
		},
		{
			name:    "unknown role",
			credit:  credit.Credit{Role: "Stunt Double", MovieID: 1, ActorID: 2},
			wantErr: credit.ErrInvalidRole,
		},
		{
			name:    "lowercase role",
			credit:  credit.Credit{Role: "director", MovieID: 1, ActorID: 2},
			wantErr: credit.ErrInvalidRole,
		},
		{
			name:    "missing movie",
			credit:  credit.Credit{Role: "Director", ActorID: 2},
			wantErr: credit.ErrInvalidParent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := new(MockCreditRepository)
			uc := credit.NewUsecase(r)
			if tt.wantErr == nil {
				r.On("CreateCredit", mock.Anything, tt.credit).Return(tt.credit, nil).Once()
			}

			_, err := uc.AddCredit(context.Background(), tt.credit)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				r.AssertNotCalled(t, "CreateCredit")
				return
			}
			assert.NoError(t, err)
			r.AssertExpectations(t)
		})
	}
}

func TestListCredits(t *testing.T) {
	r := new(MockCreditRepository)
	uc := credit.NewUsecase(r)
	credits := []credit.Credit{{ID: 1, Role: "Producer", MovieID: 1, ActorID: 1}}
	r.On("AllCredits", mock.Anything).Return(credits, nil).Once()

	got, err := uc.ListCredits(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, credits, got)
}

func TestRolesWhitelist(t *testing.T) {
	assert.Len(t, credit.Roles, 7)
	for _, role := range credit.Roles {
		assert.NoError(t, credit.ValidateRole(role))
	}
}
