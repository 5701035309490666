package user

import (
	"context"
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	args := m.Called(ctx, id, tokenHash)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]models.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{}
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}

	repo.On("GetByEmail", mock.Anything, "asha@example.com").
		Return(&models.User{ID: "user-1", Email: "asha@example.com"}, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Asha", Email: "Asha@Example.com ", Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthenticateRejectsUnknownEmail(t *testing.T) {
	repo := &mockUserRepo{}
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}

	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, mongo.ErrNoDocuments)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	repo := &mockUserRepo{}
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetByEmail", mock.Anything, "asha@example.com").
		Return(&models.User{ID: "user-1", Email: "asha@example.com", PasswordHash: string(hash)}, nil)

	_, err = svc.Authenticate(context.Background(), "asha@example.com", "battery-staple")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
