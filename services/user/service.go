package user

import (
	"context"
	"strings"
	"time"

	"courtside/models"
	"courtside/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register creates an account with the base USER role and logs it in.
func (s *DefaultUserService) Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.Logger.Info("user registered", zap.String("userId", u.ID))
	return s.issueToken(ctx, u)
}

// Authenticate checks credentials and issues a fresh bearer token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, u)
}

// GetByID loads a user by id.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// RevokeToken invalidates the user's current token in both the auth cache
// and the persistent record.
func (s *DefaultUserService) RevokeToken(ctx context.Context, id string) error {
	if client := utils.GetAuthCacheClient(); client != nil {
		if err := client.Del(ctx, utils.AuthCachePrefix+id).Err(); err != nil {
			s.Logger.Warn("failed to evict auth cache entry", zap.String("userId", id), zap.Error(err))
		}
	}
	return s.Repo.UpdateTokenHash(ctx, id, "")
}

// issueToken signs a JWT, records its hash for revocation checks, and caches
// the hash in Redis so the auth middleware can validate without a DB hit.
func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, err
	}
	hash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(ctx, u.ID, hash); err != nil {
		return nil, err
	}
	u.TokenHash = hash
	if client := utils.GetAuthCacheClient(); client != nil {
		if err := client.Set(ctx, utils.AuthCachePrefix+u.ID, hash, tokenTTL).Err(); err != nil {
			s.Logger.Warn("failed to cache auth token hash", zap.String("userId", u.ID), zap.Error(err))
		}
	}
	return &models.AuthResponse{Token: token, User: *u}, nil
}
