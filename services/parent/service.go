package parent

import (
	"context"
	"fmt"

	parentRepo "tutoria/database/repository/parent"
	"tutoria/models"
	"tutoria/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ParentService manages parent accounts and parent sign-in.
type ParentService interface {
	Register(req models.ParentRegisterRequest) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	GetParentByID(id string) (*models.Parent, error)
	RevokeToken(parentID string) error
}

// DefaultParentService is the production implementation.
type DefaultParentService struct {
	Repo parentRepo.ParentRepository
}

// Register creates a parent account and signs the caller in.
func (s *DefaultParentService) Register(req models.ParentRegisterRequest) (*models.AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	parent := &models.Parent{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
	}
	if err := s.Repo.Create(parent); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("parent account created", zap.String("parentID", parent.ID))
	return s.issueToken(parent)
}

// Authenticate verifies credentials and issues a JWT.
func (s *DefaultParentService) Authenticate(email, password string) (*models.AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("parent authentication lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.issueToken(rec)
}

// GetParentByID fetches a single parent account.
func (s *DefaultParentService) GetParentByID(id string) (*models.Parent, error) {
	return s.Repo.GetByID(id)
}

// RevokeToken invalidates a parent's cached token.
func (s *DefaultParentService) RevokeToken(parentID string) error {
	cacheKey := utils.AuthCachePrefix + parentID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *DefaultParentService) issueToken(parent *models.Parent) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(parent.ID, utils.RoleParent, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + parent.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to cache auth token: %w", err)
	}

	return &models.AuthResponse{
		ID:       parent.ID,
		Token:    token,
		FullName: parent.FullName,
		Email:    parent.Email,
		Role:     utils.RoleParent,
	}, nil
}
