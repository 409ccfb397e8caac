package staff

import (
	"context"
	"fmt"

	"tutoria/models"
	"tutoria/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials and issues a JWT. The token hash is
// cached in Redis; middleware rejects tokens whose hash is missing, which is
// how revocation works.
func (s *DefaultStaffService) Authenticate(email, password string) (*models.AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("staff authentication lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil || !rec.Active {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(rec.ID, rec.Role, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + rec.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to cache auth token: %w", err)
	}

	return &models.AuthResponse{
		ID:       rec.ID,
		Token:    token,
		FullName: rec.FullName,
		Email:    rec.Email,
		Role:     rec.Role,
	}, nil
}

// RevokeToken invalidates a staff member's cached token.
func (s *DefaultStaffService) RevokeToken(staffID string) error {
	cacheKey := utils.AuthCachePrefix + staffID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
