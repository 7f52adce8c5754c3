//go:build e2e

package helper

import (
	"testing"
	"time"

	"canteen-core/internal/domain/user"
	"canteen-core/internal/pkg/config"
	"canteen-core/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTTestHelper mints tokens directly; there is no login endpoint to call.
type JWTTestHelper struct {
	cfg config.JWTConfig
}

func NewJWTTestHelper(cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{cfg: cfg}
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
