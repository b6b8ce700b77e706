package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petros-hq/petros-api/pkg/apperror"
)

const jwtTestSecret = "jwt-test-secret"

func TestValidateTokenRoundTrip(t *testing.T) {
	userID := uuid.New()
	companyID := uuid.New()

	token, err := GenerateToken(userID, "ama@petros.test", "staff", companyID, jwtTestSecret, 1)
	require.NoError(t, err)

	claims, err := ValidateToken(token, jwtTestSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ama@petros.test", claims.Email)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, companyID, claims.CompanyID)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "ama@petros.test", "staff", uuid.New(), jwtTestSecret, -1)
	require.NoError(t, err)

	_, err = ValidateToken(token, jwtTestSecret)
	assert.ErrorIs(t, err, apperror.ErrTokenExpired)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "ama@petros.test", "staff", uuid.New(), jwtTestSecret, 1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestValidateRefreshTokenExpired(t *testing.T) {
	token, err := GenerateRefreshToken(uuid.New(), jwtTestSecret, -1)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(token, jwtTestSecret)
	assert.ErrorIs(t, err, apperror.ErrTokenExpired)
}
