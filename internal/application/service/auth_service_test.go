package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petros-hq/petros-api/internal/config"
	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/pkg/apperror"
	"github.com/petros-hq/petros-api/pkg/utils"
)

type fakeUserRepo struct {
	repository.UserRepository
	byEmail map[string]*entity.User
	created []*entity.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	f.created = append(f.created, user)
	return nil
}

type fakeCompanyRepo struct {
	repository.CompanyRepository
	companies []entity.Company
}

func (f *fakeCompanyRepo) List(ctx context.Context) ([]entity.Company, error) {
	return f.companies, nil
}

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	users := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	companies := &fakeCompanyRepo{companies: []entity.Company{{ID: uuid.New(), CompanyName: "Petros Ventures"}}}
	jwtCfg := config.JWTConfig{
		Secret:             "test-secret",
		ExpiryHours:        time.Hour,
		RefreshExpiryHours: 7 * 24 * time.Hour,
	}
	return NewAuthService(users, companies, jwtCfg), users
}

func TestRegisterAssignsStaffRole(t *testing.T) {
	svc, users := newAuthFixture()

	user, tokens, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Ama",
		Email:    "ama@petros.test",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	assert.Equal(t, enum.UserRoleStaff, user.Role)
	require.Len(t, users.created, 1)
	assert.Equal(t, enum.UserRoleStaff, users.created[0].Role)
}

func TestRegisterNeverGrantsAdminFromRequestPayload(t *testing.T) {
	// A registration input carries no role at all; whatever the caller
	// put in the request body, the stored user is staff.
	svc, _ := newAuthFixture()

	user, _, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Mallory",
		Email:    "mallory@petros.test",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, enum.UserRoleAdmin, user.Role)

	claims, err := utils.ValidateToken(mustAccessToken(t, svc, user), "test-secret")
	require.NoError(t, err)
	assert.Equal(t, enum.UserRoleStaff.String(), claims.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, _, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Ama",
		Email:    "ama@petros.test",
		Password: "password123",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), &RegisterInput{
		Name:     "Kofi",
		Email:    "ama@petros.test",
		Password: "password456",
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, users := newAuthFixture()

	hashed, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	users.byEmail["ama@petros.test"] = &entity.User{
		ID:       uuid.New(),
		Email:    "ama@petros.test",
		Password: hashed,
		Role:     enum.UserRoleStaff,
	}

	_, _, err = svc.Login(context.Background(), &LoginInput{
		Email:    "ama@petros.test",
		Password: "battery-staple",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func mustAccessToken(t *testing.T, svc *AuthService, user *entity.User) string {
	t.Helper()
	tokens, err := svc.issueTokens(user)
	require.NoError(t, err)
	return tokens.AccessToken
}
