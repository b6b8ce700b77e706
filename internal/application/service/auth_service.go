package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/config"
	"github.com/petros-hq/petros-api/internal/domain/entity"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"github.com/petros-hq/petros-api/internal/domain/repository"
	"github.com/petros-hq/petros-api/pkg/apperror"
	"github.com/petros-hq/petros-api/pkg/utils"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtConfig   config.JWTConfig
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtConfig config.JWTConfig) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtConfig:   jwtConfig,
	}
}

// AuthTokens carries the issued token pair.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*entity.User, *AuthTokens, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// RegisterInput represents the register input
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new staff user under the default company. Admin
// accounts are never self-registered; they come from the seeded admin
// configuration.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, *AuthTokens, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, apperror.NewConflictError("Email already registered")
	}

	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(companies) == 0 {
		return nil, nil, apperror.NewBadRequestError("No company configured")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &entity.User{
		CompanyID: companies[0].ID,
		Name:      input.Name,
		Email:     input.Email,
		Password:  hashed,
		Role:      enum.UserRoleStaff,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// Refresh validates a refresh token and issues a fresh token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	userID, err := utils.ValidateRefreshToken(refreshToken, s.jwtConfig.Secret)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// GetProfile returns the user with their company loaded
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateProfileInput represents the profile update input
type UpdateProfileInput struct {
	UserID uuid.UUID
	Name   *string
	Email  *string
}

// UpdateProfile updates the caller's own name and email
func (s *AuthService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.Email != nil && *input.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Email already registered")
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before setting a new one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if !utils.CheckPasswordHash(current, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashed, err := utils.HashPassword(next)
	if err != nil {
		return err
	}

	user.Password = hashed
	return s.userRepo.Update(ctx, user)
}

func (s *AuthService) issueTokens(user *entity.User) (*AuthTokens, error) {
	access, err := utils.GenerateToken(
		user.ID, user.Email, user.Role.String(), user.CompanyID,
		s.jwtConfig.Secret, int(s.jwtConfig.ExpiryHours.Hours()))
	if err != nil {
		return nil, err
	}

	refresh, err := utils.GenerateRefreshToken(
		user.ID, s.jwtConfig.Secret, int(s.jwtConfig.RefreshExpiryHours.Hours()/24))
	if err != nil {
		return nil, err
	}

	return &AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}
