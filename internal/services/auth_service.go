package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"localgigs_backend/internal/appErrors"
	"localgigs_backend/internal/auth"
	"localgigs_backend/internal/email"
	"localgigs_backend/internal/logger"
	"localgigs_backend/internal/models"
	"localgigs_backend/internal/repositories"
	"localgigs_backend/internal/services/dto"
)

const refreshTokenTTL = 30 * 24 * time.Hour

// AuthService is the identity gateway: signup/login, token issue and
// refresh, password changes. It owns the users rows jointly with the
// user directory, since a profile is created at signup.
type AuthService struct {
	userRepo      repositories.UserRepository
	userService   *UserService
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	userService *UserService,
	emailProvider email.Provider,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		userService:   userService,
		emailProvider: emailProvider,
	}
}

func (s *AuthService) SignUp(req *dto.SignupRequest) (*dto.LoginResponse, error) {
	if len(req.Password) < auth.MinPasswordLength {
		return nil, appErrors.ErrWeakPassword
	}

	role := models.UserRole(req.UserType)
	if req.UserType == "" {
		role = models.UserRoleProfessional
	}
	if !models.ValidRole(role) {
		return nil, appErrors.ErrInvalidRole
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		JobTitle:     req.JobTitle,
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.StoreError("create user", err)
	}

	// Welcome mail must not block or fail the signup.
	go func(to, name string) {
		if err := s.emailProvider.SendWelcome(to, name); err != nil {
			logger.Warn("failed to send welcome email", "to", to, "error", err)
		}
	}(user.Email, user.FirstName)

	return s.issueTokens(user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.StoreError("load user", err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	if _, err := s.userService.EnsureRole(user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *AuthService) Refresh(refreshToken string) (*dto.LoginResponse, error) {
	token, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, appErrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         ToUserResponse(user),
	}, nil
}

func (s *AuthService) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return appErrors.StoreError("delete refresh token", err)
	}
	return nil
}

func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	if len(newPassword) < auth.MinPasswordLength {
		return appErrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.StoreError("load user", err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return appErrors.ErrInvalidCredentials
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(userID, passwordHash); err != nil {
		return appErrors.StoreError("update password", err)
	}

	// Old refresh tokens die with the old password.
	if err := s.userRepo.DeleteUserRefreshTokens(userID); err != nil {
		return appErrors.StoreError("revoke refresh tokens", err)
	}
	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     generateRandomToken(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(refreshToken); err != nil {
		return nil, appErrors.StoreError("create refresh token", err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         ToUserResponse(user),
	}, nil
}

func generateRandomToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
