package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"house-rental-backend/internal/database/models"
	apperrors "house-rental-backend/internal/errors"
	"house-rental-backend/internal/events"
	"house-rental-backend/internal/logger"
	"house-rental-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenBytes = 32

// OwnerService handles owner accounts: signup, login and password reset
type OwnerService struct {
	repo          repository.OwnerRepositoryInterface
	publisher     events.Publisher
	validator     *validator.Validate
	resetTokenTTL time.Duration
	hashCost      int
	now           func() time.Time
}

// NewOwnerService creates a new owner service
func NewOwnerService(repo repository.OwnerRepositoryInterface, publisher events.Publisher, validator *validator.Validate, resetTokenTTL time.Duration) *OwnerService {
	return &OwnerService{
		repo:          repo,
		publisher:     publisher,
		validator:     validator,
		resetTokenTTL: resetTokenTTL,
		hashCost:      bcrypt.DefaultCost,
		now:           time.Now,
	}
}

// SignupRequest represents the owner registration form
type SignupRequest struct {
	FullName string `json:"fullname" form:"fullname" validate:"required,max=200"`
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required,password"`
}

// LoginRequest represents the owner login form
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// ForgotPasswordRequest represents a password reset request
type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email"`
}

// ResetPasswordRequest represents a password reset confirmation
type ResetPasswordRequest struct {
	Token       string `json:"token" form:"token"`
	NewPassword string `json:"newPassword" form:"newPassword" validate:"required,password"`
}

// OwnerResponse is the public view of an owner
type OwnerResponse struct {
	ID        uuid.UUID `json:"_id"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt string    `json:"createdAt"`
}

// PasswordResetToken is the freshly issued reset token
type PasswordResetToken struct {
	Token     string
	ExpiresAt time.Time
}

// Signup registers a new owner, storing only the bcrypt hash of the password
func (s *OwnerService) Signup(req *SignupRequest) (*OwnerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.repo.GetByUsernameOrEmail(req.Username, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing owner: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOwnerExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	owner := &models.Owner{
		FullName:     req.FullName,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(owner); err != nil {
		// lost a race with a concurrent signup
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrOwnerExists
		}
		return nil, fmt.Errorf("failed to create owner: %w", err)
	}

	return s.toResponse(owner), nil
}

// Login checks the credentials and returns the owner they belong to.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *OwnerService) Login(req *LoginRequest) (*OwnerResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	owner, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	return s.toResponse(owner), nil
}

// RequestPasswordReset issues a random reset token for the owner with the given email
func (s *OwnerService) RequestPasswordReset(ctx context.Context, req *ForgotPasswordRequest) (*PasswordResetToken, error) {
	if req.Email == "" {
		return nil, apperrors.ErrOwnerNotFound
	}

	owner, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	token, err := newResetToken()
	if err != nil {
		return nil, err
	}
	expiresAt := s.now().Add(s.resetTokenTTL)

	owner.ResetToken = &token
	owner.ResetTokenExpiry = &expiresAt
	if err := s.repo.Update(owner); err != nil {
		return nil, fmt.Errorf("failed to store reset token: %w", err)
	}

	event := events.PasswordResetRequested{
		OwnerID:   owner.ID,
		Email:     owner.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := s.publisher.Publish(ctx, events.KeyPasswordResetRequested, event); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to publish password reset event")
	}

	return &PasswordResetToken{Token: token, ExpiresAt: expiresAt}, nil
}

// ResetPassword replaces the password of the owner holding an unexpired token and clears the token
func (s *OwnerService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if req.Token == "" {
		return apperrors.ErrInvalidResetToken
	}

	owner, err := s.repo.GetByResetToken(req.Token, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("failed to get owner by reset token: %w", err)
	}

	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	owner.PasswordHash = string(hash)
	owner.ClearResetToken()
	if err := s.repo.Update(owner); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.WithContext(ctx).WithField("owner", owner.ID).Info("password reset")
	return nil
}

func (s *OwnerService) toResponse(owner *models.Owner) *OwnerResponse {
	return &OwnerResponse{
		ID:        owner.ID,
		FullName:  owner.FullName,
		Email:     owner.Email,
		Username:  owner.Username,
		CreatedAt: owner.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func newResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
