package service

import (
	"context"
	"io"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OwnerServiceInterface defines the interface for owner service
type OwnerServiceInterface interface {
	Signup(req *SignupRequest) (*OwnerResponse, error)
	Login(req *LoginRequest) (*OwnerResponse, error)
	RequestPasswordReset(ctx context.Context, req *ForgotPasswordRequest) (*PasswordResetToken, error)
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
}

// HouseServiceInterface defines the interface for house listing service
type HouseServiceInterface interface {
	CreateHouse(ctx context.Context, ownerID uuid.UUID, req *CreateHouseRequest, image *ImageUpload) (*HouseResponse, error)
	ListHouses(filter HouseListFilter) ([]HouseResponse, error)
	ListOwnerHouses(ownerID uuid.UUID) ([]HouseResponse, error)
	DeleteHouse(ctx context.Context, ownerID, id uuid.UUID) error
	OpenImage(ctx context.Context, name string) (io.ReadCloser, error)
}

// RequestServiceInterface defines the interface for tenant request service
type RequestServiceInterface interface {
	CreateRequest(ctx context.Context, req *CreateTenantRequest) (*TenantRequestResponse, error)
	ListOwnerRequests(ownerID uuid.UUID) ([]TenantRequestResponse, error)
}
