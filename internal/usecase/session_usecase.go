package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput returns the newly issued access token. The refresh
// token itself is not rotated.
type RefreshTokenOutput struct {
	AccessToken string
}

// LogoutInput defines the data required to terminate a session.
type LogoutInput struct {
	RefreshToken string
}

// SessionUsecase defines the interface for session lifecycle operations.
type SessionUsecase interface {
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	LogoutAllDevices(ctx context.Context, userID uuid.UUID) error
}
