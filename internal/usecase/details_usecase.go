package usecase

import (
	"context"

	"refnet/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateDetailsInput defines the mutable fields of the companion
// account-details record. The referral code is immutable once assigned.
type UpdateDetailsInput struct {
	UserID   uuid.UUID
	Headline string
	Location string
	Company  string
	Bio      string
	Skills   []string
	Links    []entity.Link
}

// AccountOutput returns a user together with their account details.
type AccountOutput struct {
	User    *entity.User
	Details *entity.AccountDetails
}

// DetailsUsecase defines the interface for account profile operations.
type DetailsUsecase interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*AccountOutput, error)
	UpdateAccountDetails(ctx context.Context, input *UpdateDetailsInput) (*entity.AccountDetails, error)
	ReferralQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
