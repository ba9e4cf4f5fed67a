package repository

import (
	"context"
	"errors"

	"refnet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountDetailsNotFound is returned when no companion record exists for a user.
var ErrAccountDetailsNotFound = errors.New("account details not found")

// AccountDetailsRepository defines persistence operations for the one-to-one
// companion record of a user. A record is only ever created as part of
// registration, keyed by the user's id.
type AccountDetailsRepository interface {
	// Create persists a new account-details record.
	Create(ctx context.Context, details *entity.AccountDetails) error

	// FindByUserID retrieves the companion record for the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AccountDetails, error)

	// FindByReferralCode retrieves the companion record carrying the given referral code.
	FindByReferralCode(ctx context.Context, code string) (*entity.AccountDetails, error)

	// Update modifies an existing account-details record.
	Update(ctx context.Context, details *entity.AccountDetails) error
}
