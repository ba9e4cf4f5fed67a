// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"refnet/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new account.
// Profile fields are optional and seed the companion account-details record.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string

	Headline string
	Location string
	Company  string
	Bio      string
	Skills   []string
	Links    []entity.Link
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user together with the companion
// account-details record created in the same transaction.
type RegisterOutput struct {
	User    *entity.User
	Details *entity.AccountDetails
}

// LoginOutput returns the authenticated user, their account details and the
// generated token pair. Details may be nil when the companion record is
// missing.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Details      *entity.AccountDetails
}

// AccountUsecase defines the interface for registration and login operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
