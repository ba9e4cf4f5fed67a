package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This lets the use case layer keep multi-step writes atomic without
// depending on a specific DB driver.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise it is committed. All repository instances obtained from the
	// factory share the same transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// AccountDetailsRepo returns an AccountDetailsRepository bound to the current transaction.
	AccountDetailsRepo() AccountDetailsRepository

	// RefreshTokenRepo returns a RefreshTokenRepository bound to the current transaction.
	RefreshTokenRepo() RefreshTokenRepository
}
