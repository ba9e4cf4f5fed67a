package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "refnet/internal/mocks/repository"
	mockSvc "refnet/internal/mocks/service"
	"refnet/internal/usecase"

	"github.com/google/uuid"

	"refnet/internal/domain/entity"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	detailsRepo      *mockRepo.MockAccountDetailsRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	eventPublisher   *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	detailsRepo := mockRepo.NewMockAccountDetailsRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		DetailsRepo:      detailsRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		EventPublisher:   eventPublisher,
		Logger:           logger,
	})

	return accountServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		detailsRepo:      detailsRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		eventPublisher:   eventPublisher,
	}
}

func testUser(email string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashed_password",
	}
}

func testDetails(userID uuid.UUID) *entity.AccountDetails {
	return &entity.AccountDetails{
		UserID:       userID,
		ReferralCode: "REF-TESTCODE",
		Headline:     "Backend Engineer",
		Skills:       []string{"go", "postgres"},
	}
}
