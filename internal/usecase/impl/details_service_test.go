package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "refnet/internal/domain/errors"
	"refnet/internal/domain/repository"
	mockRepo "refnet/internal/mocks/repository"
	mockSvc "refnet/internal/mocks/service"
	"refnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// detailsServiceFixtures holds all test dependencies for details service tests.
type detailsServiceFixtures struct {
	service     usecase.DetailsUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	detailsRepo *mockRepo.MockAccountDetailsRepository
	qrService   *mockSvc.MockReferralQRService
}

func createTestDetailsService(t *testing.T) detailsServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	detailsRepo := mockRepo.NewMockAccountDetailsRepository(t)
	qrService := mockSvc.NewMockReferralQRService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewDetailsService(DetailsServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		DetailsRepo: detailsRepo,
		QRService:   qrService,
		Logger:      logger,
	})

	return detailsServiceFixtures{
		service:     svc,
		txManager:   txManager,
		userRepo:    userRepo,
		detailsRepo: detailsRepo,
		qrService:   qrService,
	}
}

func TestDetailsService_GetAccount_Success(t *testing.T) {
	fx := createTestDetailsService(t)

	ctx := context.Background()
	user := testUser("test@example.com")
	details := testDetails(user.ID)

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.detailsRepo.EXPECT().FindByUserID(ctx, user.ID).Return(details, nil)

	output, err := fx.service.GetAccount(ctx, user.ID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user, output.User)
	assert.Equal(t, details, output.Details)
}

func TestDetailsService_GetAccount_UserNotFound(t *testing.T) {
	fx := createTestDetailsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetAccount(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestDetailsService_GetAccount_MissingDetailsTolerated(t *testing.T) {
	fx := createTestDetailsService(t)

	ctx := context.Background()
	user := testUser("test@example.com")

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.detailsRepo.EXPECT().
		FindByUserID(ctx, user.ID).
		Return(nil, repository.ErrAccountDetailsNotFound)

	output, err := fx.service.GetAccount(ctx, user.ID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user, output.User)
	assert.Nil(t, output.Details)
}

func TestDetailsService_UpdateAccountDetails_Success(t *testing.T) {
	fx := createTestDetailsService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := testDetails(userID)
	input := &usecase.UpdateDetailsInput{
		UserID:   userID,
		Headline: "Staff Engineer",
		Location: "Berlin",
		Skills:   []string{"go", "kubernetes"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDetailsRepo := mockRepo.NewMockAccountDetailsRepository(t)

			mockFactory.EXPECT().AccountDetailsRepo().Return(mockDetailsRepo)

			mockDetailsRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(existing, nil)

			mockDetailsRepo.EXPECT().
				Update(ctx, existing).
				Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateAccountDetails(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Staff Engineer", updated.Headline)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, []string{"go", "kubernetes"}, updated.Skills)
	// The referral code survives every update.
	assert.Equal(t, "REF-TESTCODE", updated.ReferralCode)
}

func TestDetailsService_UpdateAccountDetails_NotFound(t *testing.T) {
	fx := createTestDetailsService(t)

	ctx := context.Background()
	input := &usecase.UpdateDetailsInput{UserID: uuid.New(), Headline: "Staff Engineer"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDetailsRepo := mockRepo.NewMockAccountDetailsRepository(t)

			mockFactory.EXPECT().AccountDetailsRepo().Return(mockDetailsRepo)

			mockDetailsRepo.EXPECT().
				FindByUserID(ctx, input.UserID).
				Return(nil, repository.ErrAccountDetailsNotFound)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateAccountDetails(ctx, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDetailsNotFound)
}

func TestDetailsService_ReferralQR_Success(t *testing.T) {
	fx := createTestDetailsService(t)

	ctx := context.Background()
	userID := uuid.New()
	details := testDetails(userID)
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.detailsRepo.EXPECT().FindByUserID(ctx, userID).Return(details, nil)
	fx.qrService.EXPECT().GenerateInviteQR(details.ReferralCode).Return(pngBytes, nil)

	png, err := fx.service.ReferralQR(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, png)
}

func TestDetailsService_ReferralQR_MissingDetails(t *testing.T) {
	fx := createTestDetailsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.detailsRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrAccountDetailsNotFound)

	png, err := fx.service.ReferralQR(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDetailsNotFound)
}

func TestDetailsService_ReferralQR_GenerationFailure(t *testing.T) {
	fx := createTestDetailsService(t)

	ctx := context.Background()
	userID := uuid.New()
	details := testDetails(userID)

	fx.detailsRepo.EXPECT().FindByUserID(ctx, userID).Return(details, nil)
	fx.qrService.EXPECT().
		GenerateInviteQR(details.ReferralCode).
		Return(nil, errors.New("encode failed"))

	png, err := fx.service.ReferralQR(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, png)
}
