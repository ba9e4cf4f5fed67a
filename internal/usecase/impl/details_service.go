package impl

import (
	"context"
	"log/slog"

	deliverycontext "refnet/internal/delivery/context"
	"refnet/internal/domain/entity"
	domainerrors "refnet/internal/domain/errors"
	"refnet/internal/domain/repository"
	"refnet/internal/domain/service"
	"refnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// detailsService implements the DetailsUsecase interface.
type detailsService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	detailsRepo repository.AccountDetailsRepository
	qrService   service.ReferralQRService
	logger      *slog.Logger
}

// DetailsServiceParams holds dependencies for DetailsService, injected by Fx.
type DetailsServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	DetailsRepo repository.AccountDetailsRepository
	QRService   service.ReferralQRService
	Logger      *slog.Logger
}

// NewDetailsService is the constructor for detailsService.
func NewDetailsService(params DetailsServiceParams) usecase.DetailsUsecase {
	return &detailsService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		detailsRepo: params.DetailsRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *detailsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAccount returns the user together with their account details. A missing
// companion record yields nil details rather than an error.
func (srv *detailsService) GetAccount(ctx context.Context, userID uuid.UUID) (*usecase.AccountOutput, error) {
	srv.log(ctx).Debug("Getting account", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	details, err := srv.detailsRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrAccountDetailsNotFound) {
			return nil, errors.Wrap(err, "failed to find account details")
		}

		srv.log(ctx).Warn("Account details missing for user", slog.Any("userID", userID))
		details = nil
	}

	return &usecase.AccountOutput{User: user, Details: details}, nil
}

// UpdateAccountDetails replaces the mutable profile fields of the companion
// record. The referral code never changes.
func (srv *detailsService) UpdateAccountDetails(ctx context.Context, input *usecase.UpdateDetailsInput) (*entity.AccountDetails, error) {
	srv.log(ctx).Info("Updating account details", slog.Any("userID", input.UserID))

	var updated *entity.AccountDetails

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		detailsRepo := repoFactory.AccountDetailsRepo()

		details, err := detailsRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountDetailsNotFound) {
				return errors.Wrap(domainerrors.ErrAccountDetailsNotFound, "account details not found")
			}

			return errors.Wrap(err, "failed to find account details")
		}

		details.Headline = input.Headline
		details.Location = input.Location
		details.Company = input.Company
		details.Bio = input.Bio
		details.Skills = input.Skills
		details.Links = input.Links

		if err := detailsRepo.Update(ctx, details); err != nil {
			return errors.Wrap(err, "failed to update account details")
		}

		updated = details

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute account details update transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account details update transaction")
	}

	return updated, nil
}

// ReferralQR renders the PNG QR code for the user's referral invite link.
func (srv *detailsService) ReferralQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	srv.log(ctx).Debug("Generating referral QR", slog.Any("userID", userID))

	details, err := srv.detailsRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountDetailsNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountDetailsNotFound, "account details not found")
		}

		return nil, errors.Wrap(err, "failed to find account details")
	}

	png, err := srv.qrService.GenerateInviteQR(details.ReferralCode)
	if err != nil {
		srv.log(ctx).Error("Failed to generate referral QR", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate referral QR code")
	}

	return png, nil
}
