// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	deliverycontext "refnet/internal/delivery/context"
	"refnet/internal/domain/entity"
	domainerrors "refnet/internal/domain/errors"
	"refnet/internal/domain/repository"
	"refnet/internal/domain/service"
	"refnet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	detailsRepo      repository.AccountDetailsRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	DetailsRepo      repository.AccountDetailsRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	EventPublisher   service.EventPublisher
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		detailsRepo:      params.DetailsRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		eventPublisher:   params.EventPublisher,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete account registration process: an
// email availability pre-check, password hashing, and the transactional
// creation of the user together with its companion account-details record.
func (srv *accountService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	// Pre-check outside the transaction. The unique index on email remains
	// the authoritative guard; a concurrent registration that slips past this
	// check is caught by the constraint and mapped to the same error.
	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to check email availability", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}
	newDetails := buildNewAccountDetails(input)

	// User and companion record are created atomically; a half-registered
	// account must never be observable.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		detailsRepo := repoFactory.AccountDetailsRepo()

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newDetails.UserID = newUser.ID

		if err := detailsRepo.Create(ctx, newDetails); err != nil {
			return errors.Wrap(err, "failed to create account details during registration")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.publishRegisteredEvent(ctx, newUser, newDetails)

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser, Details: newDetails}, nil
}

// Login orchestrates the account login process. Unknown emails and wrong
// passwords stay distinguishable so the delivery layer can map them to
// different status codes.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// The companion record is expected to exist but its absence must not
	// block login.
	details, err := srv.detailsRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrAccountDetailsNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to load account details during login")
		}

		srv.log(ctx).Warn("Account details missing for user", slog.Any("userID", user.ID))
		details = nil
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, user, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
		Details:      details,
	}, nil
}

// storeRefreshToken hashes and persists a freshly issued refresh token.
func (srv *accountService) storeRefreshToken(ctx context.Context, user *entity.User, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// publishRegisteredEvent emits an account.registered event. Publishing is
// best-effort; a broker outage must not fail a committed registration.
func (srv *accountService) publishRegisteredEvent(ctx context.Context, user *entity.User, details *entity.AccountDetails) {
	event := &service.AccountEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventType:    service.EventTypeAccountRegistered,
		UserID:       user.ID.String(),
		Email:        user.Email,
		ReferralCode: details.ReferralCode,
		OccurredAt:   time.Now().UTC(),
	}

	if err := srv.eventPublisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account registered event", slog.Any("userID", user.ID), slog.Any("error", err))
	}
}

func buildNewAccountDetails(input *usecase.RegisterUserInput) *entity.AccountDetails {
	return &entity.AccountDetails{
		ReferralCode: newReferralCode(),
		Headline:     input.Headline,
		Location:     input.Location,
		Company:      input.Company,
		Bio:          input.Bio,
		Skills:       input.Skills,
		Links:        input.Links,
	}
}

// referralCodeCharset deliberately omits characters that are easy to confuse
// when a code is read aloud or typed from a printed invite.
const referralCodeCharset = "ABCDEFGHJKMNPQRSTVWXYZ23456789"

const referralCodeLength = 8

// newReferralCode generates a short human-shareable referral code.
func newReferralCode() string {
	buf := make([]byte, referralCodeLength)
	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(buf)

	code := make([]byte, referralCodeLength)
	for i, b := range buf {
		code[i] = referralCodeCharset[int(b)%len(referralCodeCharset)]
	}

	return "REF-" + string(code)
}
