package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"refnet/internal/delivery/http/validator"
	"refnet/internal/domain/entity"
	domainerrors "refnet/internal/domain/errors"
	"refnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase lets each test control the usecase outcome directly.
type stubAccountUsecase struct {
	registerFn func(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error)
	loginFn    func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
}

func (s *stubAccountUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

type stubSessionUsecase struct {
	refreshFn   func(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error)
	logoutFn    func(ctx context.Context, input *usecase.LogoutInput) error
	logoutAllFn func(ctx context.Context, userID uuid.UUID) error
}

func (s *stubSessionUsecase) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	return s.refreshFn(ctx, input)
}

func (s *stubSessionUsecase) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	return s.logoutFn(ctx, input)
}

func (s *stubSessionUsecase) LogoutAllDevices(ctx context.Context, userID uuid.UUID) error {
	return s.logoutAllFn(ctx, userID)
}

type stubDetailsUsecase struct {
	getAccountFn func(ctx context.Context, userID uuid.UUID) (*usecase.AccountOutput, error)
	updateFn     func(ctx context.Context, input *usecase.UpdateDetailsInput) (*entity.AccountDetails, error)
	referralQRFn func(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

func (s *stubDetailsUsecase) GetAccount(ctx context.Context, userID uuid.UUID) (*usecase.AccountOutput, error) {
	return s.getAccountFn(ctx, userID)
}

func (s *stubDetailsUsecase) UpdateAccountDetails(ctx context.Context, input *usecase.UpdateDetailsInput) (*entity.AccountDetails, error) {
	return s.updateFn(ctx, input)
}

func (s *stubDetailsUsecase) ReferralQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	return s.referralQRFn(ctx, userID)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAccountHandler_RegisterUser(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	accountUC := &stubAccountUsecase{
		registerFn: func(_ context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
			return &usecase.RegisterOutput{
				User: &entity.User{
					ID:           userID,
					Email:        input.Email,
					Name:         input.Name,
					PasswordHash: "$2a$10$secret",
					CreatedAt:    now,
					UpdatedAt:    now,
				},
				Details: &entity.AccountDetails{
					UserID:       userID,
					ReferralCode: "REF-ABCD2345",
					Headline:     input.Headline,
					UpdatedAt:    now,
				},
			}, nil
		},
	}

	handler := &AccountHandler{
		accountUC: accountUC,
		logger:    discardLogger(),
	}

	body := `{"name":"Ada Lovelace","email":"ada@example.com","password":"Str0ng!Passw0rd","headline":"Engineer"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/register", body)

	require.NoError(t, handler.RegisterUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "ada@example.com")
	assert.Contains(t, responseBody, "REF-ABCD2345")
	assert.NotContains(t, responseBody, "$2a$10$secret", "password hash must never leave the API")
}

func TestAccountHandler_RegisterUser_InvalidJSON(t *testing.T) {
	handler := &AccountHandler{logger: discardLogger()}

	c, rec := newTestContext(t, http.MethodPost, "/auth/register", `{"email":`)

	require.NoError(t, handler.RegisterUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_RegisterUser_MissingEmail(t *testing.T) {
	handler := &AccountHandler{logger: discardLogger()}

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"name":"Ada","password":"Str0ng!Passw0rd"}`)

	err := handler.RegisterUser(c)
	require.Error(t, err)

	httpErr := &echo.HTTPError{}
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_Login_MissingDetailsOmitted(t *testing.T) {
	userID := uuid.New()

	accountUC := &stubAccountUsecase{
		loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return &usecase.LoginOutput{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				User: &entity.User{
					ID:    userID,
					Email: input.Email,
					Name:  "Ada Lovelace",
				},
				Details: nil,
			}, nil
		},
	}

	handler := &AccountHandler{
		accountUC: accountUC,
		logger:    discardLogger(),
	}

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"Str0ng!Passw0rd"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "access-token")
	assert.Contains(t, responseBody, "refresh-token")
	assert.NotContains(t, responseBody, "details", "nil details must be omitted from the payload")
}

func TestAccountHandler_Login_PropagatesUsecaseError(t *testing.T) {
	accountUC := &stubAccountUsecase{
		loginFn: func(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials
		},
	}

	handler := &AccountHandler{
		accountUC: accountUC,
		logger:    discardLogger(),
	}

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

	err := handler.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountHandler_RefreshToken(t *testing.T) {
	sessionUC := &stubSessionUsecase{
		refreshFn: func(_ context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
			assert.Equal(t, "old-refresh-token", input.RefreshToken)

			return &usecase.RefreshTokenOutput{AccessToken: "new-access-token"}, nil
		},
	}

	handler := &AccountHandler{
		sessionUC: sessionUC,
		logger:    discardLogger(),
	}

	c, rec := newTestContext(t, http.MethodPost, "/auth/refresh", `{"refresh_token":"old-refresh-token"}`)

	require.NoError(t, handler.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access-token")
}

func TestAccountHandler_LogoutAllDevices_RequiresAuthenticatedUser(t *testing.T) {
	handler := &AccountHandler{logger: discardLogger()}

	c, rec := newTestContext(t, http.MethodPost, "/account/logout-all", "")

	require.NoError(t, handler.LogoutAllDevices(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAccountHandler_UpdateDetails(t *testing.T) {
	userID := uuid.New()

	detailsUC := &stubDetailsUsecase{
		updateFn: func(_ context.Context, input *usecase.UpdateDetailsInput) (*entity.AccountDetails, error) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, "Platform Engineer", input.Headline)

			return &entity.AccountDetails{
				UserID:       userID,
				ReferralCode: "REF-ABCD2345",
				Headline:     input.Headline,
				Skills:       input.Skills,
			}, nil
		},
	}

	handler := &AccountHandler{
		detailsUC: detailsUC,
		logger:    discardLogger(),
	}

	body := `{"headline":"Platform Engineer","skills":["go","postgres"]}`
	c, rec := newTestContext(t, http.MethodPut, "/account/details", body)
	c.Set("userID", userID)

	require.NoError(t, handler.UpdateDetails(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Platform Engineer")
	assert.Contains(t, rec.Body.String(), "REF-ABCD2345")
}

func TestAccountHandler_ReferralQR(t *testing.T) {
	userID := uuid.New()
	pngPayload := []byte{0x89, 0x50, 0x4E, 0x47}

	detailsUC := &stubDetailsUsecase{
		referralQRFn: func(_ context.Context, gotID uuid.UUID) ([]byte, error) {
			assert.Equal(t, userID, gotID)

			return pngPayload, nil
		},
	}

	handler := &AccountHandler{
		detailsUC: detailsUC,
		logger:    discardLogger(),
	}

	c, rec := newTestContext(t, http.MethodGet, "/account/referral/qr", "")
	c.Set("userID", userID)

	require.NoError(t, handler.ReferralQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngPayload, rec.Body.Bytes())
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
