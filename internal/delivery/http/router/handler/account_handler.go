// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"refnet/internal/delivery/http/response"
	"refnet/internal/domain/entity"
	"refnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	sessionUC usecase.SessionUsecase
	detailsUC usecase.DetailsUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(
	accountUC usecase.AccountUsecase,
	sessionUC usecase.SessionUsecase,
	detailsUC usecase.DetailsUsecase,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		sessionUC: sessionUC,
		detailsUC: detailsUC,
		logger:    logger,
	}
}

// --- Request DTOs ---

type registerRequest struct {
	Name     string        `json:"name" validate:"required"`
	Email    string        `json:"email" validate:"required,email"`
	Password string        `json:"password" validate:"required"`
	Headline string        `json:"headline"`
	Location string        `json:"location"`
	Company  string        `json:"company"`
	Bio      string        `json:"bio"`
	Skills   []string      `json:"skills"`
	Links    []entity.Link `json:"links"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type updateDetailsRequest struct {
	Headline string        `json:"headline"`
	Location string        `json:"location"`
	Company  string        `json:"company"`
	Bio      string        `json:"bio"`
	Skills   []string      `json:"skills"`
	Links    []entity.Link `json:"links"`
}

// --- Response DTOs ---

// userResponse deliberately excludes the password hash.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type detailsResponse struct {
	ReferralCode string        `json:"referral_code"`
	Headline     string        `json:"headline,omitempty"`
	Location     string        `json:"location,omitempty"`
	Company      string        `json:"company,omitempty"`
	Bio          string        `json:"bio,omitempty"`
	Skills       []string      `json:"skills,omitempty"`
	Links        []entity.Link `json:"links,omitempty"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type accountResponse struct {
	User    userResponse     `json:"user"`
	Details *detailsResponse `json:"details,omitempty"`
}

type loginResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	User         userResponse     `json:"user"`
	Details      *detailsResponse `json:"details,omitempty"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toDetailsResponse(details *entity.AccountDetails) *detailsResponse {
	if details == nil {
		return nil
	}

	return &detailsResponse{
		ReferralCode: details.ReferralCode,
		Headline:     details.Headline,
		Location:     details.Location,
		Company:      details.Company,
		Bio:          details.Bio,
		Skills:       details.Skills,
		Links:        details.Links,
		UpdatedAt:    details.UpdatedAt,
	}
}

// RegisterUser handles the account registration request.
func (h *AccountHandler) RegisterUser(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.accountUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Headline: req.Headline,
		Location: req.Location,
		Company:  req.Company,
		Bio:      req.Bio,
		Skills:   req.Skills,
		Links:    req.Links,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, accountResponse{
		User:    toUserResponse(output.User),
		Details: toDetailsResponse(output.Details),
	}, "User registered successfully")
}

// Login handles the account login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserResponse(output.User),
		Details:      toDetailsResponse(output.Details),
	}, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.sessionUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": output.AccessToken}, "Token refreshed successfully")
}

// Logout handles the logout request.
func (h *AccountHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.sessionUC.Logout(c.Request().Context(), &usecase.LogoutInput{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// LogoutAllDevices terminates every session of the authenticated user.
func (h *AccountHandler) LogoutAllDevices(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.sessionUC.LogoutAllDevices(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out from all devices"}, "Logout successful")
}

// GetAccount returns the authenticated user together with their details.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.detailsUC.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accountResponse{
		User:    toUserResponse(output.User),
		Details: toDetailsResponse(output.Details),
	}, "Account retrieved successfully")
}

// UpdateDetails replaces the authenticated user's account details.
func (h *AccountHandler) UpdateDetails(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateDetailsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account details input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	details, err := h.detailsUC.UpdateAccountDetails(c.Request().Context(), &usecase.UpdateDetailsInput{
		UserID:   userID,
		Headline: req.Headline,
		Location: req.Location,
		Company:  req.Company,
		Bio:      req.Bio,
		Skills:   req.Skills,
		Links:    req.Links,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDetailsResponse(details), "Account details updated successfully")
}

// ReferralQR renders the authenticated user's referral invite QR code as PNG.
func (h *AccountHandler) ReferralQR(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.detailsUC.ReferralQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
