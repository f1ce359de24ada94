package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"halalfinder/internal/auth"
	"halalfinder/internal/errors"
	"halalfinder/internal/model"
	"halalfinder/internal/service"
)

// UserHandler handles the authenticated profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile is a user plus the listings they own.
type Profile struct {
	ID          uint               `json:"id"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phone_number"`
	Restaurants []model.Restaurant `json:"restaurants"`
}

// ProfileResponse wraps a profile in the response envelope.
type ProfileResponse struct {
	Status  string  `json:"status"`
	Profile Profile `json:"profile"`
}

// UpdateProfileRequest represents a profile update; phone is the only
// mutable field.
type UpdateProfileRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// GetProfile godoc
// @Summary Get the caller's profile and owned restaurants
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	user, restaurants, err := h.userService.Profile(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Status: "success",
		Profile: Profile{
			ID:          user.ID,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			Restaurants: restaurants,
		},
	})
}

// UpdateProfile godoc
// @Summary Update the caller's phone number
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if _, err := h.userService.UpdatePhone(c.Request().Context(), userID, req.PhoneNumber); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	user, restaurants, err := h.userService.Profile(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Status: "success",
		Profile: Profile{
			ID:          user.ID,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			Restaurants: restaurants,
		},
	})
}
