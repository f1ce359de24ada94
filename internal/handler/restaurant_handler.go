package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"halalfinder/internal/auth"
	"halalfinder/internal/errors"
	"halalfinder/internal/model"
	"halalfinder/internal/service"
)

// RestaurantHandler handles the authenticated listing endpoints.
type RestaurantHandler struct {
	restaurantService service.RestaurantService
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(restaurantService service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// AddRestaurantRequest represents a claim-listing request.
type AddRestaurantRequest struct {
	Name               string `json:"name" validate:"required"`
	Address            string `json:"address" validate:"required"`
	PlaceID            string `json:"place_id" validate:"required"`
	PhoneNumber        string `json:"phone_number"`
	Website            string `json:"website"`
	HalalCertification string `json:"halal_certification"`
}

// RestaurantResponse wraps a created listing in the response envelope.
type RestaurantResponse struct {
	Status     string           `json:"status"`
	Restaurant model.Restaurant `json:"restaurant"`
}

// AddRestaurant godoc
// @Summary Claim a restaurant listing
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddRestaurantRequest true "Listing fields"
// @Success 201 {object} RestaurantResponse
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /restaurants [post]
func (h *RestaurantHandler) AddRestaurant(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req AddRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "name, address and place_id are required")
	}

	restaurant, err := h.restaurantService.Add(c.Request().Context(), userID, service.AddRestaurantInput{
		Name:               req.Name,
		Address:            req.Address,
		PlaceID:            req.PlaceID,
		PhoneNumber:        req.PhoneNumber,
		Website:            req.Website,
		HalalCertification: req.HalalCertification,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusCreated, RestaurantResponse{
		Status:     "success",
		Restaurant: *restaurant,
	})
}
