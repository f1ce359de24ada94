package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"halalfinder/internal/errors"
	"halalfinder/internal/model"
	"halalfinder/internal/service"
)

// SearchHandler handles the public restaurant search endpoint.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchResponse represents a successful search response.
type SearchResponse struct {
	Status      string                   `json:"status"`
	Restaurants []model.RestaurantResult `json:"restaurants"`
}

// Search godoc
// @Summary Search halal restaurants near a location
// @Tags restaurants
// @Produce json
// @Param location query string false "Free-text location"
// @Param latitude query number false "Latitude (with longitude)"
// @Param longitude query number false "Longitude (with latitude)"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /halal-restaurants [get]
func (h *SearchHandler) Search(c echo.Context) error {
	q := service.SearchQuery{Location: c.QueryParam("location")}

	latStr, lngStr := c.QueryParam("latitude"), c.QueryParam("longitude")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "latitude and longitude must be numbers")
		}
		q.Latitude, q.Longitude, q.HasCoords = lat, lng, true
	}

	restaurants, err := h.searchService.Search(c.Request().Context(), q)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Status:      "success",
		Restaurants: restaurants,
	})
}
