package service

import (
	"context"
	"sync"

	apperrors "halalfinder/internal/errors"
	"halalfinder/internal/model"
	"halalfinder/internal/places"
)

// maxDetailWorkers bounds concurrent detail lookups within one search so a
// single request cannot flood the upstream API.
const maxDetailWorkers = 5

// PlacesGateway is the upstream surface the aggregator needs.
type PlacesGateway interface {
	TextSearch(ctx context.Context, bias places.SearchBias) ([]places.Summary, error)
	PlaceDetails(ctx context.Context, placeID string) (places.Details, error)
	PhotoURL(photoReference string) string
}

// SearchQuery is a client search: a free-text location or a coordinate pair.
type SearchQuery struct {
	Location  string
	Latitude  float64
	Longitude float64
	HasCoords bool
}

// SearchService aggregates text-search results with per-place detail lookups
// into normalized restaurant views.
type SearchService interface {
	Search(ctx context.Context, q SearchQuery) ([]model.RestaurantResult, error)
}

type searchService struct {
	gateway PlacesGateway
}

// NewSearchService creates a new search service over the given gateway.
func NewSearchService(gateway PlacesGateway) SearchService {
	return &searchService{gateway: gateway}
}

// Search requires exactly one location form; coordinates win when both are
// present. Detail lookups run concurrently but results keep the text-search
// order, and a failed lookup degrades only its own entry.
func (s *searchService) Search(ctx context.Context, q SearchQuery) ([]model.RestaurantResult, error) {
	if !q.HasCoords && q.Location == "" {
		return nil, apperrors.ErrMissingLocation
	}

	summaries, err := s.gateway.TextSearch(ctx, places.SearchBias{
		Location:  q.Location,
		Latitude:  q.Latitude,
		Longitude: q.Longitude,
		HasCoords: q.HasCoords,
	})
	if err != nil {
		return nil, err
	}

	results := make([]model.RestaurantResult, len(summaries))
	sem := make(chan struct{}, maxDetailWorkers)
	var wg sync.WaitGroup
	for i, summary := range summaries {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, summary places.Summary) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.buildResult(ctx, summary)
		}(i, summary)
	}
	wg.Wait()

	return results, nil
}

// buildResult merges one summary with its detail lookup. Name, address,
// rating, total ratings, place id, and price level come from the summary;
// phone, website, and hours only ever come from the detail record.
func (s *searchService) buildResult(ctx context.Context, summary places.Summary) model.RestaurantResult {
	result := model.RestaurantResult{
		Name:         summary.Name,
		Address:      summary.FormattedAddress,
		Rating:       summary.Rating,
		TotalRatings: summary.UserRatingsTotal,
		PlaceID:      summary.PlaceID,
		PriceLevel:   summary.PriceLevel,
	}

	var details places.Details
	if summary.PlaceID != "" {
		// an empty record means no extra detail, never a failed search
		details, _ = s.gateway.PlaceDetails(ctx, summary.PlaceID)
	}

	result.PhoneNumber = details.FormattedPhoneNumber
	result.Website = details.Website
	if details.OpeningHours != nil {
		result.OpeningHours = details.OpeningHours.WeekdayText
	}

	// The summary's photo reference wins; the detail record is only a
	// fallback. Changing this precedence changes observable output.
	photoRef := firstPhotoRef(summary.Photos)
	if photoRef == "" {
		photoRef = firstPhotoRef(details.Photos)
	}
	result.PhotoURL = s.gateway.PhotoURL(photoRef)

	return result
}

func firstPhotoRef(photos []places.Photo) string {
	if len(photos) == 0 {
		return ""
	}
	return photos[0].PhotoReference
}
