package model

// RestaurantResult is the normalized view produced by a search. It merges a
// text-search summary with the matching detail lookup and is never persisted.
type RestaurantResult struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Rating       *float64 `json:"rating"`
	TotalRatings *int     `json:"total_ratings"`
	PlaceID      string   `json:"place_id"`
	PhotoURL     string   `json:"photo_url,omitempty"`
	PriceLevel   *int     `json:"price_level"`
	PhoneNumber  string   `json:"phone_number,omitempty"`
	Website      string   `json:"website,omitempty"`
	OpeningHours []string `json:"opening_hours,omitempty"`
}
