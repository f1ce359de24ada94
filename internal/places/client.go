package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "halalfinder/internal/errors"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/place"
	requestTimeout = 10 * time.Second

	// coordinate searches use a fixed bias radius, in meters
	searchRadius = 5000
	photoWidth   = 400
)

// SearchBias scopes a text search: either a free-text location folded into
// the query, or a coordinate pair. When HasCoords is set the location string
// is ignored.
type SearchBias struct {
	Location  string
	Latitude  float64
	Longitude float64
	HasCoords bool
}

// Photo carries an opaque reference resolvable into an image URL.
type Photo struct {
	PhotoReference string `json:"photo_reference"`
}

// Summary is one raw place from a text-search page.
type Summary struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Rating           *float64 `json:"rating"`
	UserRatingsTotal *int     `json:"user_ratings_total"`
	PlaceID          string   `json:"place_id"`
	PriceLevel       *int     `json:"price_level"`
	Photos           []Photo  `json:"photos"`
}

// OpeningHours carries the weekday opening-hours strings from a detail record.
type OpeningHours struct {
	WeekdayText []string `json:"weekday_text"`
}

// Review is a single user review from a detail record.
type Review struct {
	AuthorName string   `json:"author_name"`
	Rating     *float64 `json:"rating"`
	Text       string   `json:"text"`
}

// Details is the extended record from a place-details lookup. The zero value
// means "no extra detail available".
type Details struct {
	Name                 string        `json:"name"`
	FormattedAddress     string        `json:"formatted_address"`
	Rating               *float64      `json:"rating"`
	UserRatingsTotal     *int          `json:"user_ratings_total"`
	Photos               []Photo       `json:"photos"`
	PriceLevel           *int          `json:"price_level"`
	FormattedPhoneNumber string        `json:"formatted_phone_number"`
	Website              string        `json:"website"`
	OpeningHours         *OpeningHours `json:"opening_hours"`
	Reviews              []Review      `json:"reviews"`
}

// detailsFields is the fixed field set requested on every detail lookup.
const detailsFields = "name,formatted_address,rating,user_ratings_total,photos,price_level,formatted_phone_number,website,opening_hours,reviews"

// Client talks to the upstream places provider. No retries, no caching.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a places client with the fixed per-request timeout.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// TextSearch runs one text-search request scoped by bias. A non-OK upstream
// status maps to ErrNoResults; transport and decode failures wrap ErrUpstream.
func (c *Client) TextSearch(ctx context.Context, bias SearchBias) ([]Summary, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	if bias.HasCoords {
		params.Set("query", "halal restaurants")
		params.Set("location", fmt.Sprintf("%f,%f", bias.Latitude, bias.Longitude))
		params.Set("radius", strconv.Itoa(searchRadius))
	} else {
		params.Set("query", "halal restaurants in "+bias.Location)
	}

	var body struct {
		Results      []Summary `json:"results"`
		Status       string    `json:"status"`
		ErrorMessage string    `json:"error_message"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/textsearch/json", params, &body); err != nil {
		return nil, err
	}

	// ZERO_RESULTS and every other non-OK status read as "nothing matched";
	// only transport failures become server errors.
	if body.Status != "OK" {
		return nil, apperrors.ErrNoResults
	}
	return body.Results, nil
}

// PlaceDetails fetches the extended record for one place. Callers treat any
// error as "no extra detail available"; a failed lookup must not abort the
// search it belongs to.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (Details, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)

	var body struct {
		Result Details `json:"result"`
		Status string  `json:"status"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/details/json", params, &body); err != nil {
		return Details{}, err
	}
	if body.Status != "OK" {
		return Details{}, fmt.Errorf("place details status %s", body.Status)
	}
	return body.Result, nil
}

// PhotoURL builds the retrieval URL for a photo reference. Pure string
// construction; an empty reference yields an empty URL.
func (c *Client) PhotoURL(photoReference string) string {
	if photoReference == "" {
		return ""
	}
	params := url.Values{}
	params.Set("maxwidth", strconv.Itoa(photoWidth))
	params.Set("photo_reference", photoReference)
	params.Set("key", c.apiKey)
	return c.baseURL + "/photo?" + params.Encode()
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode response: %v", apperrors.ErrUpstream, err)
	}
	return nil
}
