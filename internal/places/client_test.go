package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "halalfinder/internal/errors"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("test-key")
	client.baseURL = server.URL
	client.httpClient = server.Client()
	return client, server
}

func TestClient_TextSearch_LocationQuery(t *testing.T) {
	var gotQuery url.Values
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/textsearch/json", r.URL.Path)
		w.Write([]byte(`{"status":"OK","results":[{"name":"Zaytoon","formatted_address":"Parliament St","rating":4.5,"user_ratings_total":1200,"place_id":"place-1","price_level":2,"photos":[{"photo_reference":"ref-1"}]}]}`))
	}))
	defer server.Close()

	results, err := client.TextSearch(context.Background(), SearchBias{Location: "Dublin"})
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	assert.Equal(t, "halal restaurants in Dublin", gotQuery.Get("query"))
	assert.Equal(t, "test-key", gotQuery.Get("key"))
	assert.Empty(t, gotQuery.Get("location"))
	assert.Empty(t, gotQuery.Get("radius"))

	got := results[0]
	assert.Equal(t, "Zaytoon", got.Name)
	assert.Equal(t, "Parliament St", got.FormattedAddress)
	assert.Equal(t, 4.5, *got.Rating)
	assert.Equal(t, 1200, *got.UserRatingsTotal)
	assert.Equal(t, "place-1", got.PlaceID)
	assert.Equal(t, 2, *got.PriceLevel)
	assert.Equal(t, "ref-1", got.Photos[0].PhotoReference)
}

func TestClient_TextSearch_CoordinateBias(t *testing.T) {
	var gotQuery url.Values
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":"OK","results":[]}`))
	}))
	defer server.Close()

	_, err := client.TextSearch(context.Background(), SearchBias{
		Location:  "ignored when coordinates are set",
		Latitude:  53.349805,
		Longitude: -6.26031,
		HasCoords: true,
	})
	assert.NoError(t, err)

	assert.Equal(t, "halal restaurants", gotQuery.Get("query"))
	assert.Equal(t, "53.349805,-6.260310", gotQuery.Get("location"))
	assert.Equal(t, "5000", gotQuery.Get("radius"))
}

func TestClient_TextSearch_NonOKStatus(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer server.Close()

	results, err := client.TextSearch(context.Background(), SearchBias{Location: "Atlantis"})
	assert.ErrorIs(t, err, apperrors.ErrNoResults)
	assert.Nil(t, results)
}

func TestClient_TextSearch_TransportFailure(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	results, err := client.TextSearch(context.Background(), SearchBias{Location: "Dublin"})
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Nil(t, results)
}

func TestClient_PlaceDetails(t *testing.T) {
	var gotQuery url.Values
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/details/json", r.URL.Path)
		w.Write([]byte(`{"status":"OK","result":{"name":"Zaytoon","formatted_phone_number":"+353 1 677 3595","website":"https://zaytoon.ie","opening_hours":{"weekday_text":["Monday: 12:00-23:00"]},"photos":[{"photo_reference":"detail-ref"}]}}`))
	}))
	defer server.Close()

	details, err := client.PlaceDetails(context.Background(), "place-1")
	assert.NoError(t, err)
	assert.Equal(t, "place-1", gotQuery.Get("place_id"))
	assert.Equal(t, detailsFields, gotQuery.Get("fields"))
	assert.Equal(t, "+353 1 677 3595", details.FormattedPhoneNumber)
	assert.Equal(t, "https://zaytoon.ie", details.Website)
	assert.Equal(t, []string{"Monday: 12:00-23:00"}, details.OpeningHours.WeekdayText)
}

func TestClient_PlaceDetails_NotFoundIsEmpty(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"NOT_FOUND"}`))
	}))
	defer server.Close()

	details, err := client.PlaceDetails(context.Background(), "gone")
	assert.Error(t, err)
	assert.Equal(t, Details{}, details)
}

func TestClient_PhotoURL(t *testing.T) {
	client := NewClient("test-key")

	got := client.PhotoURL("some-ref")
	u, err := url.Parse(got)
	assert.NoError(t, err)
	assert.Equal(t, "/maps/api/place/photo", u.Path)
	assert.Equal(t, "400", u.Query().Get("maxwidth"))
	assert.Equal(t, "some-ref", u.Query().Get("photo_reference"))
	assert.Equal(t, "test-key", u.Query().Get("key"))

	assert.Empty(t, client.PhotoURL(""))
}
