package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"halalfinder/internal/auth"
	"halalfinder/internal/config"
	apperrors "halalfinder/internal/errors"
	"halalfinder/internal/handler"
	"halalfinder/internal/model"
	"halalfinder/internal/service"
)

type stubSearchService struct {
	results []model.RestaurantResult
	err     error
}

func (s *stubSearchService) Search(ctx context.Context, q service.SearchQuery) ([]model.RestaurantResult, error) {
	return s.results, s.err
}

type stubAuthService struct{}

func (s *stubAuthService) Register(ctx context.Context, email, password, phone string) (*model.User, string, error) {
	return &model.User{ID: 1, Email: email}, "token", nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return &model.User{ID: 1, Email: email}, "token", nil
}

type stubUserService struct {
	user *model.User
	err  error
}

func (s *stubUserService) Profile(ctx context.Context, id uint) (*model.User, []model.Restaurant, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.user, []model.Restaurant{}, nil
}

func (s *stubUserService) UpdatePhone(ctx context.Context, id uint, phone string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type stubRestaurantService struct{}

func (s *stubRestaurantService) Add(ctx context.Context, ownerID uint, in service.AddRestaurantInput) (*model.Restaurant, error) {
	return &model.Restaurant{ID: 1, Name: in.Name, PlaceID: in.PlaceID, OwnerID: &ownerID}, nil
}

func newTestServer(search service.SearchService, users service.UserService, cfg *config.Config) *echo.Echo {
	e := echo.New()
	Register(
		e,
		cfg,
		handler.NewSearchHandler(search),
		handler.NewAuthHandler(&stubAuthService{}),
		handler.NewUserHandler(users),
		handler.NewRestaurantHandler(&stubRestaurantService{}),
	)
	return e
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apperrors.Envelope {
	t.Helper()
	var env apperrors.Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSearchRoute_MissingLocation(t *testing.T) {
	e := newTestServer(&stubSearchService{err: apperrors.ErrMissingLocation}, &stubUserService{}, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/halal-restaurants", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, apperrors.ErrMissingLocation.Error(), env.Message)
}

func TestSearchRoute_NoResults(t *testing.T) {
	e := newTestServer(&stubSearchService{err: apperrors.ErrNoResults}, &stubUserService{}, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/halal-restaurants?location=Atlantis", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec).Status)
}

func TestSearchRoute_Success(t *testing.T) {
	e := newTestServer(&stubSearchService{results: []model.RestaurantResult{
		{Name: "Zaytoon", PlaceID: "place-1"},
	}}, &stubUserService{}, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/halal-restaurants?location=Dublin", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body handler.SearchResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Len(t, body.Restaurants, 1)
}

func TestProfileRoute_MissingToken(t *testing.T) {
	e := newTestServer(&stubSearchService{}, &stubUserService{}, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec).Status)
}

func TestProfileRoute_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	e := newTestServer(&stubSearchService{}, &stubUserService{}, cfg)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	token, err := expired.SignedString([]byte(cfg.JWTSecret))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec).Status)
}

func TestProfileRoute_ValidToken(t *testing.T) {
	cfg := testConfig()
	users := &stubUserService{user: &model.User{ID: 1, Email: "a@b.com"}}
	e := newTestServer(&stubSearchService{}, users, cfg)

	token, err := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL).Generate(1)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body handler.ProfileResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "a@b.com", body.Profile.Email)
	// zero owned restaurants serializes as an empty list
	assert.NotNil(t, body.Profile.Restaurants)
	assert.Len(t, body.Profile.Restaurants, 0)
}

func TestProfileRoute_UserGone(t *testing.T) {
	cfg := testConfig()
	e := newTestServer(&stubSearchService{}, &stubUserService{err: apperrors.ErrUserNotFound}, cfg)

	token, err := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL).Generate(1)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec).Status)
}
