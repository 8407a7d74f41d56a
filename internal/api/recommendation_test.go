package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/knowledge"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/service"
)

type stubProfileService struct {
	users map[uuid.UUID]*models.User
	prefs map[uuid.UUID]*models.UserPreferences
}

func (s *stubProfileService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return user, nil
}

func (s *stubProfileService) GetPreferences(ctx context.Context, userID uuid.UUID) (*models.UserPreferences, error) {
	if prefs, ok := s.prefs[userID]; ok {
		return prefs, nil
	}
	return &models.UserPreferences{UserID: userID, PriceRangeMin: 1, PriceRangeMax: 5}, nil
}

type stubCatalogService struct {
	restaurants []models.Restaurant
}

func (s *stubCatalogService) GetRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	return nil, service.ErrRestaurantNotFound
}

func (s *stubCatalogService) ListRestaurants(ctx context.Context, district string) ([]models.Restaurant, error) {
	return s.restaurants, nil
}

func (s *stubCatalogService) SearchRestaurants(ctx context.Context, query string) ([]models.Restaurant, error) {
	return s.restaurants, nil
}

func (s *stubCatalogService) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	return restaurant, nil
}

func newRecommendationTestRouter(profiles *stubProfileService, catalog *stubCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	moods := service.NewMoodMappingService(knowledge.DefaultMoodMappings(), log)
	matcher := service.NewMatcherService(moods, log)

	router := gin.New()
	handler := NewRecommendationHandler(matcher, profiles, catalog)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestGenerateEndpoint(t *testing.T) {
	userID := uuid.New()
	profiles := &stubProfileService{
		users: map[uuid.UUID]*models.User{
			userID: {ID: userID, Latitude: 22.2819, Longitude: 114.1582},
		},
		prefs: map[uuid.UUID]*models.UserPreferences{},
	}
	catalog := &stubCatalogService{
		restaurants: []models.Restaurant{
			{
				Name:         "Harbour Noodles",
				CuisineTypes: models.JSONBStringArray{"Chinese"},
				Latitude:     22.2830,
				Longitude:    114.1590,
				Rating:       4.5,
				ReviewCount:  320,
			},
			{
				Name:         "Quiet Corner Cafe",
				CuisineTypes: models.JSONBStringArray{"Cafe"},
				Latitude:     22.2840,
				Longitude:    114.1600,
				Rating:       3.8,
				ReviewCount:  90,
			},
		},
	}
	router := newRecommendationTestRouter(profiles, catalog)

	w := postJSON(t, router, "/api/v1/recommendations/generate", gin.H{
		"user_id":         userID.String(),
		"primary_emotion": "sad",
		"limit":           5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recommendations []models.RecommendedRestaurant `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 2)
	assert.GreaterOrEqual(t,
		resp.Recommendations[0].MatchScore,
		resp.Recommendations[1].MatchScore)
}

func TestGenerateEndpoint_InvalidUserID(t *testing.T) {
	router := newRecommendationTestRouter(&stubProfileService{}, &stubCatalogService{})

	w := postJSON(t, router, "/api/v1/recommendations/generate", gin.H{
		"user_id": "not-a-uuid",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpoint_UnknownUser(t *testing.T) {
	router := newRecommendationTestRouter(
		&stubProfileService{users: map[uuid.UUID]*models.User{}},
		&stubCatalogService{})

	w := postJSON(t, router, "/api/v1/recommendations/generate", gin.H{
		"user_id": uuid.New().String(),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateEndpoint_BadWeights(t *testing.T) {
	router := newRecommendationTestRouter(&stubProfileService{}, &stubCatalogService{})

	w := postJSON(t, router, "/api/v1/recommendations/generate", gin.H{
		"user_id": uuid.New().String(),
		"weights": gin.H{
			"preference_match": 0.9,
			"distance":         0.9,
			"rating":           0.9,
			"negative_score":   0.9,
			"popularity":       0.9,
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpoint_EmptyCatalog(t *testing.T) {
	userID := uuid.New()
	router := newRecommendationTestRouter(
		&stubProfileService{users: map[uuid.UUID]*models.User{userID: {ID: userID}}},
		&stubCatalogService{})

	w := postJSON(t, router, "/api/v1/recommendations/generate", gin.H{
		"user_id": userID.String(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recommendations []models.RecommendedRestaurant `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Recommendations)
}
