package service

import (
	"testing"
	"time"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcherService() *MatcherService {
	return NewMatcherService(newTestMoodMappingService(), logger.NewNop())
}

func centralUser() *models.User {
	return &models.User{Latitude: 22.2819, Longitude: 114.1582}
}

func testRestaurant(name string, mutate func(*models.Restaurant)) models.Restaurant {
	r := models.Restaurant{
		Name:         name,
		CuisineTypes: models.JSONBStringArray{"Chinese"},
		Latitude:     22.2830,
		Longitude:    114.1590,
		District:     "Central",
		PriceRange:   2,
		Rating:       4.0,
		ReviewCount:  200,
		Atmosphere:   models.JSONBStringArray{"casual"},
	}
	if mutate != nil {
		mutate(&r)
	}
	return r
}

func TestGenerateRecommendations_EmptyCatalog(t *testing.T) {
	svc := newTestMatcherService()

	result := svc.GenerateRecommendations(centralUser(), nil, nil, nil, nil, "happy", 10)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGenerateRecommendations_RatingFloor(t *testing.T) {
	svc := newTestMatcherService()
	catalog := []models.Restaurant{
		testRestaurant("good", func(r *models.Restaurant) { r.Rating = 4.6 }),
		testRestaurant("mediocre", func(r *models.Restaurant) { r.Rating = 3.0 }),
	}

	result := svc.GenerateRecommendations(centralUser(), nil, catalog,
		&models.MatchCriteria{MinRating: 4.0}, nil, "", 10)

	require.Len(t, result, 1)
	assert.Equal(t, "good", result[0].Restaurant.Name)
}

func TestGenerateRecommendations_DistanceFilter(t *testing.T) {
	svc := newTestMatcherService()
	catalog := []models.Restaurant{
		testRestaurant("near", nil),
		testRestaurant("far", func(r *models.Restaurant) {
			r.Latitude = 22.5000
			r.Longitude = 114.5000
		}),
	}

	result := svc.GenerateRecommendations(centralUser(), nil, catalog,
		&models.MatchCriteria{MaxDistanceKm: 5}, nil, "", 10)

	require.Len(t, result, 1)
	assert.Equal(t, "near", result[0].Restaurant.Name)
}

func TestGenerateRecommendations_SortedAndLimited(t *testing.T) {
	svc := newTestMatcherService()
	catalog := []models.Restaurant{
		testRestaurant("a", func(r *models.Restaurant) { r.Rating = 3.5 }),
		testRestaurant("b", func(r *models.Restaurant) { r.Rating = 4.8 }),
		testRestaurant("c", func(r *models.Restaurant) { r.Rating = 4.2 }),
	}

	result := svc.GenerateRecommendations(centralUser(), nil, catalog, nil, nil, "", 2)

	require.Len(t, result, 2)
	assert.Equal(t, "b", result[0].Restaurant.Name)
	assert.GreaterOrEqual(t, result[0].MatchScore, result[1].MatchScore)
}

func TestGenerateRecommendations_DietaryCompatibility(t *testing.T) {
	svc := newTestMatcherService()
	catalog := []models.Restaurant{
		testRestaurant("veg-friendly", func(r *models.Restaurant) {
			r.MenuHighlights = models.MenuHighlights{
				{Name: "mapo tofu", DietaryTags: []string{"vegetarian"}},
			}
		}),
		testRestaurant("no-options", nil),
	}
	prefs := &models.UserPreferences{DietaryRestrictions: models.JSONBStringArray{"vegetarian"}}

	result := svc.GenerateRecommendations(centralUser(), prefs, catalog, nil, nil, "", 10)

	require.Len(t, result, 1)
	assert.Equal(t, "veg-friendly", result[0].Restaurant.Name)
}

func TestGenerateRecommendations_PreferenceReasons(t *testing.T) {
	svc := newTestMatcherService()
	catalog := []models.Restaurant{
		testRestaurant("local favourite", func(r *models.Restaurant) {
			r.Rating = 4.7
			r.IsLocalGem = true
		}),
	}
	prefs := &models.UserPreferences{CuisineTypes: models.JSONBStringArray{"Chinese"}}

	result := svc.GenerateRecommendations(centralUser(), prefs, catalog, nil, nil, "", 10)

	require.Len(t, result, 1)
	assert.Contains(t, result[0].ReasonsForRecommendation, "matches your Chinese cuisine preference")
	assert.Contains(t, result[0].ReasonsForRecommendation, "highly rated by diners")
	assert.Contains(t, result[0].ReasonsForRecommendation, "local gem")
}

func TestIsOpenAt(t *testing.T) {
	r := testRestaurant("hours", func(r *models.Restaurant) {
		r.OperatingHours = models.OperatingHours{
			"monday": {IsOpen: true, Open: "11:00", Close: "22:00"},
			"friday": {IsOpen: true, Open: "18:00", Close: "02:00"},
			"sunday": {IsOpen: false},
		}
	})

	monday := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	assert.True(t, isOpenAt(&r, monday))
	assert.False(t, isOpenAt(&r, monday.Add(11*time.Hour)))

	// Friday window crosses midnight.
	friday := time.Date(2025, time.June, 6, 23, 30, 0, 0, time.UTC)
	assert.True(t, isOpenAt(&r, friday))

	sunday := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	assert.False(t, isOpenAt(&r, sunday))

	// No entry for the weekday means closed.
	tuesday := time.Date(2025, time.June, 3, 12, 0, 0, 0, time.UTC)
	assert.False(t, isOpenAt(&r, tuesday))
}

func TestEmotionalAlignment(t *testing.T) {
	svc := newTestMatcherService()
	r := testRestaurant("comforting", func(r *models.Restaurant) {
		r.CuisineTypes = models.JSONBStringArray{"Comfort Food"}
		r.Atmosphere = models.JSONBStringArray{"cozy", "quiet"}
	})

	alignment := svc.emotionalAlignment(&r, "sad")
	// 0.95 cuisine match and two of three atmosphere preferences.
	assert.InDelta(t, 0.865, alignment, 1e-3)

	neutral := svc.emotionalAlignment(&r, "")
	assert.Greater(t, neutral, 0.0)
}

func TestHaversineKm(t *testing.T) {
	// Central to Tsim Sha Tsui, roughly 2.2km across the harbour.
	d := HaversineKm(22.2819, 114.1582, 22.2976, 114.1722)
	assert.InDelta(t, 2.26, d, 0.15)

	assert.InDelta(t, 0, HaversineKm(22.3, 114.2, 22.3, 114.2), 1e-9)
}

func TestBuildReasons_IgnoresTagCasing(t *testing.T) {
	svc := newTestMatcherService()
	r := testRestaurant("lowercase tags", func(r *models.Restaurant) {
		r.CuisineTypes = models.JSONBStringArray{"chinese"}
		r.Atmosphere = models.JSONBStringArray{"COZY"}
	})
	prefs := &models.UserPreferences{
		CuisineTypes:          models.JSONBStringArray{"Chinese"},
		AtmospherePreferences: models.JSONBStringArray{"cozy"},
	}

	reasons := svc.buildReasons(prefs, &r)

	assert.Contains(t, reasons, "matches your Chinese cuisine preference")
	assert.Contains(t, reasons, "offers the cozy atmosphere you enjoy")
}

func TestEmotionalAlignment_IgnoresTagCasing(t *testing.T) {
	svc := newTestMatcherService()
	r := testRestaurant("comforting", func(r *models.Restaurant) {
		r.CuisineTypes = models.JSONBStringArray{"comfort food"}
		r.Atmosphere = models.JSONBStringArray{"cozy", "quiet"}
	})

	// Same alignment as the canonically cased tags.
	assert.InDelta(t, 0.865, svc.emotionalAlignment(&r, "sad"), 1e-3)
}
