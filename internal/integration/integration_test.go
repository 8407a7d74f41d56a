package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/knowledge"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/service"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/testhelpers"
)

func seedCatalog(t *testing.T, catalog *service.CatalogService) {
	t.Helper()
	ctx := context.Background()

	restaurants := []models.Restaurant{
		{
			Name:          "Harbour Comfort Kitchen",
			CuisineTypes:  models.JSONBStringArray{"Comfort Food", "Cantonese"},
			Latitude:      22.2830,
			Longitude:     114.1600,
			District:      "Central",
			PriceRange:    2,
			Rating:        4.6,
			NegativeScore: 0.05,
			ReviewCount:   480,
			Atmosphere:    models.JSONBStringArray{"cozy", "warm"},
			MenuHighlights: models.MenuHighlights{
				{Name: "Clay pot chicken rice"},
				{Name: "Steamed greens", DietaryTags: []string{"vegetarian", "vegan"}},
			},
		},
		{
			Name:          "Peak Sushi Bar",
			CuisineTypes:  models.JSONBStringArray{"Japanese"},
			Latitude:      22.2750,
			Longitude:     114.1450,
			District:      "Central",
			PriceRange:    4,
			Rating:        4.2,
			NegativeScore: 0.10,
			ReviewCount:   260,
			Atmosphere:    models.JSONBStringArray{"quiet", "minimal"},
			MenuHighlights: models.MenuHighlights{
				{Name: "Omakase set"},
			},
		},
	}
	for i := range restaurants {
		_, err := catalog.CreateRestaurant(ctx, &restaurants[i])
		require.NoError(t, err)
	}
}

func TestProfileAndCatalogAgainstPostgres(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()

	user := models.User{
		Name:      "Test Diner",
		Email:     "diner@example.com",
		Latitude:  22.2819,
		Longitude: 114.1582,
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.UserPreferences{
		UserID:                user.ID,
		CuisineTypes:          models.JSONBStringArray{"Comfort Food"},
		AtmospherePreferences: models.JSONBStringArray{"cozy"},
		PriceRangeMin:         1,
		PriceRangeMax:         4,
	}).Error)

	profiles := service.NewProfileService(db)

	got, err := profiles.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Diner", got.Name)

	prefs, err := profiles.GetPreferences(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JSONBStringArray{"Comfort Food"}, prefs.CuisineTypes)

	_, err = profiles.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	// Unknown users still get usable default preferences.
	defaults, err := profiles.GetPreferences(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, defaults.PriceRangeMin)
	assert.Equal(t, 5, defaults.PriceRangeMax)

	catalog := service.NewCatalogService(db)
	seedCatalog(t, catalog)

	listed, err := catalog.ListRestaurants(ctx, "central")
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	found, err := catalog.SearchRestaurants(ctx, "sushi")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, "Peak Sushi Bar", found[0].Name)
}

func TestRecommendationFlowAgainstPostgres(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()

	log := logger.NewNop()
	catalog := service.NewCatalogService(db)
	seedCatalog(t, catalog)

	user := models.User{
		Name:      "Hungry Diner",
		Email:     "hungry@example.com",
		Latitude:  22.2819,
		Longitude: 114.1582,
	}
	require.NoError(t, db.Create(&user).Error)

	restaurants, err := catalog.ListRestaurants(ctx, "")
	require.NoError(t, err)
	require.Len(t, restaurants, 2)

	moods := service.NewMoodMappingService(knowledge.DefaultMoodMappings(), log)
	matcher := service.NewMatcherService(moods, log)

	prefs := &models.UserPreferences{
		UserID:                user.ID,
		CuisineTypes:          models.JSONBStringArray{"Comfort Food"},
		AtmospherePreferences: models.JSONBStringArray{"cozy"},
	}
	recs := matcher.GenerateRecommendations(&user, prefs, restaurants, nil, nil, "sad", 5)
	require.NotEmpty(t, recs)

	// The comfort food spot matches both the stated preferences and the
	// sad-mood cuisine table, so it should outrank the sushi bar.
	assert.Equal(t, "Harbour Comfort Kitchen", recs[0].Restaurant.Name)
	assert.Greater(t, recs[0].MatchScore, recs[len(recs)-1].MatchScore)
	assert.Greater(t, recs[0].EmotionalAlignment, 0.5)
	assert.NotEmpty(t, recs[0].ReasonsForRecommendation)
}
