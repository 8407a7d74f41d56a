package service

import (
	"testing"
	"time"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContextService(now time.Time) *ContextService {
	svc := NewContextService(newTestEmotionService(), logger.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func findAdjustment(adjustments []models.RecommendationAdjustment, factor, direction string) *models.RecommendationAdjustment {
	for i := range adjustments {
		if adjustments[i].Factor == factor && adjustments[i].Direction == direction {
			return &adjustments[i]
		}
	}
	return nil
}

func TestProcessEmotionContext_FamilyDinner(t *testing.T) {
	svc := newTestContextService(time.Date(2025, time.May, 15, 19, 0, 0, 0, time.UTC))

	result := svc.ProcessEmotionContext("having dinner with my family tonight", nil)

	assert.Equal(t, []string{"family"}, result.ContextualFactors)
	assert.Empty(t, result.DetectedEmotions)

	family := findAdjustment(result.RecommendationAdjustments, "family_friendly", models.DirectionIncrease)
	require.NotNil(t, family)
	assert.InDelta(t, 0.9, family.Weight, 1e-9)

	// 0.5 base plus one contextual factor.
	assert.InDelta(t, 0.6, result.Confidence, 1e-9)
}

func TestProcessEmotionContext_SortedByWeight(t *testing.T) {
	svc := newTestContextService(time.Date(2025, time.May, 15, 12, 30, 0, 0, time.UTC))

	result := svc.ProcessEmotionContext("stressed about a work deadline with my boss", nil)

	require.NotEmpty(t, result.RecommendationAdjustments)
	for i := 1; i < len(result.RecommendationAdjustments); i++ {
		assert.GreaterOrEqual(t,
			result.RecommendationAdjustments[i-1].Weight,
			result.RecommendationAdjustments[i].Weight)
	}
	assert.Contains(t, result.ContextualFactors, "work_stress")
}

func TestProcessEmotionContext_ConflictPenalty(t *testing.T) {
	svc := newTestContextService(time.Date(2025, time.May, 15, 19, 0, 0, 0, time.UTC))

	result := svc.ProcessEmotionContext("happy yet sad at the same time", nil)

	// 0.5 + 0.6*0.3 + 0.1 (two emotions) - 0.2 (conflict).
	assert.InDelta(t, 0.58, result.Confidence, 1e-9)
}

func TestIdentifyContextFactors_RecentEvents(t *testing.T) {
	svc := newTestContextService(time.Now())

	factors := svc.IdentifyContextFactors("", []string{"big deadline at work", "argument with my partner"})

	assert.Contains(t, factors, "recent_work_stress")
	assert.Contains(t, factors, "recent_relationship")
}

func TestIdentifyContextFactors_Deduplicates(t *testing.T) {
	svc := newTestContextService(time.Now())

	factors := svc.IdentifyContextFactors("work work work deadline boss", nil)

	assert.Equal(t, []string{"work_stress"}, factors)
}

func TestClassifyLocation(t *testing.T) {
	svc := newTestContextService(time.Now())

	assert.Equal(t, "business", svc.ClassifyLocation("Central, Hong Kong"))
	assert.Equal(t, "tourist", svc.ClassifyLocation("Tsim Sha Tsui promenade"))
	assert.Equal(t, "residential", svc.ClassifyLocation("Sha Tin estate"))
	assert.Equal(t, "quiet", svc.ClassifyLocation("Lamma Island beach"))
	assert.Equal(t, "busy", svc.ClassifyLocation("Mong Kok"))
}

func TestWeatherAdjustments(t *testing.T) {
	svc := newTestContextService(time.Now())

	hot := svc.weatherAdjustments(&models.WeatherReading{Condition: "sunny", Temperature: 33, Humidity: 85})
	assert.NotNil(t, findAdjustment(hot, "cold_dishes", models.DirectionIncrease))
	assert.NotNil(t, findAdjustment(hot, "outdoor_seating", models.DirectionIncrease))
	assert.NotNil(t, findAdjustment(hot, "light_dishes", models.DirectionIncrease))

	cold := svc.weatherAdjustments(&models.WeatherReading{Condition: "rainy", Temperature: 10, Humidity: 60})
	assert.NotNil(t, findAdjustment(cold, "hot_pot", models.DirectionIncrease))
	assert.NotNil(t, findAdjustment(cold, "indoor_seating", models.DirectionIncrease))
}

func TestGetContextualRecommendations(t *testing.T) {
	svc := newTestContextService(time.Now())

	rainy := svc.GetContextualRecommendations("rainy_day")
	assert.NotEmpty(t, rainy)

	unknown := svc.GetContextualRecommendations("no_such_context")
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestBucketForHour(t *testing.T) {
	assert.Equal(t, "morning", bucketForHour(8))
	assert.Equal(t, "lunch", bucketForHour(12))
	assert.Equal(t, "afternoon", bucketForHour(15))
	assert.Equal(t, "dinner", bucketForHour(19))
	assert.Equal(t, "late_night", bucketForHour(23))
	assert.Equal(t, "late_night", bucketForHour(2))
}
