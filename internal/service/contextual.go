package service

import (
	"math"
	"strings"
	"time"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/knowledge"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
)

// ContextService turns free text plus situational context into contextual
// factors and weighted recommendation adjustments.
type ContextService struct {
	emotions *EmotionService
	log      *logger.Logger
	now      func() time.Time
}

var _ IContextService = (*ContextService)(nil)

func NewContextService(emotions *EmotionService, log *logger.Logger) *ContextService {
	return &ContextService{
		emotions: emotions,
		log:      log,
		now:      time.Now,
	}
}

// ProcessEmotionContext runs the full contextual analysis: emotion
// detection with a context boost, factor identification, adjustment
// bundling and the final merge.
func (s *ContextService) ProcessEmotionContext(text string, ctx *models.EmotionContext) *models.EmotionContextResult {
	detected := s.DetectWithContextBoost(text)
	sortByConfidence(detected)
	detected = dedupeEmotions(detected)

	var recentEvents []string
	if ctx != nil {
		recentEvents = ctx.RecentEvents
	}
	factors := s.IdentifyContextFactors(text, recentEvents)
	if ctx != nil && ctx.Location != "" {
		factors = append(factors, "location_"+s.ClassifyLocation(ctx.Location))
	}

	var adjustments []models.RecommendationAdjustment
	adjustments = append(adjustments, s.emotionAdjustments(detected)...)
	adjustments = append(adjustments, s.factorAdjustments(factors)...)
	adjustments = append(adjustments, s.situationalAdjustments(ctx)...)

	result := &models.EmotionContextResult{
		DetectedEmotions:          detected,
		ContextualFactors:         factors,
		RecommendationAdjustments: MergeAdjustments(adjustments),
	}
	result.Confidence = s.contextualConfidence(detected, len(factors))
	return result
}

// GetContextualRecommendations resolves a named context bundle. Unknown
// names yield an empty list, not an error.
func (s *ContextService) GetContextualRecommendations(name string) []models.RecommendationAdjustment {
	bundle, ok := knowledge.NamedContextBundles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return []models.RecommendationAdjustment{}
	}
	out := make([]models.RecommendationAdjustment, len(bundle))
	copy(out, bundle)
	return out
}

// DetectWithContextBoost is the context-analysis variant of keyword
// detection: confidence min(0.9, hits*0.3+0.3).
func (s *ContextService) DetectWithContextBoost(text string) []models.DetectedEmotion {
	lower := strings.ToLower(text)
	var detected []models.DetectedEmotion
	for _, emotion := range knowledge.EmotionOrder {
		var triggers []string
		for _, keyword := range knowledge.EmotionKeywords[emotion] {
			if strings.Contains(lower, keyword) {
				triggers = append(triggers, keyword)
			}
		}
		if len(triggers) == 0 {
			continue
		}
		detected = append(detected, models.DetectedEmotion{
			Emotion:    emotion,
			Confidence: math.Min(0.9, float64(len(triggers))*0.3+0.3),
			Triggers:   triggers,
		})
	}
	return detected
}

// IdentifyContextFactors scans the main text and each recent-event entry
// against the category keyword tables. Factors found only in recent
// events carry a recent_ prefix. The result is deduplicated.
func (s *ContextService) IdentifyContextFactors(text string, recentEvents []string) []string {
	factors := []string{}
	seen := map[string]bool{}

	lower := strings.ToLower(text)
	for _, category := range contextCategoryOrder {
		if containsAny(lower, knowledge.ContextCategoryKeywords[category]) && !seen[category] {
			seen[category] = true
			factors = append(factors, category)
		}
	}

	for _, event := range recentEvents {
		eventLower := strings.ToLower(event)
		for _, category := range contextCategoryOrder {
			name := "recent_" + category
			if containsAny(eventLower, knowledge.ContextCategoryKeywords[category]) && !seen[name] {
				seen[name] = true
				factors = append(factors, name)
			}
		}
	}
	return factors
}

// contextCategoryOrder fixes iteration order over the category table so
// factor lists are deterministic.
var contextCategoryOrder = []string{
	"work_stress", "relationship", "family", "health",
	"social", "financial", "academic", "weather_talk",
}

// ClassifyLocation buckets a free-form location string into a coarse type
// via substring heuristics. Defaults to "busy".
func (s *ContextService) ClassifyLocation(location string) string {
	lower := strings.ToLower(location)
	switch {
	case containsAny(lower, []string{"central", "admiralty", "office", "business", "financial", "commercial"}):
		return "business"
	case containsAny(lower, []string{"tsim sha tsui", "tourist", "attraction", "harbour", "peak", "disneyland"}):
		return "tourist"
	case containsAny(lower, []string{"estate", "residential", "village", "suburb", "new territories"}):
		return "residential"
	case containsAny(lower, []string{"park", "quiet", "island", "countryside", "beach"}):
		return "quiet"
	default:
		return "busy"
	}
}

func (s *ContextService) emotionAdjustments(detected []models.DetectedEmotion) []models.RecommendationAdjustment {
	var out []models.RecommendationAdjustment
	for _, d := range detected {
		for _, tmpl := range knowledge.EmotionReactions[d.Emotion] {
			out = append(out, models.RecommendationAdjustment{
				Factor:    tmpl.Factor,
				Direction: tmpl.Direction,
				Weight:    clamp01(d.Confidence * tmpl.WeightFactor),
				Reasoning: tmpl.Reasoning,
			})
		}
	}
	return out
}

func (s *ContextService) factorAdjustments(factors []string) []models.RecommendationAdjustment {
	var out []models.RecommendationAdjustment
	for _, factor := range factors {
		category := strings.TrimPrefix(factor, "recent_")
		if t, ok := strings.CutPrefix(factor, "location_"); ok {
			out = append(out, knowledge.LocationTypeBundles[t]...)
			continue
		}
		out = append(out, knowledge.ContextAdjustmentBundles[category]...)
	}
	return out
}

// situationalAdjustments emits the time-of-day, weather, and seasonal
// bundles for the supplied context. Season and calendar events come from
// the wall clock.
func (s *ContextService) situationalAdjustments(ctx *models.EmotionContext) []models.RecommendationAdjustment {
	var out []models.RecommendationAdjustment

	now := s.now()

	timeOfDay := ""
	if ctx != nil {
		timeOfDay = strings.ToLower(ctx.TimeOfDay)
	}
	if timeOfDay == "" {
		timeOfDay = bucketForHour(now.Hour())
	}
	out = append(out, knowledge.TimeOfDayBundles[timeOfDay]...)

	if ctx != nil && ctx.Weather != nil {
		out = append(out, s.weatherAdjustments(ctx.Weather)...)
	}

	out = append(out, knowledge.SeasonBundles[seasonForMonth(now.Month())]...)
	out = append(out, knowledge.SeasonalEvents[int(now.Month())]...)
	return out
}

func (s *ContextService) weatherAdjustments(w *models.WeatherReading) []models.RecommendationAdjustment {
	var out []models.RecommendationAdjustment

	condition := strings.ToLower(w.Condition)
	switch {
	case strings.Contains(condition, "storm") || strings.Contains(condition, "typhoon"):
		out = append(out, knowledge.WeatherConditionBundles["stormy"]...)
	case strings.Contains(condition, "rain") || strings.Contains(condition, "drizzle"):
		out = append(out, knowledge.WeatherConditionBundles["rainy"]...)
	case strings.Contains(condition, "sun") || strings.Contains(condition, "clear"):
		out = append(out, knowledge.WeatherConditionBundles["sunny"]...)
	case strings.Contains(condition, "cloud") || strings.Contains(condition, "overcast"):
		out = append(out, knowledge.WeatherConditionBundles["cloudy"]...)
	}

	if w.Temperature >= knowledge.HotTemperatureC {
		out = append(out, knowledge.HotWeatherBundle...)
	} else if w.Temperature <= knowledge.ColdTemperatureC {
		out = append(out, knowledge.ColdWeatherBundle...)
	}
	if w.Humidity >= knowledge.HighHumidity {
		out = append(out, knowledge.HumidBundle...)
	}
	return out
}

// contextualConfidence starts from a 0.5 base, rewards emotion signal and
// factor coverage, and penalizes conflicting emotions.
func (s *ContextService) contextualConfidence(detected []models.DetectedEmotion, factorCount int) float64 {
	confidence := 0.5
	if len(detected) > 0 {
		confidence += detected[0].Confidence * 0.3
		if len(detected) > 1 {
			confidence += 0.1
		}
	}
	confidence += math.Min(0.3, 0.1*float64(factorCount))
	if s.emotions.hasConflictingEmotions(detected) {
		confidence -= 0.2
	}
	return clampFloat(confidence, 0.1, 1.0)
}

func bucketForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 11:
		return "morning"
	case hour >= 11 && hour < 14:
		return "lunch"
	case hour >= 14 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 22:
		return "dinner"
	default:
		return "late_night"
	}
}

func seasonForMonth(month time.Month) string {
	switch month {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "autumn"
	default:
		return "winter"
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
