package knowledge

import "github.com/PeterSoManLung/FindDinning-sub001/internal/models"

// ContextCategoryKeywords maps a contextual factor category to the
// keywords that signal it in free text or recent-event entries.
var ContextCategoryKeywords = map[string][]string{
	"work_stress":  {"work", "boss", "deadline", "overtime", "meeting", "project", "office", "colleague"},
	"relationship": {"boyfriend", "girlfriend", "partner", "wife", "husband", "breakup", "argument", "date"},
	"family":       {"family", "parents", "mom", "dad", "kids", "children", "grandma", "grandpa", "relatives"},
	"health":       {"sick", "ill", "doctor", "hospital", "recovering", "diet", "allergy", "medicine"},
	"social":       {"friends", "party", "gathering", "reunion", "celebration", "birthday", "wedding"},
	"financial":    {"broke", "budget", "salary", "bonus", "expensive", "cheap", "payday", "bills"},
	"academic":     {"exam", "school", "university", "studying", "homework", "thesis", "grades"},
	"weather_talk": {"raining", "hot day", "cold day", "typhoon", "sunny", "humid"},
}

// ContextAdjustmentBundles holds the fixed adjustment bundle emitted for
// each matched context category.
var ContextAdjustmentBundles = map[string][]models.RecommendationAdjustment{
	"work_stress": {
		{Factor: "calm_atmosphere", Direction: models.DirectionIncrease, Weight: 0.8, Reasoning: "Work stress detected; quieter settings help decompress"},
		{Factor: "quick_service", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Limited break time around work pressure"},
		{Factor: "loud_environment", Direction: models.DirectionDecrease, Weight: 0.7, Reasoning: "Noise adds to work stress"},
	},
	"relationship": {
		{Factor: "intimate_atmosphere", Direction: models.DirectionIncrease, Weight: 0.8, Reasoning: "Relationship context favors intimate settings"},
		{Factor: "privacy", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Personal conversations need privacy"},
	},
	"family": {
		{Factor: "family_friendly", Direction: models.DirectionIncrease, Weight: 0.9, Reasoning: "Family context favors family-friendly venues"},
		{Factor: "sharing_dishes", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Families tend to share dishes"},
	},
	"health": {
		{Factor: "healthy_options", Direction: models.DirectionIncrease, Weight: 0.9, Reasoning: "Health context favors lighter menus"},
		{Factor: "greasy_food", Direction: models.DirectionDecrease, Weight: 0.7, Reasoning: "Heavy food conflicts with health concerns"},
	},
	"social": {
		{Factor: "group_seating", Direction: models.DirectionIncrease, Weight: 0.8, Reasoning: "Social gathering needs room for the group"},
		{Factor: "lively_atmosphere", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "A lively venue suits a gathering"},
	},
	"financial": {
		{Factor: "budget_friendly", Direction: models.DirectionIncrease, Weight: 0.8, Reasoning: "Budget awareness detected"},
		{Factor: "premium_pricing", Direction: models.DirectionDecrease, Weight: 0.7, Reasoning: "Expensive options conflict with budget concerns"},
	},
	"academic": {
		{Factor: "study_friendly", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "Academic context favors venues that tolerate lingering"},
		{Factor: "budget_friendly", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Student budgets run tight"},
	},
	"weather_talk": {
		{Factor: "indoor_seating", Direction: models.DirectionIncrease, Weight: 0.5, Reasoning: "Weather concerns favor sheltered seating"},
	},
}

// TimeOfDayBundles holds the adjustment bundle per time-of-day bucket.
var TimeOfDayBundles = map[string][]models.RecommendationAdjustment{
	"morning": {
		{Factor: "breakfast_menu", Direction: models.DirectionIncrease, Weight: 0.9, Reasoning: "Morning hours favor breakfast service"},
		{Factor: "coffee_quality", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "Morning diners value good coffee"},
	},
	"lunch": {
		{Factor: "quick_service", Direction: models.DirectionIncrease, Weight: 0.8, Reasoning: "Lunch windows are short"},
		{Factor: "set_lunch", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "Set menus speed up lunch decisions"},
	},
	"afternoon": {
		{Factor: "tea_sets", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "Afternoon suits tea and light bites"},
		{Factor: "quiet_atmosphere", Direction: models.DirectionIncrease, Weight: 0.5, Reasoning: "Off-peak calm for afternoon visits"},
	},
	"dinner": {
		{Factor: "full_menu", Direction: models.DirectionIncrease, Weight: 0.8, Reasoning: "Dinner calls for the full dining experience"},
		{Factor: "ambiance", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Evening diners linger over atmosphere"},
	},
	"late_night": {
		{Factor: "late_opening", Direction: models.DirectionIncrease, Weight: 0.9, Reasoning: "Late-night dining needs late opening hours"},
		{Factor: "comfort_food", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Late-night cravings lean toward comfort food"},
	},
}

// WeatherConditionBundles holds adjustments per reported weather condition.
var WeatherConditionBundles = map[string][]models.RecommendationAdjustment{
	"rainy": {
		{Factor: "indoor_seating", Direction: models.DirectionIncrease, Weight: 0.9, Reasoning: "Rain favors sheltered seating"},
		{Factor: "hot_soup", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "Warm dishes suit rainy weather"},
		{Factor: "outdoor_seating", Direction: models.DirectionDecrease, Weight: 0.8, Reasoning: "Outdoor seating is unpleasant in rain"},
	},
	"sunny": {
		{Factor: "outdoor_seating", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "Good weather invites outdoor dining"},
		{Factor: "refreshing_drinks", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Sunshine pairs well with cold drinks"},
	},
	"cloudy": {
		{Factor: "cozy_interior", Direction: models.DirectionIncrease, Weight: 0.5, Reasoning: "Overcast days suit cozy interiors"},
	},
	"stormy": {
		{Factor: "delivery_available", Direction: models.DirectionIncrease, Weight: 0.9, Reasoning: "Storms discourage going out"},
		{Factor: "outdoor_seating", Direction: models.DirectionDecrease, Weight: 0.9, Reasoning: "Outdoor dining is unsafe in storms"},
	},
}

// Temperature band thresholds in degrees Celsius.
const (
	HotTemperatureC  = 28.0
	ColdTemperatureC = 15.0
	HighHumidity     = 80.0
)

// HotWeatherBundle applies above HotTemperatureC.
var HotWeatherBundle = []models.RecommendationAdjustment{
	{Factor: "cold_dishes", Direction: models.DirectionIncrease, Weight: 0.8, Reasoning: "Hot weather favors cold dishes"},
	{Factor: "air_conditioning", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "Cooling matters in the heat"},
	{Factor: "hot_pot", Direction: models.DirectionDecrease, Weight: 0.6, Reasoning: "Hot pot is a hard sell in hot weather"},
}

// ColdWeatherBundle applies below ColdTemperatureC.
var ColdWeatherBundle = []models.RecommendationAdjustment{
	{Factor: "hot_pot", Direction: models.DirectionIncrease, Weight: 0.8, Reasoning: "Cold weather is hot pot weather"},
	{Factor: "warm_drinks", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Warm drinks suit the cold"},
}

// HumidBundle applies above HighHumidity percent.
var HumidBundle = []models.RecommendationAdjustment{
	{Factor: "light_dishes", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "High humidity dulls appetite for heavy food"},
	{Factor: "air_conditioning", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Air conditioning relieves humidity"},
}

// SeasonBundles holds the per-season food and atmosphere preferences.
var SeasonBundles = map[string][]models.RecommendationAdjustment{
	"spring": {
		{Factor: "seasonal_vegetables", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Spring produce is at its best"},
		{Factor: "outdoor_seating", Direction: models.DirectionIncrease, Weight: 0.5, Reasoning: "Mild spring weather suits terraces"},
	},
	"summer": {
		{Factor: "cold_dishes", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "Summer heat favors cold dishes"},
		{Factor: "refreshing_drinks", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Summer calls for cold drinks"},
	},
	"autumn": {
		{Factor: "hearty_dishes", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Autumn appetites turn hearty"},
		{Factor: "seasonal_seafood", Direction: models.DirectionIncrease, Weight: 0.5, Reasoning: "Autumn is peak season for seafood"},
	},
	"winter": {
		{Factor: "hot_pot", Direction: models.DirectionIncrease, Weight: 0.8, Reasoning: "Winter is peak hot pot season"},
		{Factor: "warm_interior", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Warm interiors draw winter diners"},
	},
}

// SeasonalEvents are calendar moments that add their own adjustment.
// Keyed by month number.
var SeasonalEvents = map[int][]models.RecommendationAdjustment{
	1: {
		{Factor: "festive_menu", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "Lunar New Year season favors festive set menus"},
	},
	9: {
		{Factor: "mooncake_desserts", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Mid-Autumn Festival season"},
	},
	12: {
		{Factor: "festive_menu", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "December holiday dining"},
	},
}

// LocationTypeBundles holds adjustments per classified location type.
var LocationTypeBundles = map[string][]models.RecommendationAdjustment{
	"business": {
		{Factor: "quick_service", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "Business districts run on tight schedules"},
		{Factor: "business_lunch", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Business settings favor lunch sets"},
	},
	"tourist": {
		{Factor: "local_specialties", Direction: models.DirectionIncrease, Weight: 0.8, Reasoning: "Tourist areas reward trying local specialties"},
		{Factor: "english_menu", Direction: models.DirectionIncrease, Weight: 0.5, Reasoning: "Accessible menus help visitors"},
	},
	"residential": {
		{Factor: "neighborhood_gems", Direction: models.DirectionIncrease, Weight: 0.7, Reasoning: "Residential areas hide local gems"},
		{Factor: "family_friendly", Direction: models.DirectionIncrease, Weight: 0.5, Reasoning: "Residential diners often bring family"},
	},
	"busy": {
		{Factor: "reservation_recommended", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Busy areas mean queues"},
		{Factor: "quick_service", Direction: models.DirectionIncrease, Weight: 0.5, Reasoning: "Turnover matters where crowds gather"},
	},
	"quiet": {
		{Factor: "relaxed_pace", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Quiet areas suit unhurried meals"},
	},
}

// AdjustmentTemplate is a per-emotion reaction whose final weight scales
// with the detection confidence.
type AdjustmentTemplate struct {
	Factor       string
	Direction    string
	WeightFactor float64
	Reasoning    string
}

// EmotionReactions maps each emotion to the adjustments it produces; the
// template weight factor is multiplied by the detection confidence.
var EmotionReactions = map[string][]AdjustmentTemplate{
	"happy": {
		{Factor: "celebratory_atmosphere", Direction: models.DirectionIncrease, WeightFactor: 0.8, Reasoning: "Happy mood suits celebratory venues"},
		{Factor: "sharing_dishes", Direction: models.DirectionIncrease, WeightFactor: 0.5, Reasoning: "Good moods are for sharing"},
	},
	"sad": {
		{Factor: "comfort_food", Direction: models.DirectionIncrease, WeightFactor: 0.9, Reasoning: "Low mood calls for comfort food"},
		{Factor: "quiet_atmosphere", Direction: models.DirectionIncrease, WeightFactor: 0.6, Reasoning: "Quieter settings feel safer when down"},
		{Factor: "loud_environment", Direction: models.DirectionDecrease, WeightFactor: 0.6, Reasoning: "Noise grates on a low mood"},
	},
	"stressed": {
		{Factor: "calm_atmosphere", Direction: models.DirectionIncrease, WeightFactor: 0.8, Reasoning: "Stress eases in calm settings"},
		{Factor: "spicy_food", Direction: models.DirectionDecrease, WeightFactor: 0.6, Reasoning: "Heavy spice can aggravate stress"},
	},
	"angry": {
		{Factor: "spacious_seating", Direction: models.DirectionIncrease, WeightFactor: 0.7, Reasoning: "Space helps cool a temper"},
		{Factor: "crowded_venue", Direction: models.DirectionDecrease, WeightFactor: 0.7, Reasoning: "Crowds aggravate irritation"},
	},
	"tired": {
		{Factor: "quick_service", Direction: models.DirectionIncrease, WeightFactor: 0.7, Reasoning: "Low energy wants fast service"},
		{Factor: "comfortable_seating", Direction: models.DirectionIncrease, WeightFactor: 0.6, Reasoning: "Comfort matters when exhausted"},
	},
	"lonely": {
		{Factor: "communal_seating", Direction: models.DirectionIncrease, WeightFactor: 0.7, Reasoning: "Shared tables offer gentle company"},
		{Factor: "friendly_service", Direction: models.DirectionIncrease, WeightFactor: 0.6, Reasoning: "Warm service counters loneliness"},
	},
	"romantic": {
		{Factor: "intimate_atmosphere", Direction: models.DirectionIncrease, WeightFactor: 0.9, Reasoning: "Romance wants intimacy"},
		{Factor: "family_friendly", Direction: models.DirectionDecrease, WeightFactor: 0.5, Reasoning: "Date night is not family night"},
	},
	"nostalgic": {
		{Factor: "traditional_setting", Direction: models.DirectionIncrease, WeightFactor: 0.8, Reasoning: "Traditional settings feed nostalgia"},
	},
	"adventurous": {
		{Factor: "novel_cuisine", Direction: models.DirectionIncrease, WeightFactor: 0.9, Reasoning: "Adventurous moods want the unfamiliar"},
		{Factor: "familiar_chains", Direction: models.DirectionDecrease, WeightFactor: 0.6, Reasoning: "Chains defeat the point of exploring"},
	},
	"comfort": {
		{Factor: "comfort_food", Direction: models.DirectionIncrease, WeightFactor: 0.9, Reasoning: "Comfort-seeking moods want comfort food"},
		{Factor: "cozy_atmosphere", Direction: models.DirectionIncrease, WeightFactor: 0.7, Reasoning: "Cozy settings complete comfort"},
	},
	"excited": {
		{Factor: "lively_atmosphere", Direction: models.DirectionIncrease, WeightFactor: 0.8, Reasoning: "Excitement feeds on lively settings"},
	},
	"neutral": {
		{Factor: "balanced_menu", Direction: models.DirectionIncrease, WeightFactor: 0.4, Reasoning: "No strong mood; balanced options fit best"},
	},
}

// NamedContextBundles serves the named-context lookup endpoint; unknown
// names return an empty list.
var NamedContextBundles = map[string][]models.RecommendationAdjustment{
	"rainy_day":      WeatherConditionBundles["rainy"],
	"hot_day":        HotWeatherBundle,
	"cold_day":       ColdWeatherBundle,
	"date_night":     ContextAdjustmentBundles["relationship"],
	"family_dinner":  ContextAdjustmentBundles["family"],
	"work_lunch":     TimeOfDayBundles["lunch"],
	"late_night":     TimeOfDayBundles["late_night"],
	"group_outing":   ContextAdjustmentBundles["social"],
	"tight_budget":   ContextAdjustmentBundles["financial"],
	"healthy_eating": ContextAdjustmentBundles["health"],
}
