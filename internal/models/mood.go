package models

// CuisineRecommendation is one ranked cuisine candidate for a mood.
type CuisineRecommendation struct {
	CuisineType    string   `json:"cuisine_type"`
	MatchScore     float64  `json:"match_score"`
	Reasoning      string   `json:"reasoning"`
	SpecificDishes []string `json:"specific_dishes,omitempty"`
}

// MoodMapping is the static knowledge entry for one emotion.
type MoodMapping struct {
	Emotion                string                  `json:"-"`
	CuisineRecommendations []CuisineRecommendation `json:"cuisine_recommendations"`
	AtmospherePreferences  []string                `json:"atmosphere_preferences"`
	PriceRangeAdjustment   float64                 `json:"price_range_adjustment"`
}

// MoodRecommendationRequest asks for intent-driven dining recommendations.
type MoodRecommendationRequest struct {
	UserID         string           `json:"user_id"`
	PrimaryEmotion string           `json:"primary_emotion"`
	Intensity      int              `json:"intensity"`
	SocialSetting  string           `json:"social_setting,omitempty"`
	TimeOfDay      string           `json:"time_of_day,omitempty"`
	Preferences    *UserPreferences `json:"preferences,omitempty"`
}

// MoodRecommendation is the intent-dispatched recommendation bundle.
type MoodRecommendation struct {
	RecommendationType      string                     `json:"recommendation_type"`
	PrimaryRecommendations  []CuisineRecommendation    `json:"primary_recommendations"`
	FallbackRecommendations []CuisineRecommendation    `json:"fallback_recommendations"`
	AtmosphereAdjustments   []string                   `json:"atmosphere_adjustments"`
	PriceAdjustments        []RecommendationAdjustment `json:"price_adjustments"`
	Reasoning               string                     `json:"reasoning"`
	Confidence              float64                    `json:"confidence"`
}
