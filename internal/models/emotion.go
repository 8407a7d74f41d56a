package models

import "time"

// Adjustment directions used throughout the recommendation pipeline.
const (
	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
)

// EmotionNeutral is the universal fallback label when no signal is detected.
const EmotionNeutral = "neutral"

// DetectedEmotion is a single emotion signal inferred from user input.
type DetectedEmotion struct {
	Emotion    string   `json:"emotion"`
	Confidence float64  `json:"confidence"`
	Triggers   []string `json:"triggers"`
}

// RecommendationAdjustment is a weighted nudge toward or away from a
// recommendation dimension (atmosphere, cuisine, price, ...).
type RecommendationAdjustment struct {
	Factor    string  `json:"factor"`
	Direction string  `json:"direction"`
	Weight    float64 `json:"weight"`
	Reasoning string  `json:"reasoning"`
}

// WeatherReading is an optional structured weather observation supplied by
// the caller alongside the request.
type WeatherReading struct {
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

// EmotionContext carries the situational context of a request.
type EmotionContext struct {
	TimeOfDay     string          `json:"time_of_day,omitempty"`
	Location      string          `json:"location,omitempty"`
	SocialSetting string          `json:"social_setting,omitempty"`
	Weather       *WeatherReading `json:"weather,omitempty"`
	RecentEvents  []string        `json:"recent_events,omitempty"`
}

// EmotionAnalysisRequest is the validated payload handed to the engine.
type EmotionAnalysisRequest struct {
	UserID         string          `json:"user_id"`
	TextInput      string          `json:"text_input,omitempty"`
	EmotionalState string          `json:"emotional_state,omitempty"`
	Context        *EmotionContext `json:"context,omitempty"`
}

// EmotionAnalysisResult is the deterministic output of emotion analysis.
type EmotionAnalysisResult struct {
	AnalysisID        string            `json:"analysis_id"`
	UserID            string            `json:"user_id,omitempty"`
	PrimaryEmotion    string            `json:"primary_emotion"`
	SecondaryEmotions []string          `json:"secondary_emotions"`
	Intensity         int               `json:"intensity"`
	Confidence        float64           `json:"confidence"`
	DetectedEmotions  []DetectedEmotion `json:"detected_emotions"`
	AnalyzedAt        time.Time         `json:"analyzed_at"`
}

// EmotionContextResult is the output of the contextual analysis pass.
type EmotionContextResult struct {
	DetectedEmotions          []DetectedEmotion          `json:"detected_emotions"`
	ContextualFactors         []string                   `json:"contextual_factors"`
	RecommendationAdjustments []RecommendationAdjustment `json:"recommendation_adjustments"`
	Confidence                float64                    `json:"confidence"`
}

// ModelMetadata records which enhancement sub-models ran for a request.
type ModelMetadata struct {
	ModelsUsed     []string `json:"models_used"`
	ProcessingTime int64    `json:"processing_time_ms"`
	FallbackUsed   bool     `json:"fallback_used"`
}

// EnhancedEmotionResult wraps the deterministic analysis with the
// best-effort ML enhancement output.
type EnhancedEmotionResult struct {
	EmotionAnalysis *EmotionAnalysisResult `json:"emotion_analysis"`
	Sentiment       float64                `json:"sentiment"`
	Keywords        []string               `json:"keywords"`
	ModelMetadata   ModelMetadata          `json:"model_metadata"`
}
