package knowledge

import "github.com/PeterSoManLung/FindDinning-sub001/internal/models"

// Recommendation intents derived from the primary emotion.
const (
	IntentComfort     = "comfort"
	IntentCelebratory = "celebratory"
	IntentTherapeutic = "therapeutic"
	IntentAdventurous = "adventurous"
	IntentNeutral     = "neutral"
)

// IntentMembership maps emotion labels to their recommendation intent.
// Anything absent resolves to the neutral intent.
var IntentMembership = map[string]string{
	"sad":         IntentComfort,
	"lonely":      IntentComfort,
	"nostalgic":   IntentComfort,
	"comfort":     IntentComfort,
	"happy":       IntentCelebratory,
	"excited":     IntentCelebratory,
	"grateful":    IntentCelebratory,
	"romantic":    IntentCelebratory,
	"stressed":    IntentTherapeutic,
	"angry":       IntentTherapeutic,
	"tired":       IntentTherapeutic,
	"adventurous": IntentAdventurous,
}

// FallbackIntent names the intent whose table supplies the fallback list
// for each primary intent, so callers never receive an empty result.
var FallbackIntent = map[string]string{
	IntentComfort:     IntentNeutral,
	IntentCelebratory: IntentAdventurous,
	IntentTherapeutic: IntentComfort,
	IntentAdventurous: IntentCelebratory,
	IntentNeutral:     IntentComfort,
}

// IntentTable is the static recommendation table for one intent.
type IntentTable struct {
	Recommendations []models.CuisineRecommendation
	Atmosphere      []string
	PriceAdjustment models.RecommendationAdjustment
	Reasoning       string
}

// IntentTables holds the per-intent recommendation tables.
var IntentTables = map[string]IntentTable{
	IntentComfort: {
		Recommendations: []models.CuisineRecommendation{
			{CuisineType: "Comfort Food", MatchScore: 0.95, Reasoning: "Direct comfort match", SpecificDishes: []string{"mac and cheese", "chicken soup"}},
			{CuisineType: "Chinese", MatchScore: 0.85, Reasoning: "Congee and soup dishes soothe", SpecificDishes: []string{"congee", "wonton soup"}},
			{CuisineType: "Hong Kong Style", MatchScore: 0.8, Reasoning: "Cha chaan teng familiarity", SpecificDishes: []string{"milk tea", "baked pork chop rice"}},
			{CuisineType: "Italian", MatchScore: 0.75, Reasoning: "Hearty pasta comfort", SpecificDishes: []string{"lasagna"}},
			{CuisineType: "Japanese", MatchScore: 0.7, Reasoning: "Warm noodle bowls", SpecificDishes: []string{"ramen", "udon"}},
			{CuisineType: "Dessert", MatchScore: 0.65, Reasoning: "Sweet consolation"},
		},
		Atmosphere:      []string{"cozy", "quiet", "warm_lighting"},
		PriceAdjustment: models.RecommendationAdjustment{Factor: "price_sensitivity", Direction: models.DirectionIncrease, Weight: 0.5, Reasoning: "Comfort seeking favors affordable familiarity"},
		Reasoning:       "Comfort-seeking mood: familiar, warming dishes in low-pressure settings",
	},
	IntentCelebratory: {
		Recommendations: []models.CuisineRecommendation{
			{CuisineType: "French", MatchScore: 0.9, Reasoning: "Occasion dining", SpecificDishes: []string{"tasting menu"}},
			{CuisineType: "Japanese", MatchScore: 0.85, Reasoning: "Omakase marks a milestone", SpecificDishes: []string{"omakase"}},
			{CuisineType: "Italian", MatchScore: 0.8, Reasoning: "Festive shared tables", SpecificDishes: []string{"seafood platter"}},
			{CuisineType: "Korean", MatchScore: 0.75, Reasoning: "Interactive group grilling", SpecificDishes: []string{"korean bbq"}},
			{CuisineType: "Wine Bar", MatchScore: 0.7, Reasoning: "Toasts need good glasses"},
		},
		Atmosphere:      []string{"lively", "stylish", "group_friendly"},
		PriceAdjustment: models.RecommendationAdjustment{Factor: "premium_pricing", Direction: models.DirectionIncrease, Weight: 0.6, Reasoning: "Celebrations justify a splurge"},
		Reasoning:       "Celebratory mood: memorable, social venues worth the occasion",
	},
	IntentTherapeutic: {
		Recommendations: []models.CuisineRecommendation{
			{CuisineType: "Japanese", MatchScore: 0.9, Reasoning: "Calm, restorative dining", SpecificDishes: []string{"bento", "udon"}},
			{CuisineType: "Vietnamese", MatchScore: 0.85, Reasoning: "Light, clean broths", SpecificDishes: []string{"pho"}},
			{CuisineType: "Tea House", MatchScore: 0.8, Reasoning: "Slowing down is the point"},
			{CuisineType: "Comfort Food", MatchScore: 0.75, Reasoning: "Grounding and familiar"},
			{CuisineType: "Cafe", MatchScore: 0.7, Reasoning: "A gentle pause"},
		},
		Atmosphere:      []string{"calm", "minimalist", "quiet"},
		PriceAdjustment: models.RecommendationAdjustment{Factor: "price_sensitivity", Direction: models.DirectionIncrease, Weight: 0.4, Reasoning: "Recovery dining stays modest"},
		Reasoning:       "Restorative mood: light, calming meals in unhurried settings",
	},
	IntentAdventurous: {
		Recommendations: []models.CuisineRecommendation{
			{CuisineType: "Fusion", MatchScore: 0.9, Reasoning: "New combinations to discover"},
			{CuisineType: "Ethiopian", MatchScore: 0.85, Reasoning: "A format worth trying once", SpecificDishes: []string{"injera platter"}},
			{CuisineType: "Peruvian", MatchScore: 0.8, Reasoning: "Unfamiliar and rewarding", SpecificDishes: []string{"ceviche"}},
			{CuisineType: "Street Food", MatchScore: 0.8, Reasoning: "Exploration by the stall"},
			{CuisineType: "Sichuan", MatchScore: 0.75, Reasoning: "A flavor challenge", SpecificDishes: []string{"mala hot pot"}},
		},
		Atmosphere:      []string{"unique", "bustling", "open_kitchen"},
		PriceAdjustment: models.RecommendationAdjustment{Factor: "premium_pricing", Direction: models.DirectionIncrease, Weight: 0.3, Reasoning: "Novelty can cost a little more"},
		Reasoning:       "Adventurous mood: unfamiliar cuisines and memorable formats",
	},
	IntentNeutral: {
		Recommendations: []models.CuisineRecommendation{
			{CuisineType: "Chinese", MatchScore: 0.8, Reasoning: "Everyday reliability", SpecificDishes: []string{"dim sum"}},
			{CuisineType: "Japanese", MatchScore: 0.75, Reasoning: "Broad, dependable appeal", SpecificDishes: []string{"sushi"}},
			{CuisineType: "Italian", MatchScore: 0.75, Reasoning: "A safe crowd-pleaser", SpecificDishes: []string{"pizza"}},
			{CuisineType: "Thai", MatchScore: 0.7, Reasoning: "Balanced flavors", SpecificDishes: []string{"pad thai"}},
			{CuisineType: "Cafe", MatchScore: 0.65, Reasoning: "Light and flexible"},
		},
		Atmosphere:      []string{"casual", "comfortable"},
		PriceAdjustment: models.RecommendationAdjustment{Factor: "price_sensitivity", Direction: models.DirectionIncrease, Weight: 0.2, Reasoning: "No mood signal; keep pricing moderate"},
		Reasoning:       "No strong mood signal: balanced everyday recommendations",
	},
}

// SocialSettingBoosts nudges specific cuisine types when a social setting
// is declared on the request.
var SocialSettingBoosts = map[string]map[string]float64{
	"group": {
		"Korean":  0.1,
		"Hot Pot": 0.1,
		"Italian": 0.05,
	},
	"date": {
		"French":   0.1,
		"Italian":  0.1,
		"Wine Bar": 0.1,
	},
	"solo": {
		"Japanese": 0.1,
		"Cafe":     0.1,
	},
	"family": {
		"Chinese":         0.1,
		"Hong Kong Style": 0.05,
		"Comfort Food":    0.05,
	},
}

// TimeOfDayBoosts nudges specific cuisine types per time-of-day bucket.
var TimeOfDayBoosts = map[string]map[string]float64{
	"morning": {
		"Cafe":            0.15,
		"Hong Kong Style": 0.1,
	},
	"lunch": {
		"Japanese": 0.05,
		"Chinese":  0.05,
	},
	"late_night": {
		"Hong Kong Style": 0.1,
		"Comfort Food":    0.1,
	},
}
