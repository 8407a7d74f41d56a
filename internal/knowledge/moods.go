package knowledge

import "github.com/PeterSoManLung/FindDinning-sub001/internal/models"

// DefaultMoodMappings returns the emotion -> cuisine/atmosphere/price
// knowledge table. The "neutral" entry is the universal fallback, so
// lookups through the service layer never come back empty.
func DefaultMoodMappings() map[string]models.MoodMapping {
	return map[string]models.MoodMapping{
		"happy": {
			Emotion: "happy",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Japanese", MatchScore: 0.9, Reasoning: "Fresh, vibrant flavors match an upbeat mood", SpecificDishes: []string{"sushi platter", "chirashi don"}},
				{CuisineType: "Italian", MatchScore: 0.85, Reasoning: "Celebratory and social dining", SpecificDishes: []string{"margherita pizza", "seafood linguine"}},
				{CuisineType: "Mediterranean", MatchScore: 0.8, Reasoning: "Bright, shareable plates keep the energy up", SpecificDishes: []string{"mezze platter"}},
				{CuisineType: "Mexican", MatchScore: 0.75, Reasoning: "Lively flavors for a lively mood", SpecificDishes: []string{"street tacos"}},
			},
			AtmospherePreferences: []string{"lively", "social", "outdoor_seating"},
			PriceRangeAdjustment:  0.1,
		},
		"sad": {
			Emotion: "sad",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Comfort Food", MatchScore: 0.95, Reasoning: "Familiar dishes provide emotional warmth", SpecificDishes: []string{"mac and cheese", "fried chicken"}},
				{CuisineType: "Chinese", MatchScore: 0.85, Reasoning: "Warm congee and soup dishes are soothing", SpecificDishes: []string{"congee", "wonton noodle soup"}},
				{CuisineType: "Italian", MatchScore: 0.75, Reasoning: "Rich pasta dishes offer indulgent comfort", SpecificDishes: []string{"carbonara", "lasagna"}},
				{CuisineType: "Dessert", MatchScore: 0.7, Reasoning: "Sweet treats lift a low mood", SpecificDishes: []string{"chocolate lava cake"}},
			},
			AtmospherePreferences: []string{"quiet", "cozy", "warm_lighting"},
			PriceRangeAdjustment:  -0.1,
		},
		"stressed": {
			Emotion: "stressed",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Japanese", MatchScore: 0.9, Reasoning: "Clean, calming presentation eases tension", SpecificDishes: []string{"udon", "bento"}},
				{CuisineType: "Comfort Food", MatchScore: 0.85, Reasoning: "Familiar food reduces decision fatigue", SpecificDishes: []string{"grilled cheese", "mashed potatoes"}},
				{CuisineType: "Vietnamese", MatchScore: 0.8, Reasoning: "Light broths are gentle on a stressed stomach", SpecificDishes: []string{"pho"}},
				{CuisineType: "Tea House", MatchScore: 0.7, Reasoning: "A slow tea service encourages unwinding"},
			},
			AtmospherePreferences: []string{"calm", "quiet", "minimalist"},
			PriceRangeAdjustment:  0.0,
		},
		"angry": {
			Emotion: "angry",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Korean", MatchScore: 0.85, Reasoning: "Bold, spicy flavors channel strong feelings", SpecificDishes: []string{"kimchi jjigae", "korean bbq"}},
				{CuisineType: "Sichuan", MatchScore: 0.8, Reasoning: "An intense flavor outlet", SpecificDishes: []string{"mapo tofu", "dan dan noodles"}},
				{CuisineType: "Comfort Food", MatchScore: 0.75, Reasoning: "Grounding, familiar dishes help cool off", SpecificDishes: []string{"burger and fries"}},
				{CuisineType: "Juice Bar", MatchScore: 0.6, Reasoning: "Something light when appetite is unsettled"},
			},
			AtmospherePreferences: []string{"spacious", "private_booths"},
			PriceRangeAdjustment:  0.0,
		},
		"tired": {
			Emotion: "tired",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Comfort Food", MatchScore: 0.9, Reasoning: "Low-effort, satisfying dishes for low energy", SpecificDishes: []string{"chicken pot pie"}},
				{CuisineType: "Chinese", MatchScore: 0.85, Reasoning: "Nourishing one-bowl meals", SpecificDishes: []string{"claypot rice", "congee"}},
				{CuisineType: "Japanese", MatchScore: 0.75, Reasoning: "Simple, restorative bowls", SpecificDishes: []string{"ramen", "oyakodon"}},
				{CuisineType: "Cafe", MatchScore: 0.7, Reasoning: "A caffeine-friendly pit stop"},
			},
			AtmospherePreferences: []string{"quiet", "comfortable_seating", "fast_service"},
			PriceRangeAdjustment:  -0.1,
		},
		"lonely": {
			Emotion: "lonely",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Comfort Food", MatchScore: 0.9, Reasoning: "Emotional warmth in a bowl", SpecificDishes: []string{"chicken soup"}},
				{CuisineType: "Japanese", MatchScore: 0.8, Reasoning: "Counter seating is welcoming to solo diners", SpecificDishes: []string{"ramen"}},
				{CuisineType: "Cafe", MatchScore: 0.75, Reasoning: "A social space without social pressure"},
				{CuisineType: "Hong Kong Style", MatchScore: 0.7, Reasoning: "Bustling cha chaan tengs offer easy company", SpecificDishes: []string{"milk tea", "french toast"}},
			},
			AtmospherePreferences: []string{"communal_tables", "friendly_staff", "counter_seating"},
			PriceRangeAdjustment:  -0.1,
		},
		"romantic": {
			Emotion: "romantic",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "French", MatchScore: 0.95, Reasoning: "Classic date-night cuisine", SpecificDishes: []string{"duck confit", "souffle"}},
				{CuisineType: "Italian", MatchScore: 0.9, Reasoning: "Intimate trattoria dining", SpecificDishes: []string{"truffle pasta"}},
				{CuisineType: "Japanese", MatchScore: 0.8, Reasoning: "Omakase makes an occasion of a meal", SpecificDishes: []string{"omakase"}},
				{CuisineType: "Wine Bar", MatchScore: 0.75, Reasoning: "Shared plates and conversation"},
			},
			AtmospherePreferences: []string{"intimate", "candlelit", "quiet", "view"},
			PriceRangeAdjustment:  0.3,
		},
		"nostalgic": {
			Emotion: "nostalgic",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Hong Kong Style", MatchScore: 0.9, Reasoning: "Old-school flavors evoke childhood memories", SpecificDishes: []string{"pineapple bun", "egg tart"}},
				{CuisineType: "Comfort Food", MatchScore: 0.85, Reasoning: "Dishes like the ones from home", SpecificDishes: []string{"meatloaf"}},
				{CuisineType: "Chinese", MatchScore: 0.8, Reasoning: "Traditional recipes carry memory", SpecificDishes: []string{"dim sum"}},
				{CuisineType: "Diner", MatchScore: 0.7, Reasoning: "Retro settings complete the mood"},
			},
			AtmospherePreferences: []string{"traditional", "retro", "family_run"},
			PriceRangeAdjustment:  -0.1,
		},
		"adventurous": {
			Emotion: "adventurous",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Fusion", MatchScore: 0.9, Reasoning: "Unexpected combinations reward curiosity"},
				{CuisineType: "Ethiopian", MatchScore: 0.85, Reasoning: "A hands-on dining experience", SpecificDishes: []string{"injera platter"}},
				{CuisineType: "Peruvian", MatchScore: 0.8, Reasoning: "Distinctive flavors off the beaten path", SpecificDishes: []string{"ceviche"}},
				{CuisineType: "Street Food", MatchScore: 0.8, Reasoning: "Exploration one stall at a time"},
			},
			AtmospherePreferences: []string{"unique", "bustling", "open_kitchen"},
			PriceRangeAdjustment:  0.1,
		},
		"comfort": {
			Emotion: "comfort",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Comfort Food", MatchScore: 0.95, Reasoning: "Exactly what the mood calls for", SpecificDishes: []string{"mac and cheese", "roast chicken"}},
				{CuisineType: "Chinese", MatchScore: 0.85, Reasoning: "Warming claypots and soups", SpecificDishes: []string{"claypot rice"}},
				{CuisineType: "Italian", MatchScore: 0.8, Reasoning: "Hearty pasta comfort", SpecificDishes: []string{"gnocchi"}},
				{CuisineType: "Thai", MatchScore: 0.7, Reasoning: "Coconut curries soothe and satisfy", SpecificDishes: []string{"green curry"}},
			},
			AtmospherePreferences: []string{"cozy", "warm_lighting", "soft_music"},
			PriceRangeAdjustment:  -0.1,
		},
		"excited": {
			Emotion: "excited",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Korean", MatchScore: 0.85, Reasoning: "Interactive grilling matches high energy", SpecificDishes: []string{"korean bbq"}},
				{CuisineType: "Mexican", MatchScore: 0.8, Reasoning: "Festive plates and sharing", SpecificDishes: []string{"fajitas"}},
				{CuisineType: "Japanese", MatchScore: 0.75, Reasoning: "Teppanyaki theatre", SpecificDishes: []string{"teppanyaki"}},
				{CuisineType: "Hot Pot", MatchScore: 0.75, Reasoning: "A group event as much as a meal"},
			},
			AtmospherePreferences: []string{"lively", "social", "music"},
			PriceRangeAdjustment:  0.2,
		},
		"grateful": {
			Emotion: "grateful",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Farm To Table", MatchScore: 0.85, Reasoning: "Mindful sourcing suits a thankful mood"},
				{CuisineType: "Japanese", MatchScore: 0.8, Reasoning: "Seasonal kaiseki appreciation", SpecificDishes: []string{"kaiseki"}},
				{CuisineType: "Mediterranean", MatchScore: 0.75, Reasoning: "Wholesome shared dining"},
			},
			AtmospherePreferences: []string{"warm", "welcoming"},
			PriceRangeAdjustment:  0.1,
		},
		"confused": {
			Emotion: "confused",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Comfort Food", MatchScore: 0.8, Reasoning: "A safe default when deciding is hard"},
				{CuisineType: "Chinese", MatchScore: 0.75, Reasoning: "Broad menus with something for everyone", SpecificDishes: []string{"dim sum"}},
				{CuisineType: "Food Court", MatchScore: 0.7, Reasoning: "Decide dish by dish"},
			},
			AtmospherePreferences: []string{"casual", "no_pressure"},
			PriceRangeAdjustment:  -0.1,
		},
		"neutral": {
			Emotion: "neutral",
			CuisineRecommendations: []models.CuisineRecommendation{
				{CuisineType: "Chinese", MatchScore: 0.8, Reasoning: "Reliably satisfying everyday dining", SpecificDishes: []string{"dim sum", "fried rice"}},
				{CuisineType: "Japanese", MatchScore: 0.75, Reasoning: "Broad appeal and consistent quality", SpecificDishes: []string{"sushi", "ramen"}},
				{CuisineType: "Italian", MatchScore: 0.75, Reasoning: "A crowd-pleasing standard", SpecificDishes: []string{"pizza", "pasta"}},
				{CuisineType: "Thai", MatchScore: 0.7, Reasoning: "Balanced flavors for any mood", SpecificDishes: []string{"pad thai"}},
				{CuisineType: "Cafe", MatchScore: 0.65, Reasoning: "Light, flexible options"},
			},
			AtmospherePreferences: []string{"casual", "comfortable"},
			PriceRangeAdjustment:  0.0,
		},
	}
}

// DietaryExclusions maps a dietary restriction to the cuisine types that
// are removed from candidate lists for users holding that restriction.
var DietaryExclusions = map[string][]string{
	"vegetarian":  {"Korean", "Street Food", "Hot Pot"},
	"vegan":       {"Korean", "French", "Hot Pot", "Dessert", "Comfort Food"},
	"halal":       {"Korean", "Sichuan", "Hot Pot", "Wine Bar"},
	"kosher":      {"Street Food", "Hot Pot", "Sichuan"},
	"gluten-free": {"Italian", "Dessert", "Diner"},
	"dairy-free":  {"French", "Dessert", "Cafe"},
}

// NegativeEmotions are the labels that trigger the therapeutic intensity
// boost at high intensity.
var NegativeEmotions = map[string]bool{
	"sad":      true,
	"stressed": true,
	"angry":    true,
	"tired":    true,
	"lonely":   true,
}

// TherapeuticCuisines receive a boost for high-intensity negative moods.
var TherapeuticCuisines = map[string]bool{
	"Comfort Food": true,
	"Chinese":      true,
	"Tea House":    true,
	"Cafe":         true,
}

// SafeCuisines receive a boost at low intensity, when users gravitate to
// familiar choices.
var SafeCuisines = map[string]bool{
	"Comfort Food": true,
	"Chinese":      true,
}
