package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// MenuHighlight is a notable dish with its dietary tags.
type MenuHighlight struct {
	Name        string   `json:"name"`
	DietaryTags []string `json:"dietary_tags,omitempty"`
}

// MenuHighlights stores menu highlights as JSONB.
type MenuHighlights []MenuHighlight

// Value implements the driver.Valuer interface
func (m MenuHighlights) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "[]", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *MenuHighlights) Scan(value interface{}) error {
	if value == nil {
		*m = MenuHighlights{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// OperatingWindow is the open/close window for one weekday. Times are
// "HH:MM" in the restaurant's local time.
type OperatingWindow struct {
	IsOpen bool   `json:"is_open"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
}

// OperatingHours maps lowercase weekday names to operating windows.
type OperatingHours map[string]OperatingWindow

// Value implements the driver.Valuer interface
func (h OperatingHours) Value() (driver.Value, error) {
	if len(h) == 0 {
		return "{}", nil
	}
	return json.Marshal(h)
}

// Scan implements the sql.Scanner interface
func (h *OperatingHours) Scan(value interface{}) error {
	if value == nil {
		*h = OperatingHours{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, h)
}

// Restaurant is a catalog entry. The catalog is a read-only data source
// for the engine; rows are written by the seeding/import tooling only.
type Restaurant struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
	Name           string           `gorm:"size:255;not null" json:"name"`
	CuisineTypes   JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"cuisine_types"`
	Latitude       float64          `gorm:"type:float" json:"latitude"`
	Longitude      float64          `gorm:"type:float" json:"longitude"`
	District       string           `gorm:"size:100" json:"district"`
	PriceRange     int              `gorm:"check:price_range >= 1 AND price_range <= 5" json:"price_range"`
	Rating         float64          `gorm:"type:float" json:"rating"`
	NegativeScore  float64          `gorm:"type:float" json:"negative_score"`
	ReviewCount    int              `json:"review_count"`
	Atmosphere     JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"atmosphere"`
	OperatingHours OperatingHours   `gorm:"type:jsonb;not null;default:'{}'" json:"operating_hours"`
	MenuHighlights MenuHighlights   `gorm:"type:jsonb;not null;default:'[]'" json:"menu_highlights"`
	IsLocalGem     bool             `json:"is_local_gem"`
	Embedding      pgvector.Vector  `gorm:"type:vector(3)" json:"-"`
}

// RecommendedRestaurant pairs a restaurant with its composite match score
// and the human-readable reasons behind it.
type RecommendedRestaurant struct {
	Restaurant               Restaurant `json:"restaurant"`
	MatchScore               float64    `json:"match_score"`
	ReasonsForRecommendation []string   `json:"reasons_for_recommendation"`
	EmotionalAlignment       float64    `json:"emotional_alignment"`
}

// MatchCriteria are the optional hard filters applied before scoring.
// Zero values mean the corresponding filter is disabled.
type MatchCriteria struct {
	MaxDistanceKm    float64   `json:"max_distance_km,omitempty"`
	MinRating        float64   `json:"min_rating,omitempty"`
	MaxNegativeScore float64   `json:"max_negative_score,omitempty"`
	RequireOpen      bool      `json:"require_open,omitempty"`
	ReferenceTime    time.Time `json:"reference_time,omitempty"`
}

// MatchWeights are the relative weights of the composite score terms.
type MatchWeights struct {
	PreferenceMatch float64 `json:"preference_match"`
	Distance        float64 `json:"distance"`
	Rating          float64 `json:"rating"`
	NegativeScore   float64 `json:"negative_score"`
	Popularity      float64 `json:"popularity"`
}

// DefaultMatchWeights returns the standard weighting, summing to 1.
func DefaultMatchWeights() MatchWeights {
	return MatchWeights{
		PreferenceMatch: 0.35,
		Distance:        0.20,
		Rating:          0.20,
		NegativeScore:   0.15,
		Popularity:      0.10,
	}
}

// Sum returns the total of all weight terms.
func (w MatchWeights) Sum() float64 {
	return w.PreferenceMatch + w.Distance + w.Rating + w.NegativeScore + w.Popularity
}
