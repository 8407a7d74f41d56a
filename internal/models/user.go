package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a read-only mirror of the upstream user service's record; the
// engine only consults it for identity and current location.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Latitude  float64        `gorm:"type:float" json:"latitude"`
	Longitude float64        `gorm:"type:float" json:"longitude"`
}

// UserPreferences holds the stored dining preferences consulted by the
// matcher and the mood knowledge base.
type UserPreferences struct {
	ID                    uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CuisineTypes          JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"cuisine_types"`
	DietaryRestrictions   JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietary_restrictions"`
	PriceRangeMin         int              `gorm:"default:1" json:"price_range_min"`
	PriceRangeMax         int              `gorm:"default:5" json:"price_range_max"`
	AtmospherePreferences JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"atmosphere_preferences"`
	SpiceLevel            int              `gorm:"check:spice_level >= 0 AND spice_level <= 5" json:"spice_level"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}
