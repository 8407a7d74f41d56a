package service

import (
	"context"
	"errors"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// ProfileService reads user records and stored dining preferences. The
// engine treats the profile store as read-only; writes happen in the
// upstream user service.
type ProfileService struct {
	db *gorm.DB
}

var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetUser retrieves a user by ID.
func (s *ProfileService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetPreferences retrieves a user's stored dining preferences. A user
// with no stored preferences gets an empty default set, not an error.
func (s *ProfileService) GetPreferences(ctx context.Context, userID uuid.UUID) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserPreferences{
			UserID:        userID,
			PriceRangeMin: 1,
			PriceRangeMax: 5,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}
