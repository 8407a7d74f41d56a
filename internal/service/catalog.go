package service

import (
	"context"
	"errors"
	"strings"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// CatalogService reads the restaurant catalog. Rows are written by the
// seeding tooling; the request path only queries.
type CatalogService struct {
	db *gorm.DB
}

var _ ICatalogService = (*CatalogService)(nil)

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// GetRestaurant retrieves a restaurant by ID.
func (s *CatalogService) GetRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// ListRestaurants returns the full catalog, optionally filtered by
// district.
func (s *CatalogService) ListRestaurants(ctx context.Context, district string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	query := s.db.WithContext(ctx)
	if district != "" {
		query = query.Where("LOWER(district) = ?", strings.ToLower(district))
	}
	if err := query.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// SearchRestaurants combines semantic and keyword search on postgres, and
// falls back to plain keyword matching elsewhere.
func (s *CatalogService) SearchRestaurants(ctx context.Context, query string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant

	dbQuery := s.db.WithContext(ctx)
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(query)
			subQuery := s.db.Model(&models.Restaurant{}).
				Select("id, embedding <-> ? as similarity", vec).
				Where("LOWER(name) LIKE ? OR LOWER(district) LIKE ? OR LOWER(cuisine_types::text) LIKE ?",
					like, like, like)
			dbQuery = dbQuery.Joins("JOIN (?) as search ON restaurants.id = search.id", subQuery).
				Order("search.similarity ASC")
		} else {
			dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(district) LIKE ? OR LOWER(cuisine_types) LIKE ?",
				like, like, like)
		}
	}

	if err := dbQuery.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// CreateRestaurant inserts a catalog row, generating its embedding from
// the name and cuisine types. Used by the seeding tooling.
func (s *CatalogService) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	restaurant.Embedding = GenerateEmbedding(restaurant.Name + " " + strings.Join(restaurant.CuisineTypes, " "))
	if err := s.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}
