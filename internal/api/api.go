package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/PeterSoManLung/FindDinning-sub001/config"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/middleware"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/service"
)

// SetupAPI wires the engine services to their HTTP routes under /api/v1.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, mappings map[string]models.MoodMapping, cfg *config.Config, log *logger.Logger) {
	v1 := router.Group("/api/v1")
	{
		// Initialize services
		emotionService := service.NewEmotionService(log)
		contextService := service.NewContextService(emotionService, log)
		moodService := service.NewMoodMappingService(mappings, log)
		moodRecService := service.NewMoodRecommendationService(log)
		matcherService := service.NewMatcherService(moodService, log)
		profileService := service.NewProfileService(db)
		catalogService := service.NewCatalogService(db)
		tokenService := service.NewTokenService(cfg.JWTSecret)
		mlService := service.NewMLService(emotionService, redisClient,
			cfg.MLFailureRate, time.Duration(cfg.MLMaxLatencyMs)*time.Millisecond, log)

		var limiter *middleware.RateLimiter
		if redisClient != nil {
			limiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
				Window:    time.Minute,
				Limit:     30,
				KeyPrefix: "ratelimit:ml",
			})
		}

		// Initialize handlers
		emotionHandler := NewEmotionHandler(emotionService, contextService, mlService, tokenService, limiter)
		moodHandler := NewMoodHandler(moodService, moodRecService, contextService, mlService)
		recommendationHandler := NewRecommendationHandler(matcherService, profileService, catalogService)

		// Register routes
		emotionHandler.RegisterRoutes(v1)
		moodHandler.RegisterRoutes(v1)
		recommendationHandler.RegisterRoutes(v1)
	}
}
