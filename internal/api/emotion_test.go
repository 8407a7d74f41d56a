package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/service"
)

func newEmotionTestRouter(mlFailureRate float64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	emotions := service.NewEmotionService(log)
	contexts := service.NewContextService(emotions, log)
	ml := service.NewMLService(emotions, nil, mlFailureRate, 0, log)

	router := gin.New()
	handler := NewEmotionHandler(emotions, contexts, ml, nil, nil)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newEmotionTestRouter(0)

	w := postJSON(t, router, "/api/v1/emotion/analyze", gin.H{
		"user_id":    "user-1",
		"text_input": "I am extremely excited and thrilled!!!",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var result models.EmotionAnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "happy", result.PrimaryEmotion)
	assert.Equal(t, 5, result.Intensity)
	assert.NotEmpty(t, result.AnalysisID)
}

func TestAnalyzeEndpoint_MissingInput(t *testing.T) {
	router := newEmotionTestRouter(0)

	w := postJSON(t, router, "/api/v1/emotion/analyze", gin.H{"user_id": "user-1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestAnalyzeMLEndpoint_Fallback(t *testing.T) {
	router := newEmotionTestRouter(1.0)

	w := postJSON(t, router, "/api/v1/emotion/analyze/ml", gin.H{
		"user_id":    "user-2",
		"text_input": "feeling a bit down today",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var result models.EnhancedEmotionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotNil(t, result.EmotionAnalysis)
	assert.True(t, result.ModelMetadata.FallbackUsed)
	assert.Equal(t, "sad", result.EmotionAnalysis.PrimaryEmotion)
}

func TestContextEndpoint(t *testing.T) {
	router := newEmotionTestRouter(0)

	w := postJSON(t, router, "/api/v1/emotion/context", gin.H{
		"text": "stressed about work deadlines",
		"context": gin.H{
			"time_of_day": "lunch",
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var result models.EmotionContextResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result.ContextualFactors, "work_stress")
	assert.NotEmpty(t, result.RecommendationAdjustments)
	assert.Greater(t, result.Confidence, 0.0)
}

func TestContextEndpoint_EmptyRequest(t *testing.T) {
	router := newEmotionTestRouter(0)

	w := postJSON(t, router, "/api/v1/emotion/context", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
