package service

import (
	"testing"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmotionService() *EmotionService {
	return NewEmotionService(logger.NewNop())
}

func TestAnalyzeEmotion_ExplicitState(t *testing.T) {
	svc := newTestEmotionService()

	result := svc.AnalyzeEmotion(&models.EmotionAnalysisRequest{
		UserID:         "user-1",
		EmotionalState: "thrilled",
	})

	assert.Equal(t, "excited", result.PrimaryEmotion)
	require.Len(t, result.DetectedEmotions, 1)
	assert.Equal(t, []string{"explicit_input"}, result.DetectedEmotions[0].Triggers)
	assert.InDelta(t, 0.9, result.DetectedEmotions[0].Confidence, 1e-9)
	// 0.9 base plus the explicit-input bonus hits the cap.
	assert.InDelta(t, 0.95, result.Confidence, 1e-9)
	assert.Equal(t, 3, result.Intensity)
	assert.NotEmpty(t, result.AnalysisID)
	assert.Equal(t, "user-1", result.UserID)
}

func TestAnalyzeEmotion_IntenseText(t *testing.T) {
	svc := newTestEmotionService()

	result := svc.AnalyzeEmotion(&models.EmotionAnalysisRequest{
		UserID:    "user-2",
		TextInput: "I am extremely excited and thrilled!!!",
	})

	// "excited" and "thrilled" hit both the happy and excited keyword
	// sets; the tie resolves toward the earlier vocabulary entry.
	assert.Equal(t, "happy", result.PrimaryEmotion)
	assert.Contains(t, result.SecondaryEmotions, "excited")
	assert.Equal(t, 5, result.Intensity)
	assert.InDelta(t, 0.6, result.Confidence, 1e-9)
}

func TestAnalyzeEmotion_EmptyInputIsNeutral(t *testing.T) {
	svc := newTestEmotionService()

	result := svc.AnalyzeEmotion(&models.EmotionAnalysisRequest{UserID: "user-3"})

	assert.Equal(t, models.EmotionNeutral, result.PrimaryEmotion)
	assert.Empty(t, result.SecondaryEmotions)
	assert.Empty(t, result.DetectedEmotions)
	assert.Equal(t, 3, result.Intensity)
	assert.InDelta(t, 0.3, result.Confidence, 1e-9)
}

func TestAnalyzeEmotion_ConflictLowersConfidence(t *testing.T) {
	svc := newTestEmotionService()

	result := svc.AnalyzeEmotion(&models.EmotionAnalysisRequest{
		UserID:    "user-4",
		TextInput: "I'm happy but also sad",
	})

	assert.Equal(t, "happy", result.PrimaryEmotion)
	assert.InDelta(t, 0.1, result.Confidence, 1e-9)
}

func TestAnalyzeEmotion_ExplicitAndTextDeduped(t *testing.T) {
	svc := newTestEmotionService()

	result := svc.AnalyzeEmotion(&models.EmotionAnalysisRequest{
		UserID:         "user-5",
		EmotionalState: "happy",
		TextInput:      "I am so happy and this place looks wonderful and amazing",
	})

	assert.Equal(t, "happy", result.PrimaryEmotion)
	happyCount := 0
	for _, d := range result.DetectedEmotions {
		if d.Emotion == "happy" {
			happyCount++
			assert.InDelta(t, 0.9, d.Confidence, 1e-9)
		}
	}
	assert.Equal(t, 1, happyCount)
	assert.InDelta(t, 0.95, result.Confidence, 1e-9)
	assert.Equal(t, 4, result.Intensity)
}

func TestNormalizeEmotion(t *testing.T) {
	svc := newTestEmotionService()

	assert.Equal(t, "sad", svc.NormalizeEmotion("Feeling Down"))
	assert.Equal(t, "neutral", svc.NormalizeEmotion("okay"))
	assert.Equal(t, "happy", svc.NormalizeEmotion("happy"))
}

func TestDetectFromText_ConfidenceCap(t *testing.T) {
	svc := newTestEmotionService()

	detected := svc.DetectFromText("happy joyful glad cheerful delighted")
	require.Len(t, detected, 1)
	assert.Equal(t, "happy", detected[0].Emotion)
	assert.InDelta(t, 0.8, detected[0].Confidence, 1e-9)
	assert.Len(t, detected[0].Triggers, 5)
}

func TestDeriveIntensity_ModifierBoundaries(t *testing.T) {
	svc := newTestEmotionService()

	// "something" must not match the modifier "so".
	assert.Equal(t, 3, svc.deriveIntensity("I want to eat something good", 1))
	assert.Equal(t, 2, svc.deriveIntensity("a bit hungry", 1))
	assert.Equal(t, 1, svc.deriveIntensity("slightly tired", 1))
}
