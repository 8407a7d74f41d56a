package service

import (
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/knowledge"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/google/uuid"
)

// Confidence applied to explicitly self-reported emotional states.
const explicitStateConfidence = 0.9

// EmotionService extracts ranked emotion signals from free text and
// explicit user input.
type EmotionService struct {
	keywords  map[string][]string
	order     []string
	synonyms  map[string]string
	modifiers map[string]int
	conflicts [][2]string
	log       *logger.Logger
}

var _ IEmotionService = (*EmotionService)(nil)

// NewEmotionService creates an EmotionService backed by the static
// keyword tables.
func NewEmotionService(log *logger.Logger) *EmotionService {
	return &EmotionService{
		keywords:  knowledge.EmotionKeywords,
		order:     knowledge.EmotionOrder,
		synonyms:  knowledge.EmotionSynonyms,
		modifiers: knowledge.IntensityModifiers,
		conflicts: knowledge.ConflictingEmotionPairs,
		log:       log,
	}
}

// AnalyzeEmotion runs the deterministic signal extraction pipeline.
// Absence of signal is a valid outcome: empty input yields a confidently
// neutral result, never an error.
func (s *EmotionService) AnalyzeEmotion(req *models.EmotionAnalysisRequest) *models.EmotionAnalysisResult {
	var detected []models.DetectedEmotion

	explicit := req.EmotionalState != ""
	if explicit {
		detected = append(detected, models.DetectedEmotion{
			Emotion:    s.NormalizeEmotion(req.EmotionalState),
			Confidence: explicitStateConfidence,
			Triggers:   []string{"explicit_input"},
		})
	}

	if req.TextInput != "" {
		detected = append(detected, s.DetectFromText(req.TextInput)...)
	}

	sortByConfidence(detected)
	detected = dedupeEmotions(detected)

	result := &models.EmotionAnalysisResult{
		AnalysisID: uuid.New().String(),
		UserID:     req.UserID,
		AnalyzedAt: time.Now(),
	}

	if len(detected) == 0 {
		result.PrimaryEmotion = models.EmotionNeutral
		result.SecondaryEmotions = []string{}
		result.Intensity = 3
		result.Confidence = 0.3
		result.DetectedEmotions = []models.DetectedEmotion{}
		return result
	}

	result.DetectedEmotions = detected
	result.PrimaryEmotion = detected[0].Emotion
	result.SecondaryEmotions = secondaryLabels(detected, 2)
	result.Intensity = s.deriveIntensity(req.TextInput, len(detected))

	confidence := detected[0].Confidence
	if explicit {
		confidence += 0.2
	}
	if req.Context != nil {
		confidence += 0.1
	}
	if s.hasConflictingEmotions(detected) {
		confidence -= 0.2
	}
	result.Confidence = clampFloat(confidence, 0.1, 0.95)

	return result
}

// NormalizeEmotion maps a self-reported state through the synonym table
// to a canonical emotion label.
func (s *EmotionService) NormalizeEmotion(state string) string {
	normalized := strings.ToLower(strings.TrimSpace(state))
	if mapped, ok := s.synonyms[normalized]; ok {
		return mapped
	}
	return normalized
}

// DetectFromText scans the text against the keyword table and emits one
// signal per emotion with at least one hit, confidence min(0.8, hits*0.3).
func (s *EmotionService) DetectFromText(text string) []models.DetectedEmotion {
	lower := strings.ToLower(text)
	var detected []models.DetectedEmotion
	for _, emotion := range s.order {
		var triggers []string
		for _, keyword := range s.keywords[emotion] {
			if strings.Contains(lower, keyword) {
				triggers = append(triggers, keyword)
			}
		}
		if len(triggers) == 0 {
			continue
		}
		detected = append(detected, models.DetectedEmotion{
			Emotion:    emotion,
			Confidence: math.Min(0.8, float64(len(triggers))*0.3),
			Triggers:   triggers,
		})
	}
	return detected
}

// deriveIntensity combines the strongest matched intensity modifier with
// punctuation, capitalization and emotion-count cues.
func (s *EmotionService) deriveIntensity(text string, emotionCount int) int {
	// Word-boundary matching keeps short modifiers like "so" from
	// matching inside words like "something".
	padded := " " + strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text) + " "

	level := 0
	for modifier, value := range s.modifiers {
		if strings.Contains(padded, " "+modifier+" ") && value > level {
			level = value
		}
	}
	if level == 0 {
		level = 3
	}

	bump := 0.0
	if strings.Count(text, "!") >= 2 {
		bump += 0.5
	}
	if hasAllCapsWord(text) {
		bump += 0.5
	}
	if emotionCount > 2 {
		bump += 0.5
	}

	intensity := int(math.Round(float64(level) + bump))
	if intensity < 1 {
		intensity = 1
	}
	if intensity > 5 {
		intensity = 5
	}
	return intensity
}

func (s *EmotionService) hasConflictingEmotions(detected []models.DetectedEmotion) bool {
	present := make(map[string]bool, len(detected))
	for _, d := range detected {
		present[d.Emotion] = true
	}
	for _, pair := range s.conflicts {
		if present[pair[0]] && present[pair[1]] {
			return true
		}
	}
	return false
}

func hasAllCapsWord(text string) bool {
	for _, word := range strings.Fields(text) {
		letters := 0
		upper := 0
		for _, r := range word {
			if unicode.IsLetter(r) {
				letters++
				if unicode.IsUpper(r) {
					upper++
				}
			}
		}
		if letters >= 3 && letters == upper {
			return true
		}
	}
	return false
}

// sortByConfidence orders signals by confidence descending; the stable
// sort preserves the fixed vocabulary order on ties.
func sortByConfidence(detected []models.DetectedEmotion) {
	sort.SliceStable(detected, func(i, j int) bool {
		return detected[i].Confidence > detected[j].Confidence
	})
}

// dedupeEmotions keeps the first (highest-confidence) occurrence per label.
func dedupeEmotions(detected []models.DetectedEmotion) []models.DetectedEmotion {
	seen := make(map[string]bool, len(detected))
	result := detected[:0]
	for _, d := range detected {
		if seen[d.Emotion] {
			continue
		}
		seen[d.Emotion] = true
		result = append(result, d)
	}
	return result
}

func secondaryLabels(detected []models.DetectedEmotion, n int) []string {
	labels := []string{}
	for i := 1; i < len(detected) && len(labels) < n; i++ {
		labels = append(labels, detected[i].Emotion)
	}
	return labels
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clampFloat(v, 0, 1)
}
