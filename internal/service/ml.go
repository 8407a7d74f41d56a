package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/knowledge"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
)

const (
	analysisKeyPrefix = "mood:analysis:"
	analysisTTL       = 24 * time.Hour
)

var errModelUnavailable = errors.New("enhancement models unavailable")

// Sentiment word lists consulted by the simulated sentiment model.
var positiveWords = []string{
	"good", "great", "wonderful", "amazing", "love", "happy", "excited",
	"delicious", "fantastic", "enjoy", "awesome", "best",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "hate", "sad", "angry", "disgusting",
	"worst", "disappointed", "upset", "horrible", "tired",
}

// mlOutput is the raw result of one simulated enhancement pass.
type mlOutput struct {
	Emotion    string
	Confidence float64
	Sentiment  float64
	Keywords   []string
}

// MLService wraps the deterministic analysis with a best-effort enhanced
// pass behind a circuit breaker. It never returns an error to callers;
// failures degrade to the rule-based result with metadata flags set.
type MLService struct {
	emotions *EmotionService
	cache    *redis.Client
	breaker  *gobreaker.CircuitBreaker[*mlOutput]
	log      *logger.Logger

	// Simulation knobs, overridable in tests. The rng is shared across
	// requests and math/rand sources are not concurrency-safe, so every
	// draw goes through rngMu.
	failureRate float64
	maxLatency  time.Duration
	rngMu       sync.Mutex
	rng         *rand.Rand
}

var _ IMLService = (*MLService)(nil)

func NewMLService(emotions *EmotionService, cache *redis.Client, failureRate float64, maxLatency time.Duration, log *logger.Logger) *MLService {
	breaker := gobreaker.NewCircuitBreaker[*mlOutput](gobreaker.Settings{
		Name:        "ml-enhancement",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &MLService{
		emotions:    emotions,
		cache:       cache,
		breaker:     breaker,
		log:         log,
		failureRate: failureRate,
		maxLatency:  maxLatency,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// AnalyzeEmotionWithML runs the deterministic analysis, then attempts the
// enhanced pass. The enhanced emotion wins only when it disagrees with a
// higher confidence; agreement boosts confidence instead.
func (s *MLService) AnalyzeEmotionWithML(ctx context.Context, req *models.EmotionAnalysisRequest) *models.EnhancedEmotionResult {
	start := time.Now()
	base := s.emotions.AnalyzeEmotion(req)

	result := &models.EnhancedEmotionResult{EmotionAnalysis: base}

	output, err := s.breaker.Execute(func() (*mlOutput, error) {
		return s.runModels(ctx, req.TextInput)
	})
	if err != nil {
		s.log.Warn("ml enhancement unavailable, using rule-based fallback",
			"user_id", req.UserID, "error", err)
		base.Confidence = clampFloat(base.Confidence*0.8, 0.1, 0.95)
		result.Keywords = []string{}
		result.ModelMetadata = models.ModelMetadata{
			ModelsUsed:     []string{"rule_based_fallback"},
			ProcessingTime: time.Since(start).Milliseconds(),
			FallbackUsed:   true,
		}
		s.storeAnalysis(ctx, result)
		return result
	}

	if output.Emotion != "" && output.Emotion != base.PrimaryEmotion {
		if output.Confidence > base.Confidence {
			base.PrimaryEmotion = output.Emotion
			base.Confidence = output.Confidence
		}
	} else if output.Emotion == base.PrimaryEmotion {
		base.Confidence = math.Min(0.95, base.Confidence+0.1)
	}

	result.Sentiment = output.Sentiment
	result.Keywords = output.Keywords
	result.ModelMetadata = models.ModelMetadata{
		ModelsUsed:     []string{"sentiment_analyzer", "emotion_classifier", "keyword_extractor"},
		ProcessingTime: time.Since(start).Milliseconds(),
		FallbackUsed:   false,
	}
	s.storeAnalysis(ctx, result)
	return result
}

// GetAnalysis retrieves a previously stored analysis by its ID.
func (s *MLService) GetAnalysis(ctx context.Context, analysisID string) (*models.EnhancedEmotionResult, error) {
	if s.cache == nil {
		return nil, fmt.Errorf("analysis storage not configured")
	}
	data, err := s.cache.Get(ctx, analysisKeyPrefix+analysisID).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("analysis %s not found", analysisID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}
	var result models.EnhancedEmotionResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	return &result, nil
}

// runModels simulates the enhanced pass: random latency up to the
// configured ceiling and a fixed failure probability.
func (s *MLService) runModels(ctx context.Context, text string) (*mlOutput, error) {
	latency, failed := s.rollSimulation()
	if latency > 0 {
		select {
		case <-time.After(latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if failed {
		return nil, errModelUnavailable
	}
	if text == "" {
		return nil, errModelUnavailable
	}

	emotion, confidence := s.classifyEmotion(text)
	return &mlOutput{
		Emotion:    emotion,
		Confidence: confidence,
		Sentiment:  scoreSentiment(text),
		Keywords:   extractKeywords(text),
	}, nil
}

// rollSimulation draws this call's simulated latency and failure outcome
// under the rng lock.
func (s *MLService) rollSimulation() (time.Duration, bool) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	var latency time.Duration
	if s.maxLatency > 0 {
		latency = time.Duration(s.rng.Int63n(int64(s.maxLatency)))
	}
	return latency, s.rng.Float64() < s.failureRate
}

// classifyEmotion independently re-derives the dominant emotion with a
// slightly different confidence curve than the rule-based extractor.
func (s *MLService) classifyEmotion(text string) (string, float64) {
	lower := strings.ToLower(text)
	bestEmotion := ""
	bestConfidence := 0.0
	for _, emotion := range knowledge.EmotionOrder {
		hits := 0
		for _, keyword := range knowledge.EmotionKeywords[emotion] {
			if strings.Contains(lower, keyword) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		confidence := math.Min(0.95, float64(hits)*0.35+0.2)
		if confidence > bestConfidence {
			bestEmotion = emotion
			bestConfidence = confidence
		}
	}
	return bestEmotion, bestConfidence
}

// scoreSentiment returns a polarity in [-1, 1] from word-list hits.
func scoreSentiment(text string) float64 {
	lower := strings.ToLower(text)
	positives := 0
	negatives := 0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positives++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negatives++
		}
	}
	total := positives + negatives
	if total == 0 {
		return 0
	}
	return float64(positives-negatives) / float64(total)
}

// extractKeywords collects every emotion or sentiment keyword present in
// the text, sorted for stable output.
func extractKeywords(text string) []string {
	lower := strings.ToLower(text)
	seen := map[string]bool{}
	for _, keywords := range knowledge.EmotionKeywords {
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				seen[keyword] = true
			}
		}
	}
	for _, word := range append(append([]string{}, positiveWords...), negativeWords...) {
		if strings.Contains(lower, word) {
			seen[word] = true
		}
	}
	keywords := make([]string, 0, len(seen))
	for keyword := range seen {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return keywords
}

// storeAnalysis persists the result for later retrieval. Best effort; a
// cache failure never affects the response.
func (s *MLService) storeAnalysis(ctx context.Context, result *models.EnhancedEmotionResult) {
	if s.cache == nil || result.EmotionAnalysis == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	key := analysisKeyPrefix + result.EmotionAnalysis.AnalysisID
	if err := s.cache.Set(ctx, key, data, analysisTTL).Err(); err != nil {
		s.log.Warn("failed to cache emotion analysis", "key", key, "error", err)
	}
}
