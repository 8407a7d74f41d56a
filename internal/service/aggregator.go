package service

import (
	"sort"
	"strings"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
)

type adjustmentKey struct {
	factor    string
	direction string
}

// MergeAdjustments combines adjustments from multiple sources into one
// deduplicated list. Adjustments sharing a (factor, direction) pair are
// collapsed into one entry: the first occurrence contributes its full
// weight and every later occurrence contributes half, capped at 1. The
// merge is deliberately order-sensitive; earlier sources dominate.
func MergeAdjustments(adjustments []models.RecommendationAdjustment) []models.RecommendationAdjustment {
	type group struct {
		weight     float64
		reasonings []string
		first      models.RecommendationAdjustment
	}

	var order []adjustmentKey
	groups := make(map[adjustmentKey]*group)

	for _, adj := range adjustments {
		key := adjustmentKey{factor: adj.Factor, direction: adj.Direction}
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{
				weight:     adj.Weight,
				reasonings: []string{adj.Reasoning},
				first:      adj,
			}
			order = append(order, key)
			continue
		}
		g.weight += adj.Weight * 0.5
		g.reasonings = append(g.reasonings, adj.Reasoning)
	}

	merged := make([]models.RecommendationAdjustment, 0, len(order))
	for _, key := range order {
		g := groups[key]
		merged = append(merged, models.RecommendationAdjustment{
			Factor:    key.factor,
			Direction: key.direction,
			Weight:    clamp01(g.weight),
			Reasoning: strings.Join(g.reasonings, "; "),
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Weight > merged[j].Weight
	})
	return merged
}
