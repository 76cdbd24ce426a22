package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultFor(key string, r float64, strength Strength) CorrelationResult {
	var pair Pair
	for _, p := range Catalog {
		if p.Key == key {
			pair = p
			break
		}
	}
	dir := DirectionPositive
	if r < 0 {
		dir = DirectionNegative
	}
	return CorrelationResult{
		Pair:        pair,
		Coefficient: r,
		Strength:    strength,
		Direction:   dir,
		DataPoints:  10,
	}
}

func TestSelectInsightsPriorities(t *testing.T) {
	results := []CorrelationResult{
		resultFor("sleep_quality_vs_mood", 0.82, StrengthStrong),
		resultFor("habits_vs_mood", -0.55, StrengthModerate),
		resultFor("water_vs_sleep_quality", 0.42, StrengthWeak),
	}

	candidates := SelectInsights(results, nil)
	require.Len(t, candidates, 3)

	assert.Equal(t, PriorityHigh, candidates[0].Priority)
	assert.Equal(t, PriorityMedium, candidates[1].Priority)
	assert.Equal(t, PriorityLow, candidates[2].Priority)
}

func TestSelectInsightsDomainTags(t *testing.T) {
	results := []CorrelationResult{
		resultFor("habits_vs_mood", 0.61, StrengthModerate),
	}

	candidates := SelectInsights(results, map[string]struct{}{})
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "habits_vs_mood", c.Key)
	assert.Equal(t, []Domain{Habits, Mood}, c.Domains)
	assert.Equal(t, results[0], c.Result)
	assert.NotEmpty(t, c.Label)
}

func TestSelectInsightsDeduplication(t *testing.T) {
	results := []CorrelationResult{
		resultFor("sleep_quality_vs_mood", 0.82, StrengthStrong),
		resultFor("exercise_vs_sleep_quality", 0.74, StrengthStrong),
	}
	surfaced := map[string]struct{}{
		"sleep_quality_vs_mood": {},
	}

	candidates := SelectInsights(results, surfaced)
	require.Len(t, candidates, 1)
	assert.Equal(t, "exercise_vs_sleep_quality", candidates[0].Key)
}

func TestSelectInsightsEmpty(t *testing.T) {
	assert.Empty(t, SelectInsights(nil, nil))
	assert.Empty(t, SelectInsights([]CorrelationResult{}, map[string]struct{}{"x": {}}))
}
