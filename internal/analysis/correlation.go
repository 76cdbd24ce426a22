package analysis

import (
	"math"
	"sort"
)

const (
	// MinDataPoints — жёсткий минимум парных наблюдений
	MinDataPoints = 5
	// MinEffectSize — порог силы эффекта, проходит строго |r| > 0.3
	MinEffectSize = 0.3

	strongThreshold   = 0.7
	moderateThreshold = 0.5
)

type Strength string

const (
	StrengthStrong   Strength = "strong"
	StrengthModerate Strength = "moderate"
	StrengthWeak     Strength = "weak"
)

var StrengthNames = map[Strength]string{
	StrengthStrong:   "сильная",
	StrengthModerate: "умеренная",
	StrengthWeak:     "слабая",
}

type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
)

var DirectionNames = map[Direction]string{
	DirectionPositive: "прямая",
	DirectionNegative: "обратная",
}

// CorrelationResult — одна прошедшая фильтры корреляция
type CorrelationResult struct {
	Pair        Pair      `json:"pair"`
	Coefficient float64   `json:"coefficient"`
	Strength    Strength  `json:"strength"`
	Direction   Direction `json:"direction"`
	DataPoints  int       `json:"data_points"`
}

// ComputeCorrelations считает корреляцию Пирсона для каждой пары каталога
// по дням, где обе метрики присутствуют. Пары с менее чем MinDataPoints
// наблюдений или с |r| <= MinEffectSize не попадают в результат.
// Результаты отсортированы по убыванию |r|, при равенстве сохраняется
// порядок каталога.
func ComputeCorrelations(records []DayRecord) []CorrelationResult {
	var results []CorrelationResult

	for _, pair := range Catalog {
		var xs, ys []float64
		for _, rec := range records {
			x, okX := MetricValue(rec, pair.MetricA)
			y, okY := MetricValue(rec, pair.MetricB)
			if okX && okY {
				xs = append(xs, x)
				ys = append(ys, y)
			}
		}

		if len(xs) < MinDataPoints {
			continue
		}

		r := pearson(xs, ys)
		if math.Abs(r) <= MinEffectSize {
			continue
		}

		results = append(results, CorrelationResult{
			Pair:        pair,
			Coefficient: round3(r),
			Strength:    classifyStrength(r),
			Direction:   classifyDirection(r),
			DataPoints:  len(xs),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return math.Abs(results[i].Coefficient) > math.Abs(results[j].Coefficient)
	})

	return results
}

// pearson — коэффициент корреляции по формуле сумм.
// Нулевой знаменатель (константная переменная) даёт r = 0, а не NaN.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
		sumY2 += ys[i] * ys[i]
	}

	den := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if den == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / den
}

func classifyStrength(r float64) Strength {
	abs := math.Abs(r)
	switch {
	case abs >= strongThreshold:
		return StrengthStrong
	case abs >= moderateThreshold:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

func classifyDirection(r float64) Direction {
	if r > 0 {
		return DirectionPositive
	}
	return DirectionNegative
}

func round3(r float64) float64 {
	return math.Round(r*1000) / 1000
}
