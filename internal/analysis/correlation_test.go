package analysis

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(n int, fill func(i int, r *DayRecord)) []DayRecord {
	records := make([]DayRecord, n)
	for i := range records {
		records[i].Date = fmt.Sprintf("2026-08-%02d", i+1)
		if fill != nil {
			fill(i, &records[i])
		}
	}
	return records
}

func findResult(t *testing.T, results []CorrelationResult, key string) (CorrelationResult, bool) {
	t.Helper()
	for _, res := range results {
		if res.Pair.Key == key {
			return res, true
		}
	}
	return CorrelationResult{}, false
}

func TestComputeCorrelationsLockstep(t *testing.T) {
	// тренировки и сон растут синхронно 10 дней подряд
	exercise := []int{1, 1, 2, 2, 3, 3, 4, 4, 5, 5}
	sleep := []float64{55, 60, 65, 70, 75, 80, 85, 90, 95, 100}

	records := makeRecords(10, func(i int, r *DayRecord) {
		r.Fitness = FitnessDay{Logged: true, ExerciseCount: exercise[i]}
		r.Sleep = SleepDay{Logged: true, QualityScore: sleep[i]}
	})

	results := ComputeCorrelations(records)
	res, ok := findResult(t, results, "exercise_vs_sleep_quality")
	require.True(t, ok)

	assert.Greater(t, res.Coefficient, 0.95)
	assert.Equal(t, DirectionPositive, res.Direction)
	assert.Equal(t, StrengthStrong, res.Strength)
	assert.Equal(t, 10, res.DataPoints)
}

func TestComputeCorrelationsUnrelatedSeries(t *testing.T) {
	mood := []float64{5, 8, 3, 7, 4, 6, 9, 2, 7, 5}
	sleep := []float64{70, 45, 88, 30, 65, 92, 50, 75, 40, 85}

	records := makeRecords(10, func(i int, r *DayRecord) {
		r.Mood = MoodDay{Logged: true, AverageIntensity: mood[i], CheckInCount: 1}
		r.Sleep = SleepDay{Logged: true, QualityScore: sleep[i]}
	})

	results := ComputeCorrelations(records)
	res, ok := findResult(t, results, "sleep_quality_vs_mood")
	if !ok {
		return // отсутствие результата тоже допустимо
	}

	assert.Less(t, math.Abs(res.Coefficient), 0.7)
	assert.InDelta(t, -0.652, res.Coefficient, 0.001)
	assert.Equal(t, StrengthModerate, res.Strength)
	assert.Equal(t, DirectionNegative, res.Direction)
}

func TestMinimumSampleFloor(t *testing.T) {
	quality := []float64{10, 20, 30, 40, 50}
	mood := []float64{2, 4, 6, 8, 10}

	t.Run("четыре точки исключаются", func(t *testing.T) {
		records := makeRecords(10, func(i int, r *DayRecord) {
			r.Mood = MoodDay{Logged: true, AverageIntensity: mood[i%5], CheckInCount: 1}
			if i < 4 {
				r.Sleep = SleepDay{Logged: true, QualityScore: quality[i]}
			}
		})

		results := ComputeCorrelations(records)
		_, ok := findResult(t, results, "sleep_quality_vs_mood")
		assert.False(t, ok)
	})

	t.Run("ровно пять точек проходят", func(t *testing.T) {
		records := makeRecords(5, func(i int, r *DayRecord) {
			r.Sleep = SleepDay{Logged: true, QualityScore: quality[i]}
			r.Mood = MoodDay{Logged: true, AverageIntensity: mood[i], CheckInCount: 1}
		})

		results := ComputeCorrelations(records)
		res, ok := findResult(t, results, "sleep_quality_vs_mood")
		require.True(t, ok)
		assert.Equal(t, 1.0, res.Coefficient)
		assert.Equal(t, StrengthStrong, res.Strength)
		assert.Equal(t, DirectionPositive, res.Direction)
		assert.Equal(t, 5, res.DataPoints)
	})
}

func TestEffectSizeGate(t *testing.T) {
	quality := []float64{10, 20, 30, 40, 50}

	tests := []struct {
		name     string
		mood     []float64
		wantR    float64
		included bool
		strength Strength
	}{
		// перестановки 1..5 дают точные граничные значения r
		{"r ровно 0.3 исключается", []float64{2, 4, 1, 5, 3}, 0.3, false, ""},
		{"r ровно 0.5 — умеренная", []float64{1, 4, 2, 5, 3}, 0.5, true, StrengthModerate},
		{"r ровно 0.7 — сильная", []float64{1, 3, 4, 2, 5}, 0.7, true, StrengthStrong},
		{"слабая связь ниже порога", []float64{3, 1, 4, 5, 2}, 0.2, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := makeRecords(5, func(i int, r *DayRecord) {
				r.Sleep = SleepDay{Logged: true, QualityScore: quality[i]}
				r.Mood = MoodDay{Logged: true, AverageIntensity: tt.mood[i], CheckInCount: 1}
			})

			results := ComputeCorrelations(records)
			res, ok := findResult(t, results, "sleep_quality_vs_mood")
			require.Equal(t, tt.included, ok)
			if ok {
				assert.Equal(t, tt.wantR, res.Coefficient)
				assert.Equal(t, tt.strength, res.Strength)
			}
		})
	}
}

func TestClassifyStrengthBoundaries(t *testing.T) {
	tests := []struct {
		r    float64
		want Strength
	}{
		{0.7, StrengthStrong},
		{-0.7, StrengthStrong},
		{0.6999, StrengthModerate},
		{0.5, StrengthModerate},
		{-0.5, StrengthModerate},
		{0.4999, StrengthWeak},
		{0.31, StrengthWeak},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyStrength(tt.r), "r=%v", tt.r)
	}
}

func TestPearsonZeroVariance(t *testing.T) {
	xs := []float64{4, 4, 4, 4, 4}
	ys := []float64{1, 2, 3, 4, 5}
	assert.Equal(t, 0.0, pearson(xs, ys))
	assert.Equal(t, 0.0, pearson(ys, xs))
}

func TestComputeCorrelationsConstantSeries(t *testing.T) {
	// константный сон: r=0, пара просто не попадает в результат
	records := makeRecords(10, func(i int, r *DayRecord) {
		r.Sleep = SleepDay{Logged: true, QualityScore: 80}
		r.Mood = MoodDay{Logged: true, AverageIntensity: float64(i%10 + 1), CheckInCount: 1}
	})

	results := ComputeCorrelations(records)
	_, ok := findResult(t, results, "sleep_quality_vs_mood")
	assert.False(t, ok)
}

func TestComputeCorrelationsSortedByAbs(t *testing.T) {
	mood := []float64{5, 8, 3, 7, 4, 6, 9, 2, 7, 5}
	sleep := []float64{70, 45, 88, 30, 65, 92, 50, 75, 40, 85}

	records := makeRecords(10, func(i int, r *DayRecord) {
		r.Sleep = SleepDay{Logged: true, QualityScore: sleep[i]}
		r.Mood = MoodDay{Logged: true, AverageIntensity: mood[i], CheckInCount: 1}
		r.Fitness = FitnessDay{Logged: true, ExerciseCount: i + 1}
		r.Habits = HabitsDay{Logged: true, CompletedCount: 10 - i}
	})

	results := ComputeCorrelations(records)
	require.NotEmpty(t, results)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t,
			math.Abs(results[i-1].Coefficient),
			math.Abs(results[i].Coefficient))
	}
}

func TestComputeCorrelationsIdempotent(t *testing.T) {
	mood := []float64{5, 8, 3, 7, 4, 6, 9, 2, 7, 5}

	records := makeRecords(10, func(i int, r *DayRecord) {
		r.Sleep = SleepDay{Logged: true, QualityScore: float64(50 + i*5)}
		r.Mood = MoodDay{Logged: true, AverageIntensity: mood[i], CheckInCount: 1}
		r.Hydration = HydrationDay{Logged: true, TotalMl: float64(1500 + i*100)}
	})

	first := ComputeCorrelations(records)
	second := ComputeCorrelations(records)
	require.Equal(t, first, second)
}

func TestComputeCorrelationsEmptyInput(t *testing.T) {
	assert.Empty(t, ComputeCorrelations(nil))
	assert.Empty(t, ComputeCorrelations([]DayRecord{}))

	// есть дни, но нет данных
	records := makeRecords(30, nil)
	assert.Empty(t, ComputeCorrelations(records))
}

func TestRoundingToThreeDecimals(t *testing.T) {
	assert.Equal(t, 0.652, round3(0.65163))
	assert.Equal(t, -0.652, round3(-0.65163))
	assert.Equal(t, 1.0, round3(0.99999))
	assert.Equal(t, 0.3, round3(0.3004))
}
