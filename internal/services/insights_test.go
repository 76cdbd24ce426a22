package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-spheres/internal/analysis"
	"life-spheres/internal/database"
)

type fakeSource struct {
	sleep    []database.SleepEntry
	meals    []database.Meal
	workouts []database.Workout
	mood     []database.MoodCheckIn
	habits   []database.HabitCompletion
	water    []database.WaterIntake
	insights []database.SurfacedInsight
}

func inRange(at, from, to time.Time) bool {
	return !at.Before(from) && at.Before(to)
}

func (f *fakeSource) GetSleepEntriesRange(userID string, from, to time.Time) ([]database.SleepEntry, error) {
	var out []database.SleepEntry
	for _, e := range f.sleep {
		if e.UserID == userID && inRange(e.LoggedAt, from, to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSource) GetMealsRange(userID string, from, to time.Time) ([]database.Meal, error) {
	var out []database.Meal
	for _, m := range f.meals {
		if m.UserID == userID && inRange(m.LoggedAt, from, to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeSource) GetWorkoutsRange(userID string, from, to time.Time) ([]database.Workout, error) {
	var out []database.Workout
	for _, w := range f.workouts {
		if w.UserID == userID && inRange(w.LoggedAt, from, to) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeSource) GetMoodCheckInsRange(userID string, from, to time.Time) ([]database.MoodCheckIn, error) {
	var out []database.MoodCheckIn
	for _, m := range f.mood {
		if m.UserID == userID && inRange(m.LoggedAt, from, to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeSource) GetHabitCompletionsRange(userID string, from, to time.Time) ([]database.HabitCompletion, error) {
	var out []database.HabitCompletion
	for _, h := range f.habits {
		if h.UserID == userID && inRange(h.LoggedAt, from, to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeSource) GetWaterIntakesRange(userID string, from, to time.Time) ([]database.WaterIntake, error) {
	var out []database.WaterIntake
	for _, w := range f.water {
		if w.UserID == userID && inRange(w.LoggedAt, from, to) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeSource) GetSurfacedPairKeys(userID string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	for _, ins := range f.insights {
		if ins.UserID == userID {
			keys[ins.PairKey] = struct{}{}
		}
	}
	return keys, nil
}

func (f *fakeSource) SaveInsight(ins database.SurfacedInsight) error {
	f.insights = append(f.insights, ins)
	return nil
}

func (f *fakeSource) GetInsights(userID string, limit int) ([]database.SurfacedInsight, error) {
	var out []database.SurfacedInsight
	for _, ins := range f.insights {
		if ins.UserID == userID {
			out = append(out, ins)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeSource) GetUserIDs() ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range f.sleep {
		if _, ok := seen[e.UserID]; !ok {
			seen[e.UserID] = struct{}{}
			out = append(out, e.UserID)
		}
	}
	return out, nil
}

var fixedNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newTestService(source SampleSource) *InsightService {
	svc := NewInsightService(source, time.UTC, 30)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// десять дней: сон и настроение растут синхронно
func lockstepSource(userID string) *fakeSource {
	f := &fakeSource{}
	for i := 0; i < 10; i++ {
		at := fixedNow.AddDate(0, 0, -9+i)
		f.sleep = append(f.sleep, database.SleepEntry{
			ID: "s", UserID: userID, QualityScore: float64(55 + i*5), LoggedAt: at,
		})
		f.mood = append(f.mood, database.MoodCheckIn{
			ID: "m", UserID: userID, Intensity: float64(i%9 + 1), LoggedAt: at,
		})
	}
	return f
}

func TestBuildDailyRecordsValidation(t *testing.T) {
	svc := newTestService(&fakeSource{})

	for _, days := range []int{0, -5} {
		_, err := svc.BuildDailyRecords("u1", days)
		require.Error(t, err)
		assert.ErrorIs(t, err, analysis.ErrInvalidWindow)
	}
}

func TestBuildDailyRecordsNoData(t *testing.T) {
	svc := newTestService(&fakeSource{})

	records, err := svc.BuildDailyRecords("u1", 30)
	require.NoError(t, err)
	require.Len(t, records, 30)
	for _, rec := range records {
		assert.False(t, rec.Sleep.Logged)
		assert.False(t, rec.Mood.Logged)
	}
}

func TestComputeCorrelationsPipeline(t *testing.T) {
	f := &fakeSource{}
	for i := 0; i < 10; i++ {
		at := fixedNow.AddDate(0, 0, -9+i)
		f.sleep = append(f.sleep, database.SleepEntry{
			ID: "s", UserID: "u1", QualityScore: float64(55 + i*5), LoggedAt: at,
		})
		f.water = append(f.water, database.WaterIntake{
			ID: "w", UserID: "u1", AmountMl: float64(1000 + i*150), LoggedAt: at,
		})
	}

	svc := newTestService(f)
	results, err := svc.ComputeCorrelations("u1", 30)
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	assert.Equal(t, "water_vs_sleep_quality", res.Pair.Key)
	assert.Equal(t, 1.0, res.Coefficient)
	assert.Equal(t, analysis.StrengthStrong, res.Strength)
	assert.Equal(t, 10, res.DataPoints)

	// чужие данные не попадают в анализ
	other, err := svc.ComputeCorrelations("u2", 30)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRefreshInsightsPersistsAndDedups(t *testing.T) {
	f := lockstepSource("u1")
	svc := newTestService(f)

	candidates, err := svc.RefreshInsights("u1", 30)
	require.NoError(t, err)
	require.NotEmpty(t, candidates)
	require.Len(t, f.insights, len(candidates))

	saved := f.insights[0]
	assert.Equal(t, "u1", saved.UserID)
	assert.Equal(t, candidates[0].Key, saved.PairKey)
	assert.Equal(t, string(candidates[0].Priority), saved.Priority)
	assert.NotEmpty(t, saved.ID)

	// повторный прогон не дублирует уже показанные пары
	again, err := svc.RefreshInsights("u1", 30)
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.Len(t, f.insights, len(candidates))
}

func TestRefreshInsightsInsufficientData(t *testing.T) {
	// четыре дня данных — ниже минимума в пять точек
	f := &fakeSource{}
	for i := 0; i < 4; i++ {
		at := fixedNow.AddDate(0, 0, -i)
		f.sleep = append(f.sleep, database.SleepEntry{
			ID: "s", UserID: "u1", QualityScore: float64(60 + i*10), LoggedAt: at,
		})
		f.mood = append(f.mood, database.MoodCheckIn{
			ID: "m", UserID: "u1", Intensity: float64(3 + i), LoggedAt: at,
		})
	}

	svc := newTestService(f)
	candidates, err := svc.RefreshInsights("u1", 30)
	require.NoError(t, err)
	assert.Empty(t, candidates)
	assert.Empty(t, f.insights)
}
