package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"life-spheres/internal/analysis"
	"life-spheres/internal/database"
	"life-spheres/internal/utils"
)

// SampleSource — доступ к сырым записям и ленте инсайтов.
// Реализуется database.Repository, в тестах подменяется.
type SampleSource interface {
	GetSleepEntriesRange(userID string, from, to time.Time) ([]database.SleepEntry, error)
	GetMealsRange(userID string, from, to time.Time) ([]database.Meal, error)
	GetWorkoutsRange(userID string, from, to time.Time) ([]database.Workout, error)
	GetMoodCheckInsRange(userID string, from, to time.Time) ([]database.MoodCheckIn, error)
	GetHabitCompletionsRange(userID string, from, to time.Time) ([]database.HabitCompletion, error)
	GetWaterIntakesRange(userID string, from, to time.Time) ([]database.WaterIntake, error)
	GetSurfacedPairKeys(userID string) (map[string]struct{}, error)
	SaveInsight(ins database.SurfacedInsight) error
	GetInsights(userID string, limit int) ([]database.SurfacedInsight, error)
	GetUserIDs() ([]string, error)
}

// InsightService — конвейер анализа: сырые записи → дневные срезы →
// корреляции → кандидаты в ленту
type InsightService struct {
	source     SampleSource
	loc        *time.Location
	windowDays int
	now        func() time.Time
}

func NewInsightService(source SampleSource, loc *time.Location, windowDays int) *InsightService {
	return &InsightService{
		source:     source,
		loc:        loc,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// WindowDays возвращает длину окна по умолчанию
func (is *InsightService) WindowDays() int {
	return is.windowDays
}

// BuildDailyRecords собирает дневные срезы пользователя за окно windowDays
func (is *InsightService) BuildDailyRecords(userID string, windowDays int) ([]analysis.DayRecord, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("%w: %d", analysis.ErrInvalidWindow, windowDays)
	}

	now := is.now()
	from, to := utils.WindowBounds(now, windowDays, is.loc)

	samples, err := is.fetchSamples(userID, from, to)
	if err != nil {
		return nil, err
	}

	return analysis.BuildDayRecords(samples, now, windowDays, is.loc)
}

// ComputeCorrelations возвращает отранжированные корреляции за окно
func (is *InsightService) ComputeCorrelations(userID string, windowDays int) ([]analysis.CorrelationResult, error) {
	records, err := is.BuildDailyRecords(userID, windowDays)
	if err != nil {
		return nil, err
	}
	return analysis.ComputeCorrelations(records), nil
}

// RefreshInsights прогоняет конвейер и дописывает новые находки в ленту.
// Пустой список кандидатов — ожидаемое состояние «мало данных», не ошибка.
func (is *InsightService) RefreshInsights(userID string, windowDays int) ([]analysis.InsightCandidate, error) {
	results, err := is.ComputeCorrelations(userID, windowDays)
	if err != nil {
		return nil, err
	}

	surfaced, err := is.source.GetSurfacedPairKeys(userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ленты: %w", err)
	}

	candidates := analysis.SelectInsights(results, surfaced)
	for _, c := range candidates {
		ins := database.SurfacedInsight{
			ID:          uuid.NewString(),
			UserID:      userID,
			PairKey:     c.Key,
			Label:       c.Label,
			Coefficient: c.Result.Coefficient,
			Strength:    string(c.Result.Strength),
			Direction:   string(c.Result.Direction),
			DataPoints:  c.Result.DataPoints,
			Priority:    string(c.Priority),
		}
		if err := is.source.SaveInsight(ins); err != nil {
			return nil, fmt.Errorf("ошибка записи инсайта: %w", err)
		}
	}

	return candidates, nil
}

// GetFeed возвращает последние записи ленты инсайтов
func (is *InsightService) GetFeed(userID string, limit int) ([]database.SurfacedInsight, error) {
	if limit <= 0 {
		limit = 20
	}
	return is.source.GetInsights(userID, limit)
}

// RefreshAllUsers обновляет ленту каждого пользователя. Запускается кроном.
func (is *InsightService) RefreshAllUsers() {
	users, err := is.source.GetUserIDs()
	if err != nil {
		log.Printf("⚠️ Ошибка получения пользователей: %v", err)
		return
	}

	log.Printf("🔍 Ночной анализ: пользователей %d, окно %d дней", len(users), is.windowDays)

	for _, userID := range users {
		candidates, err := is.RefreshInsights(userID, is.windowDays)
		if err != nil {
			log.Printf("⚠️ Ошибка анализа пользователя %s: %v", userID, err)
			continue
		}
		if len(candidates) > 0 {
			log.Printf("💡 Пользователь %s: новых инсайтов %d", userID, len(candidates))
		}
	}
}

func (is *InsightService) fetchSamples(userID string, from, to time.Time) (analysis.Samples, error) {
	var samples analysis.Samples

	sleep, err := is.source.GetSleepEntriesRange(userID, from, to)
	if err != nil {
		return samples, fmt.Errorf("ошибка чтения сна: %w", err)
	}
	for _, e := range sleep {
		samples.Sleep = append(samples.Sleep, analysis.SleepSample{At: e.LoggedAt, Quality: e.QualityScore})
	}

	meals, err := is.source.GetMealsRange(userID, from, to)
	if err != nil {
		return samples, fmt.Errorf("ошибка чтения питания: %w", err)
	}
	for _, m := range meals {
		samples.Meals = append(samples.Meals, analysis.MealSample{At: m.LoggedAt, Calories: m.Calories})
	}

	workouts, err := is.source.GetWorkoutsRange(userID, from, to)
	if err != nil {
		return samples, fmt.Errorf("ошибка чтения тренировок: %w", err)
	}
	for _, w := range workouts {
		samples.Workouts = append(samples.Workouts, analysis.WorkoutSample{At: w.LoggedAt, Volume: w.Volume})
	}

	mood, err := is.source.GetMoodCheckInsRange(userID, from, to)
	if err != nil {
		return samples, fmt.Errorf("ошибка чтения настроения: %w", err)
	}
	for _, m := range mood {
		samples.Mood = append(samples.Mood, analysis.MoodSample{At: m.LoggedAt, Intensity: m.Intensity})
	}

	habits, err := is.source.GetHabitCompletionsRange(userID, from, to)
	if err != nil {
		return samples, fmt.Errorf("ошибка чтения привычек: %w", err)
	}
	for _, h := range habits {
		samples.Habits = append(samples.Habits, analysis.HabitSample{At: h.LoggedAt})
	}

	water, err := is.source.GetWaterIntakesRange(userID, from, to)
	if err != nil {
		return samples, fmt.Errorf("ошибка чтения воды: %w", err)
	}
	for _, w := range water {
		samples.Water = append(samples.Water, analysis.WaterSample{At: w.LoggedAt, AmountMl: w.AmountMl})
	}

	return samples, nil
}
