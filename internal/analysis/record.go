package analysis

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWindow возвращается, если запрошена неположительная длина окна
var ErrInvalidWindow = errors.New("длина окна анализа должна быть положительной")

// Domain — одна из шести сфер жизни
type Domain string

const (
	Sleep     Domain = "sleep"
	Nutrition Domain = "nutrition"
	Fitness   Domain = "fitness"
	Mood      Domain = "mood"
	Habits    Domain = "habits"
	Hydration Domain = "hydration"
)

var DomainNames = map[Domain]string{
	Sleep:     "😴 Сон",
	Nutrition: "🍽 Питание",
	Fitness:   "🏃 Фитнес",
	Mood:      "🙂 Настроение",
	Habits:    "✅ Привычки",
	Hydration: "💧 Вода",
}

// Агрегаты сфер за один день. Logged=false означает «записей не было» —
// это не то же самое, что нулевое значение.

type SleepDay struct {
	Logged       bool    `json:"logged"`
	QualityScore float64 `json:"quality_score"`
}

type NutritionDay struct {
	Logged        bool    `json:"logged"`
	TotalCalories float64 `json:"total_calories"`
	MealCount     int     `json:"meal_count"`
}

type FitnessDay struct {
	Logged        bool    `json:"logged"`
	ExerciseCount int     `json:"exercise_count"`
	TotalVolume   float64 `json:"total_volume"`
}

type MoodDay struct {
	Logged           bool    `json:"logged"`
	AverageIntensity float64 `json:"average_intensity"`
	CheckInCount     int     `json:"check_in_count"`
}

type HabitsDay struct {
	Logged         bool `json:"logged"`
	CompletedCount int  `json:"completed_count"`
}

type HydrationDay struct {
	Logged  bool    `json:"logged"`
	TotalMl float64 `json:"total_ml"`
}

// DayRecord — срез всех сфер за один календарный день
type DayRecord struct {
	Date      string       `json:"date"`
	Sleep     SleepDay     `json:"sleep"`
	Nutrition NutritionDay `json:"nutrition"`
	Fitness   FitnessDay   `json:"fitness"`
	Mood      MoodDay      `json:"mood"`
	Habits    HabitsDay    `json:"habits"`
	Hydration HydrationDay `json:"hydration"`
}

// Сырые записи, приведённые к минимальной форме для агрегации

type SleepSample struct {
	At      time.Time
	Quality float64
}

type MealSample struct {
	At       time.Time
	Calories float64
}

type WorkoutSample struct {
	At     time.Time
	Volume float64
}

type MoodSample struct {
	At        time.Time
	Intensity float64
}

type HabitSample struct {
	At time.Time
}

type WaterSample struct {
	At       time.Time
	AmountMl float64
}

type Samples struct {
	Sleep    []SleepSample
	Meals    []MealSample
	Workouts []WorkoutSample
	Mood     []MoodSample
	Habits   []HabitSample
	Water    []WaterSample
}

const dateLayout = "2006-01-02"

// BuildDayRecords собирает ровно days записей, по одной на календарный день,
// от старых к новым. Последний день окна — end в часовом поясе loc.
// Суммируемые поля складываются, настроение усредняется, за качество сна
// берётся последняя запись дня.
func BuildDayRecords(samples Samples, end time.Time, days int, loc *time.Location) ([]DayRecord, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, days)
	}

	type sleepAgg struct {
		at      time.Time
		quality float64
	}
	type moodAgg struct {
		sum   float64
		count int
	}

	sleepByDay := make(map[string]sleepAgg)
	for _, s := range samples.Sleep {
		day := s.At.In(loc).Format(dateLayout)
		prev, ok := sleepByDay[day]
		if !ok || s.At.After(prev.at) {
			sleepByDay[day] = sleepAgg{at: s.At, quality: s.Quality}
		}
	}

	nutritionByDay := make(map[string]*NutritionDay)
	for _, m := range samples.Meals {
		day := m.At.In(loc).Format(dateLayout)
		agg, ok := nutritionByDay[day]
		if !ok {
			agg = &NutritionDay{Logged: true}
			nutritionByDay[day] = agg
		}
		agg.TotalCalories += m.Calories
		agg.MealCount++
	}

	fitnessByDay := make(map[string]*FitnessDay)
	for _, w := range samples.Workouts {
		day := w.At.In(loc).Format(dateLayout)
		agg, ok := fitnessByDay[day]
		if !ok {
			agg = &FitnessDay{Logged: true}
			fitnessByDay[day] = agg
		}
		agg.ExerciseCount++
		agg.TotalVolume += w.Volume
	}

	moodByDay := make(map[string]*moodAgg)
	for _, m := range samples.Mood {
		day := m.At.In(loc).Format(dateLayout)
		agg, ok := moodByDay[day]
		if !ok {
			agg = &moodAgg{}
			moodByDay[day] = agg
		}
		agg.sum += m.Intensity
		agg.count++
	}

	habitsByDay := make(map[string]int)
	for _, h := range samples.Habits {
		day := h.At.In(loc).Format(dateLayout)
		habitsByDay[day]++
	}

	waterByDay := make(map[string]float64)
	for _, w := range samples.Water {
		day := w.At.In(loc).Format(dateLayout)
		waterByDay[day] += w.AmountMl
	}

	local := end.In(loc)
	last := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	records := make([]DayRecord, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := last.AddDate(0, 0, -i).Format(dateLayout)
		rec := DayRecord{Date: day}

		if s, ok := sleepByDay[day]; ok {
			rec.Sleep = SleepDay{Logged: true, QualityScore: s.quality}
		}
		if n, ok := nutritionByDay[day]; ok {
			rec.Nutrition = *n
		}
		if f, ok := fitnessByDay[day]; ok {
			rec.Fitness = *f
		}
		if m, ok := moodByDay[day]; ok {
			rec.Mood = MoodDay{
				Logged:           true,
				AverageIntensity: m.sum / float64(m.count),
				CheckInCount:     m.count,
			}
		}
		if c, ok := habitsByDay[day]; ok {
			rec.Habits = HabitsDay{Logged: true, CompletedCount: c}
		}
		if ml, ok := waterByDay[day]; ok {
			rec.Hydration = HydrationDay{Logged: true, TotalMl: ml}
		}

		records = append(records, rec)
	}

	return records, nil
}
