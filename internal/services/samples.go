package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"life-spheres/internal/database"
)

// SampleService проверяет и сохраняет сырые записи пользователя
type SampleService struct {
	repository *database.Repository
}

func NewSampleService(repo *database.Repository) *SampleService {
	return &SampleService{
		repository: repo,
	}
}

func (ss *SampleService) LogSleep(userID string, quality float64, durationMinutes int, at time.Time) (database.SleepEntry, error) {
	if err := checkUser(userID); err != nil {
		return database.SleepEntry{}, err
	}
	if quality < 0 || quality > 100 {
		return database.SleepEntry{}, fmt.Errorf("качество сна должно быть в диапазоне 0-100, получено %.1f", quality)
	}

	entry := database.SleepEntry{
		ID:              uuid.NewString(),
		UserID:          userID,
		QualityScore:    quality,
		DurationMinutes: durationMinutes,
		LoggedAt:        loggedAt(at),
	}
	if err := ss.repository.AddSleepEntry(entry); err != nil {
		return database.SleepEntry{}, fmt.Errorf("ошибка сохранения сна: %w", err)
	}
	return entry, nil
}

func (ss *SampleService) LogMeal(userID, name string, calories float64, at time.Time) (database.Meal, error) {
	if err := checkUser(userID); err != nil {
		return database.Meal{}, err
	}
	if calories < 0 {
		return database.Meal{}, fmt.Errorf("калории не могут быть отрицательными: %.1f", calories)
	}

	meal := database.Meal{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		Calories: calories,
		LoggedAt: loggedAt(at),
	}
	if err := ss.repository.AddMeal(meal); err != nil {
		return database.Meal{}, fmt.Errorf("ошибка сохранения приёма пищи: %w", err)
	}
	return meal, nil
}

func (ss *SampleService) LogWorkout(userID, exercise string, volume float64, at time.Time) (database.Workout, error) {
	if err := checkUser(userID); err != nil {
		return database.Workout{}, err
	}
	if volume < 0 {
		return database.Workout{}, fmt.Errorf("тоннаж не может быть отрицательным: %.1f", volume)
	}

	workout := database.Workout{
		ID:       uuid.NewString(),
		UserID:   userID,
		Exercise: exercise,
		Volume:   volume,
		LoggedAt: loggedAt(at),
	}
	if err := ss.repository.AddWorkout(workout); err != nil {
		return database.Workout{}, fmt.Errorf("ошибка сохранения тренировки: %w", err)
	}
	return workout, nil
}

func (ss *SampleService) LogMood(userID string, intensity float64, note string, at time.Time) (database.MoodCheckIn, error) {
	if err := checkUser(userID); err != nil {
		return database.MoodCheckIn{}, err
	}
	if intensity < 1 || intensity > 10 {
		return database.MoodCheckIn{}, fmt.Errorf("настроение должно быть в диапазоне 1-10, получено %.1f", intensity)
	}

	checkIn := database.MoodCheckIn{
		ID:        uuid.NewString(),
		UserID:    userID,
		Intensity: intensity,
		Note:      note,
		LoggedAt:  loggedAt(at),
	}
	if err := ss.repository.AddMoodCheckIn(checkIn); err != nil {
		return database.MoodCheckIn{}, fmt.Errorf("ошибка сохранения настроения: %w", err)
	}
	return checkIn, nil
}

func (ss *SampleService) LogHabit(userID, habit string, at time.Time) (database.HabitCompletion, error) {
	if err := checkUser(userID); err != nil {
		return database.HabitCompletion{}, err
	}
	if habit == "" {
		return database.HabitCompletion{}, fmt.Errorf("название привычки не может быть пустым")
	}

	completion := database.HabitCompletion{
		ID:       uuid.NewString(),
		UserID:   userID,
		Habit:    habit,
		LoggedAt: loggedAt(at),
	}
	if err := ss.repository.AddHabitCompletion(completion); err != nil {
		return database.HabitCompletion{}, fmt.Errorf("ошибка сохранения привычки: %w", err)
	}
	return completion, nil
}

func (ss *SampleService) LogWater(userID string, amountMl float64, at time.Time) (database.WaterIntake, error) {
	if err := checkUser(userID); err != nil {
		return database.WaterIntake{}, err
	}
	if amountMl <= 0 {
		return database.WaterIntake{}, fmt.Errorf("объём воды должен быть положительным: %.0f", amountMl)
	}

	intake := database.WaterIntake{
		ID:       uuid.NewString(),
		UserID:   userID,
		AmountMl: amountMl,
		LoggedAt: loggedAt(at),
	}
	if err := ss.repository.AddWaterIntake(intake); err != nil {
		return database.WaterIntake{}, fmt.Errorf("ошибка сохранения воды: %w", err)
	}
	return intake, nil
}

func checkUser(userID string) error {
	if userID == "" {
		return fmt.Errorf("не указан пользователь")
	}
	return nil
}

func loggedAt(at time.Time) time.Time {
	if at.IsZero() {
		return time.Now().UTC()
	}
	return at.UTC()
}
