package database

import "time"

// Сырые записи пользователя, по таблице на сферу жизни.
// LoggedAt хранится в UTC, к локальному дню запись привязывает агрегатор.

type SleepEntry struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	QualityScore    float64   `json:"quality_score"` // 0-100
	DurationMinutes int       `json:"duration_minutes"`
	LoggedAt        time.Time `json:"logged_at"`
	CreatedAt       time.Time `json:"created_at"`
}

type Meal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name,omitempty"`
	Calories  float64   `json:"calories"`
	LoggedAt  time.Time `json:"logged_at"`
	CreatedAt time.Time `json:"created_at"`
}

type Workout struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Exercise  string    `json:"exercise,omitempty"`
	Volume    float64   `json:"volume"` // суммарный тоннаж, кг
	LoggedAt  time.Time `json:"logged_at"`
	CreatedAt time.Time `json:"created_at"`
}

type MoodCheckIn struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Intensity float64   `json:"intensity"` // 1-10
	Note      string    `json:"note,omitempty"`
	LoggedAt  time.Time `json:"logged_at"`
	CreatedAt time.Time `json:"created_at"`
}

type HabitCompletion struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Habit     string    `json:"habit"`
	LoggedAt  time.Time `json:"logged_at"`
	CreatedAt time.Time `json:"created_at"`
}

type WaterIntake struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AmountMl  float64   `json:"amount_ml"`
	LoggedAt  time.Time `json:"logged_at"`
	CreatedAt time.Time `json:"created_at"`
}

// SurfacedInsight — запись ленты инсайтов: что и когда показали пользователю
type SurfacedInsight struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	PairKey     string    `json:"pair_key"`
	Label       string    `json:"label"`
	Coefficient float64   `json:"coefficient"`
	Strength    string    `json:"strength"`
	Direction   string    `json:"direction"`
	DataPoints  int       `json:"data_points"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}
