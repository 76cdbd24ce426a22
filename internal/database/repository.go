package database

import (
	"time"
)

type Repository struct {
	Db *Database
}

func NewRepository(db *Database) *Repository {
	return &Repository{Db: db}
}

// Sleep repository methods
func (r *Repository) AddSleepEntry(e SleepEntry) error {
	_, err := r.Db.db.Exec(`
		INSERT INTO sleep_entries (id, user_id, quality_score, duration_minutes, logged_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.ID, e.UserID, e.QualityScore, e.DurationMinutes, e.LoggedAt.UTC())
	return err
}

func (r *Repository) GetSleepEntriesRange(userID string, from, to time.Time) ([]SleepEntry, error) {
	rows, err := r.Db.db.Query(`
		SELECT id, user_id, quality_score, duration_minutes, logged_at, created_at
		FROM sleep_entries
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
		ORDER BY logged_at
	`, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []SleepEntry
	for rows.Next() {
		var e SleepEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.QualityScore, &e.DurationMinutes, &e.LoggedAt, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Nutrition repository methods
func (r *Repository) AddMeal(m Meal) error {
	_, err := r.Db.db.Exec(`
		INSERT INTO meals (id, user_id, name, calories, logged_at)
		VALUES (?, ?, ?, ?, ?)
	`, m.ID, m.UserID, m.Name, m.Calories, m.LoggedAt.UTC())
	return err
}

func (r *Repository) GetMealsRange(userID string, from, to time.Time) ([]Meal, error) {
	rows, err := r.Db.db.Query(`
		SELECT id, user_id, name, calories, logged_at, created_at
		FROM meals
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
		ORDER BY logged_at
	`, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []Meal
	for rows.Next() {
		var m Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Calories, &m.LoggedAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

// Fitness repository methods
func (r *Repository) AddWorkout(w Workout) error {
	_, err := r.Db.db.Exec(`
		INSERT INTO workouts (id, user_id, exercise, volume, logged_at)
		VALUES (?, ?, ?, ?, ?)
	`, w.ID, w.UserID, w.Exercise, w.Volume, w.LoggedAt.UTC())
	return err
}

func (r *Repository) GetWorkoutsRange(userID string, from, to time.Time) ([]Workout, error) {
	rows, err := r.Db.db.Query(`
		SELECT id, user_id, exercise, volume, logged_at, created_at
		FROM workouts
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
		ORDER BY logged_at
	`, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Exercise, &w.Volume, &w.LoggedAt, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// Mood repository methods
func (r *Repository) AddMoodCheckIn(m MoodCheckIn) error {
	_, err := r.Db.db.Exec(`
		INSERT INTO mood_checkins (id, user_id, intensity, note, logged_at)
		VALUES (?, ?, ?, ?, ?)
	`, m.ID, m.UserID, m.Intensity, m.Note, m.LoggedAt.UTC())
	return err
}

func (r *Repository) GetMoodCheckInsRange(userID string, from, to time.Time) ([]MoodCheckIn, error) {
	rows, err := r.Db.db.Query(`
		SELECT id, user_id, intensity, note, logged_at, created_at
		FROM mood_checkins
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
		ORDER BY logged_at
	`, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkIns []MoodCheckIn
	for rows.Next() {
		var m MoodCheckIn
		if err := rows.Scan(&m.ID, &m.UserID, &m.Intensity, &m.Note, &m.LoggedAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		checkIns = append(checkIns, m)
	}
	return checkIns, rows.Err()
}

// Habits repository methods
func (r *Repository) AddHabitCompletion(h HabitCompletion) error {
	_, err := r.Db.db.Exec(`
		INSERT INTO habit_completions (id, user_id, habit, logged_at)
		VALUES (?, ?, ?, ?)
	`, h.ID, h.UserID, h.Habit, h.LoggedAt.UTC())
	return err
}

func (r *Repository) GetHabitCompletionsRange(userID string, from, to time.Time) ([]HabitCompletion, error) {
	rows, err := r.Db.db.Query(`
		SELECT id, user_id, habit, logged_at, created_at
		FROM habit_completions
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
		ORDER BY logged_at
	`, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []HabitCompletion
	for rows.Next() {
		var h HabitCompletion
		if err := rows.Scan(&h.ID, &h.UserID, &h.Habit, &h.LoggedAt, &h.CreatedAt); err != nil {
			return nil, err
		}
		completions = append(completions, h)
	}
	return completions, rows.Err()
}

// Hydration repository methods
func (r *Repository) AddWaterIntake(w WaterIntake) error {
	_, err := r.Db.db.Exec(`
		INSERT INTO water_intakes (id, user_id, amount_ml, logged_at)
		VALUES (?, ?, ?, ?)
	`, w.ID, w.UserID, w.AmountMl, w.LoggedAt.UTC())
	return err
}

func (r *Repository) GetWaterIntakesRange(userID string, from, to time.Time) ([]WaterIntake, error) {
	rows, err := r.Db.db.Query(`
		SELECT id, user_id, amount_ml, logged_at, created_at
		FROM water_intakes
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
		ORDER BY logged_at
	`, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intakes []WaterIntake
	for rows.Next() {
		var w WaterIntake
		if err := rows.Scan(&w.ID, &w.UserID, &w.AmountMl, &w.LoggedAt, &w.CreatedAt); err != nil {
			return nil, err
		}
		intakes = append(intakes, w)
	}
	return intakes, rows.Err()
}

// Insight feed repository methods
func (r *Repository) SaveInsight(ins SurfacedInsight) error {
	_, err := r.Db.db.Exec(`
		INSERT INTO insights (id, user_id, pair_key, label, coefficient, strength, direction, data_points, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ins.ID, ins.UserID, ins.PairKey, ins.Label, ins.Coefficient, ins.Strength, ins.Direction, ins.DataPoints, ins.Priority)
	return err
}

// GetSurfacedPairKeys возвращает ключи пар, уже показанных пользователю
func (r *Repository) GetSurfacedPairKeys(userID string) (map[string]struct{}, error) {
	rows, err := r.Db.db.Query(`
		SELECT DISTINCT pair_key FROM insights WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys[key] = struct{}{}
	}
	return keys, rows.Err()
}

func (r *Repository) GetInsights(userID string, limit int) ([]SurfacedInsight, error) {
	rows, err := r.Db.db.Query(`
		SELECT id, user_id, pair_key, label, coefficient, strength, direction, data_points, priority, created_at
		FROM insights
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insights []SurfacedInsight
	for rows.Next() {
		var ins SurfacedInsight
		if err := rows.Scan(&ins.ID, &ins.UserID, &ins.PairKey, &ins.Label, &ins.Coefficient,
			&ins.Strength, &ins.Direction, &ins.DataPoints, &ins.Priority, &ins.CreatedAt); err != nil {
			return nil, err
		}
		insights = append(insights, ins)
	}
	return insights, rows.Err()
}

// GetUserIDs возвращает всех пользователей, у которых есть хоть одна запись
func (r *Repository) GetUserIDs() ([]string, error) {
	rows, err := r.Db.db.Query(`
		SELECT user_id FROM sleep_entries
		UNION SELECT user_id FROM meals
		UNION SELECT user_id FROM workouts
		UNION SELECT user_id FROM mood_checkins
		UNION SELECT user_id FROM habit_completions
		UNION SELECT user_id FROM water_intakes
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		users = append(users, id)
	}
	return users, rows.Err()
}
