package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

type Database struct {
	db *sql.DB
}

func New(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия БД: %v", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %v", err)
	}

	d := &Database{db: db}
	if err := d.init(); err != nil {
		return nil, err
	}

	log.Printf("✅ База данных инициализирована: %s", path)
	return d, nil
}

func (d *Database) init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sleep_entries (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			quality_score REAL NOT NULL CHECK(quality_score >= 0 AND quality_score <= 100),
			duration_minutes INTEGER DEFAULT 0,
			logged_at DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS meals (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT,
			calories REAL NOT NULL CHECK(calories >= 0),
			logged_at DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS workouts (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			exercise TEXT,
			volume REAL DEFAULT 0,
			logged_at DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS mood_checkins (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			intensity REAL NOT NULL CHECK(intensity >= 1 AND intensity <= 10),
			note TEXT,
			logged_at DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS habit_completions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			habit TEXT NOT NULL,
			logged_at DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS water_intakes (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			amount_ml REAL NOT NULL CHECK(amount_ml > 0),
			logged_at DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS insights (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			pair_key TEXT NOT NULL,
			label TEXT NOT NULL,
			coefficient REAL NOT NULL,
			strength TEXT NOT NULL,
			direction TEXT NOT NULL,
			data_points INTEGER NOT NULL,
			priority TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_sleep_user_time ON sleep_entries(user_id, logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_meals_user_time ON meals(user_id, logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_user_time ON workouts(user_id, logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_mood_user_time ON mood_checkins(user_id, logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_habits_user_time ON habit_completions(user_id, logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_water_user_time ON water_intakes(user_id, logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_insights_user ON insights(user_id, pair_key)`,
	}

	for _, query := range queries {
		if _, err := d.db.Exec(query); err != nil {
			return fmt.Errorf("ошибка создания таблицы: %v", err)
		}
	}

	return nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) GetDB() *sql.DB {
	return d.db
}
