package utils

import (
	"fmt"
	"log"
	"time"
)

const DateLayout = "2006-01-02"

// LoadLocation загружает часовой пояс деплоя с запасным вариантом UTC.
// Граница дня считается в этом поясе для всех пользователей.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ Не удалось загрузить часовой пояс %q, используем UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// DayStart возвращает локальную полночь дня, которому принадлежит t
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// WindowBounds возвращает границы окна из days дней, заканчивающегося
// днём now: [полночь первого дня, полночь следующего за последним).
func WindowBounds(now time.Time, days int, loc *time.Location) (time.Time, time.Time) {
	to := DayStart(now, loc).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)
	return from, to
}

// TimezoneInfo возвращает строку с текущим временем и поясом для логов
func TimezoneInfo(loc *time.Location) string {
	now := time.Now().In(loc)
	_, offset := now.Zone()
	return fmt.Sprintf("🕐 Часовой пояс: %s (UTC%+d), сейчас %s",
		loc.String(), offset/3600, now.Format("15:04"))
}
