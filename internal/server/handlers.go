package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"life-spheres/internal/analysis"
)

type logSleepRequest struct {
	UserID          string    `json:"user_id" binding:"required"`
	Quality         float64   `json:"quality"`
	DurationMinutes int       `json:"duration_minutes"`
	LoggedAt        time.Time `json:"logged_at"`
}

type logMealRequest struct {
	UserID   string    `json:"user_id" binding:"required"`
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	LoggedAt time.Time `json:"logged_at"`
}

type logWorkoutRequest struct {
	UserID   string    `json:"user_id" binding:"required"`
	Exercise string    `json:"exercise"`
	Volume   float64   `json:"volume"`
	LoggedAt time.Time `json:"logged_at"`
}

type logMoodRequest struct {
	UserID    string    `json:"user_id" binding:"required"`
	Intensity float64   `json:"intensity"`
	Note      string    `json:"note"`
	LoggedAt  time.Time `json:"logged_at"`
}

type logHabitRequest struct {
	UserID   string    `json:"user_id" binding:"required"`
	Habit    string    `json:"habit" binding:"required"`
	LoggedAt time.Time `json:"logged_at"`
}

type logWaterRequest struct {
	UserID   string    `json:"user_id" binding:"required"`
	AmountMl float64   `json:"amount_ml"`
	LoggedAt time.Time `json:"logged_at"`
}

func (s *Server) handleLogSleep(c *gin.Context) {
	var req logSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := s.services.Sample.LogSleep(req.UserID, req.Quality, req.DurationMinutes, req.LoggedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleLogMeal(c *gin.Context) {
	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := s.services.Sample.LogMeal(req.UserID, req.Name, req.Calories, req.LoggedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (s *Server) handleLogWorkout(c *gin.Context) {
	var req logWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := s.services.Sample.LogWorkout(req.UserID, req.Exercise, req.Volume, req.LoggedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (s *Server) handleLogMood(c *gin.Context) {
	var req logMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkIn, err := s.services.Sample.LogMood(req.UserID, req.Intensity, req.Note, req.LoggedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, checkIn)
}

func (s *Server) handleLogHabit(c *gin.Context) {
	var req logHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completion, err := s.services.Sample.LogHabit(req.UserID, req.Habit, req.LoggedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, completion)
}

func (s *Server) handleLogWater(c *gin.Context) {
	var req logWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intake, err := s.services.Sample.LogWater(req.UserID, req.AmountMl, req.LoggedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, intake)
}

func (s *Server) handleRecords(c *gin.Context) {
	userID, days, ok := s.analysisParams(c)
	if !ok {
		return
	}

	records, err := s.services.Insight.BuildDailyRecords(userID, days)
	if err != nil {
		s.analysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window_days": days,
		"records":     records,
	})
}

func (s *Server) handleCorrelations(c *gin.Context) {
	userID, days, ok := s.analysisParams(c)
	if !ok {
		return
	}

	results, err := s.services.Insight.ComputeCorrelations(userID, days)
	if err != nil {
		s.analysisError(c, err)
		return
	}

	// пустой список — это «продолжайте заполнять трекер», а не ошибка
	c.JSON(http.StatusOK, gin.H{
		"window_days":     days,
		"correlations":    results,
		"data_sufficient": len(results) > 0,
		"min_days_needed": analysis.MinDataPoints,
	})
}

func (s *Server) handleInsightFeed(c *gin.Context) {
	userID := c.Query("user")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "не указан пользователь"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	feed, err := s.services.Insight.GetFeed(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": feed})
}

func (s *Server) handleRefreshInsights(c *gin.Context) {
	userID, days, ok := s.analysisParams(c)
	if !ok {
		return
	}

	candidates, err := s.services.Insight.RefreshInsights(userID, days)
	if err != nil {
		s.analysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window_days": days,
		"candidates":  candidates,
	})
}

func (s *Server) analysisParams(c *gin.Context) (string, int, bool) {
	userID := c.Query("user")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "не указан пользователь"})
		return "", 0, false
	}

	days := s.services.Insight.WindowDays()
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "параметр days должен быть числом"})
			return "", 0, false
		}
		days = parsed
	}

	return userID, days, true
}

func (s *Server) analysisError(c *gin.Context, err error) {
	if errors.Is(err, analysis.ErrInvalidWindow) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
