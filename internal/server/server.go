package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"life-spheres/internal/services"
)

// Server — HTTP-интерфейс приложения: запись сырых данных и чтение
// корреляций с инсайтами
type Server struct {
	engine   *gin.Engine
	http     *http.Server
	services *services.ServiceManager
}

func New(sm *services.ServiceManager, port string) *Server {
	engine := gin.Default()

	s := &Server{
		engine:   engine,
		services: sm,
		http: &http.Server{
			Addr:    ":" + port,
			Handler: engine,
		},
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	{
		api.POST("/sleep", s.handleLogSleep)
		api.POST("/meals", s.handleLogMeal)
		api.POST("/workouts", s.handleLogWorkout)
		api.POST("/mood", s.handleLogMood)
		api.POST("/habits", s.handleLogHabit)
		api.POST("/water", s.handleLogWater)

		api.GET("/records", s.handleRecords)
		api.GET("/correlations", s.handleCorrelations)
		api.GET("/insights", s.handleInsightFeed)
		api.POST("/insights/refresh", s.handleRefreshInsights)
	}
}

// Start блокирует до остановки сервера
func (s *Server) Start() error {
	log.Printf("🌐 HTTP-сервер слушает %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
