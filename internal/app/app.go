package app

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"life-spheres/internal/config"
	"life-spheres/internal/database"
	"life-spheres/internal/server"
	"life-spheres/internal/services"
	"life-spheres/internal/utils"
)

type Application struct {
	config   *config.Config
	db       *database.Database
	server   *server.Server
	services *services.ServiceManager
	cron     *cron.Cron
	loc      *time.Location
}

func New(cfg *config.Config) (*Application, error) {
	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	loc := utils.LoadLocation(cfg.Analysis.Timezone)
	serviceManager := services.NewServiceManager(db, loc, cfg.Analysis.WindowDays)
	srv := server.New(serviceManager, cfg.Server.Port)

	app := &Application{
		config:   cfg,
		db:       db,
		server:   srv,
		services: serviceManager,
		cron:     cron.New(),
		loc:      loc,
	}

	app.setupCronJobs()

	return app, nil
}

func (a *Application) Start() error {
	log.Println("🚀 Запуск приложения...")
	log.Println(utils.TimezoneInfo(a.loc))

	go func() {
		if err := a.server.Start(); err != nil {
			log.Printf("❌ Ошибка HTTP-сервера: %v", err)
		}
	}()

	a.cron.Start()

	log.Printf("✅ Приложение запущено. Порт: %s", a.config.Server.Port)
	return nil
}

func (a *Application) Stop() error {
	log.Println("🛑 Остановка приложения...")

	a.cron.Stop()

	if err := a.server.Stop(context.Background()); err != nil {
		log.Printf("⚠️ Ошибка остановки сервера: %v", err)
	}
	if err := a.db.Close(); err != nil {
		log.Printf("⚠️ Ошибка закрытия БД: %v", err)
	}

	log.Println("✅ Приложение остановлено")
	return nil
}

func (a *Application) setupCronJobs() {
	// Ночной анализ: обновляем ленту инсайтов всех пользователей в 02:10
	_, err := a.cron.AddFunc("10 2 * * *", func() {
		a.services.Insight.RefreshAllUsers()
	})
	if err != nil {
		panic(err)
	}
}
