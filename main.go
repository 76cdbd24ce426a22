package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"life-spheres/internal/analysis"
	"life-spheres/internal/app"
	"life-spheres/internal/config"
	"life-spheres/internal/database"
	"life-spheres/internal/services"
	"life-spheres/internal/utils"
)

var (
	configPath  string
	analyzeUser string
	analyzeDays int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "life-spheres",
		Short: "Бэкенд трекера шести сфер жизни",
		Long: `Трекер шести сфер жизни: сон, питание, фитнес, настроение, привычки, вода.

Сервис собирает дневные срезы по сырым записям, считает корреляции
между сферами и складывает значимые находки в ленту инсайтов.`,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "путь к yaml-конфигурации")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP-сервер и ночной анализ",
		RunE:  runServe,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Разово посчитать корреляции пользователя",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVar(&analyzeUser, "user", "", "идентификатор пользователя")
	analyzeCmd.Flags().IntVar(&analyzeDays, "days", 0, "окно анализа в днях (0 — из конфигурации)")
	analyzeCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(serveCmd, analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("ошибка создания приложения: %w", err)
	}

	if err := application.Start(); err != nil {
		return fmt.Errorf("ошибка запуска приложения: %w", err)
	}
	defer application.Stop()

	waitForShutdown()
	log.Println("👋 Приложение завершает работу")
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	loc := utils.LoadLocation(cfg.Analysis.Timezone)
	sm := services.NewServiceManager(db, loc, cfg.Analysis.WindowDays)

	days := analyzeDays
	if days == 0 {
		days = cfg.Analysis.WindowDays
	}

	results, err := sm.Insight.ComputeCorrelations(analyzeUser, days)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("📊 Данных для анализа недостаточно. Продолжайте заполнять трекер!")
		return nil
	}

	fmt.Printf("📈 Корреляции за %d дней:\n\n", days)
	for i, res := range results {
		fmt.Printf("%d. %s\n   r=%+.3f — %s %s связь, дней с данными: %d\n",
			i+1, res.Pair.Label, res.Coefficient,
			analysis.StrengthNames[res.Strength],
			analysis.DirectionNames[res.Direction],
			res.DataPoints)
	}

	return nil
}

func waitForShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
}
