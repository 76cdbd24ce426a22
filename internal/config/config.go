package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Analysis struct {
		Timezone   string `mapstructure:"timezone"`
		WindowDays int    `mapstructure:"window_days"`
	} `mapstructure:"analysis"`
}

// Load читает конфигурацию: значения по умолчанию, затем yaml-файл,
// затем переменные окружения LS_* поверх.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("database.path", "/data/life-spheres.db")
	v.SetDefault("analysis.timezone", "UTC")
	v.SetDefault("analysis.window_days", 30)

	v.SetEnvPrefix("LS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("ошибка чтения конфигурации %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/life-spheres")
		// файл не обязателен, достаточно значений по умолчанию и окружения
		_ = v.ReadInConfig()
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	if cfg.Analysis.WindowDays <= 0 {
		return nil, fmt.Errorf("окно анализа должно быть положительным: %d", cfg.Analysis.WindowDays)
	}

	log.Printf("✅ Конфигурация загружена: порт=%s, БД=%s, пояс=%s, окно=%d дней",
		cfg.Server.Port, cfg.Database.Path, cfg.Analysis.Timezone, cfg.Analysis.WindowDays)

	return cfg, nil
}
