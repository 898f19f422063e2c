package main

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// configName is the base name of the optional config file; viper picks the
// extension (yaml, json, toml).
const configName = "physics-trainer"

// Config holds the file locations and log level of the trainer.
type Config struct {
	FormulasFile string `mapstructure:"formulas_file" validate:"required"`
	TasksFile    string `mapstructure:"tasks_file" validate:"required"`
	ExportDir    string `mapstructure:"export_dir" validate:"required"`
	LogLevel     string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

func DefaultConfig() *Config {
	return &Config{
		FormulasFile: "formulas.json",
		TasksFile:    "tasks.json",
		ExportDir:    ".",
		LogLevel:     "warn",
	}
}

// LoadConfig reads physics-trainer.* from the first of dirs that has one.
// A missing file yields the defaults.
func LoadConfig(dirs ...string) (*Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("formulas_file", def.FormulasFile)
	v.SetDefault("tasks_file", def.TasksFile)
	v.SetDefault("export_dir", def.ExportDir)
	v.SetDefault("log_level", def.LogLevel)

	v.SetConfigName(configName)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	if len(dirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
