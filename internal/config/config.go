package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/fourinarow/internal/connectfour"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Board    Board  `yaml:"board"`
	Redis    Redis  `yaml:"redis"`
}

// Board - settings passed to every new game.
type Board struct {
	Columns   int `yaml:"columns" env:"BOARD_COLUMNS" env-default:"7"`
	Rows      int `yaml:"rows" env:"BOARD_ROWS" env-default:"6"`
	WinLength int `yaml:"win-length" env:"BOARD_WIN_LENGTH" env-default:"4"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"fourinarow:events"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Board) Settings() connectfour.Settings {
	return connectfour.Settings{
		Columns:   that.Columns,
		Rows:      that.Rows,
		WinLength: that.WinLength,
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
