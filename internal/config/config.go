package config

import (
	"fmt"
	"net"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	SessionID string  `yaml:"session-id" env:"SESSION_ID" env-default:"local"`
	Window    Window  `yaml:"window"`
	Players   Players `yaml:"players"`
	Theme     Theme   `yaml:"theme"`
	Redis     Redis   `yaml:"redis"`
}

type Window struct {
	Title  string `yaml:"title" env:"WINDOW_TITLE" env-default:"Tic Tac Toe"`
	Width  int    `yaml:"width" env:"WINDOW_WIDTH" env-default:"480"`
	Height int    `yaml:"height" env:"WINDOW_HEIGHT" env-default:"640"`
}

// Players - names shown in the turn text; both must be set to replace the defaults.
type Players struct {
	One string `yaml:"one" env:"PLAYER_ONE"`
	Two string `yaml:"two" env:"PLAYER_TWO"`
}

type Theme struct {
	BoardColor       string  `yaml:"board-color" env-default:"black"`
	XColor           string  `yaml:"x-color" env-default:"crimson"`
	OColor           string  `yaml:"o-color" env-default:"royalblue"`
	WinningLineColor string  `yaml:"winning-line-color" env-default:"forestgreen"`
	GridWidth        float64 `yaml:"grid-width" env-default:"12"`
	MarkWidth        float64 `yaml:"mark-width" env-default:"12"`
	MarkInset        float64 `yaml:"mark-inset" env-default:"0.2"`
}

// Redis - an empty host turns off resuming games after a restart.
type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
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

// LoadEnv reads the configuration from the environment only, for running without a config file.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return net.JoinHostPort(that.Host, that.Port)
}
