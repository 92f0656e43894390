package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

const (
	ModePlay  = "play"
	ModeWatch = "watch"
)

type Config struct {
	Mode     string  `yaml:"mode" env:"MODE" env-default:"play"`
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Players  Players `yaml:"players"`
	Redis    Redis   `yaml:"redis"`
}

type Players struct {
	First  PlayerConfig `yaml:"first" env-prefix:"PLAYER1_"`
	Second PlayerConfig `yaml:"second" env-prefix:"PLAYER2_"`
}

type PlayerConfig struct {
	Name string `yaml:"name" env:"NAME"`
	Mark string `yaml:"mark" env:"MARK"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"tictactoe"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file when it exists, otherwise only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Roster - builds the player roster, falling back to player1/X and player2/O.
func (that *Players) Roster() (tictactoe.Roster, error) {
	roster := tictactoe.DefaultRoster()

	first, err := that.First.apply(roster.First)
	if err != nil {
		return tictactoe.Roster{}, fmt.Errorf("first player: %w", err)
	}

	second, err := that.Second.apply(roster.Second)
	if err != nil {
		return tictactoe.Roster{}, fmt.Errorf("second player: %w", err)
	}

	// a single configured mark leaves the other one to the opponent
	switch {
	case that.First.Mark != "" && that.Second.Mark == "":
		second.Mark = first.Mark.Opponent()
	case that.First.Mark == "" && that.Second.Mark != "":
		first.Mark = second.Mark.Opponent()
	}

	roster.First, roster.Second = first, second
	if err = roster.Validate(); err != nil {
		return tictactoe.Roster{}, err
	}

	return roster, nil
}

func (that *PlayerConfig) apply(player entity.Player) (entity.Player, error) {
	if that.Name != "" {
		player.Name = that.Name
	}

	if that.Mark != "" {
		mark, err := entity.ParseMark(that.Mark)
		if err != nil {
			return entity.Player{}, err
		}

		player.Mark = mark
	}

	return player, nil
}
