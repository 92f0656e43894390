package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/text"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownMode  = errors.New("unknown mode")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	switch conf.Mode {
	case config.ModePlay:
		return runPlay(ctx, logger, conf)
	case config.ModeWatch:
		return runWatch(ctx, logger, conf)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, conf.Mode)
	}
}

// runPlay - the interactive game in the terminal, optionally mirrored to redis.
func runPlay(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	roster, err := conf.Players.Roster()
	if err != nil {
		return fmt.Errorf("invalid players config: %w", err)
	}

	engine, err := tictactoe.NewEngine(roster)
	if err != nil {
		return fmt.Errorf("could not create game engine: %w", err)
	}

	manager := usecase.NewGameManager(logger, engine)

	ui := terminal.New(ctx, logger, manager)
	manager.AddRenderer(ui)

	if conf.Redis.Enabled {
		broadcaster, err := connectRedis(ctx, logger, conf)
		if err != nil {
			return err
		}

		defer func() {
			if err := broadcaster.Close(); err != nil {
				log.Error("could not close redis client", "error", err)
			}
		}()

		manager.AddRenderer(broadcaster)
		log.Info("Broadcasting game state", "channel", broadcaster.Channel())
	}

	log.Info("Starting terminal game", "first", roster.First.Name, "second", roster.Second.Name)

	if err = ui.Run(); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	log.Info("Game closed")

	return nil
}

// runWatch - prints every state published by a running game.
func runWatch(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	client, err := connectRedis(ctx, logger, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := client.Close(); err != nil {
			log.Error("could not close redis client", "error", err)
		}
	}()

	printer := text.NewPrinter(os.Stdout)

	log.Info("Watching game state", "channel", client.Channel())

	if err = client.Watch(ctx, func(session entity.Session) error {
		return printer.Render(ctx, session)
	}); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	return nil
}

func connectRedis(ctx context.Context, logger *slog.Logger, conf *config.Config) (*redis.Client, error) {
	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, ErrAddrNotFound
	}

	client, err := redis.New(ctx, logger, conf.Redis.GetRedisAddr(), conf.Redis.Channel)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return client, nil
}
