package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

type gameEngine interface {
	Start()
	Restart()
	SubmitMove(cell int) (bool, error)
	Snapshot() entity.Session
}

type renderer interface {
	Render(ctx context.Context, session entity.Session) error
}

// GameManager - turns presentation triggers into engine calls and pushes the new state to renderers.
type GameManager struct {
	logger    *slog.Logger
	engine    gameEngine
	renderers []renderer
}

func NewGameManager(logger *slog.Logger, engine gameEngine, renderers ...renderer) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		engine:    engine,
		renderers: renderers,
	}
}

// AddRenderer - registers a renderer that receives every state change after this call.
func (that *GameManager) AddRenderer(r renderer) {
	that.renderers = append(that.renderers, r)
}

func (that *GameManager) State() entity.Session {
	return that.engine.Snapshot()
}

func (that *GameManager) RequestStart(ctx context.Context) error {
	that.engine.Start()

	session := that.engine.Snapshot()
	that.logger.Info("game started", "session", session.ID, "first", session.ActivePlayer().Name)

	return that.render(ctx, session)
}

func (that *GameManager) RequestRestart(ctx context.Context) error {
	that.engine.Restart()

	session := that.engine.Snapshot()
	that.logger.Info("game restarted", "session", session.ID)

	return that.render(ctx, session)
}

// CellSelected - submits a move for the active player. Ignored moves are not errors.
func (that *GameManager) CellSelected(ctx context.Context, cell int) error {
	log := that.logger.With("method", "CellSelected", "cell", cell)

	applied, err := that.engine.SubmitMove(cell)
	if err != nil {
		log.Error("failed to submit move", "error", err)
		return fmt.Errorf("failed to submit move: %w", err)
	}

	if !applied {
		log.Debug("move ignored")
		return nil
	}

	session := that.engine.Snapshot()
	switch session.Status {
	case entity.StatusWon:
		winner, _ := session.Winner()
		log.Info("game won", "session", session.ID, "winner", winner.Name)
	case entity.StatusTied:
		log.Info("game tied", "session", session.ID)
	default:
		log.Debug("move applied", "next", session.ActivePlayer().Name)
	}

	return that.render(ctx, session)
}

func (that *GameManager) render(ctx context.Context, session entity.Session) error {
	var errs []error

	for _, r := range that.renderers {
		if err := r.Render(ctx, session); err != nil {
			that.logger.Error("failed to render", "session", session.ID, "error", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to render state: %w", errors.Join(errs...))
	}

	return nil
}
