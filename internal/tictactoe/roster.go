package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	DefaultFirstName  = "player1"
	DefaultSecondName = "player2"
)

// Roster - the two player identities a game is started with. First moves first.
type Roster struct {
	First  entity.Player
	Second entity.Player
}

func DefaultRoster() Roster {
	return Roster{
		First:  entity.NewPlayer(DefaultFirstName, entity.MarkA),
		Second: entity.NewPlayer(DefaultSecondName, entity.MarkB),
	}
}

// Validate - both players need a name and distinct marks.
func (that Roster) Validate() error {
	if strings.TrimSpace(that.First.Name) == "" || strings.TrimSpace(that.Second.Name) == "" {
		return fmt.Errorf("%w: player name is empty", apperror.ErrInvalidRoster)
	}

	if !that.First.Mark.IsMark() || !that.Second.Mark.IsMark() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidRoster, apperror.ErrInvalidMark)
	}

	if that.First.Mark == that.Second.Mark {
		return fmt.Errorf("%w: both players use %s", apperror.ErrInvalidRoster, that.First.Mark)
	}

	return nil
}

func (that Roster) players() [2]entity.Player {
	return [2]entity.Player{that.First, that.Second}
}
