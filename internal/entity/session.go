package entity

import (
	"errors"
	"fmt"
)

type Status uint8

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusWon
	StatusTied
)

// NoWinner - WinnerIndex of a session that has not been won.
const NoWinner = -1

var ErrUnknownStatus = errors.New("unknown game status")

var statusNames = map[Status]string{
	StatusNotStarted: "not_started",
	StatusInProgress: "in_progress",
	StatusWon:        "won",
	StatusTied:       "tied",
}

func (that Status) String() string {
	if name, ok := statusNames[that]; ok {
		return name
	}

	return fmt.Sprintf("status(%d)", uint8(that))
}

func (that Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[that]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, uint8(that))
	}

	return []byte(name), nil
}

func (that *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*that = status
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrUnknownStatus, text)
}

// Session - a read-only snapshot of one game, handed to the presentation layer.
type Session struct {
	ID                 string          `json:"id"`
	Board              [BoardSize]Cell `json:"board"`
	Players            [2]Player       `json:"players"`
	CurrentPlayerIndex int             `json:"current_player"`
	Status             Status          `json:"status"`
	WinnerIndex        int             `json:"winner"`
}

func (that Session) IsStarted() bool {
	return that.Status != StatusNotStarted
}

func (that Session) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that Session) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusTied
}

func (that Session) ActivePlayer() Player {
	return that.Players[that.CurrentPlayerIndex]
}

func (that Session) Winner() (Player, bool) {
	if that.Status != StatusWon || that.WinnerIndex < 0 || that.WinnerIndex >= len(that.Players) {
		return Player{}, false
	}

	return that.Players[that.WinnerIndex], true
}

// Message - the status line shown under the board.
func (that Session) Message() string {
	switch that.Status {
	case StatusInProgress:
		return that.ActivePlayer().Name + "'s turn"
	case StatusWon:
		winner, _ := that.Winner()
		return winner.Name + " WON!"
	case StatusTied:
		return "It's a tie!"
	default:
		return "Press Start to play"
	}
}
