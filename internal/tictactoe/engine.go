package tictactoe

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Engine - owns one game session: board, players, turn and status.
// It is not safe for concurrent use; callers serialize events.
type Engine struct {
	roster Roster

	id      string
	board   *entity.Board
	players [2]entity.Player
	current int
	status  entity.Status
	winner  int
}

func NewEngine(roster Roster) (*Engine, error) {
	if err := roster.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		roster: roster,
		board:  entity.NewBoard(),
		status: entity.StatusNotStarted,
		winner: entity.NoWinner,
	}, nil
}

// Start - begins a fresh game with players recreated from the roster.
// A game in progress is discarded.
func (that *Engine) Start() {
	that.players = that.roster.players()
	that.reset()
}

// Restart - clears the board and keeps the current players.
func (that *Engine) Restart() {
	if that.status == entity.StatusNotStarted {
		that.Start()
		return
	}

	that.reset()
}

// SubmitMove - places the current player's mark at cell.
// It reports false without error when the move is ignored: the game is not in progress,
// the cell is taken or the board is full.
func (that *Engine) SubmitMove(cell int) (bool, error) {
	current, err := that.board.Cell(cell)
	if err != nil {
		return false, err
	}

	if that.status != entity.StatusInProgress || current != entity.CellEmpty || that.board.IsFull() {
		return false, nil
	}

	if err = that.board.SetCell(cell, that.players[that.current].Mark); err != nil {
		return false, fmt.Errorf("failed to set cell: %w", err)
	}

	// a move that completes a line and fills the board is a win
	switch {
	case CheckForWin(that.board.Cells()):
		that.status = entity.StatusWon
		that.winner = that.current
	case that.board.IsFull():
		that.status = entity.StatusTied
	default:
		that.current = 1 - that.current
	}

	return true, nil
}

// Snapshot - returns a copy of the session state.
func (that *Engine) Snapshot() entity.Session {
	return entity.Session{
		ID:                 that.id,
		Board:              that.board.Cells(),
		Players:            that.players,
		CurrentPlayerIndex: that.current,
		Status:             that.status,
		WinnerIndex:        that.winner,
	}
}

func (that *Engine) reset() {
	that.board.Reset()
	that.id = uuid.NewString()
	that.current = 0
	that.status = entity.StatusInProgress
	that.winner = entity.NoWinner
}

// CheckForWin - reports whether any row, column or diagonal holds three equal marks.
func CheckForWin(board [entity.BoardSize]entity.Cell) bool {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.CellEmpty && a == b && b == c {
			return true
		}
	}

	return false
}
