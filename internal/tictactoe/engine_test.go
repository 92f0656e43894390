package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

func newStartedEngine(t *testing.T, roster Roster) *Engine {
	t.Helper()

	engine, err := NewEngine(roster)
	require.NoError(t, err)

	engine.Start()

	return engine
}

func playMoves(t *testing.T, engine *Engine, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		applied, err := engine.SubmitMove(cell)
		require.NoError(t, err)
		require.True(t, applied, "move at cell %d was ignored", cell)
	}
}

func TestNewEngine(t *testing.T) {
	// When: a new engine is created
	engine, err := NewEngine(DefaultRoster())
	require.NoError(t, err)

	// Then: it is not started and has no players
	expected := entity.Session{
		Status:      entity.StatusNotStarted,
		WinnerIndex: entity.NoWinner,
	}
	require.Equal(t, expected, engine.Snapshot())
}

func TestEngine_Start(t *testing.T) {
	t.Run("Creates the players and an empty board", func(t *testing.T) {
		// Given: a new engine
		engine, err := NewEngine(DefaultRoster())
		require.NoError(t, err)

		// When: the game is started
		engine.Start()

		// Then: the session is in progress with player1 to move
		session := engine.Snapshot()
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, [entity.BoardSize]entity.Cell{}, session.Board)
		assert.Equal(t, [2]entity.Player{
			{Name: "player1", Mark: entity.MarkA},
			{Name: "player2", Mark: entity.MarkB},
		}, session.Players)
		assert.Equal(t, 0, session.CurrentPlayerIndex)
		assert.Equal(t, entity.StatusInProgress, session.Status)
		assert.Equal(t, entity.NoWinner, session.WinnerIndex)
	})

	t.Run("Discards a game in progress", func(t *testing.T) {
		// Given: a game with two moves played
		engine := newStartedEngine(t, DefaultRoster())
		playMoves(t, engine, 0, 4)
		oldID := engine.Snapshot().ID

		// When: the game is started again
		engine.Start()

		// Then: the board is cleared and a new session begins
		session := engine.Snapshot()
		assert.Equal(t, [entity.BoardSize]entity.Cell{}, session.Board)
		assert.Equal(t, 0, session.CurrentPlayerIndex)
		assert.Equal(t, entity.StatusInProgress, session.Status)
		assert.NotEqual(t, oldID, session.ID)
	})

	t.Run("Uses configured player names and marks", func(t *testing.T) {
		// Given: a roster where the first player uses O
		roster := Roster{
			First:  entity.NewPlayer("alice", entity.MarkB),
			Second: entity.NewPlayer("bob", entity.MarkA),
		}

		// When: the game is started and alice moves
		engine := newStartedEngine(t, roster)
		playMoves(t, engine, 0)

		// Then: alice's mark is on the board and it's bob's turn
		session := engine.Snapshot()
		assert.Equal(t, entity.MarkB, session.Board[0])
		assert.Equal(t, "bob", session.ActivePlayer().Name)
	})
}

func TestEngine_SubmitMove(t *testing.T) {
	t.Run("Writes the mark and passes the turn", func(t *testing.T) {
		// Given: a started game
		engine := newStartedEngine(t, DefaultRoster())

		// When: player1 picks cell 4
		applied, err := engine.SubmitMove(4)

		// Then: exactly one cell changes and it's player2's turn
		require.NoError(t, err)
		assert.True(t, applied)

		session := engine.Snapshot()
		expected := [entity.BoardSize]entity.Cell{}
		expected[4] = entity.MarkA
		assert.Equal(t, expected, session.Board)
		assert.Equal(t, 1, session.CurrentPlayerIndex)
		assert.Equal(t, entity.StatusInProgress, session.Status)
	})

	t.Run("Ignores an occupied cell", func(t *testing.T) {
		// Given: a game where cell 0 is taken
		engine := newStartedEngine(t, DefaultRoster())
		playMoves(t, engine, 0)
		before := engine.Snapshot()

		// When: player2 picks cell 0
		applied, err := engine.SubmitMove(0)

		// Then: nothing changes
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, before, engine.Snapshot())
	})

	t.Run("Ignores moves before start", func(t *testing.T) {
		// Given: an engine that was never started
		engine, err := NewEngine(DefaultRoster())
		require.NoError(t, err)
		before := engine.Snapshot()

		// When: a cell is picked
		applied, err := engine.SubmitMove(3)

		// Then: nothing changes
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, before, engine.Snapshot())
	})

	t.Run("Ignores moves after the game is won", func(t *testing.T) {
		// Given: a game player1 has won
		engine := newStartedEngine(t, DefaultRoster())
		playMoves(t, engine, 0, 4, 1, 8, 2)
		before := engine.Snapshot()
		require.Equal(t, entity.StatusWon, before.Status)

		// When: an empty cell is picked
		applied, err := engine.SubmitMove(5)

		// Then: nothing changes
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, before, engine.Snapshot())
	})

	t.Run("Error on index out of range", func(t *testing.T) {
		for _, cell := range []int{-1, 9, 100} {
			// Given: a started game
			engine := newStartedEngine(t, DefaultRoster())
			before := engine.Snapshot()

			// When: an out of range cell is picked
			applied, err := engine.SubmitMove(cell)

			// Then: ErrIndexOutOfRange is returned and nothing changes
			require.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
			assert.False(t, applied)
			assert.Equal(t, before, engine.Snapshot())
		}
	})
}

func TestEngine_Results(t *testing.T) {
	t.Run("First player wins the top row", func(t *testing.T) {
		// Given: a started game
		engine := newStartedEngine(t, DefaultRoster())

		// When: X plays 0, 1, 2 while O plays 4, 8
		playMoves(t, engine, 0, 4, 1, 8, 2)

		// Then: player1 has won and the turn does not pass
		session := engine.Snapshot()
		assert.Equal(t, entity.StatusWon, session.Status)
		assert.Equal(t, 0, session.WinnerIndex)
		assert.Equal(t, 0, session.CurrentPlayerIndex)

		winner, ok := session.Winner()
		require.True(t, ok)
		assert.Equal(t, entity.MarkA, winner.Mark)
	})

	t.Run("Second player wins the middle row", func(t *testing.T) {
		// Given: a started game
		engine := newStartedEngine(t, DefaultRoster())

		// When: O completes 3, 4, 5
		playMoves(t, engine, 0, 3, 1, 4, 8, 5)

		// Then: player2 has won
		session := engine.Snapshot()
		assert.Equal(t, entity.StatusWon, session.Status)
		assert.Equal(t, 1, session.WinnerIndex)
		assert.Equal(t, "player2 WON!", session.Message())
	})

	t.Run("Win does not depend on which mark fills the line", func(t *testing.T) {
		// Given: a roster where the first player uses O
		roster := Roster{
			First:  entity.NewPlayer("player1", entity.MarkB),
			Second: entity.NewPlayer("player2", entity.MarkA),
		}
		engine := newStartedEngine(t, roster)

		// When: the same winning moves are played
		playMoves(t, engine, 0, 4, 1, 8, 2)

		// Then: the first player wins with O
		session := engine.Snapshot()
		assert.Equal(t, entity.StatusWon, session.Status)
		assert.Equal(t, 0, session.WinnerIndex)
		assert.Equal(t, entity.MarkB, session.Board[0])
	})

	t.Run("Last move completing a line on a full board is a win", func(t *testing.T) {
		// Given: a started game
		engine := newStartedEngine(t, DefaultRoster())

		// When: the ninth move fills the board and completes column 2, 5, 8
		playMoves(t, engine, 0, 1, 2, 3, 5, 4, 7, 6, 8)

		// Then: the game is won, not tied
		session := engine.Snapshot()
		assert.Equal(t, [entity.BoardSize]entity.Cell{
			entity.MarkA, entity.MarkB, entity.MarkA,
			entity.MarkB, entity.MarkB, entity.MarkA,
			entity.MarkB, entity.MarkA, entity.MarkA,
		}, session.Board)
		assert.Equal(t, entity.StatusWon, session.Status)
		assert.Equal(t, 0, session.WinnerIndex)
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a started game
		engine := newStartedEngine(t, DefaultRoster())

		// When: the board fills as X O X / X O O / O X X
		playMoves(t, engine, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the game is tied
		session := engine.Snapshot()
		assert.Equal(t, [entity.BoardSize]entity.Cell{
			entity.MarkA, entity.MarkB, entity.MarkA,
			entity.MarkA, entity.MarkB, entity.MarkB,
			entity.MarkB, entity.MarkA, entity.MarkA,
		}, session.Board)
		assert.Equal(t, entity.StatusTied, session.Status)
		assert.Equal(t, entity.NoWinner, session.WinnerIndex)
		assert.Equal(t, "It's a tie!", session.Message())
	})
}

func TestEngine_Restart(t *testing.T) {
	t.Run("Keeps the players after a finished game", func(t *testing.T) {
		// Given: a game won by alice
		roster := Roster{
			First:  entity.NewPlayer("alice", entity.MarkA),
			Second: entity.NewPlayer("bob", entity.MarkB),
		}
		engine := newStartedEngine(t, roster)
		playMoves(t, engine, 0, 4, 1, 8, 2)
		before := engine.Snapshot()

		// When: the game is restarted
		engine.Restart()

		// Then: the board is empty, alice moves first and the players are unchanged
		session := engine.Snapshot()
		assert.Equal(t, [entity.BoardSize]entity.Cell{}, session.Board)
		assert.Equal(t, entity.StatusInProgress, session.Status)
		assert.Equal(t, 0, session.CurrentPlayerIndex)
		assert.Equal(t, entity.NoWinner, session.WinnerIndex)
		assert.Equal(t, before.Players, session.Players)
		assert.NotEqual(t, before.ID, session.ID)
	})

	t.Run("Restart after a tie", func(t *testing.T) {
		// Given: a tied game
		engine := newStartedEngine(t, DefaultRoster())
		playMoves(t, engine, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// When: the game is restarted
		engine.Restart()

		// Then: moves are accepted again
		playMoves(t, engine, 4)
		assert.Equal(t, entity.MarkA, engine.Snapshot().Board[4])
	})

	t.Run("Restart before start starts the game", func(t *testing.T) {
		// Given: an engine that was never started
		engine, err := NewEngine(DefaultRoster())
		require.NoError(t, err)

		// When: the game is restarted
		engine.Restart()

		// Then: the default players are in place
		session := engine.Snapshot()
		assert.Equal(t, entity.StatusInProgress, session.Status)
		assert.Equal(t, "player1", session.Players[0].Name)
		assert.Equal(t, "player2", session.Players[1].Name)
	})
}

func TestCheckForWin(t *testing.T) {
	x, o, e := entity.MarkA, entity.MarkB, entity.CellEmpty

	for _, combo := range WinCombos {
		for _, mark := range []entity.Cell{x, o} {
			var board [entity.BoardSize]entity.Cell
			for _, cell := range combo {
				board[cell] = mark
			}

			assert.True(t, CheckForWin(board), "combo %v with %s", combo, mark)
		}
	}

	assert.False(t, CheckForWin([entity.BoardSize]entity.Cell{}))
	assert.False(t, CheckForWin([entity.BoardSize]entity.Cell{
		x, o, x,
		x, o, o,
		o, x, x,
	}))
	assert.False(t, CheckForWin([entity.BoardSize]entity.Cell{
		x, x, e,
		o, o, e,
		e, e, e,
	}))
}

func TestRoster_Validate(t *testing.T) {
	t.Run("Default roster is valid", func(t *testing.T) {
		assert.NoError(t, DefaultRoster().Validate())
	})

	t.Run("Error on duplicate marks", func(t *testing.T) {
		roster := Roster{
			First:  entity.NewPlayer("alice", entity.MarkA),
			Second: entity.NewPlayer("bob", entity.MarkA),
		}

		_, err := NewEngine(roster)
		require.ErrorIs(t, err, apperror.ErrInvalidRoster)
	})

	t.Run("Error on empty name", func(t *testing.T) {
		roster := DefaultRoster()
		roster.Second.Name = " "

		require.ErrorIs(t, roster.Validate(), apperror.ErrInvalidRoster)
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		roster := DefaultRoster()
		roster.First.Mark = entity.CellEmpty

		err := roster.Validate()
		require.ErrorIs(t, err, apperror.ErrInvalidRoster)
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}
