package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

const BoardSize = 9

// Board - the nine cells of a game, row-major.
type Board struct {
	cells [BoardSize]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Reset - sets every cell back to CellEmpty.
func (that *Board) Reset() {
	that.cells = [BoardSize]Cell{}
}

// SetCell - writes mark into the cell. The caller decides whether the cell may be overwritten.
func (that *Board) SetCell(index int, mark Cell) error {
	if err := validateIndex(index); err != nil {
		return err
	}

	if !mark.IsMark() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, uint8(mark))
	}

	that.cells[index] = mark

	return nil
}

func (that *Board) Cell(index int) (Cell, error) {
	if err := validateIndex(index); err != nil {
		return CellEmpty, err
	}

	return that.cells[index], nil
}

// Cells - returns a copy of the board.
func (that *Board) Cells() [BoardSize]Cell {
	return that.cells
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == CellEmpty {
			return false
		}
	}

	return true
}

func validateIndex(index int) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrIndexOutOfRange, index)
	}

	return nil
}
