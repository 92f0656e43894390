package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

// Cell - the content of one board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	MarkA
	MarkB
)

const (
	markASymbol = "X"
	markBSymbol = "O"
)

// IsMark - reports whether the cell holds a player mark.
func (that Cell) IsMark() bool {
	return that == MarkA || that == MarkB
}

// Opponent - returns the other player's mark. CellEmpty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkA:
		return MarkB
	case MarkB:
		return MarkA
	default:
		return CellEmpty
	}
}

func (that Cell) String() string {
	switch that {
	case MarkA:
		return markASymbol
	case MarkB:
		return markBSymbol
	default:
		return ""
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	if that != CellEmpty && !that.IsMark() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, uint8(that))
	}

	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	cell, err := ParseCell(string(text))
	if err != nil {
		return err
	}

	*that = cell

	return nil
}

// ParseCell - converts "X", "O" or "" into a Cell.
func ParseCell(s string) (Cell, error) {
	switch s {
	case "":
		return CellEmpty, nil
	case markASymbol:
		return MarkA, nil
	case markBSymbol:
		return MarkB, nil
	default:
		return CellEmpty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

// ParseMark - like ParseCell, but only accepts a player mark.
func ParseMark(s string) (Cell, error) {
	cell, err := ParseCell(s)
	if err != nil {
		return CellEmpty, err
	}

	if !cell.IsMark() {
		return CellEmpty, fmt.Errorf("%w: empty mark", apperror.ErrInvalidMark)
	}

	return cell, nil
}
