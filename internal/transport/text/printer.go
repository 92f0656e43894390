package text

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const rowSeparator = "---+---+---"

// Printer - writes every snapshot as a plain text grid.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (that *Printer) Render(_ context.Context, session entity.Session) error {
	if _, err := io.WriteString(that.out, Format(session)); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// Format - the board in rows of three followed by the status line.
func Format(session entity.Session) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}

		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			symbol := session.Board[row*3+col].String()
			if symbol == "" {
				symbol = " "
			}
			cells[col] = " " + symbol + " "
		}

		sb.WriteString(strings.Join(cells, "|") + "\n")
	}

	sb.WriteString(session.Message() + "\n")

	return sb.String()
}
