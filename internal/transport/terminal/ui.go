// Package terminal draws the game with tview and forwards clicks and key presses to the game manager.
package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	title     = "Tic-Tac-Toe"
	cellWidth = 7
	gridSide  = 3
)

type gameManager interface {
	State() entity.Session
	RequestStart(ctx context.Context) error
	RequestRestart(ctx context.Context) error
	CellSelected(ctx context.Context, cell int) error
}

type UI struct {
	logger  *slog.Logger
	ctx     context.Context
	manager gameManager

	app      *tview.Application
	root     *tview.Flex
	cells    [entity.BoardSize]*tview.Button
	status   *tview.TextView
	controls *tview.Flex
	start    *tview.Button
	restart  *tview.Button

	focused int
}

func New(ctx context.Context, logger *slog.Logger, manager gameManager) *UI {
	that := &UI{
		logger:  logger.With("component", "terminal"),
		ctx:     ctx,
		manager: manager,
		app:     tview.NewApplication(),
		focused: 4,
	}

	that.build()
	that.draw(manager.State())

	return that
}

// Run - blocks until the user quits or ctx is canceled.
func (that *UI) Run() error {
	go func() {
		<-that.ctx.Done()
		that.app.Stop()
	}()

	if err := that.app.SetRoot(that.root, true).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	return nil
}

// Render - redraws the board. Called from the tview event loop, so widgets are updated directly.
func (that *UI) Render(_ context.Context, session entity.Session) error {
	that.draw(session)
	return nil
}

func (that *UI) build() {
	grid := tview.NewGrid().
		SetRows(3, 3, 3).
		SetColumns(cellWidth, cellWidth, cellWidth).
		SetBorders(true)

	for i := range that.cells {
		cell := i
		button := tview.NewButton("").SetSelectedFunc(func() {
			that.selectCell(cell)
		})

		that.cells[i] = button
		grid.AddItem(button, i/gridSide, i%gridSide, 1, 1, 0, 0, false)
	}

	that.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	that.start = tview.NewButton("Start").SetSelectedFunc(that.startGame)
	that.restart = tview.NewButton("Restart").SetSelectedFunc(that.restartGame)
	that.controls = tview.NewFlex()

	header := tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText(title)
	help := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("click a cell or press 1-9 · s start · r restart · q quit")

	boardWidth := gridSide*cellWidth + gridSide + 1
	board := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(grid, boardWidth, 0, false).
		AddItem(nil, 0, 1, false)

	that.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(board, gridSide*4+1, 0, false).
		AddItem(that.status, 1, 0, false).
		AddItem(that.controls, 1, 0, false).
		AddItem(help, 1, 0, false)

	that.app.SetInputCapture(that.handleKey)
}

func (that *UI) draw(session entity.Session) {
	for i, button := range that.cells {
		mark := session.Board[i]
		button.SetLabel(mark.String())
		button.SetLabelColor(markColor(mark))
	}

	that.status.SetText(session.Message())

	that.controls.Clear()
	that.controls.AddItem(nil, 0, 1, false)
	switch {
	case !session.IsStarted():
		that.controls.AddItem(that.start, len("Start")+4, 0, false)
	case session.IsFinished():
		that.controls.AddItem(that.restart, len("Restart")+4, 0, false)
	}
	that.controls.AddItem(nil, 0, 1, false)
}

func (that *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		that.app.Stop()
		return nil
	case tcell.KeyUp:
		that.moveFocus(-gridSide)
		return nil
	case tcell.KeyDown:
		that.moveFocus(gridSide)
		return nil
	case tcell.KeyLeft:
		that.moveFocus(-1)
		return nil
	case tcell.KeyRight:
		that.moveFocus(1)
		return nil
	case tcell.KeyRune:
		return that.handleRune(event)
	default:
		return event
	}
}

func (that *UI) handleRune(event *tcell.EventKey) *tcell.EventKey {
	r := event.Rune()

	if cell, ok := cellForKey(r); ok {
		that.selectCell(cell)
		return nil
	}

	switch r {
	case 'q':
		that.app.Stop()
	case 's':
		that.startGame()
	case 'r':
		that.restartGame()
	default:
		return event
	}

	return nil
}

func (that *UI) moveFocus(delta int) {
	next := that.focused + delta
	if next < 0 || next >= entity.BoardSize {
		return
	}

	// left/right stay on the same row
	if (delta == 1 || delta == -1) && next/gridSide != that.focused/gridSide {
		return
	}

	that.focused = next
	that.app.SetFocus(that.cells[next])
}

func (that *UI) selectCell(cell int) {
	that.focused = cell
	if err := that.manager.CellSelected(that.ctx, cell); err != nil {
		that.logger.Error("failed to select cell", "cell", cell, "error", err)
	}
}

func (that *UI) startGame() {
	if err := that.manager.RequestStart(that.ctx); err != nil {
		that.logger.Error("failed to start game", "error", err)
	}

	that.app.SetFocus(that.cells[that.focused])
}

func (that *UI) restartGame() {
	if err := that.manager.RequestRestart(that.ctx); err != nil {
		that.logger.Error("failed to restart game", "error", err)
	}

	that.app.SetFocus(that.cells[that.focused])
}

// cellForKey - maps '1'..'9' to cells 0..8 in row-major order.
func cellForKey(r rune) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}

	return int(r - '1'), true
}

func markColor(mark entity.Cell) tcell.Color {
	switch mark {
	case entity.MarkA:
		return tcell.ColorRed
	case entity.MarkB:
		return tcell.ColorBlue
	default:
		return tcell.ColorWhite
	}
}
