package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/labyrinth/internal/config"
	"github.com/Faultbox/labyrinth/internal/game"
	"github.com/Faultbox/labyrinth/internal/game/entity"
	"github.com/Faultbox/labyrinth/internal/logger"
	"github.com/Faultbox/labyrinth/internal/maze"
)

var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFloor   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCulled  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMarker  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleVictory = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
)

// viewer draws the level top-down, two terminal columns per physical cell.
type viewer struct {
	screen tcell.Screen
	game   *game.Game
	view   config.ViewConfig

	// cells indexes cell entities by physical coordinate (py*size+px).
	cells []*entity.Entity
	size  int

	showCulled bool
}

func newViewer(g *game.Game, view config.ViewConfig) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &viewer{
		screen:     screen,
		game:       g,
		view:       view,
		showCulled: true,
	}
	v.reindex()
	return v, nil
}

// reindex rebuilds the cell lookup after the level changes.
func (v *viewer) reindex() {
	v.size = v.game.World().Layout.Size()
	v.cells = indexCells(v.game.Entities().GetByType(entity.TypeCell), v.size)
}

// indexCells arranges cell entities by their physical coordinates.
func indexCells(ents []*entity.Entity, size int) []*entity.Entity {
	cells := make([]*entity.Entity, size*size)
	for _, e := range ents {
		if e.CellX >= 0 && e.CellX < size && e.CellY >= 0 && e.CellY < size {
			cells[e.CellY*size+e.CellX] = e
		}
	}
	return cells
}

func (v *viewer) close() {
	v.screen.Fini()
}

func (v *viewer) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(v.view.TickRate)
	defer ticker.Stop()

	v.game.Tick(v.game.Viewpoint())
	v.draw()

	for {
		select {
		case ev := <-events:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			v.game.Tick(v.game.Viewpoint())
			v.draw()
		}
	}
}

// handleInput applies one event. It returns false when the viewer should quit.
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.move(0, -1)
		case tcell.KeyDown:
			v.move(0, 1)
		case tcell.KeyLeft:
			v.move(-1, 0)
		case tcell.KeyRight:
			v.move(1, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'w', 'W':
				v.move(0, -1)
			case 's', 'S':
				v.move(0, 1)
			case 'a', 'A':
				v.move(-1, 0)
			case 'd', 'D':
				v.move(1, 0)
			case 'c', 'C':
				v.showCulled = !v.showCulled
			case 'r', 'R':
				start := v.game.World().Start
				v.game.Teleport(start.X, start.Y)
			case 'n', 'N':
				v.nextLevel()
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// nextLevel regenerates the maze from the following seed.
func (v *viewer) nextLevel() {
	if err := v.game.Regenerate(v.game.Seed() + 1); err != nil {
		logger.Error("failed to regenerate level", zap.Error(err))
		return
	}
	v.reindex()
	v.game.Tick(v.game.Viewpoint())
}

// move steps up to MoveStep cells, stopping at the first wall.
func (v *viewer) move(dx, dy int) {
	for i := 0; i < v.view.MoveStep; i++ {
		if !v.game.MovePlayer(dx, dy) {
			return
		}
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()

	px, py := v.game.PlayerCell()
	w := v.game.World()

	// Keep the player centred; row 0 is the status line.
	cols := width / 2
	rows := height - 1
	originX := px - cols/2
	originY := py - rows/2

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cx, cy := originX+col, originY+row
			glyph, style, ok := v.cellGlyph(cx, cy, w.Start, w.Finish)
			if !ok {
				continue
			}
			v.screen.SetContent(col*2, row+1, glyph, nil, style)
			v.screen.SetContent(col*2+1, row+1, glyph, nil, style)
		}
	}

	// Player marker.
	v.screen.SetContent((px-originX)*2, py-originY+1, '@', nil, stylePlayer)

	stats := v.game.LastStats()
	status := fmt.Sprintf(" seed %d  cell %d:%d  visible %d  hidden %d  tick %d  [wasd/arrows move, c culled, r restart, n new maze, q quit] ",
		v.game.Seed(), px, py, stats.Visible, stats.Hidden, v.game.Ticks())
	style := styleStatus
	if v.game.AtFinish() {
		status = " You found the exit! " + status
		style = styleVictory
	}
	drawText(v.screen, 0, 0, style, status)

	v.screen.Show()
}

// cellGlyph picks how a physical cell is drawn. ok is false for cells that
// are outside the layout or hidden by culling.
func (v *viewer) cellGlyph(cx, cy int, start, finish maze.Coord) (rune, tcell.Style, bool) {
	if cx < 0 || cy < 0 || cx >= v.size || cy >= v.size {
		return 0, tcell.StyleDefault, false
	}
	e := v.cells[cy*v.size+cx]
	if e == nil {
		return 0, tcell.StyleDefault, false
	}

	if !e.IsVisible {
		if !v.showCulled {
			return 0, tcell.StyleDefault, false
		}
		if e.Kind == maze.KindWall {
			return '░', styleCulled, true
		}
		return ' ', styleCulled, true
	}

	switch {
	case cx == start.X && cy == start.Y:
		return 'S', styleMarker, true
	case cx == finish.X && cy == finish.Y:
		return 'F', styleMarker, true
	case e.Kind == maze.KindWall:
		return '█', styleWall, true
	default:
		return '·', styleFloor, true
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
