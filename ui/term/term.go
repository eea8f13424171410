// Package term draws the game in a terminal with tcell. The playfield is
// scaled to the screen; the bottom row is kept for the score line.
package term

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"polysnake/game/types"
)

const bodyRune = '█'

// Frontend implements game.Frontend on a tcell screen.
//
// Terminals report key presses but not releases, so the last direction key
// is held for one frame and then dropped.
type Frontend struct {
	screen tcell.Screen
	field  types.Playfield
	events chan tcell.Event
	frame  time.Duration

	pressed types.Direction
	quit    bool

	now   func() time.Time
	sleep func(time.Duration)
	last  time.Time
}

// New initializes screen and starts reading its events.
func New(screen tcell.Screen, cfg types.Config) (*Frontend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	f := &Frontend{
		screen: screen,
		field:  cfg.Playfield(),
		events: make(chan tcell.Event, 32),
		frame:  time.Second / time.Duration(cfg.FPS),
		now:    time.Now,
		sleep:  time.Sleep,
	}
	f.last = f.now()
	go f.poll()
	return f, nil
}

func (f *Frontend) poll() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		f.events <- ev
	}
}

func (f *Frontend) Close() {
	f.screen.Fini()
}

// ShouldClose drains pending events and reports whether the player quit.
func (f *Frontend) ShouldClose() bool {
	for {
		select {
		case ev := <-f.events:
			f.handle(ev)
		default:
			return f.quit
		}
	}
}

func (f *Frontend) handle(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			f.quit = true
		case tcell.KeyUp:
			f.pressed = types.Up
		case tcell.KeyDown:
			f.pressed = types.Down
		case tcell.KeyLeft:
			f.pressed = types.Left
		case tcell.KeyRight:
			f.pressed = types.Right
		case tcell.KeyRune:
			switch e.Rune() {
			case 'q':
				f.quit = true
			case 'w', 'k':
				f.pressed = types.Up
			case 's', 'j':
				f.pressed = types.Down
			case 'a', 'h':
				f.pressed = types.Left
			case 'd', 'l':
				f.pressed = types.Right
			}
		}
	}
}

func (f *Frontend) Pressed(dir types.Direction) bool {
	return dir != types.None && f.pressed == dir
}

// Tick waits out the rest of the frame and returns the elapsed seconds.
func (f *Frontend) Tick() float64 {
	if spent := f.now().Sub(f.last); spent < f.frame {
		f.sleep(f.frame - spent)
	}
	now := f.now()
	dt := now.Sub(f.last).Seconds()
	f.last = now
	return dt
}

func (f *Frontend) BeginFrame() {
	f.screen.Clear()
}

func (f *Frontend) EndFrame() {
	f.pressed = types.None
	f.screen.Show()
}

func (f *Frontend) DrawSegment(a, b types.Point, thickness float64, c types.Color) {
	style := tcell.StyleDefault.Foreground(rgb(c))
	x0, y0 := f.cell(a)
	x1, y1 := f.cell(b)
	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 0; i <= steps; i++ {
		x, y := x0, y0
		if steps > 0 {
			x = x0 + (x1-x0)*i/steps
			y = y0 + (y1-y0)*i/steps
		}
		f.set(x, y, bodyRune, style)
	}
}

func (f *Frontend) DrawRect(pos types.Point, size float64, c types.Color) {
	style := tcell.StyleDefault.Foreground(rgb(c))
	x0, y0 := f.cell(pos)
	x1, y1 := f.cell(types.Point{X: pos.X + size, Y: pos.Y + size})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			f.set(x, y, bodyRune, style)
		}
	}
}

// DrawText writes text on the status row, centred horizontally.
func (f *Frontend) DrawText(text string, pos types.Point, size int, c types.Color) {
	style := tcell.StyleDefault.Foreground(rgb(c))
	cols, rows := f.screen.Size()
	runes := []rune(text)
	x := max((cols-len(runes))/2, 0)
	for i, r := range runes {
		f.set(x+i, rows-1, r, style)
	}
}

// cell maps a playfield point to a screen cell above the status row.
func (f *Frontend) cell(p types.Point) (int, int) {
	cols, rows := f.screen.Size()
	rows--
	x := int(math.Floor(p.X / f.field.Width * float64(cols)))
	y := int(math.Floor(p.Y / f.field.Height * float64(rows)))
	return min(x, cols-1), min(y, rows-1)
}

func (f *Frontend) set(x, y int, r rune, style tcell.Style) {
	cols, rows := f.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	f.screen.SetContent(x, y, r, nil, style)
}

func rgb(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
