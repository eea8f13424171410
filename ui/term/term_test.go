package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"polysnake/game"
	"polysnake/game/types"
)

// 64x37 cells over 1280x720 gives 20px per cell with one status row.
func newSimFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	f, err := New(screen, types.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	screen.SetSize(64, 37)
	t.Cleanup(f.Close)
	return f, screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	mainc, _, _, _ := screen.GetContent(x, y)
	if mainc == 0 {
		return ' '
	}
	return mainc
}

func rowText(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func TestDrawSegment(t *testing.T) {
	f, screen := newSimFrontend(t)

	f.BeginFrame()
	f.DrawSegment(types.Point{X: 100, Y: 100}, types.Point{X: 300, Y: 100}, 10, types.Yellow)
	f.DrawSegment(types.Point{X: 600, Y: 400}, types.Point{X: 600, Y: 200}, 10, types.Yellow)
	f.EndFrame()

	for x := 5; x <= 15; x++ {
		if r := runeAt(screen, x, 5); r != bodyRune {
			t.Errorf("Expected body at (%d,5), got %q", x, r)
		}
	}
	for y := 10; y <= 20; y++ {
		if r := runeAt(screen, 30, y); r != bodyRune {
			t.Errorf("Expected body at (30,%d), got %q", y, r)
		}
	}
	if r := runeAt(screen, 16, 5); r == bodyRune {
		t.Errorf("Expected segment to end at column 15")
	}
}

func TestDrawClipsOffscreen(t *testing.T) {
	f, screen := newSimFrontend(t)

	f.BeginFrame()
	f.DrawSegment(types.Point{X: -100, Y: 100}, types.Point{X: 40, Y: 100}, 10, types.Yellow)
	f.DrawRect(types.Point{X: 1270, Y: 710}, 40, types.Red)
	f.EndFrame()

	if r := runeAt(screen, 0, 5); r != bodyRune {
		t.Errorf("Expected visible part of the segment, got %q", r)
	}
	if r := runeAt(screen, 63, 35); r != bodyRune {
		t.Errorf("Expected food clipped into the last field cell, got %q", r)
	}
	if strings.TrimSpace(rowText(screen, 36)) != "" {
		t.Errorf("Expected status row untouched, got %q", rowText(screen, 36))
	}
}

func TestDrawTextOnStatusRow(t *testing.T) {
	f, screen := newSimFrontend(t)

	f.BeginFrame()
	f.DrawText("Score = 3", types.Point{X: 580, Y: 700}, 16, types.Green)
	f.EndFrame()

	if got := strings.TrimSpace(rowText(screen, 36)); got != "Score = 3" {
		t.Errorf("Expected score on the status row, got %q", got)
	}
}

func TestKeyHandling(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want types.Direction
		quit bool
	}{
		{"Arrow up", tcell.KeyUp, 0, types.Up, false},
		{"Arrow right", tcell.KeyRight, 0, types.Right, false},
		{"WASD left", tcell.KeyRune, 'a', types.Left, false},
		{"Vi down", tcell.KeyRune, 'j', types.Down, false},
		{"Quit rune", tcell.KeyRune, 'q', types.None, true},
		{"Escape", tcell.KeyEscape, 0, types.None, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newSimFrontend(t)

			f.handle(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))

			for _, dir := range types.Directions {
				if got := f.Pressed(dir); got != (dir == tt.want) {
					t.Errorf("Pressed(%v) = %v", dir, got)
				}
			}
			if f.quit != tt.quit {
				t.Errorf("Expected quit=%v, got %v", tt.quit, f.quit)
			}
		})
	}
}

func TestPressLastsOneFrame(t *testing.T) {
	f, _ := newSimFrontend(t)

	f.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if !f.Pressed(types.Left) {
		t.Fatal("Expected left pressed")
	}
	f.EndFrame()
	if f.Pressed(types.Left) {
		t.Error("Expected press released after the frame")
	}
}

func TestInjectedKeysReachShouldClose(t *testing.T) {
	f, screen := newSimFrontend(t)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	deadline := time.Now().Add(2 * time.Second)
	for !f.ShouldClose() {
		if time.Now().After(deadline) {
			t.Fatal("Expected injected quit key to close the frontend")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestTickPacesFrames(t *testing.T) {
	f, _ := newSimFrontend(t)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var slept time.Duration
	f.now = func() time.Time { return clock }
	f.sleep = func(d time.Duration) { slept += d; clock = clock.Add(d) }
	f.last = clock

	clock = clock.Add(5 * time.Millisecond)
	dt := f.Tick()

	if want := f.frame; slept != want-5*time.Millisecond {
		t.Errorf("Expected to sleep %v, slept %v", want-5*time.Millisecond, slept)
	}
	if dt != f.frame.Seconds() {
		t.Errorf("Expected dt %f, got %f", f.frame.Seconds(), dt)
	}

	slept = 0
	clock = clock.Add(50 * time.Millisecond)
	if dt := f.Tick(); dt != 0.05 || slept != 0 {
		t.Errorf("Expected slow frame to report 0.05s without sleeping, got %f after %v", dt, slept)
	}
}

func TestGameFrameOnTerminal(t *testing.T) {
	f, screen := newSimFrontend(t)
	g, err := game.NewGame(types.DefaultConfig(), zeroRandom{})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	f.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	g.Frame(0, f, f)
	g.Frame(0.0625, f, f)

	if got := strings.TrimSpace(rowText(screen, 36)); got != "Score = 0" {
		t.Errorf("Expected score line, got %q", got)
	}
	if r := runeAt(screen, 0, 0); r != bodyRune {
		t.Errorf("Expected food in the top-left corner, got %q", r)
	}
	// Snake drawn before the second move: tail (590,360) to head (640,360).
	if r := runeAt(screen, 30, 18); r != bodyRune {
		t.Errorf("Expected snake body at (30,18), got %q", r)
	}
	if head := g.State().Snake.Head(); head != (types.Point{X: 677.5, Y: 360}) {
		t.Errorf("Expected head to move right, got %v", head)
	}
}

type zeroRandom struct{}

func (zeroRandom) Intn(int) int { return 0 }
