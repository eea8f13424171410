package ui

import (
	"polysnake/game/manager"
	"polysnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer is the raylib window. It implements game.Frontend.
type Renderer struct {
	cfg types.Config
}

// NewRenderer opens the window. Call Close when done.
func NewRenderer(cfg types.Config, title string) *Renderer {
	rl.SetTraceLogLevel(rl.LogInfo)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), title)
	rl.SetTargetFPS(int32(cfg.FPS))
	return &Renderer{cfg: cfg}
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func (r *Renderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// Tick returns the duration of the frame that just ended, in seconds.
func (r *Renderer) Tick() float64 {
	return float64(rl.GetFrameTime())
}

func (r *Renderer) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(color(types.Black))
}

func (r *Renderer) EndFrame() {
	rl.EndDrawing()
}

func (r *Renderer) DrawSegment(a, b types.Point, thickness float64, c types.Color) {
	rl.DrawLineEx(vector(a), vector(b), float32(thickness), color(c))
}

func (r *Renderer) DrawRect(pos types.Point, size float64, c types.Color) {
	rl.DrawRectangleV(vector(pos), rl.Vector2{X: float32(size), Y: float32(size)}, color(c))
}

func (r *Renderer) DrawText(text string, pos types.Point, size int, c types.Color) {
	rl.DrawText(text, int32(pos.X), int32(pos.Y), int32(size), color(c))
}

// LogRun reports a finished run through raylib's logger.
func LogRun(s manager.RunSummary) {
	rl.TraceLog(rl.LogInfo, "run %s ended: score %d, best %d, %.1fs (%d runs, avg %.2f)",
		s.RunID, s.Score, s.Best, s.Duration.Seconds(), s.Runs, s.AverageScore)
}

func vector(p types.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

func color(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
