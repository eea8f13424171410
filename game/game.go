package game

import (
	"fmt"

	"polysnake/game/entity"
	"polysnake/game/manager"
	"polysnake/game/types"
)

// Clock reports the seconds elapsed since the previous frame.
type Clock interface {
	Tick() float64
}

// Renderer is the drawing surface for one frame.
type Renderer interface {
	BeginFrame()
	DrawSegment(a, b types.Point, thickness float64, c types.Color)
	DrawRect(pos types.Point, size float64, c types.Color)
	DrawText(text string, pos types.Point, size int, c types.Color)
	EndFrame()
}

// Frontend bundles the collaborators a window or terminal provides.
type Frontend interface {
	Clock
	Input
	Renderer
	ShouldClose() bool
}

// State is everything a self-collision throws away. A reset replaces it as a
// whole.
type State struct {
	Snake *entity.Snake
	Food  manager.Food
}

// FrameResult tells the caller what happened during a frame.
type FrameResult struct {
	Distance float64
	Collided bool
	Ate      bool
}

type Game struct {
	cfg        types.Config
	collisions *manager.CollisionManager
	food       *manager.FoodManager
	scores     *manager.StateManager
	state      State

	// OnRunEnd is called after a self-collision reset.
	OnRunEnd func(manager.RunSummary)
}

func NewGame(cfg types.Config, rng manager.RandomSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	field := cfg.Playfield()
	g := &Game{
		cfg:        cfg,
		collisions: manager.NewCollisionManager(field, cfg.Thickness, cfg.Tolerance),
		food:       manager.NewFoodManager(field, cfg.CellSize, cfg.FoodSize(), rng),
		scores:     manager.NewStateManager(manager.NewStats()),
	}
	g.state = g.newState()
	return g, nil
}

func (g *Game) newState() State {
	return State{
		Snake: entity.NewSnake(g.cfg.Playfield(), g.cfg.InitialLength),
		Food:  g.food.Place(),
	}
}

// Run drives frames until the frontend asks to close.
func (g *Game) Run(fe Frontend) {
	dt := 0.0
	for !fe.ShouldClose() {
		g.Frame(dt, fe, fe)
		dt = fe.Tick()
	}
}

// Frame runs one frame of the game dt seconds after the previous one.
func (g *Game) Frame(dt float64, in Input, r Renderer) FrameResult {
	res := FrameResult{Distance: g.cfg.Speed * dt}

	r.BeginFrame()
	if g.collisions.CheckSelfCollision(g.state.Snake) {
		res.Collided = true
		g.reset()
	}
	g.drawSnake(r)
	g.drawFood(r)
	g.drawScore(r)

	snake := g.state.Snake
	if g.collisions.IsFoodCollision(snake.Head(), g.state.Food) {
		res.Ate = true
		g.eat()
	}

	if dir := requestedDirection(in, snake.Direction); dir != snake.Direction {
		snake.Turn(dir)
	}
	snake.Move(res.Distance)
	r.EndFrame()

	return res
}

func (g *Game) eat() {
	g.scores.AddPoint()
	g.state.Snake.Grow(g.cfg.LengthIncrement)
	g.state.Food = g.food.Place()
}

func (g *Game) reset() {
	summary := g.scores.EndRun()
	g.state = g.newState()
	if g.OnRunEnd != nil {
		g.OnRunEnd(summary)
	}
}

func (g *Game) drawSnake(r Renderer) {
	for _, seg := range g.state.Snake.Segments() {
		r.DrawSegment(seg.Start, seg.End, g.cfg.Thickness, types.Yellow)
	}
}

func (g *Game) drawFood(r Renderer) {
	r.DrawRect(g.state.Food.Position, g.state.Food.Size, types.Red)
}

func (g *Game) drawScore(r Renderer) {
	pos := types.Point{X: g.cfg.Width/2 - 60, Y: g.cfg.Height - 20}
	r.DrawText(g.ScoreText(), pos, 16, types.Green)
}

// ScoreText is the status line shown at the bottom of the playfield.
func (g *Game) ScoreText() string {
	if g.scores.Best() > 0 {
		return fmt.Sprintf("Score = %d, best = %d", g.scores.Score(), g.scores.Best())
	}
	return fmt.Sprintf("Score = %d", g.scores.Score())
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Score() int {
	return g.scores.Score()
}

func (g *Game) Best() int {
	return g.scores.Best()
}

func (g *Game) Stats() *manager.Stats {
	return g.scores.Stats()
}

func (g *Game) Config() types.Config {
	return g.cfg
}
