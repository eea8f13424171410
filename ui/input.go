package ui

import (
	"polysnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keys maps each heading to WASD plus the arrow keys.
var keys = map[types.Direction][2]int32{
	types.Up:    {rl.KeyW, rl.KeyUp},
	types.Down:  {rl.KeyS, rl.KeyDown},
	types.Left:  {rl.KeyA, rl.KeyLeft},
	types.Right: {rl.KeyD, rl.KeyRight},
}

func (r *Renderer) Pressed(dir types.Direction) bool {
	for _, k := range keys[dir] {
		if rl.IsKeyDown(k) {
			return true
		}
	}
	return false
}
