// internal/component/player.go
package component

import (
	"go-space-shooter/internal/physics"
	"go-space-shooter/internal/types"
)

// Player — корабль игрока. Пока спрайт не загружен, Ready == false
// и размеры с позицией не определены.
type Player struct {
	ID       types.EntityID
	Position Vector2
	Velocity Vector2
	Width    float64
	Height   float64
	Opacity  float64
	Ready    bool
}

// Bounds возвращает прямоугольник корабля
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.Position.X, Y: p.Position.Y, W: p.Width, H: p.Height}
}
