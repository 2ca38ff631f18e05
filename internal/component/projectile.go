// internal/component/projectile.go
package component

import (
	"go-space-shooter/internal/physics"
	"go-space-shooter/internal/types"
)

// Projectile — снаряд игрока, круг радиуса Radius с центром в Position.
type Projectile struct {
	ID       types.EntityID
	Position Vector2
	Velocity Vector2
	Radius   float64
	Spent    bool // уже попал во врага и ждёт удаления
}

// EnemyProjectile — снаряд врага, прямоугольник с левым верхним углом в Position.
type EnemyProjectile struct {
	ID       types.EntityID
	Position Vector2
	Velocity Vector2
	Width    float64
	Height   float64
}

// Bounds возвращает прямоугольник снаряда
func (p *EnemyProjectile) Bounds() physics.Rect {
	return physics.Rect{X: p.Position.X, Y: p.Position.Y, W: p.Width, H: p.Height}
}
