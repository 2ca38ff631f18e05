// internal/component/enemy.go
package component

import (
	"go-space-shooter/internal/physics"
	"go-space-shooter/internal/types"
)

// Enemy представляет одного врага в сетке.
type Enemy struct {
	ID       types.EntityID
	Position Vector2
	Offset   Vector2 // смещение внутри сетки
	Width    float64
	Height   float64
	Alive    bool
	Ready    bool // спрайт загружен, враг участвует в игре
}

// Active — враг загружен и ещё жив
func (e *Enemy) Active() bool {
	return e.Ready && e.Alive
}

// Bounds возвращает прямоугольник врага
func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.Position.X, Y: e.Position.Y, W: e.Width, H: e.Height}
}

// EnemyGrid — строй врагов, который движется как единое целое.
type EnemyGrid struct {
	ID       types.EntityID
	Position Vector2
	// Speed.X — горизонтальная скорость, Speed.Y — спуск на текущем кадре
	// (ненулевой только на кадре отскока от края).
	Speed   Vector2
	Width   float64
	Columns int
	Rows    int
	Enemies []*Enemy
}

// LiveEnemies возвращает врагов, которые ещё участвуют в игре
func (g *EnemyGrid) LiveEnemies() []*Enemy {
	var live []*Enemy
	for _, e := range g.Enemies {
		if e.Active() {
			live = append(live, e)
		}
	}
	return live
}
