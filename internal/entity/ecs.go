package entity

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"
)

// ECS хранит все сущности забега плоскими списками.
//
// Удаление во время обхода списков откладывается через Defer и выполняется
// в FlushDeferred в начале следующего кадра: запрошенное на кадре N
// становится видно только с кадра N+1.
type ECS struct {
	NextID           types.EntityID
	Player           *component.Player
	Projectiles      []*component.Projectile
	EnemyProjectiles []*component.EnemyProjectile
	Grids            []*component.EnemyGrid
	Score            int
	Frame            int
	Phase            component.GamePhase

	deferred []func()
}

func NewECS() *ECS {
	return &ECS{
		NextID: 1,
		Phase:  component.Running,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Defer ставит действие в очередь до следующего FlushDeferred
func (ecs *ECS) Defer(fn func()) {
	ecs.deferred = append(ecs.deferred, fn)
}

// PendingDeferred возвращает число отложенных действий
func (ecs *ECS) PendingDeferred() int {
	return len(ecs.deferred)
}

// FlushDeferred выполняет накопленные действия. Действия, отложенные
// во время сброса, ждут следующего вызова.
func (ecs *ECS) FlushDeferred() {
	queue := ecs.deferred
	ecs.deferred = nil
	for _, fn := range queue {
		fn()
	}
}

// RemoveProjectile удаляет снаряд игрока по ID. Повторный вызов ничего не делает.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	for i, p := range ecs.Projectiles {
		if p.ID == id {
			ecs.Projectiles = append(ecs.Projectiles[:i], ecs.Projectiles[i+1:]...)
			return
		}
	}
}

// RemoveEnemyProjectile удаляет снаряд врага по ID
func (ecs *ECS) RemoveEnemyProjectile(id types.EntityID) {
	for i, p := range ecs.EnemyProjectiles {
		if p.ID == id {
			ecs.EnemyProjectiles = append(ecs.EnemyProjectiles[:i], ecs.EnemyProjectiles[i+1:]...)
			return
		}
	}
}

// RemoveEnemy удаляет врага из его сетки. Сама сетка остаётся, даже пустая.
func (ecs *ECS) RemoveEnemy(grid *component.EnemyGrid, id types.EntityID) {
	for i, e := range grid.Enemies {
		if e.ID == id {
			grid.Enemies = append(grid.Enemies[:i], grid.Enemies[i+1:]...)
			return
		}
	}
}
