// internal/system/projectile.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/physics"
)

// ProjectileSystem двигает снаряды, проверяет попадания и убирает улетевшие за экран.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// UpdateEnemyProjectiles двигает снаряды врагов. Снаряд, задевший игрока,
// заканчивает игру; вышедший за нижний край удаляется на следующем кадре.
func (s *ProjectileSystem) UpdateEnemyProjectiles() {
	player := s.ecs.Player
	for _, proj := range s.ecs.EnemyProjectiles {
		if player != nil && player.Ready && physics.Overlap(proj.Bounds(), player.Bounds()) {
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.ReasonPlayerShot})
		}
		if proj.Position.Y >= config.ScreenHeight {
			id := proj.ID
			s.ecs.Defer(func() { s.ecs.RemoveEnemyProjectile(id) })
			continue
		}
		proj.Position = proj.Position.Add(proj.Velocity)
	}
}

// UpdateProjectiles двигает снаряды игрока и проверяет попадания во врагов.
func (s *ProjectileSystem) UpdateProjectiles() {
	for _, proj := range s.ecs.Projectiles {
		if proj.Spent {
			continue
		}
		if proj.Position.Y <= 0 {
			s.removeProjectile(proj)
			continue
		}
		proj.Position = proj.Position.Add(proj.Velocity)
		s.checkHits(proj)
	}
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(proj *component.Projectile) {
	proj.Spent = true
	id := proj.ID
	s.ecs.Defer(func() { s.ecs.RemoveProjectile(id) })
}

// checkHits ищет первого живого врага, в которого попал снаряд.
// Один снаряд сбивает не больше одного врага.
func (s *ProjectileSystem) checkHits(proj *component.Projectile) {
	for _, grid := range s.ecs.Grids {
		for _, enemy := range grid.Enemies {
			if !enemy.Active() {
				continue
			}
			if physics.CircleHitsBox(proj.Position.X, proj.Position.Y, proj.Radius, enemy.Bounds()) {
				s.hitTarget(grid, enemy, proj)
				return
			}
		}
	}
}

func (s *ProjectileSystem) hitTarget(grid *component.EnemyGrid, enemy *component.Enemy, proj *component.Projectile) {
	enemy.Alive = false
	s.removeProjectile(proj)

	enemyID := enemy.ID
	s.ecs.Defer(func() { s.ecs.RemoveEnemy(grid, enemyID) })

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{Grid: grid, Enemy: enemy, Projectile: proj},
	})
}
