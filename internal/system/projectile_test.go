package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
)

func TestProjectileHitAwardsScore(t *testing.T) {
	ecs, d, log := newWorld()
	NewScoreSystem(ecs, d)
	s := NewProjectileSystem(ecs, d)

	// центр врага (102, 52), половина меньшей стороны 10
	enemy := readyEnemy(ecs, 92, 42, 20, 20)
	grid := &component.EnemyGrid{Enemies: []*component.Enemy{enemy}}
	ecs.Grids = append(ecs.Grids, grid)
	proj := &component.Projectile{ID: ecs.NewEntity(), Position: component.Vector2{X: 100, Y: 50}, Radius: 4}
	ecs.Projectiles = append(ecs.Projectiles, proj)

	s.UpdateProjectiles()

	if ecs.Score != 100 {
		t.Errorf("Expected score 100, got %d", ecs.Score)
	}
	if enemy.Alive {
		t.Error("Enemy should be marked not alive")
	}
	if !proj.Spent {
		t.Error("Projectile should be spent")
	}
	if log.count(event.EnemyKilled) != 1 {
		t.Errorf("Expected 1 EnemyKilled event, got %d", log.count(event.EnemyKilled))
	}
	// удаление откладывается до следующего кадра
	if len(grid.Enemies) != 1 || len(ecs.Projectiles) != 1 {
		t.Fatal("Removal must not happen within the same frame")
	}
	ecs.FlushDeferred()
	if len(grid.Enemies) != 0 {
		t.Errorf("Expected enemy removed, got %d", len(grid.Enemies))
	}
	if len(ecs.Projectiles) != 0 {
		t.Errorf("Expected projectile removed, got %d", len(ecs.Projectiles))
	}
	if len(ecs.Grids) != 1 {
		t.Errorf("Empty grid should persist, got %d grids", len(ecs.Grids))
	}
}

func TestProjectileKillsAtMostOneEnemy(t *testing.T) {
	ecs, d, _ := newWorld()
	NewScoreSystem(ecs, d)
	s := NewProjectileSystem(ecs, d)

	a := readyEnemy(ecs, 92, 42, 20, 20)
	b := readyEnemy(ecs, 94, 44, 20, 20)
	ecs.Grids = append(ecs.Grids, &component.EnemyGrid{Enemies: []*component.Enemy{a, b}})
	ecs.Projectiles = append(ecs.Projectiles, &component.Projectile{ID: ecs.NewEntity(), Position: component.Vector2{X: 100, Y: 55}, Radius: 4})

	s.UpdateProjectiles()
	s.UpdateProjectiles()

	if ecs.Score != config.ScorePerKill {
		t.Errorf("Expected score %d, got %d", config.ScorePerKill, ecs.Score)
	}
	if a.Alive == b.Alive {
		t.Errorf("Expected exactly one enemy killed, alive: %v %v", a.Alive, b.Alive)
	}
}

func TestDeadOrInertEnemiesAreNotHit(t *testing.T) {
	ecs, d, _ := newWorld()
	NewScoreSystem(ecs, d)
	s := NewProjectileSystem(ecs, d)

	dead := readyEnemy(ecs, 92, 42, 20, 20)
	dead.Alive = false
	inert := readyEnemy(ecs, 92, 42, 20, 20)
	inert.Ready = false
	ecs.Grids = append(ecs.Grids, &component.EnemyGrid{Enemies: []*component.Enemy{dead, inert}})
	proj := &component.Projectile{ID: ecs.NewEntity(), Position: component.Vector2{X: 100, Y: 55}, Radius: 4}
	ecs.Projectiles = append(ecs.Projectiles, proj)

	s.UpdateProjectiles()

	if ecs.Score != 0 || proj.Spent {
		t.Errorf("Expected no hit, score=%d spent=%v", ecs.Score, proj.Spent)
	}
}

func TestProjectileRemovedAfterTopEdge(t *testing.T) {
	ecs, d, _ := newWorld()
	s := NewProjectileSystem(ecs, d)
	proj := &component.Projectile{ID: ecs.NewEntity(), Position: component.Vector2{X: 10, Y: 7}, Velocity: component.Vector2{Y: -5}, Radius: 4}
	ecs.Projectiles = append(ecs.Projectiles, proj)

	// y=7 -> 2 -> -3: летит, пока y > 0
	for frame := 0; frame < 2; frame++ {
		ecs.FlushDeferred()
		s.UpdateProjectiles()
		if ecs.PendingDeferred() != 0 {
			t.Fatalf("Frame %d: projectile at y=%v scheduled too early", frame, proj.Position.Y)
		}
	}
	if proj.Position.Y != -3 {
		t.Fatalf("Expected y=-3, got %v", proj.Position.Y)
	}

	ecs.FlushDeferred()
	s.UpdateProjectiles()
	if proj.Position.Y != -3 {
		t.Error("Projectile past the top edge must not move")
	}
	if len(ecs.Projectiles) != 1 {
		t.Fatal("Removal must be deferred to the next frame")
	}
	ecs.FlushDeferred()
	if len(ecs.Projectiles) != 0 {
		t.Errorf("Expected projectile removed, got %d", len(ecs.Projectiles))
	}
}

func TestEnemyProjectileRemovedAfterBottomEdge(t *testing.T) {
	ecs, d, log := newWorld()
	s := NewProjectileSystem(ecs, d)
	readyPlayer(ecs, 0)
	proj := &component.EnemyProjectile{
		ID:       ecs.NewEntity(),
		Position: component.Vector2{X: 900, Y: config.ScreenHeight - 4},
		Velocity: component.Vector2{Y: 5},
		Width:    6,
		Height:   10,
	}
	ecs.EnemyProjectiles = append(ecs.EnemyProjectiles, proj)

	s.UpdateEnemyProjectiles()
	if ecs.PendingDeferred() != 0 {
		t.Fatal("Projectile above the bottom edge should keep flying")
	}
	s.UpdateEnemyProjectiles()
	if ecs.PendingDeferred() != 1 {
		t.Fatalf("Expected removal scheduled at y=%v", proj.Position.Y)
	}
	ecs.FlushDeferred()
	if len(ecs.EnemyProjectiles) != 0 {
		t.Errorf("Expected enemy projectile removed, got %d", len(ecs.EnemyProjectiles))
	}
	if log.count(event.GameOver) != 0 {
		t.Error("Missing the player must not end the game")
	}
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	ecs, d, log := newWorld()
	ss := NewStateSystem(ecs, d)
	s := NewProjectileSystem(ecs, d)
	p := readyPlayer(ecs, 100)
	ecs.EnemyProjectiles = append(ecs.EnemyProjectiles, &component.EnemyProjectile{
		ID:       ecs.NewEntity(),
		Position: component.Vector2{X: p.Position.X + 10, Y: p.Position.Y + 5},
		Velocity: component.Vector2{Y: 5},
		Width:    6,
		Height:   10,
	})

	s.UpdateEnemyProjectiles()

	if log.count(event.GameOver) != 1 {
		t.Fatalf("Expected GameOver event, got %d", log.count(event.GameOver))
	}
	if ss.Current() != component.GameOver {
		t.Errorf("Expected phase GAME_OVER, got %v", ss.Current())
	}
	if ss.Reason() != event.ReasonPlayerShot {
		t.Errorf("Expected reason %q, got %q", event.ReasonPlayerShot, ss.Reason())
	}
}
