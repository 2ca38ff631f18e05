// internal/app/game.go
package app

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/system"
)

// Game holds one run of the simulation: the entity store, the systems and the input state.
// It knows nothing about rendering; the state package drives it once per frame.
type Game struct {
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Input            *input.State
	PlayerSystem     *system.PlayerSystem
	ProjectileSystem *system.ProjectileSystem
	GridSystem       *system.GridSystem
	ScoreSystem      *system.ScoreSystem
	StateSystem      *system.StateSystem
}

// NewGame initializes a new game instance.
func NewGame(sprites interfaces.SpriteSource, rng interfaces.Random) *Game {
	if sprites == nil || rng == nil {
		panic("sprites and rng cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:              ecs,
		EventDispatcher:  eventDispatcher,
		Input:            input.NewState(),
		PlayerSystem:     system.NewPlayerSystem(ecs, sprites),
		ProjectileSystem: system.NewProjectileSystem(ecs, eventDispatcher),
		GridSystem:       system.NewGridSystem(ecs, sprites, rng, eventDispatcher),
		ScoreSystem:      system.NewScoreSystem(ecs, eventDispatcher),
		StateSystem:      system.NewStateSystem(ecs, eventDispatcher),
	}
	g.PlayerSystem.Spawn()
	return g
}

// KeyDown обрабатывает нажатие. Выстрел срабатывает только на новое нажатие пробела.
func (g *Game) KeyDown(k input.Key) {
	if g.Input.Press(k) && k == input.KeyFire {
		g.PlayerSystem.Fire()
	}
}

// KeyUp обрабатывает отпускание клавиши
func (g *Game) KeyUp(k input.Key) {
	g.Input.Release(k)
}

// Tick продвигает симуляцию на один кадр. После GAME_OVER ничего не делает.
func (g *Game) Tick(deltaTime float64) {
	if g.IsOver() {
		return
	}
	ecs := g.ECS

	// удаления, запрошенные на прошлом кадре
	ecs.FlushDeferred()

	g.PlayerSystem.Resolve()
	g.PlayerSystem.Move()
	g.ProjectileSystem.UpdateEnemyProjectiles()
	g.ProjectileSystem.UpdateProjectiles()
	g.PlayerSystem.Steer(g.Input)
	g.GridSystem.Update()
	g.GridSystem.CheckLanding()
	g.GridSystem.UpdateSpawner(deltaTime)

	ecs.Frame++
}

// IsOver сообщает, закончилась ли игра
func (g *Game) IsOver() bool {
	return g.ECS.Phase == component.GameOver
}

// Score возвращает текущий счёт
func (g *Game) Score() int {
	return g.ECS.Score
}
