package system

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

// ScoreSystem начисляет очки за сбитых врагов.
type ScoreSystem struct {
	ecs *entity.ECS
}

func NewScoreSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ScoreSystem {
	s := &ScoreSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ScoreSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	s.ecs.Score += config.ScorePerKill
}
