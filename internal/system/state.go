package system

import (
	"log"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

// StateSystem переводит игру в GAME_OVER по событию event.GameOver.
type StateSystem struct {
	ecs    *entity.ECS
	reason event.GameOverReason
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.GameOver, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.GameOver || s.ecs.Phase == component.GameOver {
		return
	}
	s.reason, _ = e.Data.(event.GameOverReason)
	s.ecs.Phase = component.GameOver
	log.Printf("Game over (%s) at frame %d, score %d", s.reason, s.ecs.Frame, s.ecs.Score)
}

// Current возвращает текущую фазу
func (s *StateSystem) Current() component.GamePhase {
	return s.ecs.Phase
}

// Reason возвращает причину окончания игры, пустую пока игра идёт.
func (s *StateSystem) Reason() event.GameOverReason {
	return s.reason
}
