package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

// fakeSprites — размеры спрайтов без загрузки картинок
type fakeSprites map[string][2]float64

func (f fakeSprites) SpriteSize(id string) (float64, float64, bool) {
	size, ok := f[id]
	return size[0], size[1], ok
}

func loadedSprites() fakeSprites {
	return fakeSprites{
		defs.SpritePlayer: {200, 160}, // 60x48 после масштаба
		defs.SpriteEnemy:  {40, 40},   // 24x24 после масштаба
	}
}

// fixedRand всегда возвращает заранее заданные значения
type fixedRand struct {
	n        int
	rangeVal int
}

func (r *fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r *fixedRand) IntRange(min, max int) int {
	if r.rangeVal < min {
		return min
	}
	if r.rangeVal > max {
		return max
	}
	return r.rangeVal
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newWorld() (*entity.ECS, *event.Dispatcher, *eventLog) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	log := &eventLog{}
	for _, t := range []event.EventType{event.EnemyKilled, event.EnemyFired, event.GridSpawned, event.GameOver} {
		d.Subscribe(t, log)
	}
	return ecs, d, log
}

func readyPlayer(ecs *entity.ECS, x float64) *component.Player {
	p := &component.Player{
		ID:       ecs.NewEntity(),
		Position: component.Vector2{X: x, Y: config.ScreenHeight - 48 - config.PlayerBottomMargin},
		Width:    60,
		Height:   48,
		Opacity:  1,
		Ready:    true,
	}
	ecs.Player = p
	return p
}

func readyEnemy(ecs *entity.ECS, x, y, w, h float64) *component.Enemy {
	return &component.Enemy{
		ID:       ecs.NewEntity(),
		Position: component.Vector2{X: x, Y: y},
		Width:    w,
		Height:   h,
		Alive:    true,
		Ready:    true,
	}
}
