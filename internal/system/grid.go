// internal/system/grid.go
package system

import (
	"log"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/physics"
)

// GridSystem создаёт сетки врагов по таймеру, двигает их и заставляет стрелять.
type GridSystem struct {
	ecs             *entity.ECS
	sprites         interfaces.SpriteSource
	rng             interfaces.Random
	eventDispatcher *event.Dispatcher
	sinceSpawn      float64
	spawnedOnce     bool
}

func NewGridSystem(ecs *entity.ECS, sprites interfaces.SpriteSource, rng interfaces.Random, eventDispatcher *event.Dispatcher) *GridSystem {
	return &GridSystem{
		ecs:             ecs,
		sprites:         sprites,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// UpdateSpawner отсчитывает время и добавляет новую сетку, когда интервал истёк.
// Первая сетка появляется сразу.
func (s *GridSystem) UpdateSpawner(deltaTime float64) {
	s.sinceSpawn += deltaTime
	if s.spawnedOnce && s.sinceSpawn <= config.GridSpawnInterval {
		return
	}
	s.Spawn()
	s.sinceSpawn = 0
	s.spawnedOnce = true
}

// Spawn создаёт сетку случайного размера в левом верхнем углу.
func (s *GridSystem) Spawn() *component.EnemyGrid {
	columns := s.rng.IntRange(config.GridMinColumns, config.GridMaxColumns)
	rows := s.rng.IntRange(config.GridMinRows, config.GridMaxRows)

	grid := &component.EnemyGrid{
		ID:      s.ecs.NewEntity(),
		Speed:   component.Vector2{X: config.GridSpeed, Y: 0},
		Width:   float64(columns) * config.EnemySpacing,
		Columns: columns,
		Rows:    rows,
	}
	for x := 0; x < columns; x++ {
		for y := 0; y < rows; y++ {
			grid.Enemies = append(grid.Enemies, &component.Enemy{
				ID:     s.ecs.NewEntity(),
				Offset: component.Vector2{X: float64(x) * config.EnemySpacing, Y: float64(y) * config.EnemySpacing},
				Alive:  true,
			})
		}
	}
	s.activate(grid)
	s.ecs.Grids = append(s.ecs.Grids, grid)

	log.Printf("Spawned enemy grid %d: %dx%d", grid.ID, columns, rows)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GridSpawned, Data: grid})
	return grid
}

// activate включает врагов, чей спрайт уже загружен, на их месте в сетке.
func (s *GridSystem) activate(grid *component.EnemyGrid) {
	w, h, ok := s.sprites.SpriteSize(defs.SpriteEnemy)
	if !ok {
		return
	}
	scale := defs.SpriteLibrary[defs.SpriteEnemy].Scale
	for _, e := range grid.Enemies {
		if e.Ready {
			continue
		}
		e.Width = w * scale
		e.Height = h * scale
		e.Position = grid.Position.Add(e.Offset)
		e.Ready = true
	}
}

// Move сдвигает сетку по горизонтали. На касании любого края скорость меняет
// знак, и только на этом кадре сетка спускается на GridStep.
func (s *GridSystem) Move(grid *component.EnemyGrid) {
	prev := grid.Position

	grid.Speed.Y = 0
	grid.Position.X += grid.Speed.X
	if grid.Position.X+grid.Width >= config.ScreenWidth || grid.Position.X <= 0 {
		grid.Speed.X = -grid.Speed.X
		grid.Speed.Y = config.GridStep
	}
	grid.Position.Y += grid.Speed.Y

	delta := component.Vector2{X: grid.Position.X - prev.X, Y: grid.Position.Y - prev.Y}
	for _, e := range grid.Enemies {
		if e.Active() {
			e.Position = e.Position.Add(delta)
		}
	}
}

// Update двигает все сетки, проверяет столкновения врагов с игроком
// и раз в EnemyFireEvery кадров даёт случайному живому врагу выстрелить.
func (s *GridSystem) Update() {
	player := s.ecs.Player
	fireFrame := s.ecs.Frame%config.EnemyFireEvery == 0

	for _, grid := range s.ecs.Grids {
		s.activate(grid)
		s.Move(grid)

		if player != nil && player.Ready {
			for _, e := range grid.Enemies {
				if e.Active() && physics.Overlap(e.Bounds(), player.Bounds()) {
					s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.ReasonEnemyCollision})
				}
			}
		}

		if fireFrame {
			s.fire(grid)
		}
	}
}

func (s *GridSystem) fire(grid *component.EnemyGrid) {
	live := grid.LiveEnemies()
	if len(live) == 0 {
		return
	}
	shooter := live[s.rng.Intn(len(live))]
	proj := &component.EnemyProjectile{
		ID:       s.ecs.NewEntity(),
		Position: component.Vector2{X: shooter.Position.X + shooter.Width/2, Y: shooter.Position.Y + shooter.Height},
		Velocity: component.Vector2{X: 0, Y: config.EnemyProjectileSpeed},
		Width:    config.EnemyProjectileWidth,
		Height:   config.EnemyProjectileHeight,
	}
	s.ecs.EnemyProjectiles = append(s.ecs.EnemyProjectiles, proj)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyFired, Data: proj})
}

// CheckLanding заканчивает игру, если живой враг коснулся нижнего края.
func (s *GridSystem) CheckLanding() {
	for _, grid := range s.ecs.Grids {
		for _, e := range grid.Enemies {
			if e.Active() && e.Position.Y+e.Height >= config.ScreenHeight {
				s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.ReasonEnemyLanded})
			}
		}
	}
}
