// internal/system/player_system.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/utils"
)

// PlayerSystem отвечает за корабль игрока: появление, движение и выстрелы.
type PlayerSystem struct {
	ecs     *entity.ECS
	sprites interfaces.SpriteSource
}

func NewPlayerSystem(ecs *entity.ECS, sprites interfaces.SpriteSource) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, sprites: sprites}
}

// Spawn создаёт инертного игрока. Размеры и позиция появятся после загрузки спрайта.
func (s *PlayerSystem) Spawn() *component.Player {
	p := &component.Player{
		ID:      s.ecs.NewEntity(),
		Opacity: config.PlayerOpacity,
	}
	s.ecs.Player = p
	return p
}

// Resolve размещает игрока внизу по центру, как только спрайт загружен.
func (s *PlayerSystem) Resolve() {
	p := s.ecs.Player
	if p == nil || p.Ready {
		return
	}
	w, h, ok := s.sprites.SpriteSize(defs.SpritePlayer)
	if !ok {
		return
	}
	scale := defs.SpriteLibrary[defs.SpritePlayer].Scale
	p.Width = w * scale
	p.Height = h * scale
	p.Position = component.Vector2{
		X: config.ScreenWidth/2 - p.Width/2,
		Y: config.ScreenHeight - p.Height - config.PlayerBottomMargin,
	}
	p.Ready = true
}

// Move сдвигает игрока на текущую скорость, не выпуская за края экрана.
func (s *PlayerSystem) Move() {
	p := s.ecs.Player
	if p == nil || !p.Ready {
		return
	}
	p.Position.X = utils.Clamp(p.Position.X+p.Velocity.X, 0, config.ScreenWidth-p.Width)
}

// Steer пересчитывает скорость по зажатым клавишам. Левая стрелка важнее правой.
func (s *PlayerSystem) Steer(keys *input.State) {
	p := s.ecs.Player
	if p == nil || !p.Ready {
		return
	}
	switch {
	case keys.IsPressed(input.KeyLeft) && p.Position.X > 0:
		p.Velocity.X = -config.PlayerSpeed
	case keys.IsPressed(input.KeyRight) && p.Position.X+p.Width < config.ScreenWidth:
		p.Velocity.X = config.PlayerSpeed
	default:
		p.Velocity.X = 0
	}
}

// Fire выпускает снаряд из носа корабля. Возвращает nil, если стрелять нельзя.
func (s *PlayerSystem) Fire() *component.Projectile {
	p := s.ecs.Player
	if p == nil || !p.Ready || s.ecs.Phase != component.Running {
		return nil
	}
	proj := &component.Projectile{
		ID:       s.ecs.NewEntity(),
		Position: component.Vector2{X: p.Position.X + p.Width/2, Y: p.Position.Y},
		Velocity: component.Vector2{X: 0, Y: -config.ProjectileSpeed},
		Radius:   config.ProjectileRadius,
	}
	s.ecs.Projectiles = append(s.ecs.Projectiles, proj)
	return proj
}
