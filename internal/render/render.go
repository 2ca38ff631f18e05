// internal/render/render.go
package render

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	images *ImageCache
}

func NewRenderSystem(images *ImageCache) *RenderSystem {
	return &RenderSystem{images: images}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(config.BackgroundColor)
	if bg, ok := s.images.Get(defs.SpriteBackground); ok {
		drawSprite(screen, bg, 0, 0, config.ScreenWidth, config.ScreenHeight, 1)
	}

	if p := ecs.Player; p != nil && p.Ready {
		if img, ok := s.images.Get(defs.SpritePlayer); ok {
			drawSprite(screen, img, p.Position.X, p.Position.Y, p.Width, p.Height, p.Opacity)
		}
	}

	for _, proj := range ecs.EnemyProjectiles {
		vector.DrawFilledRect(screen, float32(proj.Position.X), float32(proj.Position.Y),
			float32(proj.Width), float32(proj.Height), config.EnemyProjectileColor, false)
	}

	for _, proj := range ecs.Projectiles {
		if proj.Spent {
			continue
		}
		vector.DrawFilledCircle(screen, float32(proj.Position.X), float32(proj.Position.Y),
			float32(proj.Radius), config.ProjectileColor, true)
	}

	// Враги без загруженного спрайта не рисуются
	enemyImg, ok := s.images.Get(defs.SpriteEnemy)
	if !ok {
		return
	}
	for _, grid := range ecs.Grids {
		for _, e := range grid.Enemies {
			if e.Active() {
				drawSprite(screen, enemyImg, e.Position.X, e.Position.Y, e.Width, e.Height, 1)
			}
		}
	}
}

// drawSprite растягивает картинку до w×h и рисует в (x, y) с прозрачностью alpha.
func drawSprite(screen, img *ebiten.Image, x, y, w, h, alpha float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
