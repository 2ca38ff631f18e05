package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"

	"golang.org/x/image/vector"
)

// Размеры запасных картинок до масштабирования
const (
	PlaceholderPlayerWidth  = 200
	PlaceholderPlayerHeight = 160
	PlaceholderEnemyWidth   = 45
	PlaceholderEnemyHeight  = 40
	placeholderStars        = 180
)

// Placeholder рисует запасной спрайт, когда файл картинки недоступен.
func Placeholder(id string) image.Image {
	switch id {
	case defs.SpriteBackground:
		return starfield()
	case defs.SpritePlayer:
		return rasterize(PlaceholderPlayerWidth, PlaceholderPlayerHeight, config.PlaceholderPlayerColor, func(z *vector.Rasterizer) {
			w, h := float32(PlaceholderPlayerWidth), float32(PlaceholderPlayerHeight)
			// корпус
			z.MoveTo(w/2, 0)
			z.LineTo(w*0.65, h*0.55)
			z.LineTo(w*0.35, h*0.55)
			z.ClosePath()
			// крылья
			z.MoveTo(w/2, h*0.3)
			z.LineTo(w, h)
			z.LineTo(w/2, h*0.8)
			z.LineTo(0, h)
			z.ClosePath()
		})
	case defs.SpriteEnemy:
		return rasterize(PlaceholderEnemyWidth, PlaceholderEnemyHeight, config.PlaceholderEnemyColor, func(z *vector.Rasterizer) {
			w, h := float32(PlaceholderEnemyWidth), float32(PlaceholderEnemyHeight)
			z.MoveTo(0, 0)
			z.LineTo(w, 0)
			z.LineTo(w*0.8, h*0.6)
			z.LineTo(w, h)
			z.LineTo(w/2, h*0.75)
			z.LineTo(0, h)
			z.LineTo(w*0.2, h*0.6)
			z.ClosePath()
		})
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

func rasterize(w, h int, c color.Color, path func(z *vector.Rasterizer)) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)
	path(z)
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	return dst
}

func starfield() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, config.ScreenWidth, config.ScreenHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(config.PlaceholderSkyColor), image.Point{}, draw.Src)
	// фиксированный сид — фон одинаковый при каждом запуске
	r := rand.New(rand.NewSource(1))
	for i := 0; i < placeholderStars; i++ {
		dst.Set(r.Intn(config.ScreenWidth), r.Intn(config.ScreenHeight), config.PlaceholderStarColor)
	}
	return dst
}
