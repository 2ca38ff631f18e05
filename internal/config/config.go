// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	MaxDeltaTime = 0.06

	PlayerScale        = 0.30
	PlayerSpeed        = 5.0  // пикселей за кадр
	PlayerBottomMargin = 20.0 // отступ корабля от нижнего края
	PlayerOpacity      = 1.0

	ProjectileSpeed  = 5.0
	ProjectileRadius = 4.0

	EnemyProjectileSpeed  = 5.0
	EnemyProjectileWidth  = 6.0
	EnemyProjectileHeight = 10.0

	EnemyScale     = 0.6
	EnemySpacing   = 30.0 // шаг сетки врагов по обеим осям
	GridSpeed      = 3.0  // горизонтальная скорость сетки
	GridStep       = 30.0 // спуск сетки при отскоке от края
	GridMinColumns = 5
	GridMaxColumns = 10
	GridMinRows    = 2
	GridMaxRows    = 5

	EnemyFireEvery    = 100 // кадров между выстрелами сетки
	GridSpawnInterval = 7.0 // секунд между появлением новых сеток

	ScorePerKill = 100

	HUDFontSize      = 24
	TitleFontSize    = 48
	SubtitleFontSize = 32
	HUDOffsetX       = 16
	HUDOffsetY       = 32
)

var (
	BackgroundColor      = color.RGBA{0, 0, 0, 255}
	ProjectileColor      = color.RGBA{255, 0, 0, 255}
	EnemyProjectileColor = color.RGBA{255, 0, 240, 255} // #ff00f0
	TextLightColor       = color.RGBA{255, 255, 255, 255}
	BestScoreColor       = color.RGBA{255, 215, 0, 255}

	// Цвета запасных спрайтов, если картинки не нашлись
	PlaceholderSkyColor    = color.RGBA{8, 8, 24, 255}
	PlaceholderStarColor   = color.RGBA{220, 220, 255, 255}
	PlaceholderPlayerColor = color.RGBA{80, 200, 255, 255}
	PlaceholderEnemyColor  = color.RGBA{120, 255, 90, 255}
)
