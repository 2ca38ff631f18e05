// internal/defs/sprites.go
package defs

import "go-space-shooter/internal/config"

const (
	SpriteBackground = "background"
	SpritePlayer     = "player"
	SpriteEnemy      = "enemy"
)

// SpriteDefinition describes where a sprite comes from and how it is scaled on screen.
type SpriteDefinition struct {
	ID    string
	File  string  // путь относительно каталога ассетов
	Scale float64 // множитель от размера картинки до игрового размера
}

// SpriteLibrary holds every sprite the game draws, keyed by ID.
var SpriteLibrary = map[string]SpriteDefinition{
	SpriteBackground: {ID: SpriteBackground, File: "space.jpg", Scale: 1},
	SpritePlayer:     {ID: SpritePlayer, File: "PlayerShip.png", Scale: config.PlayerScale},
	SpriteEnemy:      {ID: SpriteEnemy, File: "enemy.png", Scale: config.EnemyScale},
}
