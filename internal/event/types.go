package event

import "go-space-shooter/internal/component"

const (
	EnemyKilled EventType = "EnemyKilled" // Data: EnemyKilledData
	EnemyFired  EventType = "EnemyFired"  // Data: *component.EnemyProjectile
	GridSpawned EventType = "GridSpawned" // Data: *component.EnemyGrid
	GameOver    EventType = "GameOver"    // Data: GameOverReason
)

// EnemyKilledData — кто и в какой сетке был сбит
type EnemyKilledData struct {
	Grid       *component.EnemyGrid
	Enemy      *component.Enemy
	Projectile *component.Projectile
}

// GameOverReason — причина окончания игры
type GameOverReason string

const (
	ReasonPlayerShot     GameOverReason = "player shot"
	ReasonEnemyCollision GameOverReason = "enemy collided with player"
	ReasonEnemyLanded    GameOverReason = "enemy reached the bottom"
)
