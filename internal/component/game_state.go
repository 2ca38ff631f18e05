package component

// GamePhase — фаза игры
type GamePhase int

const (
	Running GamePhase = iota
	GameOver
)

func (p GamePhase) String() string {
	switch p {
	case Running:
		return "RUNNING"
	case GameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}
