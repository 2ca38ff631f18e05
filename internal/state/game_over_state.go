// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState — конечное состояние. Клик или касание начинает игру заново.
type GameOverState struct {
	sm    *StateMachine
	res   *Resources
	score int
}

func NewGameOverState(sm *StateMachine, res *Resources, score int) *GameOverState {
	return &GameOverState{sm: sm, res: res, score: score}
}

func (s *GameOverState) Enter() {
	// Ничего не делаем при входе
}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		s.sm.SetState(NewGameState(s.sm, s.res))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor) // Чёрный экран
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	ui.DrawCentered(screen, "GAME OVER", s.res.TitleFace, cx, cy-20, config.TextLightColor)
	ui.DrawCentered(screen, "Click to restart", s.res.SubtitleFace, cx, cy+20, config.TextLightColor)
	ui.DrawCentered(screen, fmt.Sprintf("Score: %d   Best: %d", s.score, s.res.Records.Best()), s.res.HUDFace, cx, cy+80, config.BestScoreColor)
}

func (s *GameOverState) Exit() {
	// Ничего не делаем при выходе
}
