package ui

import (
	"fmt"

	"go-space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreIndicator показывает счёт слева вверху и рекорд справа вверху.
type ScoreIndicator struct {
	X, Y int
	face font.Face
}

func NewScoreIndicator(x, y int, face font.Face) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, face: face}
}

// Draw отрисовывает индикатор
func (i *ScoreIndicator) Draw(screen *ebiten.Image, score, best int) {
	text.Draw(screen, fmt.Sprintf("Score: %d", score), i.face, i.X, i.Y, config.TextLightColor)
	if best <= 0 {
		return
	}
	bestText := fmt.Sprintf("Best: %d", best)
	bounds := text.BoundString(i.face, bestText)
	text.Draw(screen, bestText, i.face, config.ScreenWidth-i.X-bounds.Dx(), i.Y, config.BestScoreColor)
}
