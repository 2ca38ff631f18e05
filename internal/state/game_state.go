// internal/state/game_state.go
package state

import (
	"log"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/ui"
	"go-space-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings — клавиши ebiten, на которые реагирует игра
var keyBindings = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeySpace:      input.KeyFire,
}

// GameState — состояние игры (RUNNING)
type GameState struct {
	sm       *StateMachine
	res      *Resources
	game     *app.Game
	renderer *render.RenderSystem
	hud      *ui.ScoreIndicator
	keys     []ebiten.Key
}

func NewGameState(sm *StateMachine, res *Resources) *GameState {
	return &GameState{
		sm:       sm,
		res:      res,
		game:     app.NewGame(res.Loader, utils.NewPRNGService(res.Seed)),
		renderer: render.NewRenderSystem(res.Images),
		hud:      ui.NewScoreIndicator(config.HUDOffsetX, config.HUDOffsetY, res.HUDFace),
	}
}

func (g *GameState) Enter() {
	log.Println("New game started")
}

func (g *GameState) Update(deltaTime float64) {
	g.pollKeys()
	g.game.Tick(deltaTime)

	if g.game.IsOver() {
		score := g.game.Score()
		improved, err := g.res.Records.Submit(score)
		if err != nil {
			log.Printf("WARNING: %v", err)
		}
		if improved {
			log.Printf("New best score: %d", score)
		}
		g.sm.SetState(NewGameOverState(g.sm, g.res, score))
	}
}

// pollKeys переносит нажатия и отпускания клавиш за кадр в игру
func (g *GameState) pollKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyBindings[k]; ok {
			g.game.KeyDown(key)
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyBindings[k]; ok {
			g.game.KeyUp(key)
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS)
	g.hud.Draw(screen, g.game.Score(), g.res.Records.Best())
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
