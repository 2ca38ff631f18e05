// internal/interfaces/game_context.go
package interfaces

// SpriteSource отдаёт размеры спрайтов. ok == false, пока спрайт ещё грузится.
type SpriteSource interface {
	SpriteSize(id string) (w, h float64, ok bool)
}
