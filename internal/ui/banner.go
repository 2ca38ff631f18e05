package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered рисует строку так, чтобы её середина пришлась на (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	x := cx - b.Min.X - b.Dx()/2
	y := cy - (b.Min.Y+b.Max.Y)/2
	text.Draw(screen, s, face, x, y, clr)
}
