package state

import (
	"fmt"

	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/storage"
	"go-space-shooter/internal/ui"

	"golang.org/x/image/font"
)

// Resources — то, что переживает перезапуск игры: картинки, шрифты и рекорд.
type Resources struct {
	Loader       *assets.Loader
	Images       *render.ImageCache
	Records      *storage.Records
	HUDFace      font.Face
	TitleFace    font.Face
	SubtitleFace font.Face
	Seed         int64
}

func NewResources(loader *assets.Loader, records *storage.Records, seed int64) (*Resources, error) {
	res := &Resources{
		Loader:  loader,
		Images:  render.NewImageCache(loader),
		Records: records,
		Seed:    seed,
	}
	faces := []struct {
		dst  *font.Face
		size float64
	}{
		{&res.HUDFace, config.HUDFontSize},
		{&res.TitleFace, config.TitleFontSize},
		{&res.SubtitleFace, config.SubtitleFontSize},
	}
	for _, f := range faces {
		face, err := ui.NewFace(f.size)
		if err != nil {
			return nil, fmt.Errorf("failed to load fonts: %w", err)
		}
		*f.dst = face
	}
	return res, nil
}
