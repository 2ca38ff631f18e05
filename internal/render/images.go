package render

import (
	"go-space-shooter/internal/assets"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageCache превращает декодированные картинки загрузчика в ebiten.Image.
// Вызывается только из игрового цикла.
type ImageCache struct {
	loader   *assets.Loader
	images   map[string]*ebiten.Image
	versions map[string]int
}

func NewImageCache(loader *assets.Loader) *ImageCache {
	return &ImageCache{
		loader:   loader,
		images:   make(map[string]*ebiten.Image),
		versions: make(map[string]int),
	}
}

// Get возвращает картинку, если она уже загружена
func (c *ImageCache) Get(id string) (*ebiten.Image, bool) {
	src, version, ok := c.loader.Image(id)
	if !ok {
		return nil, false
	}
	if img, ok := c.images[id]; ok && c.versions[id] == version {
		return img, true
	}
	if old, ok := c.images[id]; ok {
		old.Deallocate()
	}
	img := ebiten.NewImageFromImage(src)
	c.images[id] = img
	c.versions[id] = version
	return img, true
}
