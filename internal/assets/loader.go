package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"

	xdraw "golang.org/x/image/draw"
)

// Loader асинхронно загружает картинки спрайтов и хранит их в декодированном виде.
// Пока картинка грузится, SpriteSize отвечает ok == false, и зависящие от неё
// сущности остаются инертными.
type Loader struct {
	dir string

	mu       sync.RWMutex
	images   map[string]image.Image
	versions map[string]int
	wg       sync.WaitGroup
}

// NewLoader создает загрузчик для каталога dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:      dir,
		images:   make(map[string]image.Image),
		versions: make(map[string]int),
	}
}

// LoadAll запускает фоновую загрузку всех спрайтов из SpriteLibrary.
func (l *Loader) LoadAll() {
	for id, def := range defs.SpriteLibrary {
		l.wg.Add(1)
		go func(id string, def defs.SpriteDefinition) {
			defer l.wg.Done()
			l.load(id, def)
		}(id, def)
	}
}

// Wait блокируется, пока не завершатся все запущенные загрузки.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) load(id string, def defs.SpriteDefinition) {
	path := filepath.Join(l.dir, def.File)
	img, err := decodeFile(path)
	if err != nil {
		log.Printf("WARNING: failed to load sprite %s: %v. Using placeholder.", id, err)
		img = Placeholder(id)
	} else {
		log.Printf("Loaded sprite %s from %s", id, path)
	}
	if id == defs.SpriteBackground {
		img = fitToScreen(img)
	}
	l.Store(id, img)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// fitToScreen растягивает фон до размеров экрана один раз при загрузке.
func fitToScreen(src image.Image) image.Image {
	if src.Bounds().Dx() == config.ScreenWidth && src.Bounds().Dy() == config.ScreenHeight {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, config.ScreenWidth, config.ScreenHeight))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Store кладёт готовую картинку. Используется загрузкой и тестами.
func (l *Loader) Store(id string, img image.Image) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.images[id] = img
	l.versions[id]++
}

// Image возвращает декодированную картинку и номер её версии.
func (l *Loader) Image(id string) (image.Image, int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.images[id]
	return img, l.versions[id], ok
}

// SpriteSize возвращает размер картинки в пикселях.
func (l *Loader) SpriteSize(id string) (float64, float64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.images[id]
	if !ok {
		return 0, 0, false
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy()), true
}
