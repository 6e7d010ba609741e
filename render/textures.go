package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-pathsim/components"
)

// TextureLoader turns an image path into an opaque handle. Component data
// only ever carries the handle.
type TextureLoader interface {
	Load(path string) (components.TextureHandle, error)
}

// Textures handles loading images and resolving texture handles
type Textures struct {
	images []*ebiten.Image
	byPath map[string]components.TextureHandle
}

// NewTextures creates an empty texture cache
func NewTextures() *Textures {
	return &Textures{
		byPath: make(map[string]components.TextureHandle),
	}
}

// Load decodes the image at path once and returns its handle
func (t *Textures) Load(path string) (components.TextureHandle, error) {
	if h, ok := t.byPath[path]; ok {
		return h, nil
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return components.NoTexture, fmt.Errorf("failed to load texture %s: %w", path, err)
	}

	return t.Add(path, img), nil
}

// Add registers an already decoded image under key
func (t *Textures) Add(key string, img *ebiten.Image) components.TextureHandle {
	t.images = append(t.images, img)
	h := components.TextureHandle(len(t.images))
	t.byPath[key] = h
	return h
}

// Image resolves a handle; it returns nil for NoTexture or unknown handles
func (t *Textures) Image(h components.TextureHandle) *ebiten.Image {
	if h == components.NoTexture || int(h) > len(t.images) {
		return nil
	}
	return t.images[h-1]
}

// Len returns the number of loaded textures
func (t *Textures) Len() int {
	return len(t.images)
}

// NopLoader hands out NoTexture for every path. Frontends that cannot draw
// images use it so templates with textures still spawn.
type NopLoader struct{}

// Load implements TextureLoader
func (NopLoader) Load(string) (components.TextureHandle, error) {
	return components.NoTexture, nil
}
