package component

import "image/color"

// Sprite is the renderer attached to an entity. Width and Height are the
// sprite bounds in local scene units, before the transform's scale.
type Sprite struct {
	Image  string
	Width  float64
	Height float64
	FlipX  bool
	FlipY  bool
	Color  color.NRGBA
}

// Tinted reports whether the sprite colour differs from opaque white.
func (s *Sprite) Tinted() bool {
	return s.Color != color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

var SpriteComponent = NewComponent[Sprite]()
