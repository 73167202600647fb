package anim

import "fmt"

// Catalog is the read-only collection of parsed animation files an
// AnmRunner resolves sprite/script ids against. Files are searched in
// stable (insertion) order; the first match wins.
type Catalog struct {
	files []*Anm0
}

// NewCatalog builds a catalog over the given animation files, preserving
// order.
func NewCatalog(files []*Anm0) *Catalog {
	return &Catalog{files: files}
}

// LoadSprite resolves sprite id (already offset-adjusted and reduced mod
// 256 by the caller) against the catalog: a linear scan over files in
// order, first match wins. On a hit it records the matching texcoords on
// sprite, binds sprite to that file (for inverse texture size), and sets
// sprite.Layer to the file's ordinal (0-based). On a miss, Layer is set to
// the file count and the sprite's file binding is left unchanged.
func (c *Catalog) LoadSprite(sprite *Sprite, id uint32) {
	for i, anm := range c.files {
		if rect, ok := anm.Sprites[id]; ok {
			sprite.Texcoords = [4]float32{rect.X, rect.Y, rect.W, rect.H}
			sprite.BindAnm(anm)
			sprite.Layer = uint16(i)
			return
		}
	}
	sprite.Layer = uint16(len(c.files))
}

// GetScript resolves a script id against the catalog: first file whose
// script table contains it wins. ok is false if no file has it.
func (c *Catalog) GetScript(id uint8) (Script, bool) {
	for _, anm := range c.files {
		if s, ok := anm.Scripts[id]; ok {
			return s, true
		}
	}
	return Script{}, false
}

// MustGetScript is GetScript but panics on a miss: a missing script id
// indicates a broken build of input data, not a recoverable runtime
// condition.
func (c *Catalog) MustGetScript(id uint8) Script {
	s, ok := c.GetScript(id)
	if !ok {
		panic(fmt.Sprintf("anim: catalog has no script with id %d", id))
	}
	return s
}
