package anim

import (
	"math"

	"github.com/retrocoderamen/danmaku-core/internal/mathx"
)

// BlendMode selects how a sprite's pixels combine with the background.
type BlendMode uint32

const (
	// BlendAdd is additive blending.
	BlendAdd BlendMode = iota
	// BlendAlpha is standard alpha blending.
	BlendAlpha
)

// Vertex is one corner of a sprite's on-screen quad, ready for upload to a
// graphics back-end. The back-end (out of scope here) consumes these.
type Vertex struct {
	Pos   [3]int16
	Layer uint16
	UV    [2]float32
	Color [4]uint8
}

// Sprite is the mutable visual state of one on-screen element. It is owned
// exclusively by the AnmRunner that binds it; the renderer only ever reads
// it and clears Changed once it has consumed a frame's mutations.
type Sprite struct {
	Blendfunc      BlendMode
	Frame          uint32
	WidthOverride  float32
	HeightOverride float32
	Angle          float32

	Removed                 bool
	Changed                 bool
	Visible                 bool
	ForceRotation           bool
	AutomaticOrientation    bool
	AllowDestOffset         bool
	Mirrored                bool
	CornerRelativePlacement bool

	scaleInterpolator    *Interpolator2
	fadeInterpolator     *Interpolator1
	offsetInterpolator   *Interpolator3
	rotationInterpolator *Interpolator3
	colorInterpolator    *Interpolator3

	anm *Anm0

	DestOffset        [3]float32
	Texcoords         [4]float32 // x, y, w, h
	Texoffsets        [2]float32
	Rescale           [2]float32
	ScaleSpeed        [2]float32
	Rotations3D       [3]float32
	RotationsSpeed3D  [3]float32
	Color             [4]uint8 // r, g, b, a
	Layer             uint16
}

// NewSprite returns a sprite in its default, visible, unit-scaled, opaque
// white state.
func NewSprite() *Sprite {
	return &Sprite{
		Changed: true,
		Visible: true,
		Rescale: [2]float32{1, 1},
		Color:   [4]uint8{255, 255, 255, 255},
	}
}

// SetColor sets the sprite's RGB, preserving alpha. Callers that must honor
// "SetColor is a no-op while a fade is active" (the AnmRunner's SetColor
// instruction) check HasFadeInterpolator themselves before calling this.
func (s *Sprite) SetColor(r, g, b uint8) {
	s.Color[0] = r
	s.Color[1] = g
	s.Color[2] = b
}

// HasFadeInterpolator reports whether a fade interpolator is currently
// installed, i.e. whether alpha is owned by it.
func (s *Sprite) HasFadeInterpolator() bool {
	return s.fadeInterpolator != nil
}

// SetFadeInterpolator installs a fade (alpha) interpolator.
func (s *Sprite) SetFadeInterpolator(i Interpolator1) {
	s.fadeInterpolator = &i
}

// SetScaleInterpolator installs a scale interpolator.
func (s *Sprite) SetScaleInterpolator(i Interpolator2) {
	s.scaleInterpolator = &i
}

// SetOffsetInterpolator installs an offset (position) interpolator.
func (s *Sprite) SetOffsetInterpolator(i Interpolator3) {
	s.offsetInterpolator = &i
}

// SetRotationInterpolator installs a rotation interpolator.
func (s *Sprite) SetRotationInterpolator(i Interpolator3) {
	s.rotationInterpolator = &i
}

// SetColorInterpolator installs an RGB color interpolator.
func (s *Sprite) SetColorInterpolator(i Interpolator3) {
	s.colorInterpolator = &i
}

// BindAnm records which animation file a sprite's texcoords were resolved
// from, needed later to recover its inverse texture size.
func (s *Sprite) BindAnm(a *Anm0) {
	s.anm = a
}

// Update advances the sprite's interpolated/integrated state by one frame.
// It is called once per frame, after the owning AnmRunner has dispatched
// this frame's instructions.
func (s *Sprite) Update() {
	s.Frame++
	s.CornerRelativePlacement = true

	sax, say, saz := s.RotationsSpeed3D[0], s.RotationsSpeed3D[1], s.RotationsSpeed3D[2]
	if sax != 0 || say != 0 || saz != 0 {
		s.Rotations3D[0] += sax
		s.Rotations3D[1] += say
		s.Rotations3D[2] += saz
		s.Changed = true
	} else if s.rotationInterpolator != nil {
		s.Rotations3D = s.rotationInterpolator.Values(uint16(s.Frame))
		s.Changed = true
	}

	rsx, rsy := s.ScaleSpeed[0], s.ScaleSpeed[1]
	if rsx != 0 || rsy != 0 {
		s.Rescale[0] += rsx
		s.Rescale[1] += rsy
		s.Changed = true
	}

	if s.fadeInterpolator != nil {
		s.Color[3] = uint8(s.fadeInterpolator.Value(uint16(s.Frame)))
		s.Changed = true
	}

	if s.scaleInterpolator != nil {
		s.Rescale = s.scaleInterpolator.Values(uint16(s.Frame))
		s.Changed = true
	}

	if s.offsetInterpolator != nil {
		s.DestOffset = s.offsetInterpolator.Values(uint16(s.Frame))
		s.Changed = true
	}

	if s.colorInterpolator != nil {
		c := s.colorInterpolator.Values(uint16(s.Frame))
		s.Color[0] = uint8(c[0])
		s.Color[1] = uint8(c[1])
		s.Color[2] = uint8(c[2])
		s.Changed = true
	}
}

// FillVertices emits the four corner vertices of this sprite placed at
// world position (x, y, z). UVs are derived from the bound animation file's
// inverse texture size; BindAnm must have been called first (via the
// catalog's LoadSprite), otherwise the inverse size is taken as zero and the
// UVs reduce to the texture offsets.
func (s *Sprite) FillVertices(vertices *[4]Vertex, x, y, z float32) {
	mat := mathx.NewUnitQuad()

	tx, ty, tw, th := s.Texcoords[0], s.Texcoords[1], s.Texcoords[2], s.Texcoords[3]
	sx, sy := s.Rescale[0], s.Rescale[1]
	width := tw * sx
	if s.WidthOverride > 0 {
		width = s.WidthOverride
	}
	height := th * sy
	if s.HeightOverride > 0 {
		height = s.HeightOverride
	}

	mat.Scale2D(width, height)
	if s.Mirrored {
		mat.Flip()
	}

	rx, ry, rz := s.Rotations3D[0], s.Rotations3D[1], s.Rotations3D[2]
	if s.AutomaticOrientation {
		rz += float32(math.Pi)/2 - s.Angle
	} else if s.ForceRotation {
		rz += s.Angle
	}

	// rx/rz are negated going into the rotation, ry is not: a
	// coordinate-convention artifact of the original engine, preserved
	// bit-for-bit rather than "fixed".
	if rx != 0 {
		mat.RotateX(-rx)
	}
	if ry != 0 {
		mat.RotateY(ry)
	}
	if rz != 0 {
		mat.RotateZ(-rz)
	}

	if s.AllowDestOffset {
		mat.Translate(s.DestOffset[0], s.DestOffset[1], s.DestOffset[2])
	}
	if s.CornerRelativePlacement {
		mat.Translate2D(width/2, height/2)
	}

	mat.Translate(x, y, z)

	for i := 0; i < 4; i++ {
		cx, cy, cz := mat.Corner(i)
		vertices[i].Pos[0] = int16(cx)
		vertices[i].Pos[1] = int16(cy)
		vertices[i].Pos[2] = int16(cz)
	}

	var invW, invH float32
	if s.anm != nil {
		invW, invH = s.anm.InvSize[0], s.anm.InvSize[1]
	}
	tox, toy := s.Texoffsets[0], s.Texoffsets[1]
	left := tx*invW + tox
	right := (tx+tw)*invW + tox
	bottom := ty*invH + toy
	top := (ty+th)*invH + toy

	vertices[0].UV = [2]float32{left, bottom}
	vertices[1].UV = [2]float32{right, bottom}
	vertices[2].UV = [2]float32{right, top}
	vertices[3].UV = [2]float32{left, top}

	for i := 0; i < 4; i++ {
		vertices[i].Color = s.Color
		vertices[i].Layer = s.Layer
	}
}
