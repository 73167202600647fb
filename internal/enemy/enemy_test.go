package enemy

import (
	"math"
	"testing"

	"github.com/retrocoderamen/danmaku-core/internal/anim"
	"github.com/retrocoderamen/danmaku-core/internal/arena"
	"github.com/retrocoderamen/danmaku-core/internal/bullet"
)

// stubGame is a minimal GameContext for testing Enemy in isolation, without
// pulling in the full Game container.
type stubGame struct {
	rank        int32
	difficulty  int32
	playerPos   [2]float32
	runners     *arena.Arena[*anim.AnmRunner]
	catalog     *anim.Catalog
	prng        *anim.PRNG
	firedAttrs  []bullet.Attributes
	firedPos    [][3]float32
	spawnedAnim []uint8
}

// stillScript is a one-instruction script that halts immediately via
// KeepStill, enough to exercise AnmRunner construction/binding without a
// real Anm0 fixture.
func stillScript() anim.Script {
	return anim.Script{
		Instructions: []anim.Call{{Time: 0, Instr: anim.Instruction{Op: anim.OpKeepStill}}},
		Interrupts:   map[int32]uint32{},
	}
}

func newStubGame() *stubGame {
	file := &anim.Anm0{
		Size:    [2]uint16{256, 256},
		InvSize: [2]float32{1.0 / 256, 1.0 / 256},
		Sprites: map[uint32]anim.SpriteRect{},
		Scripts: map[uint8]anim.Script{
			0: stillScript(),
			1: stillScript(),
			2: stillScript(),
			3: stillScript(),
		},
	}
	return &stubGame{
		runners: arena.New[*anim.AnmRunner](),
		catalog: anim.NewCatalog([]*anim.Anm0{file}),
		prng:    anim.NewPRNG(1),
	}
}

func (g *stubGame) Rank() int32             { return g.rank }
func (g *stubGame) Difficulty() int32       { return g.difficulty }
func (g *stubGame) PlayerPos() [2]float32   { return g.playerPos }

func (g *stubGame) SpawnRunner(scriptID uint8, spriteIndexOffset uint32) arena.Handle {
	g.spawnedAnim = append(g.spawnedAnim, scriptID)
	r := anim.NewAnmRunner(g.catalog, scriptID, anim.NewSprite(), g.prng, spriteIndexOffset)
	return g.runners.Insert(r)
}

func (g *stubGame) Runner(h arena.Handle) (*anim.AnmRunner, bool) {
	r, ok := g.runners.Get(h)
	if !ok {
		return nil, false
	}
	return r, true
}

func (g *stubGame) FireBullet(attrs bullet.Attributes, pos [3]float32) {
	g.firedAttrs = append(g.firedAttrs, attrs)
	g.firedPos = append(g.firedPos, pos)
}

func TestSetAnimBindsRunner(t *testing.T) {
	g := newStubGame()
	e := New([2]float32{0, 0}, 500, 0, 640, false, g.catalog, g.prng, g)

	if _, ok := e.Runner(); ok {
		t.Fatalf("Runner() before SetAnim ok = true; want false")
	}
	e.SetAnim(0)
	if _, ok := e.Runner(); !ok {
		t.Fatalf("Runner() after SetAnim ok = false; want true")
	}
}

func TestUpdateMovementDependentSpriteSwitch(t *testing.T) {
	g := newStubGame()
	e := New([2]float32{100, 100}, 100, 0, 0, false, g.catalog, g.prng, g)
	e.MovementDependentSprites = &MovementSprites{EndLeft: 0, EndRight: 1, Left: 2, Right: 3}
	e.Angle = float32(math.Pi)
	e.Speed = 5

	e.Update()

	if e.Pos[0] >= 100 {
		t.Fatalf("Pos.X = %v; want < 100 (moved left)", e.Pos[0])
	}
	if e.Direction != DirectionLeft {
		t.Fatalf("Direction = %v; want DirectionLeft", e.Direction)
	}
	if len(g.spawnedAnim) != 1 || g.spawnedAnim[0] != 2 {
		t.Fatalf("spawnedAnim = %v; want [2]", g.spawnedAnim)
	}
}

func TestUpdatePhysicalIntegratesSpeedAndAngle(t *testing.T) {
	g := newStubGame()
	e := New([2]float32{0, 0}, 1, 0, 0, false, g.catalog, g.prng, g)
	e.Speed = 1
	e.Acceleration = 0.5
	e.Update()

	if e.Speed != 1.5 {
		t.Fatalf("Speed after one Update = %v; want 1.5", e.Speed)
	}
	if e.Frame != 1 {
		t.Fatalf("Frame after one Update = %d; want 1", e.Frame)
	}
}

func TestSetBulletAttributesFiresUnlessDelayAttack(t *testing.T) {
	g := newStubGame()
	e := New([2]float32{0, 0}, 1, 0, 0, false, g.catalog, g.prng, g)

	e.SetBulletAttributes(67, 0, 0, 1, 1, 1, 1, 0, 0, 0)
	if len(g.firedAttrs) != 1 {
		t.Fatalf("fired count = %d; want 1 (DelayAttack false)", len(g.firedAttrs))
	}

	e.DelayAttack = true
	e.SetBulletAttributes(67, 0, 0, 1, 1, 1, 1, 0, 0, 0)
	if len(g.firedAttrs) != 1 {
		t.Fatalf("fired count after DelayAttack = %d; want still 1", len(g.firedAttrs))
	}
}

func TestSetBulletAttributesClampsMinimums(t *testing.T) {
	g := newStubGame()
	e := New([2]float32{0, 0}, 1, 0, 0, false, g.catalog, g.prng, g)
	e.DelayAttack = true

	e.SetBulletAttributes(99, 0, 0, -5, -5, 0, 0, 0, 0, 0)
	if e.BulletAttrs.BulletType != 0 {
		t.Fatalf("BulletType = %d; want 0 (caller's opcode 99 is overwritten with 67)", e.BulletAttrs.BulletType)
	}
	if e.BulletAttrs.BulletsPerShot != 1 {
		t.Fatalf("BulletsPerShot = %d; want clamped to 1", e.BulletAttrs.BulletsPerShot)
	}
	if e.BulletAttrs.NumberOfShots != 1 {
		t.Fatalf("NumberOfShots = %d; want clamped to 1", e.BulletAttrs.NumberOfShots)
	}
	if e.BulletAttrs.Speed != 0.3 {
		t.Fatalf("Speed = %v; want clamped to 0.3", e.BulletAttrs.Speed)
	}
	if e.BulletAttrs.Speed2 != 0.3 {
		t.Fatalf("Speed2 = %v; want clamped to 0.3", e.BulletAttrs.Speed2)
	}
}

func TestSetHitboxHalves(t *testing.T) {
	g := newStubGame()
	e := New([2]float32{0, 0}, 1, 0, 0, false, g.catalog, g.prng, g)
	e.SetHitbox(10, 20)
	if e.HitboxHalfSize != [2]float32{5, 10} {
		t.Fatalf("HitboxHalfSize = %v; want [5 10]", e.HitboxHalfSize)
	}
}

func TestAngleTo(t *testing.T) {
	g := newStubGame()
	e := New([2]float32{10, 0}, 1, 0, 0, false, g.catalog, g.prng, g)
	got := e.AngleTo([2]float32{0, 0})
	if got != 0 {
		t.Fatalf("AngleTo = %v; want 0", got)
	}
}
