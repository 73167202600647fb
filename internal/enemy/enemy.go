// Package enemy implements the per-entity simulation driven externally by
// the ECL interpreter (stubbed here): position, orientation-driven animation
// switching, difficulty-scaled bullet emission, and interpolated motion.
// Cross-references back into the owning Game go through the GameContext
// interface and arena.Handle rather than raw pointers, so a reference whose
// target is gone resolves to "absent" instead of dangling.
package enemy

import (
	"math"

	"github.com/retrocoderamen/danmaku-core/internal/anim"
	"github.com/retrocoderamen/danmaku-core/internal/arena"
	"github.com/retrocoderamen/danmaku-core/internal/bullet"
)

// Direction is the enemy's last resolved horizontal movement, used to decide
// when a movement-dependent animation swap is due.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionCenter
	DirectionRight
)

// UpdateMode selects how Enemy.Update derives its per-frame position.
type UpdateMode uint32

const (
	// UpdateModePhysical integrates speed/acceleration/angle each frame.
	UpdateModePhysical UpdateMode = iota
	// UpdateModeInterpolated samples the position/speed interpolators.
	UpdateModeInterpolated
)

// DifficultyCoeffs are the per-enemy linear scaling coefficients applied
// across the game's 0..32 difficulty range: each (A, B) pair resolves to
// A + (B-A)*difficulty/32 and is added onto the base bullet parameters
// (Speed2 receives half of the speed term).
type DifficultyCoeffs struct {
	SpeedA, SpeedB float32
	NbA, NbB       int32
	ShotsA, ShotsB int32
}

// DefaultDifficultyCoeffs returns the stock coefficients: bullet speed
// scales from -0.5 to +0.5 across the difficulty range, counts stay flat.
func DefaultDifficultyCoeffs() DifficultyCoeffs {
	return DifficultyCoeffs{SpeedA: -0.5, SpeedB: 0.5}
}

// MovementSprites is the (end_left, end_right, left, right) script-index
// tuple an enemy switches between as its horizontal movement direction
// changes.
type MovementSprites struct {
	EndLeft, EndRight, Left, Right uint8
}

// GameContext is the slice of Game an Enemy needs, kept as a small interface
// so this package does not import the game package back (which owns Enemy
// itself).
type GameContext interface {
	Rank() int32
	Difficulty() int32
	PlayerPos() [2]float32
	// SpawnRunner creates a new AnmRunner bound to a fresh sprite running
	// scriptID, stores it in Game's runner arena, and returns a handle.
	SpawnRunner(scriptID uint8, spriteIndexOffset uint32) arena.Handle
	// Runner resolves a handle previously returned by SpawnRunner. ok is
	// false if the runner has since been removed (dead weak reference).
	Runner(h arena.Handle) (*anim.AnmRunner, bool)
	// FireBullet appends a new bullet to Game's bullet store.
	FireBullet(attrs bullet.Attributes, pos [3]float32)
}

// Enemy is one simulated entity: position, motion, bullet emission
// scheduling, and animation binding. Game exclusively owns the Enemy value
// (in its enemy arena); runner, catalog, game and prng are all non-owning
// references supplied at construction.
type Enemy struct {
	Pos [2]float32
	Z   float32

	Angle         float32
	Speed         float32
	RotationSpeed float32
	Acceleration  float32

	Type           uint32
	BonusDropped   uint32
	DieScore       uint32
	Frame          uint32
	Life           uint32
	DeathFlags     uint32
	LowLifeTrigger *uint32
	Timeout        *uint32
	RemainingLives uint32

	bulletLaunchInterval uint32
	bulletLaunchTimer    uint32

	DeathAnim  int32
	Direction  Direction
	UpdateMode UpdateMode

	Visible              bool
	WasVisible           bool
	Touchable            bool
	Collidable           bool
	Damageable           bool
	Boss                 bool
	AutomaticOrientation bool
	DelayAttack          bool
	Mirror               bool

	DifficultyCoeffs         DifficultyCoeffs
	BulletAttrs              bullet.Attributes
	BulletOffset             [2]float32
	MovementDependentSprites *MovementSprites
	ScreenBox                *[4]float32

	DeathCallback    *int32
	BossCallback     *int32
	LowLifeCallback  *int32
	TimeoutCallback  *int32

	posInterpolator   *anim.Interpolator2
	speedInterpolator *anim.Interpolator1

	HitboxHalfSize [2]float32

	Removed bool

	runner  arena.Handle
	catalog *anim.Catalog
	prng    *anim.PRNG
	game    GameContext
}

// New constructs an Enemy. A negative life (ECL scripts pass -1) is clamped
// to 1.
func New(pos [2]float32, life, bonusDropped int32, dieScore uint32, mirror bool, catalog *anim.Catalog, prng *anim.PRNG, game GameContext) *Enemy {
	if life < 0 {
		life = 1
	}
	return &Enemy{
		Pos:              pos,
		Visible:          true,
		BonusDropped:     uint32(bonusDropped),
		DieScore:         dieScore,
		Life:             uint32(life),
		Touchable:        true,
		Collidable:       true,
		Damageable:       true,
		Mirror:           mirror,
		Direction:        DirectionCenter,
		DifficultyCoeffs: DefaultDifficultyCoeffs(),
		catalog:          catalog,
		prng:             prng,
		game:             game,
		runner:           arena.Handle{},
	}
}

// SetAnim binds the enemy to a freshly constructed AnmRunner running the
// script at index, replacing any previously bound runner.
func (e *Enemy) SetAnim(index uint8) {
	e.runner = e.game.SpawnRunner(index, 0)
}

// Runner resolves the enemy's currently bound AnmRunner. ok is false if the
// enemy has never called SetAnim, or if the runner it pointed to is gone —
// the renderer must treat that as "no sprite", never panic.
func (e *Enemy) Runner() (*anim.AnmRunner, bool) {
	if !e.runner.Valid() {
		return nil, false
	}
	return e.game.Runner(e.runner)
}

// SetPos sets the enemy's position and z-depth directly.
func (e *Enemy) SetPos(x, y, z float32) {
	e.Pos = [2]float32{x, y}
	e.Z = z
}

// SetHitbox sets the hitbox half-size from a full width/height.
func (e *Enemy) SetHitbox(width, height float32) {
	e.HitboxHalfSize = [2]float32{width / 2, height / 2}
}

// SetPosInterpolator installs the 2-D position interpolator sampled when
// UpdateMode is UpdateModeInterpolated.
func (e *Enemy) SetPosInterpolator(i anim.Interpolator2) {
	e.posInterpolator = &i
}

// SetSpeedInterpolator installs the scalar speed interpolator sampled when
// UpdateMode is UpdateModeInterpolated.
func (e *Enemy) SetSpeedInterpolator(i anim.Interpolator1) {
	e.speedInterpolator = &i
}

// AngleTo returns the angle of the offset from playerPos to the enemy
// (enemy position minus player position), used by ECL for aimed bullet
// patterns.
func (e *Enemy) AngleTo(playerPos [2]float32) float32 {
	dx := e.Pos[0] - playerPos[0]
	dy := e.Pos[1] - playerPos[1]
	return float32(math.Atan2(float64(dy), float64(dx)))
}

// SetBulletLaunchInterval seeds the bullet timer: the interval runs from a
// fifth longer than given at difficulty 0 to a fifth shorter at difficulty 32
// (unchanged at 16, clamped at 0), and the timer starts at randStart modulo
// that interval, so enemies given different randStart values fire on
// different frames.
func (e *Enemy) SetBulletLaunchInterval(randStart uint32, interval int32) {
	coeffInterval := interval / 5
	modifier := coeffInterval + (-coeffInterval*2)*e.game.Difficulty()/32
	total := interval + modifier
	if total < 0 {
		total = 0
	}
	e.bulletLaunchInterval = uint32(total)
	if e.bulletLaunchInterval > 0 {
		e.bulletLaunchTimer = randStart % e.bulletLaunchInterval
	}
}

// SetBulletAttributes applies difficulty scaling to the supplied base
// attributes and fires immediately unless DelayAttack is set. The opcode
// argument is accepted but discarded; see below.
func (e *Enemy) SetBulletAttributes(opcode int32, animID int16, spriteIndexOffset int16, bulletsPerShot, numberOfShots int32, speed, speed2, launchAngle, angle float32, flags uint32) {
	difficulty := e.game.Difficulty()
	c := e.DifficultyCoeffs
	coeffNb := c.NbA + (c.NbB-c.NbA)*difficulty/32
	coeffShots := c.ShotsA + (c.ShotsB-c.ShotsA)*difficulty/32
	coeffSpeed := c.SpeedA + (c.SpeedB-c.SpeedA)*float32(difficulty)/32

	// The caller's opcode is unconditionally overwritten with the baseline
	// 67 before the bullet type is derived from it. The original game does
	// the same; origin unknown, kept as a known quirk.
	opcode = 67

	attrs := bullet.Attributes{
		Anim:              animID,
		BulletType:        opcode - 67,
		SpriteIndexOffset: spriteIndexOffset,
		Pos:               [2]float32{e.Pos[0] + e.BulletOffset[0], e.Pos[1] + e.BulletOffset[1]},
		Flags:             flags,
		Angle:             angle,
	}

	attrs.BulletsPerShot = bulletsPerShot + coeffNb
	if attrs.BulletsPerShot < 1 {
		attrs.BulletsPerShot = 1
	}

	attrs.NumberOfShots = numberOfShots + coeffShots
	if attrs.NumberOfShots < 1 {
		attrs.NumberOfShots = 1
	}

	attrs.Speed = speed + coeffSpeed
	if attrs.Speed < 0.3 {
		attrs.Speed = 0.3
	}

	attrs.Speed2 = speed2 + coeffSpeed/2
	if attrs.Speed2 < 0.3 {
		attrs.Speed2 = 0.3
	}

	attrs.LaunchAngle = float32(math.Atan2(float64(launchAngle), 0))

	e.BulletAttrs = attrs

	if !e.DelayAttack {
		e.fire()
	}
}

func (e *Enemy) fire() {
	pos := [3]float32{e.BulletAttrs.Pos[0], e.BulletAttrs.Pos[1], e.Z}
	e.game.FireBullet(e.BulletAttrs, pos)
}

// Update advances the enemy's position, animation, and bullet timer by one
// frame. It is called externally, once per simulation frame, by the
// (stubbed) ECL driver.
func (e *Enemy) Update() {
	x, y := e.Pos[0], e.Pos[1]

	var speed float32
	if e.UpdateMode == UpdateModeInterpolated {
		if e.posInterpolator != nil {
			values := e.posInterpolator.Values(uint16(e.Frame))
			x, y = values[0], values[1]
		}
		if e.speedInterpolator != nil {
			speed = e.speedInterpolator.Value(uint16(e.Frame))
		}
	} else {
		speed = e.Speed
		e.Speed += e.Acceleration
		e.Angle += e.RotationSpeed
	}

	dx := float32(math.Cos(float64(e.Angle))) * speed
	dy := float32(math.Sin(float64(e.Angle))) * speed
	if e.Mirror {
		x -= dx
	} else {
		x += dx
	}
	y += dy

	if ms := e.MovementDependentSprites; ms != nil {
		switch {
		case x < e.Pos[0] && e.Direction != DirectionLeft:
			e.SetAnim(ms.Left)
			e.Direction = DirectionLeft
		case x > e.Pos[0] && e.Direction != DirectionRight:
			e.SetAnim(ms.Right)
			e.Direction = DirectionRight
		case x == e.Pos[0] && e.Direction != DirectionCenter:
			animID := ms.EndRight
			if e.Direction == DirectionLeft {
				animID = ms.EndLeft
			}
			e.SetAnim(animID)
			e.Direction = DirectionCenter
		}
	}

	e.Pos = [2]float32{x, y}

	if e.bulletLaunchInterval != 0 {
		if e.bulletLaunchTimer == 0 {
			e.fire()
			e.bulletLaunchTimer = e.bulletLaunchInterval
		}
		e.bulletLaunchTimer++
		e.bulletLaunchTimer %= e.bulletLaunchInterval
	}

	e.Frame++
}
