// Package bullet holds the projectile records a Game accumulates as enemies
// fire.
package bullet

import "math"

// Attributes describes the difficulty-scaled parameters of a shot, resolved
// once by Enemy.SetBulletAttributes and then stamped onto every Bullet that
// shot fires.
type Attributes struct {
	Anim              int16
	BulletType        int32 // always 0: opcode is unconditionally overwritten to 67 before this is derived, see enemy package
	SpriteIndexOffset int16
	Pos               [2]float32

	BulletsPerShot int32
	NumberOfShots  int32
	Speed          float32
	Speed2         float32
	LaunchAngle    float32
	Angle          float32
	Flags          uint32
}

// Bullet is one live projectile. Position and velocity are plain floats, not
// interpolators: bullets move by simple per-frame integration, never eased.
type Bullet struct {
	Pos     [3]float32
	Speed   float32
	DPos    [3]float32
	Flags   uint32
	Frame   int32
	Attrs   Attributes
	Removed bool
}

// Fire constructs a Bullet at pos from attrs and appends it to out,
// returning the updated slice. The bullet travels in a straight line along
// LaunchAngle at Speed.
func Fire(out []Bullet, attrs Attributes, pos [3]float32) []Bullet {
	s, c := math.Sincos(float64(attrs.LaunchAngle))
	b := Bullet{
		Pos:   pos,
		Speed: attrs.Speed,
		DPos:  [3]float32{float32(c) * attrs.Speed, float32(s) * attrs.Speed, 0},
		Flags: attrs.Flags,
		Attrs: attrs,
	}
	return append(out, b)
}

// Update advances a bullet's position by one frame of straight-line motion.
func (b *Bullet) Update() {
	b.Pos[0] += b.DPos[0]
	b.Pos[1] += b.DPos[1]
	b.Pos[2] += b.DPos[2]
	b.Frame++
}
