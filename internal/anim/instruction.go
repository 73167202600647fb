package anim

// Instruction is the closed, bounded set of animation bytecode operations.
// Dispatch is a single switch over the tag — no class hierarchy, no
// open-ended plugin set.
type Instruction struct {
	Op OpCode

	// Operands. Only the fields relevant to Op are populated; the rest are
	// left at zero. This mirrors a tagged union without needing one per Go's
	// lack of sum types, at the cost of some unused fields per variant.
	I0, I1, I2, I3 int32
	F0, F1, F2, F3 float32
}

// OpCode names one case of the closed Instruction set. Values are stable
// across scripts and are assigned by the (out-of-scope) ANM0 parser; unknown
// values decode to OpTodo, a no-op.
type OpCode uint8

const (
	OpDelete OpCode = iota
	OpLoadSprite
	OpSetScale
	OpSetAlpha
	OpSetColor
	OpJump
	OpToggleMirrored
	OpSetRotations3D
	OpSetRotationsSpeed3D
	OpSetScaleSpeed
	OpFade
	OpSetBlendmodeAlphablend
	OpSetBlendmodeAdd
	OpKeepStill
	OpLoadRandomSprite
	OpMove
	OpMoveToLinear
	OpMoveToDecel
	OpMoveToAccel
	OpWait
	OpInterruptLabel
	OpSetCornerRelativePlacement
	OpWaitEx
	OpSetAllowOffset
	OpSetAutomaticOrientation
	OpShiftTextureX
	OpShiftTextureY
	OpSetVisible
	OpScaleIn
	OpTodo
)

// Call pairs a scheduled frame with the instruction to run at it. A
// Script's Instructions slice is sorted non-decreasing by Time.
type Call struct {
	Time  uint16
	Instr Instruction
}

// Script is a compiled animation program: an ordered instruction list plus
// an interrupt table mapping interrupt id to instruction index. -1 is the
// default interrupt, used when no exact id matches.
type Script struct {
	Instructions []Call
	Interrupts   map[int32]uint32
}

// DefaultInterrupt is the interrupt id consulted when a requested id has no
// entry in Script.Interrupts.
const DefaultInterrupt int32 = -1

// SpriteRect is a sprite table entry resolved from an Anm0's sprite table:
// the texcoord rectangle (x, y, w, h) within the file's texture.
type SpriteRect struct {
	X, Y, W, H float32
}

// Anm0 is one already-parsed animation file: a sprite table (id -> rect),
// a script table (id -> Script), and the texture metadata needed to turn
// texcoords into UVs. The binary parser that produces these is out of
// scope; this core only ever reads them.
type Anm0 struct {
	Size    [2]uint16
	InvSize [2]float32
	Sprites map[uint32]SpriteRect
	Scripts map[uint8]Script
	Texture []byte
}
