package anim

// AnmRunner is the bytecode interpreter that steps a Script against a bound
// Sprite, one instruction batch per frame. It exclusively owns its Sprite;
// the catalog and PRNG are non-owning references supplied by the owner
// (Game) and must outlive the runner.
type AnmRunner struct {
	catalog *Catalog
	sprite  *Sprite
	prng    *PRNG

	running bool
	waiting bool

	spriteIndexOffset uint32

	script             Script
	instructionPointer int
	frame              uint16
	timeout            *uint16

	// Reserved variable banks: unused by the base opcode set, kept for
	// scripts compiled against a newer bytecode revision that reads them.
	varsI0 [4]int32
	varsF0 [4]float32
	varsI1 [4]int32
}

// NewAnmRunner binds a new runner to scriptID's script and to sprite. It
// immediately runs one frame with spriteIndexOffset in effect (biasing the
// initial sprite selection only), then zeroes the offset so subsequent
// LoadSprite/LoadRandomSprite instructions are unaffected.
func NewAnmRunner(catalog *Catalog, scriptID uint8, sprite *Sprite, prng *PRNG, spriteIndexOffset uint32) *AnmRunner {
	r := &AnmRunner{
		catalog:           catalog,
		sprite:            sprite,
		prng:              prng,
		running:           true,
		script:            catalog.MustGetScript(scriptID),
		spriteIndexOffset: spriteIndexOffset,
	}
	r.RunFrame()
	r.spriteIndexOffset = 0
	return r
}

// Sprite returns the bound sprite.
func (r *AnmRunner) Sprite() *Sprite {
	return r.sprite
}

// Running reports whether the runner is still executing.
func (r *AnmRunner) Running() bool {
	return r.running
}

// Interrupt delivers an out-of-band signal to the running script. It looks
// up id in the interrupt table, falling back to DefaultInterrupt; if
// neither is present it returns false and leaves the runner untouched.
// Otherwise it jumps to the target instruction, reactivating the runner
// from any non-terminal state and forcing the sprite visible.
func (r *AnmRunner) Interrupt(id int32) bool {
	target, ok := r.script.Interrupts[id]
	if !ok {
		target, ok = r.script.Interrupts[DefaultInterrupt]
		if !ok {
			return false
		}
	}
	r.instructionPointer = int(target)
	r.frame = r.script.Instructions[r.instructionPointer].Time
	r.waiting = false
	r.sprite.Visible = true
	return true
}

// RunFrame advances the interpreter by one logical frame: executes every
// instruction scheduled at the current frame (instructions whose time has
// already passed are stepped over without running), then advances the
// sprite's own per-frame state. Returns the runner's Running flag; once
// false, further calls are no-ops that return false without mutating
// anything.
func (r *AnmRunner) RunFrame() bool {
	if !r.running {
		return false
	}

	for r.running && !r.waiting {
		if r.instructionPointer >= len(r.script.Instructions) {
			break
		}
		call := r.script.Instructions[r.instructionPointer]
		if call.Time > r.frame {
			break
		}
		r.instructionPointer++
		if call.Time == r.frame {
			r.execute(call.Instr)
			r.sprite.Changed = true
		}
	}

	if !r.waiting {
		r.frame++
	} else if r.timeout != nil && *r.timeout == uint16(r.sprite.Frame) {
		r.waiting = false
	}

	r.sprite.Update()

	return r.running
}

func (r *AnmRunner) execute(instr Instruction) {
	sprite := r.sprite
	switch instr.Op {
	case OpDelete:
		sprite.Removed = true
		r.running = false

	case OpLoadSprite:
		id := (uint32(instr.I0) + r.spriteIndexOffset) % 256
		r.catalog.LoadSprite(sprite, id)

	case OpSetScale:
		sprite.Rescale = [2]float32{instr.F0, instr.F1}

	case OpSetAlpha:
		sprite.Color[3] = uint8(uint32(instr.I0) % 256)

	case OpSetColor:
		// Operand order is (b, g, r) per the original bytecode's own field
		// order; preserved regardless of how surprising it looks.
		if !sprite.HasFadeInterpolator() {
			b, g, r2 := uint8(instr.I0), uint8(instr.I1), uint8(instr.I2)
			sprite.SetColor(r2, g, b)
		}

	case OpJump:
		target := int(instr.I0)
		r.instructionPointer = target
		r.frame = r.script.Instructions[target].Time

	case OpToggleMirrored:
		sprite.Mirrored = !sprite.Mirrored

	case OpSetRotations3D:
		sprite.Rotations3D = [3]float32{instr.F0, instr.F1, instr.F2}

	case OpSetRotationsSpeed3D:
		sprite.RotationsSpeed3D = [3]float32{instr.F0, instr.F1, instr.F2}

	case OpSetScaleSpeed:
		sprite.ScaleSpeed = [2]float32{instr.F0, instr.F1}

	case OpFade:
		newAlpha, duration := instr.F0, uint16(instr.I0)
		sprite.SetFadeInterpolator(NewInterpolator1(
			float32(sprite.Color[3]), uint16(sprite.Frame),
			newAlpha, uint16(sprite.Frame)+duration,
			FormulaLinear,
		))

	case OpSetBlendmodeAlphablend:
		sprite.Blendfunc = BlendAlpha

	case OpSetBlendmodeAdd:
		sprite.Blendfunc = BlendAdd

	case OpKeepStill:
		r.running = false

	case OpLoadRandomSprite:
		minIndex, amplitude := uint32(instr.I0), uint32(instr.I1)
		if amplitude > 0 {
			amplitude = uint32(r.prng.U16()) % amplitude
		}
		id := (minIndex + amplitude + r.spriteIndexOffset) % 256
		r.catalog.LoadSprite(sprite, id)

	case OpMove:
		sprite.DestOffset = [3]float32{instr.F0, instr.F1, instr.F2}

	case OpMoveToLinear:
		r.installMoveTo(instr, FormulaLinear)

	case OpMoveToDecel:
		r.installMoveTo(instr, FormulaInvertPower2)

	case OpMoveToAccel:
		r.installMoveTo(instr, FormulaPower2)

	case OpWait:
		r.waiting = true

	case OpInterruptLabel:
		// No-op: labels only matter to the interrupt table built at parse
		// time.

	case OpSetCornerRelativePlacement:
		sprite.CornerRelativePlacement = true

	case OpWaitEx:
		sprite.Visible = false
		r.waiting = true

	case OpSetAllowOffset:
		sprite.AllowDestOffset = instr.I0 == 1

	case OpSetAutomaticOrientation:
		sprite.AutomaticOrientation = instr.I0 == 1

	case OpShiftTextureX:
		sprite.Texoffsets[0] += instr.F0

	case OpShiftTextureY:
		sprite.Texoffsets[1] += instr.F0

	case OpSetVisible:
		sprite.Visible = instr.I0&1 != 0

	case OpScaleIn:
		duration := uint16(instr.I0)
		sprite.SetScaleInterpolator(NewInterpolator2(
			sprite.Rescale, uint16(sprite.Frame),
			[2]float32{instr.F0, instr.F1}, uint16(sprite.Frame)+duration,
			FormulaLinear,
		))

	case OpTodo:
		// Unknown/reserved opcode: tolerated no-op.
	}
}

func (r *AnmRunner) installMoveTo(instr Instruction, formula Formula) {
	duration := uint16(instr.I0)
	r.sprite.SetOffsetInterpolator(NewInterpolator3(
		r.sprite.DestOffset, uint16(r.sprite.Frame),
		[3]float32{instr.F0, instr.F1, instr.F2}, uint16(r.sprite.Frame)+duration,
		formula,
	))
}

// SetTimeout installs the frame-counter value (compared against the
// sprite's own Frame, not the runner's) that releases a Wait/WaitEx
// suspension. Exposed for scripts/tests that need to exercise the
// wait-then-timeout path without a full interrupt table.
func (r *AnmRunner) SetTimeout(frame uint16) {
	r.timeout = &frame
}
