package anim

// Formula selects the easing curve an interpolator applies to its
// normalized progress value t in [0, 1].
type Formula int

const (
	// FormulaLinear returns t unchanged.
	FormulaLinear Formula = iota
	// FormulaPower2 accelerates: t^2.
	FormulaPower2
	// FormulaInvertPower2 decelerates: 1 - (1-t)^2.
	FormulaInvertPower2
)

func (f Formula) apply(t float32) float32 {
	switch f {
	case FormulaPower2:
		return t * t
	case FormulaInvertPower2:
		inv := 1 - t
		return 1 - inv*inv
	default:
		return t
	}
}

// clampUnit clamps t to [0, 1].
func clampUnit(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func progress(query, start, end uint16) float32 {
	if end <= start {
		if query < start {
			return 0
		}
		return 1
	}
	return clampUnit(float32(int32(query)-int32(start)) / float32(int32(end)-int32(start)))
}

// Interpolator1 interpolates a single scalar between a start and end value
// over [startFrame, endFrame], immutable once constructed.
type Interpolator1 struct {
	start, end             float32
	startFrame, endFrame   uint16
	formula                Formula
}

// NewInterpolator1 constructs a 1-scalar interpolator.
func NewInterpolator1(start float32, startFrame uint16, end float32, endFrame uint16, formula Formula) Interpolator1 {
	return Interpolator1{start: start, startFrame: startFrame, end: end, endFrame: endFrame, formula: formula}
}

// Value evaluates the interpolator at the given frame.
func (i Interpolator1) Value(frame uint16) float32 {
	t := i.formula.apply(progress(frame, i.startFrame, i.endFrame))
	return i.start + (i.end-i.start)*t
}

// Interpolator2 interpolates a 2-vector.
type Interpolator2 struct {
	start, end           [2]float32
	startFrame, endFrame uint16
	formula              Formula
}

// NewInterpolator2 constructs a 2-vector interpolator.
func NewInterpolator2(start [2]float32, startFrame uint16, end [2]float32, endFrame uint16, formula Formula) Interpolator2 {
	return Interpolator2{start: start, startFrame: startFrame, end: end, endFrame: endFrame, formula: formula}
}

// Values evaluates the interpolator at the given frame.
func (i Interpolator2) Values(frame uint16) [2]float32 {
	t := i.formula.apply(progress(frame, i.startFrame, i.endFrame))
	var out [2]float32
	for k := range out {
		out[k] = i.start[k] + (i.end[k]-i.start[k])*t
	}
	return out
}

// Interpolator3 interpolates a 3-vector.
type Interpolator3 struct {
	start, end           [3]float32
	startFrame, endFrame uint16
	formula              Formula
}

// NewInterpolator3 constructs a 3-vector interpolator.
func NewInterpolator3(start [3]float32, startFrame uint16, end [3]float32, endFrame uint16, formula Formula) Interpolator3 {
	return Interpolator3{start: start, startFrame: startFrame, end: end, endFrame: endFrame, formula: formula}
}

// Values evaluates the interpolator at the given frame.
func (i Interpolator3) Values(frame uint16) [3]float32 {
	t := i.formula.apply(progress(frame, i.startFrame, i.endFrame))
	var out [3]float32
	for k := range out {
		out[k] = i.start[k] + (i.end[k]-i.start[k])*t
	}
	return out
}
