package bullet

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	const eps = 1e-4
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func TestFireAppendsAndDerivesVelocity(t *testing.T) {
	attrs := Attributes{Speed: 2, LaunchAngle: float32(math.Pi / 2)}
	out := Fire(nil, attrs, [3]float32{10, 20, 0})
	if len(out) != 1 {
		t.Fatalf("len(out) = %d; want 1", len(out))
	}
	b := out[0]
	if b.Pos != [3]float32{10, 20, 0} {
		t.Fatalf("Pos = %v; want (10,20,0)", b.Pos)
	}
	if !almostEqual(b.DPos[0], 0) || !almostEqual(b.DPos[1], 2) {
		t.Fatalf("DPos = %v; want approx (0,2,0) for a launch angle of pi/2", b.DPos)
	}
}

func TestFirePreservesExistingSlice(t *testing.T) {
	existing := []Bullet{{Pos: [3]float32{1, 1, 1}}}
	out := Fire(existing, Attributes{Speed: 1}, [3]float32{0, 0, 0})
	if len(out) != 2 {
		t.Fatalf("len(out) = %d; want 2", len(out))
	}
	if out[0].Pos != [3]float32{1, 1, 1} {
		t.Fatalf("existing bullet clobbered: %v", out[0].Pos)
	}
}

func TestUpdateIntegratesPositionAndFrame(t *testing.T) {
	b := Bullet{Pos: [3]float32{0, 0, 0}, DPos: [3]float32{1, 2, 3}}
	b.Update()
	if b.Pos != [3]float32{1, 2, 3} {
		t.Fatalf("Pos after Update = %v; want (1,2,3)", b.Pos)
	}
	if b.Frame != 1 {
		t.Fatalf("Frame after Update = %d; want 1", b.Frame)
	}
}
