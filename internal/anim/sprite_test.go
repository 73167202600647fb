package anim

import "testing"

func almostEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-4
}

func testAnm() *Anm0 {
	return &Anm0{
		Size:    [2]uint16{256, 256},
		InvSize: [2]float32{1.0 / 256, 1.0 / 256},
	}
}

func TestFillVerticesUVOrder(t *testing.T) {
	s := NewSprite()
	s.BindAnm(testAnm())
	s.Texcoords = [4]float32{10, 20, 30, 40}

	var verts [4]Vertex
	s.FillVertices(&verts, 0, 0, 0)

	left := float32(10) / 256
	right := float32(40) / 256
	bottom := float32(20) / 256
	top := float32(60) / 256

	cases := []struct {
		idx  int
		u, v float32
	}{
		{0, left, bottom},
		{1, right, bottom},
		{2, right, top},
		{3, left, top},
	}
	for _, c := range cases {
		got := verts[c.idx].UV
		if !almostEqual(got[0], c.u) || !almostEqual(got[1], c.v) {
			t.Fatalf("vertex %d uv = %v, want (%v,%v)", c.idx, got, c.u, c.v)
		}
	}
}

func TestUpdateSetsCornerRelativePlacement(t *testing.T) {
	s := NewSprite()
	s.CornerRelativePlacement = false
	s.Update()
	if !s.CornerRelativePlacement {
		t.Fatal("corner_relative_placement should be true after update")
	}

	s2 := NewSprite()
	s2.CornerRelativePlacement = true
	s2.Update()
	if !s2.CornerRelativePlacement {
		t.Fatal("corner_relative_placement should remain true after update")
	}
}

func TestFadeOwnsAlphaSetColorDoesNotOverwriteRGB(t *testing.T) {
	s := NewSprite()
	s.Color = [4]uint8{200, 100, 50, 255}
	s.SetFadeInterpolator(NewInterpolator1(255, 0, 0, 10, FormulaLinear))

	// The runner's SetColor instruction handler skips the call while fading
	// (TestFadeBlocksSetColor drives that path); here only the guard it
	// relies on is checked, and no SetColor call is made.
	if !s.HasFadeInterpolator() {
		t.Fatal("expected fade interpolator to be installed")
	}
	// RGB should be untouched.
	if s.Color[0] != 200 || s.Color[1] != 100 || s.Color[2] != 50 {
		t.Fatalf("rgb changed unexpectedly: %v", s.Color)
	}

	for i := 0; i < 5; i++ {
		s.Update()
	}
	if s.Color[0] != 200 || s.Color[1] != 100 || s.Color[2] != 50 {
		t.Fatalf("rgb changed by fade/update: %v", s.Color)
	}
	if diff := int(s.Color[3]) - 127; diff < -1 || diff > 1 {
		t.Fatalf("alpha after 5/10 frames = %d, want ~127", s.Color[3])
	}
}

func TestToggleMirroredRoundTrips(t *testing.T) {
	s := NewSprite()
	start := s.Mirrored
	s.Mirrored = !s.Mirrored
	s.Mirrored = !s.Mirrored
	if s.Mirrored != start {
		t.Fatalf("mirrored = %v after even toggles, want %v", s.Mirrored, start)
	}
}
