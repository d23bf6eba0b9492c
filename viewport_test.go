package glyph

import "testing"

func TestViewportProjection(t *testing.T) {
	tests := []struct {
		name  string
		vp    Viewport
		pixel Vec2
		want  Vec2
	}{
		{"origin", Viewport{Width: 800, Height: 600}, Vec2{X: 0, Y: 0}, Vec2{X: -1, Y: -1}},
		{"far corner", Viewport{Width: 800, Height: 600}, Vec2{X: 800, Y: 600}, Vec2{X: 1, Y: 1}},
		{"center", Viewport{Width: 800, Height: 600}, Vec2{X: 400, Y: 300}, Vec2{X: 0, Y: 0}},
		{"flip origin", Viewport{Width: 800, Height: 600, FlipY: true}, Vec2{X: 0, Y: 0}, Vec2{X: -1, Y: 1}},
		{"flip far corner", Viewport{Width: 800, Height: 600, FlipY: true}, Vec2{X: 800, Y: 600}, Vec2{X: 1, Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Project(tt.vp.Projection(), Vertex{Position: tt.pixel})
			if !closeTo(out.Position.X, tt.want.X) || !closeTo(out.Position.Y, tt.want.Y) {
				t.Errorf("pixel %+v -> (%v, %v), want %+v", tt.pixel, out.Position.X, out.Position.Y, tt.want)
			}
		})
	}
}

func TestViewportProjectionMatrix(t *testing.T) {
	vp := Viewport{Width: 4, Height: 8}
	want := Transform{
		{0.5, 0, -1},
		{0, 0.25, -1},
		{0, 0, 1},
	}
	if got := vp.Projection(); got != want {
		t.Errorf("Projection() = %v, want %v", got, want)
	}
}

func TestViewportDegenerate(t *testing.T) {
	for _, vp := range []Viewport{{}, {Width: 10}, {Height: 10}, {Width: -1, Height: 5}} {
		if !vp.Projection().IsIdentity() {
			t.Errorf("Viewport%+v.Projection() = %v, want identity", vp, vp.Projection())
		}
	}
}

func TestViewportResize(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100, FlipY: true}
	resized := vp.Resize(200, 50)

	if resized.Width != 200 || resized.Height != 50 || !resized.FlipY {
		t.Errorf("Resize() = %+v", resized)
	}
	if vp.Width != 100 {
		t.Error("Resize modified the receiver")
	}
	if resized.Projection()[0][0] != 0.01 {
		t.Errorf("resized x scale = %v, want 0.01", resized.Projection()[0][0])
	}
}

func TestViewportDrawTransform(t *testing.T) {
	vp := Viewport{Width: 200, Height: 100}
	model := Translate(50, 25)
	draw := vp.DrawTransform(model)

	// Glyph-local origin lands at pixel (50, 25), i.e. NDC (-0.5, -0.5).
	out := Project(draw, Vertex{})
	if !closeTo(out.Position.X, -0.5) || !closeTo(out.Position.Y, -0.5) {
		t.Errorf("origin -> (%v, %v), want (-0.5, -0.5)", out.Position.X, out.Position.Y)
	}
}
