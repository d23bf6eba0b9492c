package glyph

// DefaultTint returns the color emitted when no tint is configured: red.
func DefaultTint() RGB {
	return RGB{R: 1, G: 0, B: 0}
}

// Stage is the glyph vertex stage. It holds no per-vertex state; the only
// configuration is the tint forwarded to the fragment stage.
//
// A Stage is immutable after construction and safe for concurrent use.
type Stage struct {
	tint RGB
}

// NewStage creates a vertex stage.
//
// Example:
//
//	s := glyph.NewStage(glyph.WithTint(glyph.RGB{R: 1, G: 1, B: 1}))
//	out := s.Run(&t, v)
func NewStage(opts ...StageOption) *Stage {
	o := defaultStageOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Stage{tint: o.tint}
}

// Tint returns the color the stage emits for every vertex.
func (s *Stage) Tint() RGB {
	return s.tint
}

// Run transforms one vertex. t is read, never written.
func (s *Stage) Run(t *Transform, v Vertex) Output {
	return run(t, v, s.tint)
}

// Project transforms one vertex with [DefaultTint].
func Project(t Transform, v Vertex) Output {
	return run(&t, v, DefaultTint())
}

func run(t *Transform, v Vertex, tint RGB) Output {
	p := t.Apply(v.Position)
	return Output{
		Position: Vec4{X: p.X, Y: p.Y, Z: 0, W: 1},
		Color:    tint,
		TexCoord: v.TexCoord,
	}
}
