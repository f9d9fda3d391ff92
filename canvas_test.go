package ink

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/geometry"
	"seehuhn.de/go/ink/pentip"
	"seehuhn.de/go/ink/raster"
	"seehuhn.de/go/ink/simplify"
	"seehuhn.de/go/ink/tile"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func newTestCanvas(t *testing.T, opts ...Option) *Canvas {
	t.Helper()
	opts = append([]Option{WithInk(white), WithBackground(black)}, opts...)
	c, err := New(DefaultConfig(), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// drawLine feeds samples along a horizontal line through the viewport
// centre, from world x0 to x1 in steps of 2.
func drawLine(t *testing.T, c *Canvas, x0, x1 float64) {
	t.Helper()
	for x := x0; x <= x1; x += 2 {
		s := Sample{X: 400 + x, Y: 300, Pressure: 1, TiltX: 0.3, TiltY: 0.5}
		if err := c.AddSample(s); err != nil {
			t.Fatal(err)
		}
	}
}

// worldPixel returns the colour of the cell pixel at world position (x, y),
// and false if no cell exists there.
func worldPixel(c *Canvas, x, y int) (color.RGBA, bool) {
	size := c.Grid().CellSize()
	key := tile.Key{
		X: int(math.Floor(float64(x) / size.X)),
		Y: int(math.Floor(float64(y) / size.Y)),
	}
	cell, ok := c.Grid().Cell(key)
	if !ok {
		return color.RGBA{}, false
	}
	p := cell.WorldToLocal(vec.Vec2{X: float64(x), Y: float64(y)})
	return cell.Image().RGBAAt(int(p.X), int(p.Y)), true
}

func TestInvalidConfig(t *testing.T) {
	type test struct {
		name   string
		modify func(*Config)
		also   error
	}
	tests := []test{
		{"max below min", func(c *Config) { c.Simplify.MaxDistance = 0.5 }, simplify.ErrInvalidConfig},
		{"no queue", func(c *Config) { c.Simplify.QueueLength = 0 }, simplify.ErrInvalidConfig},
		{"negative tip", func(c *Config) { c.Tip.SizeNormal = -1 }, pentip.ErrInvalidTip},
		{"zero cell", func(c *Config) { c.CellSize.Y = 0 }, nil},
		{"infinite cell", func(c *Config) { c.CellSize.X = math.Inf(1) }, nil},
		{"no viewport", func(c *Config) { c.ViewportWidth = 0 }, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			_, err := New(cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
			if tc.also != nil && !errors.Is(err, tc.also) {
				t.Errorf("error = %v, want %v", err, tc.also)
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config rejected: %v", err)
	}
}

func TestStrokeDrawsInk(t *testing.T) {
	c := newTestCanvas(t)
	drawLine(t, c, -20, 20)
	if err := c.EndStroke(); err != nil {
		t.Fatal(err)
	}

	if got, ok := worldPixel(c, 5, 5); !ok || got != white {
		t.Errorf("pixel on the stroke = %v, %t", got, ok)
	}
	if got, ok := worldPixel(c, 70, 70); !ok || got != black {
		t.Errorf("pixel away from the stroke = %v, %t", got, ok)
	}
	if _, ok := c.Grid().Cell(tile.Key{X: 5, Y: 5}); ok {
		t.Error("cell far from the stroke was created")
	}
}

func TestLongStrokeHasNoGaps(t *testing.T) {
	c := newTestCanvas(t)
	drawLine(t, c, -120, 120)
	if err := c.EndStroke(); err != nil {
		t.Fatal(err)
	}
	for x := -110; x <= 110; x++ {
		if got, _ := worldPixel(c, x, 5); got != white {
			t.Fatalf("gap in the stroke at x=%d: %v", x, got)
		}
	}
}

func TestPending(t *testing.T) {
	c := newTestCanvas(t)
	drawLine(t, c, 0, 8)

	pending := c.Pending()
	if len(pending) != 5 {
		t.Fatalf("%d pending samples, want 5", len(pending))
	}
	if p := pending[0]; p.X != 0 || p.Y != 0 {
		t.Errorf("first pending sample at (%g, %g), want world origin", p.X, p.Y)
	}
	if c.Grid().Len() != 0 {
		t.Errorf("%d cells allocated before the stroke ended", c.Grid().Len())
	}

	if err := c.EndStroke(); err != nil {
		t.Fatal(err)
	}
	if len(c.Pending()) != 0 {
		t.Error("samples pending after EndStroke")
	}
	if c.Grid().Len() == 0 {
		t.Error("EndStroke drew nothing")
	}
}

func TestCancelStroke(t *testing.T) {
	c := newTestCanvas(t)
	drawLine(t, c, 0, 8)
	c.CancelStroke()

	if len(c.Pending()) != 0 {
		t.Error("samples pending after CancelStroke")
	}
	if err := c.EndStroke(); err != nil {
		t.Fatal(err)
	}
	if c.Grid().Len() != 0 {
		t.Errorf("cancelled stroke allocated %d cells", c.Grid().Len())
	}
	if _, ok := c.TakeDirty(); ok {
		t.Error("cancelled stroke reported a dirty region")
	}
}

func TestSampleWithoutTilt(t *testing.T) {
	c := newTestCanvas(t)
	err := c.AddSample(Sample{X: 10, Y: 10, Pressure: 1})
	if !errors.Is(err, geometry.ErrZeroVector) {
		t.Errorf("error = %v, want ErrZeroVector", err)
	}
	if len(c.Pending()) != 0 {
		t.Error("sample without tilt was kept")
	}
}

func TestNonFiniteSample(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	bad := []Sample{
		{X: nan, Y: 300, Pressure: 1, TiltX: 0.5},
		{X: 400, Y: -inf, Pressure: 1, TiltX: 0.5},
		{X: 400, Y: 300, Pressure: nan, TiltX: 0.5},
		{X: 400, Y: 300, Pressure: inf, TiltX: 0.5},
		{X: 400, Y: 300, Pressure: 1, TiltX: nan},
		{X: 400, Y: 300, Pressure: 1, TiltX: 0.5, TiltY: inf},
	}
	c := newTestCanvas(t)
	for _, s := range bad {
		if err := c.AddSample(s); !errors.Is(err, ErrInvalidSample) {
			t.Errorf("AddSample(%+v) = %v, want ErrInvalidSample", s, err)
		}
	}
	if len(c.Pending()) != 0 {
		t.Error("invalid samples were kept")
	}
	if err := c.EndStroke(); err != nil {
		t.Fatal(err)
	}
	if c.Grid().Len() != 0 {
		t.Errorf("invalid samples allocated %d cells", c.Grid().Len())
	}
}

// TestTiltThroughVertical feeds a pen rocking from one side to the other,
// so that smoothing averages the tilt to zero.
func TestTiltThroughVertical(t *testing.T) {
	strokes := map[string][]Sample{
		"two samples": {
			{X: 400, Y: 300, Pressure: 1, TiltX: 0.5},
			{X: 406, Y: 300, Pressure: 1, TiltX: -0.5},
		},
	}
	var rocking []Sample
	for i := range 20 {
		tx := 0.5
		if i%2 == 1 {
			tx = -0.5
		}
		rocking = append(rocking, Sample{X: 400 + 2*float64(i), Y: 300, Pressure: 1, TiltX: tx})
	}
	strokes["rocking"] = rocking

	for name, samples := range strokes {
		t.Run(name, func(t *testing.T) {
			c := newTestCanvas(t)
			for _, s := range samples {
				if err := c.AddSample(s); err != nil {
					t.Fatal(err)
				}
			}
			if err := c.EndStroke(); err != nil {
				t.Fatal(err)
			}
			if c.Grid().Len() == 0 {
				t.Fatal("no ink drawn")
			}
			inked := false
			for y := -3; y <= 3 && !inked; y++ {
				for x := -3; x <= 3; x++ {
					if got, _ := worldPixel(c, x, y); got == white {
						inked = true
						break
					}
				}
			}
			if !inked {
				t.Error("no ink near the start of the stroke")
			}
		})
	}
}

func TestCarryTilt(t *testing.T) {
	pts := []Sample{
		{X: 0},
		{X: 1, TiltX: 0.4},
		{X: 2},
		{X: 3, TiltY: 1e-12},
		{X: 4, TiltY: -0.2},
		{X: 5},
	}
	if err := carryTilt(pts); err != nil {
		t.Fatal(err)
	}
	want := []vec.Vec2{
		{X: 0.4}, {X: 0.4}, {X: 0.4}, {X: 0.4}, {Y: -0.2}, {Y: -0.2},
	}
	for i, s := range pts {
		if s.Tilt() != want[i] {
			t.Errorf("sample %d: tilt %v, want %v", i, s.Tilt(), want[i])
		}
		if s.X != float64(i) {
			t.Errorf("sample %d moved to x=%g", i, s.X)
		}
	}

	if err := carryTilt([]Sample{{X: 1}, {X: 2}}); !errors.Is(err, geometry.ErrZeroVector) {
		t.Errorf("untilted run: error = %v, want ErrZeroVector", err)
	}
}

func TestTakeDirty(t *testing.T) {
	c := newTestCanvas(t)
	if _, ok := c.TakeDirty(); ok {
		t.Error("new canvas is dirty")
	}

	drawLine(t, c, -20, 20)
	if err := c.EndStroke(); err != nil {
		t.Fatal(err)
	}
	r, ok := c.TakeDirty()
	if !ok {
		t.Fatal("no dirty region after a stroke")
	}
	if r.LLx > -20 || r.URx < 20 || r.LLy > 0 || r.URy < 0 {
		t.Errorf("dirty region %v does not contain the stroke", r)
	}
	reach := DefaultConfig().Tip.Reach() + 1
	if r.LLx < -20-reach || r.URx > 20+reach || r.LLy < -reach || r.URy > reach {
		t.Errorf("dirty region %v too large", r)
	}
	if _, ok := c.TakeDirty(); ok {
		t.Error("dirty region reported twice")
	}

	// the region covers all ink, for every tilt direction
	for _, tilt := range []vec.Vec2{{X: 1}, {X: -1}, {Y: 1}, {X: 0.6, Y: -0.8}} {
		c := newTestCanvas(t)
		for x := 0.0; x <= 10; x += 2 {
			s := Sample{X: 400 + x, Y: 300, Pressure: 1, TiltX: tilt.X, TiltY: tilt.Y}
			if err := c.AddSample(s); err != nil {
				t.Fatal(err)
			}
		}
		if err := c.EndStroke(); err != nil {
			t.Fatal(err)
		}
		r, _ := c.TakeDirty()
		for _, key := range c.Grid().Keys() {
			cell, _ := c.Grid().Cell(key)
			img := cell.Image()
			b := img.Bounds()
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					if img.RGBAAt(x, y) == black {
						continue
					}
					p := cell.Position().Add(vec.Vec2{X: float64(x), Y: float64(y)})
					if p.X < r.LLx || p.X+1 > r.URx || p.Y < r.LLy || p.Y+1 > r.URy {
						t.Fatalf("tilt %v: ink at %v outside the dirty region %v", tilt, p, r)
					}
				}
			}
		}
	}
}

func TestViewportMapping(t *testing.T) {
	c := newTestCanvas(t)
	vp := c.Viewport()
	if err := vp.SetZoom(2); err != nil {
		t.Fatal(err)
	}
	vp.SetCenter(vec.Vec2{X: 1000, Y: 1000})

	// viewport (400, 300) is the centre; 20 pixels are 10 world units
	for x := 380.0; x <= 420; x += 2 {
		s := Sample{X: x, Y: 300, Pressure: 1, TiltX: 0.3, TiltY: 0.5}
		if err := c.AddSample(s); err != nil {
			t.Fatal(err)
		}
	}
	pending := c.Pending()
	if len(pending) == 0 {
		t.Fatal("no pending samples")
	}
	last := pending[len(pending)-1]
	if last.X != 1010 || last.Y != 1000 {
		t.Errorf("last sample at (%g, %g), want (1010, 1000)", last.X, last.Y)
	}
}

func TestRender(t *testing.T) {
	c := newTestCanvas(t)
	drawLine(t, c, -20, 20)
	if err := c.EndStroke(); err != nil {
		t.Fatal(err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, 800, 600))
	c.Render(dst)
	if got := dst.RGBAAt(405, 305); got != white {
		t.Errorf("stroke pixel = %v", got)
	}
	if got := dst.RGBAAt(400+70, 300+70); got != black {
		t.Errorf("cell background pixel = %v", got)
	}
	if got := dst.RGBAAt(10, 10); got.A != 0 {
		t.Errorf("pixel outside all cells = %v", got)
	}

	// the viewport origin follows the image bounds
	off := image.NewRGBA(image.Rect(100, 50, 900, 650))
	c.Render(off)
	if got := off.RGBAAt(505, 355); got != white {
		t.Errorf("offset image: stroke pixel = %v", got)
	}
}

func TestRenderZoomed(t *testing.T) {
	c := newTestCanvas(t)
	drawLine(t, c, -20, 20)
	if err := c.EndStroke(); err != nil {
		t.Fatal(err)
	}
	if err := c.Viewport().SetZoom(2); err != nil {
		t.Fatal(err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, 800, 600))
	c.Render(dst)
	// world (5, 5) is at viewport (410, 310)
	if got := dst.RGBAAt(411, 311); got != white {
		t.Errorf("stroke pixel = %v", got)
	}
}

type countingFiller struct {
	tile.Filler
	calls int
}

func (f *countingFiller) FillPath(dst *image.RGBA, p *path.Data, ink color.Color) {
	f.calls++
	f.Filler.FillPath(dst, p, ink)
}

func TestWithFiller(t *testing.T) {
	f := &countingFiller{Filler: &raster.VectorFiller{}}
	c := newTestCanvas(t, WithFiller(f))
	drawLine(t, c, -20, 20)
	if err := c.EndStroke(); err != nil {
		t.Fatal(err)
	}
	if f.calls == 0 {
		t.Fatal("custom filler not used")
	}
	if got, _ := worldPixel(c, 5, 5); got != white {
		t.Errorf("pixel on the stroke = %v", got)
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	c := newTestCanvas(t)
	drawLine(t, c, -20, 20)
	if err := c.EndStroke(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, msg := range []string{"created cell", "committed samples"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output lacks %q", msg)
		}
	}

	SetLogger(nil)
	if Logger() == nil {
		t.Error("Logger returned nil")
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
