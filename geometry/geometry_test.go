package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestVecNArithmetic(t *testing.T) {
	a := VecN{1, 2, 3}
	b := VecN{4, 5, 6}

	if diff := cmp.Diff(VecN{5, 7, 9}, a.Add(b)); diff != "" {
		t.Errorf("Add (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(VecN{3, 3, 3}, b.Sub(a)); diff != "" {
		t.Errorf("Sub (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(VecN{2, 4, 6}, a.Mul(2)); diff != "" {
		t.Errorf("Mul (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(VecN{4, 10, 18}, a.EMul(b)); diff != "" {
		t.Errorf("EMul (-want +got):\n%s", diff)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %g, want 32", got)
	}
	if got := a.Dist2(b); got != 27 {
		t.Errorf("Dist2 = %g, want 27", got)
	}
	if got := (VecN{3, 4}).Len(); got != 5 {
		t.Errorf("Len = %g, want 5", got)
	}
	if a.Dim() != 3 {
		t.Errorf("Dim = %d, want 3", a.Dim())
	}
}

func TestVecNZeroDivision(t *testing.T) {
	if _, err := (VecN{1, 2}).Div(0); !errors.Is(err, ErrZeroVector) {
		t.Errorf("Div(0) error = %v, want ErrZeroVector", err)
	}
	if _, err := (VecN{0, 0, 0}).Unit(); !errors.Is(err, ErrZeroVector) {
		t.Errorf("Unit() error = %v, want ErrZeroVector", err)
	}
	u, err := (VecN{0, 3, 4}).Unit()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(u.Len()-1) > 1e-12 {
		t.Errorf("|Unit| = %g, want 1", u.Len())
	}
}

func TestVecNDimensionMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add with mismatched dimensions did not panic")
		}
	}()
	_ = VecN{1, 2}.Add(VecN{1, 2, 3})
}

func TestSampleVecRoundTrip(t *testing.T) {
	s := Sample{X: 1, Y: 2, Pressure: 0.5, TiltX: 0.1, TiltY: -0.2}
	if got := SampleFromVec(s.Vec()); got != s {
		t.Errorf("SampleFromVec(Vec()) = %v, want %v", got, s)
	}
	if got, want := s.Dist2(Sample{}), s.Vec().Len2(); got != want {
		t.Errorf("Dist2 = %g, want %g", got, want)
	}
}

func TestSampleIsFinite(t *testing.T) {
	if !(Sample{X: 1, Y: -2, Pressure: 0.5, TiltX: 0.3}).IsFinite() {
		t.Error("finite sample reported as non-finite")
	}
	bad := []Sample{
		{X: math.NaN()},
		{Y: math.Inf(-1)},
		{Pressure: math.Inf(1)},
		{TiltX: math.NaN()},
		{TiltY: math.NaN()},
	}
	for _, s := range bad {
		if s.IsFinite() {
			t.Errorf("%+v reported as finite", s)
		}
	}
}

func TestTiltProxy(t *testing.T) {
	if got := TiltProxy(90); math.Abs(got-1) > 1e-15 {
		t.Errorf("TiltProxy(90) = %g", got)
	}
	if got := TiltProxy(0); got != 0 {
		t.Errorf("TiltProxy(0) = %g", got)
	}
}

func TestUnitAndRotate(t *testing.T) {
	if _, err := Unit(vec.Vec2{}); !errors.Is(err, ErrZeroVector) {
		t.Errorf("Unit(0) error = %v", err)
	}
	u, err := Unit(vec.Vec2{X: 0, Y: -2})
	if err != nil {
		t.Fatal(err)
	}
	if u != (vec.Vec2{X: 0, Y: -1}) {
		t.Errorf("Unit = %v", u)
	}

	r := Rotate(vec.Vec2{X: 1, Y: 0}, math.Pi/2)
	if math.Abs(r.X) > 1e-15 || math.Abs(r.Y-1) > 1e-15 {
		t.Errorf("Rotate = %v, want (0, 1)", r)
	}
}

func TestProjection(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 0}
	b := vec.Vec2{X: 10, Y: 0}

	got, err := ProjectOntoLine(a, b, vec.Vec2{X: 15, Y: 3})
	if err != nil {
		t.Fatal(err)
	}
	if got != (vec.Vec2{X: 15, Y: 0}) {
		t.Errorf("ProjectOntoLine = %v", got)
	}
	if _, err := ProjectOntoLine(a, a, b); !errors.Is(err, ErrZeroVector) {
		t.Errorf("degenerate line error = %v", err)
	}

	cases := []struct {
		p, want vec.Vec2
	}{
		{vec.Vec2{X: -5, Y: 1}, a},
		{vec.Vec2{X: 15, Y: 1}, b},
		{vec.Vec2{X: 4, Y: -7}, vec.Vec2{X: 4, Y: 0}},
	}
	for _, c := range cases {
		if got := ProjectOntoSegment(a, b, c.p); got != c.want {
			t.Errorf("ProjectOntoSegment(%v) = %v, want %v", c.p, got, c.want)
		}
	}
	if got := ProjectOntoSegment(a, a, b); got != a {
		t.Errorf("degenerate segment projected to %v", got)
	}
}

func TestHitTests(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	if got := HitTestPoint(pts, vec.Vec2{X: 9, Y: 1}, 5); got != 1 {
		t.Errorf("HitTestPoint = %d, want 1", got)
	}
	if got := HitTestPoint(pts, vec.Vec2{X: 5, Y: 5}, 1); got != -1 {
		t.Errorf("HitTestPoint = %d, want -1", got)
	}
	if got := HitTestEdge(pts, vec.Vec2{X: 11, Y: 5}, 3); got != 1 {
		t.Errorf("HitTestEdge = %d, want 1", got)
	}
	if got := HitTestEdge(pts, vec.Vec2{X: 5, Y: 5}, 3); got != -1 {
		t.Errorf("HitTestEdge = %d, want -1", got)
	}
}

func TestRectangles(t *testing.T) {
	a := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	b := rect.Rect{LLx: 5, LLy: 8, URx: 20, URy: 30}
	c := rect.Rect{LLx: 10, LLy: 0, URx: 20, URy: 10}

	if got := Overlap(a, b); got != (vec.Vec2{X: 5, Y: 2}) {
		t.Errorf("Overlap = %v", got)
	}
	if !Overlaps(a, b) {
		t.Error("a and b should overlap")
	}
	if Overlaps(a, c) {
		t.Error("touching rectangles should not overlap")
	}
	if got := IntervalOverlap(0, 1, 3, 4); got != -2 {
		t.Errorf("IntervalOverlap = %g, want -2", got)
	}

	want := rect.Rect{LLx: -1, LLy: -2, URx: 11, URy: 12}
	if got := Pad(a, vec.Vec2{X: 1, Y: 2}); got != want {
		t.Errorf("Pad = %v, want %v", got, want)
	}
	want = rect.Rect{LLx: 1, LLy: 2, URx: 11, URy: 12}
	if got := Translate(a, vec.Vec2{X: 1, Y: 2}); got != want {
		t.Errorf("Translate = %v, want %v", got, want)
	}
	if got := FromCorners(Min(b), Max(b)); got != b {
		t.Errorf("FromCorners(Min, Max) = %v, want %v", got, b)
	}
}

func TestPolygon(t *testing.T) {
	var empty Polygon
	if _, ok := empty.BBox(); ok {
		t.Error("empty polygon has a bounding box")
	}

	p := Polygon{{X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: -1}}
	bbox, ok := p.BBox()
	if !ok {
		t.Fatal("no bounding box")
	}
	want := rect.Rect{LLx: -2, LLy: -1, URx: 4, URy: 5}
	if bbox != want {
		t.Errorf("BBox = %v, want %v", bbox, want)
	}

	moved := p.Translated(vec.Vec2{X: -1, Y: -5})
	if diff := cmp.Diff(Polygon{{X: 0, Y: 0}, {X: -3, Y: -2}, {X: 3, Y: -6}}, moved); diff != "" {
		t.Errorf("Translated (-want +got):\n%s", diff)
	}
	if p[0] != (vec.Vec2{X: 1, Y: 5}) {
		t.Error("Translated modified the receiver")
	}

	var cmds []path.Command
	var pts []vec.Vec2
	for cmd, cmdPts := range p.Path().Iter() {
		cmds = append(cmds, cmd)
		pts = append(pts, cmdPts...)
	}
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if diff := cmp.Diff(wantCmds, cmds); diff != "" {
		t.Errorf("Path commands (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]vec.Vec2(p), pts); diff != "" {
		t.Errorf("Path points (-want +got):\n%s", diff)
	}
}

func TestCircle(t *testing.T) {
	c := vec.Vec2{X: 10, Y: -4}
	p := Circle(c, 3)

	wantCmds := []path.Command{
		path.CmdMoveTo,
		path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo,
		path.CmdClose,
	}
	if diff := cmp.Diff(wantCmds, p.Cmds); diff != "" {
		t.Errorf("Circle commands (-want +got):\n%s", diff)
	}

	// curve end points lie on the circle, control points stay in the
	// bounding square
	for cmd, pts := range p.Iter() {
		if cmd == path.CmdClose {
			continue
		}
		end := pts[len(pts)-1]
		if d := end.Sub(c).Length(); math.Abs(d-3) > 1e-12 {
			t.Errorf("end point %v at distance %g from the centre", end, d)
		}
		for _, q := range pts {
			if math.Abs(q.X-c.X) > 3+1e-12 || math.Abs(q.Y-c.Y) > 3+1e-12 {
				t.Errorf("point %v outside the bounding square", q)
			}
		}
	}
}
