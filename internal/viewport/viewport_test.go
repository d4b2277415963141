package viewport

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func nearPoint(a, b Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func TestHomeViewBox(t *testing.T) {
	if got := Home.ViewBox().String(); got != "0 0 100 100" {
		t.Errorf("home viewBox = %q, want %q", got, "0 0 100 100")
	}
}

func TestViewBoxString(t *testing.T) {
	tests := []struct {
		c    Center
		want string
	}{
		{Center{50, 50}, "0 0 100 100"},
		{Center{0, 0}, "-50 -50 100 100"},
		{Center{62.5, 37.25}, "12.5 -12.75 100 100"},
		{Center{-1000, 2000}, "-1050 1950 100 100"},
		{Center{16777267, 0}, "16777218 -50 100 100"},
		{Center{1e8 + 3, 0}, "99999950 -50 100 100"},
	}
	for _, tt := range tests {
		if got := tt.c.ViewBox().String(); got != tt.want {
			t.Errorf("%+v: viewBox = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestReduce(t *testing.T) {
	c := Home.Reduce(Point{10, -5})
	if c != (Center{60, 45}) {
		t.Fatalf("reduce = %+v", c)
	}
	// No clamping.
	c = c.Reduce(Point{-1e6, 1e6})
	if c != (Center{60 - 1e6, 45 + 1e6}) {
		t.Fatalf("reduce far = %+v", c)
	}
	if c = c.Reduce(Point{}); c != (Center{60 - 1e6, 45 + 1e6}) {
		t.Fatalf("zero pan moved center: %+v", c)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m := Identity().Translate(-10, 20).Scale(3, 2).Translate(7, 9)
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("expected invertible")
	}
	for _, p := range []Point{{0, 0}, {1, 2}, {-40.5, 99}} {
		if got := inv.Apply(m.Apply(p)); !nearPoint(got, p) {
			t.Errorf("round trip %+v -> %+v", p, got)
		}
	}
}

func TestInvertSingular(t *testing.T) {
	for _, m := range []Matrix{
		{},
		{A: 1, B: 2, C: 2, D: 4},
		{A: math.NaN(), D: 1},
		{A: math.Inf(1), D: 1},
	} {
		if _, ok := m.Invert(); ok {
			t.Errorf("%+v: expected singular", m)
		}
	}
}

func TestToLocal(t *testing.T) {
	if _, ok := ToLocal(nil, Point{1, 1}); ok {
		t.Error("nil ctm should fail")
	}
	if _, ok := ToLocal(&Matrix{}, Point{1, 1}); ok {
		t.Error("singular ctm should fail")
	}

	// 300px canvas at (25,25) showing the home viewBox: 3px per unit.
	ctm := Home.ViewBox().ScreenCTM(Point{25, 25}, 300)
	got, ok := ToLocal(&ctm, Point{25 + 150, 25 + 30})
	if !ok {
		t.Fatal("expected ok")
	}
	if !nearPoint(got, Point{50, 10}) {
		t.Errorf("local = %+v, want {50 10}", got)
	}
}

func TestScreenCTMFollowsViewBox(t *testing.T) {
	vb := Center{80, 20}.ViewBox()
	ctm := vb.ScreenCTM(Point{}, 300)
	// The viewBox's top-left corner lands on the content origin.
	minX, minY := float64(vb.MinX), float64(vb.MinY)
	if got := ctm.Apply(Point{minX, minY}); !nearPoint(got, Point{}) {
		t.Errorf("min corner -> %+v", got)
	}
	if got := ctm.Apply(Point{minX + Size, minY + Size}); !nearPoint(got, Point{300, 300}) {
		t.Errorf("max corner -> %+v", got)
	}
}

func TestScreenCTMRectDegenerate(t *testing.T) {
	ctm := ViewBox{}.ScreenCTMRect(Point{}, 10, 10)
	if _, ok := ToLocal(&ctm, Point{}); ok {
		t.Error("empty viewBox should give a singular ctm")
	}
}

func TestViewBoxStringMatchesStoredCenter(t *testing.T) {
	centers := []Center{
		{16777267, 16777216},
		{1e8 + 3, -1e8 - 3},
		{60.00000000000001, 39.99999999999999},
		{0.1, -0.7},
		Home.Reduce(Point{1.0 / 3, -2.0 / 3}),
	}
	for _, c := range centers {
		fields := strings.Fields(c.ViewBox().String())
		if len(fields) != 4 || fields[2] != "100" || fields[3] != "100" {
			t.Fatalf("%+v: viewBox = %q", c, fields)
		}
		for i, want := range []float32{c.X - 50, c.Y - 50} {
			got, err := strconv.ParseFloat(fields[i], 32)
			if err != nil {
				t.Fatal(err)
			}
			if float32(got) != want {
				t.Errorf("%+v: field %d = %s, want %v", c, i, fields[i], want)
			}
		}
	}
}

func TestReduceRoundsToStoredPrecision(t *testing.T) {
	c := Home.Reduce(Point{X: 10.000000000000002, Y: -9.999999999999998})
	if c != (Center{60, 40}) {
		t.Errorf("center = %+v", c)
	}
	if got := c.ViewBox().String(); got != "10 -10 100 100" {
		t.Errorf("viewBox = %q", got)
	}
}
