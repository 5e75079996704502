package view

import (
	"math"
	"testing"

	"mad-life/internal/core"
)

func TestRoundTrip(t *testing.T) {
	translates := [][2]int{{0, 0}, {400, 300}, {-37, 12}, {-1, -1}, {1 << 20, -(1 << 20)}}
	for scale := MinScale; scale <= MaxScale; scale++ {
		for _, tr := range translates {
			v := New(scale, tr[0], tr[1])
			for wx := -20; wx <= 20; wx++ {
				for _, wy := range []int{-99999, -3, -1, 0, 1, 7, 123456} {
					sx, sy := v.WorldToScreen(wx, wy)
					gx, gy := v.ScreenToWorld(sx, sy)
					if gx != wx || gy != wy {
						t.Fatalf("scale=%d translate=%v: round trip of (%d,%d) gave (%d,%d)", scale, tr, wx, wy, gx, gy)
					}
				}
			}
		}
	}
}

func TestScreenToWorldCellEdges(t *testing.T) {
	v := New(4, 0, 0)
	tests := []struct {
		sx   int
		want int
	}{
		{0, 0},
		{3, 0},
		{4, 1},
		{-1, -1},
		{-4, -1},
		{-5, -2},
	}
	for _, tt := range tests {
		if got, _ := v.ScreenToWorld(tt.sx, 0); got != tt.want {
			t.Errorf("ScreenToWorld(%d) = %d, want %d", tt.sx, got, tt.want)
		}
	}
}

func TestEveryPixelMapsIntoItsCell(t *testing.T) {
	v := New(5, 13, -7)
	for sx := -40; sx < 40; sx++ {
		wx, _ := v.ScreenToWorld(sx, 0)
		left, _ := v.WorldToScreen(wx, 0)
		if sx < left || sx >= left+v.Scale {
			t.Fatalf("pixel %d mapped to cell %d spanning [%d,%d)", sx, wx, left, left+v.Scale)
		}
	}
}

func TestZoomClamping(t *testing.T) {
	tests := []struct {
		name  string
		apply func(v *Viewport)
		want  int
	}{
		{"by one", func(v *Viewport) { v.ZoomBy(1) }, 6},
		{"by huge positive", func(v *Viewport) { v.ZoomBy(math.MaxInt32) }, MaxScale},
		{"by huge negative", func(v *Viewport) { v.ZoomBy(math.MinInt32) }, MinScale},
		{"to zero", func(v *Viewport) { v.ZoomTo(0) }, MinScale},
		{"to negative", func(v *Viewport) { v.ZoomTo(-12) }, MinScale},
		{"to nine", func(v *Viewport) { v.ZoomTo(9) }, MaxScale},
		{"to in range", func(v *Viewport) { v.ZoomTo(3) }, 3},
		{"repeated up", func(v *Viewport) {
			for i := 0; i < 20; i++ {
				v.ZoomBy(1)
			}
		}, MaxScale},
		{"repeated down", func(v *Viewport) {
			for i := 0; i < 20; i++ {
				v.ZoomBy(-1)
			}
		}, MinScale},
		{"down then up", func(v *Viewport) {
			for i := 0; i < 20; i++ {
				v.ZoomBy(-1)
			}
			v.ZoomBy(2)
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(5, 0, 0)
			tt.apply(&v)
			if v.Scale != tt.want {
				t.Errorf("Scale = %d, want %d", v.Scale, tt.want)
			}
		})
	}
}

func TestNewClampsScale(t *testing.T) {
	if v := New(100, 0, 0); v.Scale != MaxScale {
		t.Errorf("New(100).Scale = %d, want %d", v.Scale, MaxScale)
	}
	if v := New(-5, 0, 0); v.Scale != MinScale {
		t.Errorf("New(-5).Scale = %d, want %d", v.Scale, MinScale)
	}
}

func TestPanIsUnbounded(t *testing.T) {
	v := New(2, 10, 10)
	v.Pan(-1<<30, 1<<30)
	v.Pan(5, -5)
	if v.TX != 10-(1<<30)+5 || v.TY != 10+(1<<30)-5 {
		t.Fatalf("translate = (%d,%d)", v.TX, v.TY)
	}
}

func TestVisibleCells(t *testing.T) {
	v := New(4, 6, -2)
	got := v.VisibleCells(16, 8)
	want := core.Rect{Min: core.Cell{X: -2, Y: 0}, Max: core.Cell{X: 3, Y: 3}}
	if got != want {
		t.Fatalf("VisibleCells = %+v, want %+v", got, want)
	}
	if !v.VisibleCells(0, 10).Empty() {
		t.Fatal("zero width drawable should see no cells")
	}
}
