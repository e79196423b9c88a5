package iconbuilder

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestCircleMask(t *testing.T) {
	m := CircleMask(21, 21, image.Pt(10, 10), 5)
	tests := []struct {
		x, y int
		want uint8
	}{
		{10, 10, 255},
		{15, 10, 255},
		{10, 5, 255},
		{16, 10, 0},
		{14, 14, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := m.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectMaskClips(t *testing.T) {
	m := RectMask(4, 4, image.Rect(-2, 2, 2, 10))
	count := 0
	for _, v := range m.Pix {
		if v == 255 {
			count++
		}
	}
	if count != 4 {
		t.Errorf("%d covered pixels, want 4", count)
	}
	if m.At(1, 3) != 255 || m.At(2, 3) != 0 {
		t.Error("rect not clipped to [0,2)x[2,4)")
	}
}

func TestArcMask(t *testing.T) {
	bbox := image.Rect(0, 0, 100, 100)
	ring := ArcMask(100, 100, bbox, 0, 360, 10)
	if ring.At(50, 50) != 0 {
		t.Error("ring covers its center")
	}
	if ring.At(50, 95) != 255 || ring.At(50, 5) != 255 || ring.At(5, 50) != 255 {
		t.Error("ring misses its stroke")
	}

	// Angles run clockwise from 3 o'clock, so 0..180 is the lower half.
	lower := ArcMask(100, 100, bbox, 0, 180, 10)
	if lower.At(50, 95) != 255 {
		t.Error("lower arc misses 6 o'clock")
	}
	if lower.At(50, 5) != 0 {
		t.Error("lower arc covers 12 o'clock")
	}

	upper := ArcMask(100, 100, bbox, -120, -60, 10)
	if upper.At(50, 5) != 255 || upper.At(50, 95) != 0 || upper.At(95, 50) != 0 {
		t.Error("negative angles not handled")
	}
}

func TestUnionAndScale(t *testing.T) {
	a := RectMask(4, 1, image.Rect(0, 0, 1, 1))
	b := RectMask(4, 1, image.Rect(3, 0, 4, 1)).Scale(128)
	u, err := Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{255, 0, 0, 128}
	for i, w := range want {
		if u.Pix[i] != w {
			t.Errorf("Union[%d] = %d, want %d", i, u.Pix[i], w)
		}
	}
	if _, err := Union(a, NewMask(3, 1)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("err = %v, want ErrDimensionMismatch", err)
	}
	if m, err := Union(); err == nil || m != nil {
		t.Errorf("Union() = %v, %v, want an error", m, err)
	}
}

func TestMaskFromAlpha(t *testing.T) {
	b := NewPixelBuffer(2, 1)
	b.Set(1, 0, color.NRGBA{1, 2, 3, 99})
	m := MaskFromAlpha(b)
	if m.At(0, 0) != 0 || m.At(1, 0) != 99 {
		t.Errorf("mask = %v", m.Pix)
	}
}

func TestMaskPlace(t *testing.T) {
	m := NewMask(2, 2)
	for i := range m.Pix {
		m.Pix[i] = 200
	}
	out := m.Place(3, 3, image.Pt(-1, 2))
	if out.At(0, 2) != 200 {
		t.Error("visible part not placed")
	}
	covered := 0
	for _, v := range out.Pix {
		if v != 0 {
			covered++
		}
	}
	if covered != 1 {
		t.Errorf("%d pixels covered, want 1", covered)
	}
}
