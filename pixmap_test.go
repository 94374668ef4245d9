package orrery

import (
	"image"
	"math"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 4)

	c := RGB(1, 0.5, 0.25)
	pm.SetPixel(2, 1, c)

	got := pm.GetPixel(2, 1)
	if math.Abs(got.R-1) > 0.01 || math.Abs(got.G-0.5) > 0.01 || math.Abs(got.B-0.25) > 0.01 {
		t.Errorf("GetPixel = %+v, want approx %+v", got, c)
	}
	if got.A != 1 {
		t.Errorf("alpha = %v, want 1", got.A)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)

	// Writes outside the buffer are dropped, reads return transparent.
	pm.SetPixel(-1, 0, White)
	pm.SetPixel(0, -1, White)
	pm.SetPixel(2, 0, White)
	pm.SetPixel(0, 2, White)
	pm.BlendPixel(5, 5, White)

	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds read = %+v, want transparent", got)
	}
	for _, b := range pm.Data() {
		if b != 0 {
			t.Fatal("out-of-bounds write modified the buffer")
		}
	}
}

func TestBlendPixelOpaque(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.SetPixel(0, 0, RGB(0, 1, 0))

	pm.BlendPixel(0, 0, RGB(1, 0, 0))
	got := pm.GetPixel(0, 0)
	if math.Abs(got.R-1) > 0.01 || got.G > 0.01 {
		t.Errorf("opaque blend = %+v, want red", got)
	}
}

func TestBlendPixelTranslucent(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.SetPixel(0, 0, Black)

	pm.BlendPixel(0, 0, White.WithAlpha(0.5))
	got := pm.GetPixel(0, 0)
	if math.Abs(got.R-0.5) > 0.01 {
		t.Errorf("50%% white over black R = %v, want 0.5", got.R)
	}
	if got.A < 0.99 {
		t.Errorf("alpha = %v, want opaque", got.A)
	}
}

func TestBlendPixelZeroAlphaNoop(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.SetPixel(0, 0, RGB(0.3, 0.6, 0.9))
	before := pm.GetPixel(0, 0)

	pm.BlendPixel(0, 0, White.WithAlpha(0))
	if got := pm.GetPixel(0, 0); got != before {
		t.Errorf("zero-alpha blend changed pixel: %+v vs %+v", got, before)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(RGB(0.2, 0.2, 0.2))

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := pm.GetPixel(x, y); math.Abs(got.R-0.2) > 0.01 {
				t.Fatalf("pixel (%d,%d) = %+v after Clear", x, y, got)
			}
		}
	}
}

func TestPixmapImageInterface(t *testing.T) {
	pm := NewPixmap(5, 7)

	var img image.Image = pm
	if got := img.Bounds(); got != image.Rect(0, 0, 5, 7) {
		t.Errorf("Bounds = %v", got)
	}

	pm.SetPixel(1, 2, White)
	r, g, b, a := img.At(1, 2).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("At(1,2) = %v %v %v %v, want white", r, g, b, a)
	}
}

func TestToImageCopiesData(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, White)

	img := pm.ToImage()
	pm.SetPixel(0, 0, Black)

	if img.Pix[0] != 255 {
		t.Error("ToImage shares storage with the pixmap")
	}
}
