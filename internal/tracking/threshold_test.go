package tracking

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	skin  = color.RGBA{R: 80, G: 60, B: 60, A: 255}
	black = color.RGBA{A: 255}
)

func frame(w, h int, hits ...image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, black)
		}
	}
	for _, p := range hits {
		img.SetRGBA(p.X, p.Y, skin)
	}
	return img
}

func TestToHSV8(t *testing.T) {
	c, _ := colorful.MakeColor(skin)
	h, s, v := toHSV8(c)
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 64.0, s)
	assert.Equal(t, 80.0, v)
	assert.True(t, DefaultSkinRange().Contains(h, s, v))
}

func TestContainsInclusive(t *testing.T) {
	r := DefaultSkinRange()
	assert.True(t, r.Contains(0, 50, 50))
	assert.True(t, r.Contains(20, 100, 100))
	assert.False(t, r.Contains(21, 60, 60))
	assert.False(t, r.Contains(10, 49, 60))
	assert.False(t, r.Contains(10, 60, 101))
}

func TestFindCentroid(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want Centroid
		ok   bool
	}{
		{
			name: "two pixels",
			img:  frame(10, 10, image.Pt(2, 3), image.Pt(6, 7)),
			want: Centroid{X: 0.4, Y: 0.5},
			ok:   true,
		},
		{
			name: "single pixel",
			img:  frame(4, 8, image.Pt(1, 2)),
			want: Centroid{X: 0.25, Y: 0.25},
			ok:   true,
		},
		{
			name: "no match",
			img:  frame(10, 10),
			ok:   false,
		},
		{
			name: "empty image",
			img:  image.NewRGBA(image.Rectangle{}),
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindCentroid(tt.img, DefaultSkinRange())
			require.Equal(t, tt.ok, ok)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
				t.Errorf("centroid (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindCentroidGenericImage(t *testing.T) {
	src := frame(10, 10, image.Pt(2, 3), image.Pt(6, 7))
	img := image.NewNRGBA(image.Rect(5, 5, 15, 15))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x+5, y+5, src.At(x, y))
		}
	}
	got, ok := FindCentroid(img, DefaultSkinRange())
	require.True(t, ok)
	assert.InDelta(t, 0.4, got.X, 1e-6)
	assert.InDelta(t, 0.5, got.Y, 1e-6)
}

func TestCell(t *testing.T) {
	var c Cell
	_, ok := c.Load()
	assert.False(t, ok)

	c.Store(Centroid{X: 0.1, Y: 0.2})
	c.Store(Centroid{X: 0.3, Y: 0.4})
	got, ok := c.Load()
	require.True(t, ok)
	assert.Equal(t, Centroid{X: 0.3, Y: 0.4}, got)
	assert.Equal(t, "[0.300, 0.400]", got.String())
}
