package tracking

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSVRange is an inclusive per-channel window in 8-bit OpenCV HSV units:
// hue 0-180, saturation and value 0-255.
type HSVRange struct {
	HLow  float64 `mapstructure:"h_low"`
	SLow  float64 `mapstructure:"s_low"`
	VLow  float64 `mapstructure:"v_low"`
	HHigh float64 `mapstructure:"h_high"`
	SHigh float64 `mapstructure:"s_high"`
	VHigh float64 `mapstructure:"v_high"`
}

// DefaultSkinRange matches darker skin tones under indoor light.
func DefaultSkinRange() HSVRange {
	return HSVRange{
		HLow: 0, SLow: 50, VLow: 50,
		HHigh: 20, SHigh: 100, VHigh: 100,
	}
}

// Contains reports whether the 8-bit HSV triple falls inside the range.
func (r HSVRange) Contains(h, s, v float64) bool {
	return h >= r.HLow && h <= r.HHigh &&
		s >= r.SLow && s <= r.SHigh &&
		v >= r.VLow && v <= r.VHigh
}

// toHSV8 converts a color to OpenCV's 8-bit HSV scale.
func toHSV8(c colorful.Color) (h, s, v float64) {
	h, s, v = c.Hsv()
	return math.Round(h / 2), math.Round(s * 255), math.Round(v * 255)
}

// FindCentroid thresholds img by r and returns the mean position of the
// matched pixels normalized by the frame size. ok is false when nothing
// matched, in which case no centroid exists.
func FindCentroid(img image.Image, r HSVRange) (c Centroid, ok bool) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return Centroid{}, false
	}

	var sx, sy, n int
	match := func(x, y int, col colorful.Color) {
		if r.Contains(toHSV8(col)) {
			sx += x
			sy += y
			n++
		}
	}

	if rgba, isRGBA := img.(*image.RGBA); isRGBA {
		for y := 0; y < h; y++ {
			row := rgba.Pix[y*rgba.Stride:]
			for x := 0; x < w; x++ {
				p := row[x*4:]
				match(x, y, colorful.Color{
					R: float64(p[0]) / 255,
					G: float64(p[1]) / 255,
					B: float64(p[2]) / 255,
				})
			}
		}
	} else {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				col, _ := colorful.MakeColor(img.At(b.Min.X+x, b.Min.Y+y))
				match(x, y, col)
			}
		}
	}

	if n == 0 {
		return Centroid{}, false
	}
	return Centroid{
		X: float32(float64(sx) / float64(n) / float64(w)),
		Y: float32(float64(sy) / float64(n) / float64(h)),
	}, true
}
