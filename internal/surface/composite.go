package surface

import (
	"image"
	"image/color"
	"math"
)

// multiply composites col onto dst through mask using the separable
// multiply blend with alpha:
//
//	Cs' = (1 - ab)·Cs + ab·Cs·Cb
//	co  = as·Cs' + (1 - as)·ab·Cb
//	ao  = as + ab·(1 - as)
//
// where Cs, Cb are non-premultiplied and co is premultiplied.
//
// image/draw only offers Over and Src, so the blend is done per pixel.
func multiply(dst *image.RGBA, mask *image.Alpha, col color.Color) {
	src := color.NRGBAModel.Convert(col).(color.NRGBA)
	cs := [3]float64{float64(src.R) / 255, float64(src.G) / 255, float64(src.B) / 255}
	srcAlpha := float64(src.A) / 255

	b := dst.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cov := mask.AlphaAt(x, y).A
			if cov == 0 {
				continue
			}
			as := srcAlpha * float64(cov) / 255
			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			ab := float64(px[3]) / 255

			for ch := 0; ch < 3; ch++ {
				// premultiplied backdrop channel, ab·Cb
				pb := float64(px[ch]) / 255
				cb := 0.0
				if ab > 0 {
					cb = pb / ab
				}
				blended := (1-ab)*cs[ch] + ab*cs[ch]*cb
				px[ch] = to8(as*blended + (1-as)*pb)
			}
			px[3] = to8(as + ab*(1-as))
		}
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}
