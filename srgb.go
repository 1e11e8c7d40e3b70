package cielab

import "math"

// SRGBToCIEXYZ converts an 8 bit sRGB color to CIEXYZ in the ICC PCS.
func SRGBToCIEXYZ(c SRGB) XYZ {
	r := srgbInvOetf(float64(c.R)/srgbMax) * srgbComponent
	g := srgbInvOetf(float64(c.G)/srgbMax) * srgbComponent
	b := srgbInvOetf(float64(c.B)/srgbMax) * srgbComponent

	// sRGB primaries, observer 2°, illuminant D65.
	return XYZ{
		X: float32(0.4124*r + 0.3576*g + 0.1805*b),
		Y: float32(0.2126*r + 0.7152*g + 0.0722*b),
		Z: float32(0.0193*r + 0.1192*g + 0.9505*b),
	}
}

// CIEXYZToSRGB converts CIEXYZ in the ICC PCS to an 8 bit sRGB color.
// The result is not clamped, see SRGB.Clamp.
func CIEXYZToSRGB(c XYZ) SRGB {
	// Division happens on the stored single precision values.
	x := float64(c.X / srgbComponent)
	y := float64(c.Y / srgbComponent)
	z := float64(c.Z / srgbComponent)

	r := 3.2406*x - 1.5372*y - 0.4986*z
	g := -0.9689*x + 1.8758*y + 0.0415*z
	b := 0.0557*x - 0.2040*y + 1.0570*z

	return SRGB{
		R: int(math.Round(srgbOetf(r) * srgbMax)),
		G: int(math.Round(srgbOetf(g) * srgbMax)),
		B: int(math.Round(srgbOetf(b) * srgbMax)),
	}
}

func srgbInvOetf(v float64) float64 {
	if v <= srgbDecodeThreshold {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, srgbGamma)
}

func srgbOetf(v float64) float64 {
	if v <= srgbEncodeThreshold {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/srgbGamma) - 0.055
}
