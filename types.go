package cielab

import "image/color"

// SRGB is a gamma encoded 8 bit sRGB color.
// Channels are nominally in [0, 255], values outside are kept as is.
type SRGB struct {
	R, G, B int
}

// XYZ holds CIEXYZ tristimulus values in the ICC Profile Connection Space.
type XYZ struct {
	X, Y, Z float32
}

// Lab holds CIE 1976 L*, a*, b* values.
type Lab struct {
	L, A, B float32
}

// ScaledLab is the 16 bit fractional integer encoding of Lab.
// Channels are nominally in [0, 65535], values outside are kept as is.
type ScaledLab struct {
	L, A, B int
}

// Clamp limits channels to [0, 255].
func (c SRGB) Clamp() SRGB {
	return SRGB{R: clampInt(c.R, srgbMax), G: clampInt(c.G, srgbMax), B: clampInt(c.B, srgbMax)}
}

// Color returns an opaque color.NRGBA, clamping out of range channels.
func (c SRGB) Color() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
}

// SRGBFromColor takes the 8 bit channels of c, alpha is ignored.
func SRGBFromColor(c color.Color) SRGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return SRGB{R: int(n.R), G: int(n.G), B: int(n.B)}
}

// InRange reports whether all channels fit into 16 bits.
func (c ScaledLab) InRange() bool {
	return c == c.Clamp()
}

// Clamp limits channels to [0, 65535].
func (c ScaledLab) Clamp() ScaledLab {
	return ScaledLab{L: clampInt(c.L, scaledMax), A: clampInt(c.A, scaledMax), B: clampInt(c.B, scaledMax)}
}

func clampInt(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
