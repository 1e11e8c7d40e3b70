package cielab

import "math"

// CIEXYZToCIELab converts CIEXYZ to CIE 1976 L*a*b* relative to the D65
// reference white (95.047, 100.000, 108.883).
func CIEXYZToCIELab(c XYZ) Lab {
	fx := labF(float64(c.X) / refX)
	fy := labF(float64(c.Y) / refY)
	fz := labF(float64(c.Z) / refZ)

	return Lab{
		L: float32(116*fy - 16),
		A: float32(500 * (fx - fy)),
		B: float32(200 * (fy - fz)),
	}
}

// CIELabToCIEXYZ is the inverse of CIEXYZToCIELab.
func CIELabToCIEXYZ(c Lab) XYZ {
	fy := float64((c.L + 16) / 116)
	fx := float64(c.A/500) + fy
	fz := fy - float64(c.B/200)

	return XYZ{
		X: float32(refX * labFInv(fx)),
		Y: float32(refY * labFInv(fy)),
		Z: float32(refZ * labFInv(fz)),
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Pow(t, 1.0/3)
	}
	return labKappa*t + labOffset
}

// labFInv picks the branch on f³, not on f.
func labFInv(f float64) float64 {
	if f3 := math.Pow(f, 3); f3 > labEpsilon {
		return f3
	}
	return (f - labOffset) / labKappa
}
