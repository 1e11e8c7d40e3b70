package cielab

import "math"

// ScaleCIELabToInteger encodes Lab as 16 bit fractional integers, the same way
// ICC profiles encode the Lab PCS (ICC v4.3 Table 12, DICOM PS3.3 C.10.7.1.1).
//
// L* 0..100 maps to 0..65535, a* and b* -128..127 map to 0..65535.
// Products are computed in single precision and rounded half away from zero.
// No clamping is done, out of range input yields out of range output.
func ScaleCIELabToInteger(c Lab) ScaledLab {
	return ScaledLab{
		L: roundHalfAway(c.L * scaledMax / labLRange),
		A: roundHalfAway((c.A + labABOffset) * scaledMax / labABRange),
		B: roundHalfAway((c.B + labABOffset) * scaledMax / labABRange),
	}
}

// UnscaleCIELabFromInteger decodes 16 bit fractional integers to Lab.
//
// The result is computed in double precision and stored in single precision.
func UnscaleCIELabFromInteger(c ScaledLab) Lab {
	return Lab{
		L: float32(float64(c.L) / scaledMax * labLRange),
		A: float32(float64(c.A)/scaledMax*labABRange - labABOffset),
		B: float32(float64(c.B)/scaledMax*labABRange - labABOffset),
	}
}

func roundHalfAway(v float32) int {
	return int(math.Round(float64(v)))
}
