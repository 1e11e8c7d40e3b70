package cielab

// SRGBToScaledCIELab converts 8 bit sRGB to 16 bit integer scaled Lab.
func SRGBToScaledCIELab(c SRGB) ScaledLab {
	return ScaleCIELabToInteger(SRGBToCIELab(c))
}

// ScaledCIELabToSRGB converts 16 bit integer scaled Lab to 8 bit sRGB.
func ScaledCIELabToSRGB(c ScaledLab) SRGB {
	return CIELabToSRGB(UnscaleCIELabFromInteger(c))
}

// SRGBToCIELab converts 8 bit sRGB to Lab.
func SRGBToCIELab(c SRGB) Lab {
	return CIEXYZToCIELab(SRGBToCIEXYZ(c))
}

// CIELabToSRGB converts Lab to 8 bit sRGB.
func CIELabToSRGB(c Lab) SRGB {
	return CIEXYZToSRGB(CIELabToCIEXYZ(c))
}
