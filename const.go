package cielab

// Reference white, observer 2°, illuminant D65.
const (
	refX = 95.047
	refY = 100.000
	refZ = 108.883
)

const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116
)

const (
	srgbDecodeThreshold = 0.04045
	srgbEncodeThreshold = 0.0031308
	srgbGamma           = 2.4
)

const (
	scaledMax     = 65535
	labLRange     = 100
	labABRange    = 255
	labABOffset   = 128
	srgbMax       = 255
	srgbComponent = 100 // linear channels are scaled to percent before the matrix
)
