// Package cielab converts pixel colors between 8 bit sRGB, CIE 1976 L*a*b* and
// the 16 bit integer scaled L*a*b* encoding of ICC profiles and DICOM
// (ICC v4.3 Tables 12 and 13, DICOM PS3.3 C.10.7.1.1).
//
// All conversions are pure functions over value triples. Intermediate stages
// keep single precision results so that round trips reproduce the published
// reference vectors bit for bit.
package cielab
