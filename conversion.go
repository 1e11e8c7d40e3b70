package cielab

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Errors reported while parsing command line style input.
var (
	ErrUnknownConversion = errors.New("unrecognized conversion type")
	ErrInvalidValue      = errors.New("invalid value")
	ErrUnknownColor      = errors.New("unknown color name")
	ErrArgCount          = errors.New("incorrect number of arguments")
)

// ParseError describes an argument that could not be parsed.
type ParseError struct {
	Arg string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Arg, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Conversion identifies an end to end conversion between integer triples.
type Conversion int

// Supported conversions.
const (
	SRGB8ToCIELab16 Conversion = iota + 1
	CIELab16ToSRGB8
)

var conversionNames = map[Conversion]string{
	SRGB8ToCIELab16: "sRGB8toCIELab16",
	CIELab16ToSRGB8: "CIELab16tosRGB8",
}

// ParseConversion matches a conversion name ignoring case.
func ParseConversion(s string) (Conversion, error) {
	fold := cases.Fold()
	name := fold.String(s)
	for c, n := range conversionNames {
		if fold.String(n) == name {
			return c, nil
		}
	}
	return 0, &ParseError{Arg: s, Err: ErrUnknownConversion}
}

func (c Conversion) String() string {
	if n, ok := conversionNames[c]; ok {
		return n
	}
	return "Conversion(" + strconv.Itoa(int(c)) + ")"
}

// InputName returns the label of the input representation.
func (c Conversion) InputName() string {
	if c == CIELab16ToSRGB8 {
		return "CIELab16"
	}
	return "sRGB8"
}

// OutputName returns the label of the output representation.
func (c Conversion) OutputName() string {
	if c == CIELab16ToSRGB8 {
		return "sRGB8"
	}
	return "CIELab16"
}

// Apply converts an integer triple.
func (c Conversion) Apply(v [3]int) ([3]int, error) {
	switch c {
	case SRGB8ToCIELab16:
		s := SRGBToScaledCIELab(SRGB{R: v[0], G: v[1], B: v[2]})
		return [3]int{s.L, s.A, s.B}, nil
	case CIELab16ToSRGB8:
		s := ScaledCIELabToSRGB(ScaledLab{L: v[0], A: v[1], B: v[2]})
		return [3]int{s.R, s.G, s.B}, nil
	default:
		return v, fmt.Errorf("apply %s: %w", c, ErrUnknownConversion)
	}
}

// ParseValue parses a decimal or 0x prefixed hexadecimal integer.
func ParseValue(s string) (int, error) {
	var (
		v   int64
		err error
	)
	if h, ok := strings.CutPrefix(s, "0x"); ok {
		v, err = strconv.ParseInt(h, 16, 32)
	} else {
		v, err = strconv.ParseInt(s, 10, 32)
	}
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, &ParseError{Arg: s, Err: fmt.Errorf("%w: %w", ErrInvalidValue, err)}
	}
	return int(v), nil
}

// ColorByName returns a named SVG 1.1 color, ignoring case.
func ColorByName(name string) (SRGB, error) {
	c, ok := colornames.Map[cases.Fold().String(name)]
	if !ok {
		return SRGB{}, &ParseError{Arg: name, Err: ErrUnknownColor}
	}
	return SRGBFromColor(c), nil
}
