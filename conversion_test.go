package cielab

import (
	"errors"
	"testing"
)

func TestParseConversion(t *testing.T) {
	for in, want := range map[string]Conversion{
		"sRGB8toCIELab16": SRGB8ToCIELab16,
		"SRGB8TOCIELAB16": SRGB8ToCIELab16,
		"cielab16tosrgb8": CIELab16ToSRGB8,
		"CIELab16tosRGB8": CIELab16ToSRGB8,
	} {
		got, err := ParseConversion(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}

	_, err := ParseConversion("sRGB8toXYZ")
	var pe *ParseError
	if !errors.As(err, &pe) || !errors.Is(err, ErrUnknownConversion) || pe.Arg != "sRGB8toXYZ" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConversion_Apply(t *testing.T) {
	out, err := SRGB8ToCIELab16.Apply([3]int{255, 255, 255})
	if err != nil {
		t.Fatal(err)
	}
	if out != [3]int{0xffff, 0x8081, 0x807d} {
		t.Fatalf("unexpected output: %#04x", out)
	}

	out, err = CIELab16ToSRGB8.Apply(out)
	if err != nil {
		t.Fatal(err)
	}
	if out != [3]int{255, 255, 255} {
		t.Fatalf("unexpected output: %v", out)
	}

	if _, err := Conversion(0).Apply(out); !errors.Is(err, ErrUnknownConversion) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConversion_names(t *testing.T) {
	if SRGB8ToCIELab16.InputName() != "sRGB8" || SRGB8ToCIELab16.OutputName() != "CIELab16" {
		t.Fatal("unexpected names for sRGB8toCIELab16")
	}
	if CIELab16ToSRGB8.InputName() != "CIELab16" || CIELab16ToSRGB8.OutputName() != "sRGB8" {
		t.Fatal("unexpected names for CIELab16tosRGB8")
	}
	if s := Conversion(7).String(); s != "Conversion(7)" {
		t.Fatalf("unexpected string: %s", s)
	}
}

func TestParseValue(t *testing.T) {
	for in, want := range map[string]int{
		"0":      0,
		"255":    255,
		"0xff":   255,
		"0x8080": 32896,
		"0xFFFF": 65535,
		"-1":     -1,
	} {
		got, err := ParseValue(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if got != want {
			t.Fatalf("%s: expected %d, got %d", in, want, got)
		}
	}

	for _, in := range []string{"", "0x", "ff", "1.5", "0xfffffffff", "12a"} {
		if _, err := ParseValue(in); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
	}
}

func TestColorByName(t *testing.T) {
	c, err := ColorByName("Tomato")
	if err != nil {
		t.Fatal(err)
	}
	if c != (SRGB{R: 0xff, G: 0x63, B: 0x47}) {
		t.Fatalf("unexpected color: %+v", c)
	}

	if _, err := ColorByName("no-such-color"); !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("unexpected error: %v", err)
	}
}
