package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vearutop/cielab"
)

type options struct {
	verbose bool
	json    bool
	clamp   bool
}

type triple struct {
	Type   string `json:"type"`
	Values [3]int `json:"values"`
}

type result struct {
	Input  triple `json:"input"`
	Output triple `json:"output"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fail(err)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "convert sRGB8toCIELab16|CIELab16tosRGB8 R|L G|a B|b",
		Short: "Convert colors between 8 bit sRGB and 16 bit scaled CIELab",
		Long: "Convert colors between 8 bit sRGB and the 16 bit integer scaled CIELab\n" +
			"used by ICC profiles and DICOM. Values are decimal or 0x hexadecimal,\n" +
			"sRGB8toCIELab16 also accepts a single SVG color name.",
		Example: "  convert sRGB8toCIELab16 255 0 0\n" +
			"  convert CIELab16tosRGB8 0xffff 0x8080 0x8080\n" +
			"  convert sRGB8toCIELab16 tomato",
		Args:          validateArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	// Values after the mode may be negative and must not be taken for flags.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log intermediate XYZ and Lab values")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print result as JSON")
	cmd.Flags().BoolVar(&opts.clamp, "clamp", false, "clamp output to the nominal range")
	return cmd
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) == 4 || len(args) == 2 {
		return nil
	}
	return fmt.Errorf("%w: got %d, want 4", cielab.ErrArgCount, len(args))
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	conv, err := cielab.ParseConversion(args[0])
	if err != nil {
		return err
	}
	input, err := parseInput(conv, args[1:])
	if err != nil {
		return err
	}
	output, err := conv.Apply(input)
	if err != nil {
		return err
	}
	if opts.clamp {
		output = clamp(conv, output)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logStages(cmd.Context(), logger, conv, input)

	res := result{
		Input:  triple{Type: conv.InputName(), Values: input},
		Output: triple{Type: conv.OutputName(), Values: output},
	}
	if opts.json {
		payload, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return err
	}
	printTriple(cmd.OutOrStdout(), res.Input)
	printTriple(cmd.OutOrStdout(), res.Output)
	return nil
}

func parseInput(conv cielab.Conversion, args []string) ([3]int, error) {
	var v [3]int
	if len(args) == 1 {
		if conv != cielab.SRGB8ToCIELab16 {
			return v, fmt.Errorf("%s: %w: got 2, want 4", conv, cielab.ErrArgCount)
		}
		c, err := cielab.ColorByName(args[0])
		if err != nil {
			return v, err
		}
		return [3]int{c.R, c.G, c.B}, nil
	}
	for i, a := range args {
		n, err := cielab.ParseValue(a)
		if err != nil {
			return v, err
		}
		v[i] = n
	}
	return v, nil
}

func clamp(conv cielab.Conversion, v [3]int) [3]int {
	if conv == cielab.CIELab16ToSRGB8 {
		c := cielab.SRGB{R: v[0], G: v[1], B: v[2]}.Clamp()
		return [3]int{c.R, c.G, c.B}
	}
	c := cielab.ScaledLab{L: v[0], A: v[1], B: v[2]}.Clamp()
	return [3]int{c.L, c.A, c.B}
}

func logStages(ctx context.Context, logger *slog.Logger, conv cielab.Conversion, v [3]int) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	switch conv {
	case cielab.SRGB8ToCIELab16:
		xyz := cielab.SRGBToCIEXYZ(cielab.SRGB{R: v[0], G: v[1], B: v[2]})
		lab := cielab.CIEXYZToCIELab(xyz)
		logger.DebugContext(ctx, "sRGB to CIELab",
			slog.Any("xyz", xyz), slog.Any("lab", lab), slog.Any("scaled", cielab.ScaleCIELabToInteger(lab)))
	case cielab.CIELab16ToSRGB8:
		lab := cielab.UnscaleCIELabFromInteger(cielab.ScaledLab{L: v[0], A: v[1], B: v[2]})
		xyz := cielab.CIELabToCIEXYZ(lab)
		logger.DebugContext(ctx, "CIELab to sRGB",
			slog.Any("lab", lab), slog.Any("xyz", xyz), slog.Any("srgb", cielab.CIEXYZToSRGB(xyz)))
	}
}

func printTriple(w io.Writer, t triple) {
	fmt.Fprintf(w, "%s: %d %d %d (dec) (%#x %#x %#x)\n", t.Type,
		t.Values[0], t.Values[1], t.Values[2], t.Values[0], t.Values[1], t.Values[2])
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
