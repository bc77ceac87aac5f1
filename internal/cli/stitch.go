package cli

import (
	"fmt"

	"github.com/katalvlaran/pivkit/codec"
	"github.com/katalvlaran/pivkit/mask"
	"github.com/katalvlaran/pivkit/stitch"
	"github.com/spf13/cobra"
)

func newStitchCmd(a *app) *cobra.Command {
	var (
		blend       string
		output      string
		parallel    bool
		independent bool
		corrected   bool
	)

	cmd := &cobra.Command{
		Use:   "stitch FIELD1 FIELD2",
		Short: "Merge two overlapping fields onto one grid",
		Long: `Merge two vector fields onto a grid covering both, blending the overlap.

Blend modes: none, average, cubic (linear ramp), cosine (raised-cosine ramp).
An unknown mode is not fatal: the overlap is written as zeros and a warning
is printed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f1, err := codec.ReadField(args[0])
			if err != nil {
				return err
			}
			f2, err := codec.ReadField(args[1])
			if err != nil {
				return err
			}

			opts := []stitch.Option{stitch.WithLogger(a.logger)}
			if parallel {
				opts = append(opts, stitch.WithParallel())
			}
			if independent {
				opts = append(opts, stitch.WithIndependentAxes())
			}
			if corrected {
				opts = append(opts, stitch.WithCorrectedWeights())
			}

			res, err := stitch.Stitch(f1, f2, stitch.BlendMode(blend), opts...)
			if err != nil {
				return err
			}
			if err := codec.WriteField(output, res.Field); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range res.Warnings {
				printWarning(out, w)
			}
			rows, cols := res.Field.Shape()
			printSuccess(out, "stitched %s + %s -> %s", args[0], args[1], output)
			printLabelValue(out, "grid", "%d×%d (dx=%g, dy=%g)", rows, cols, res.Grid.Dx, res.Grid.Dy)
			printLabelValue(out, "overlap", "%s", describeOverlap(res.Layout))

			m, err := mask.FromField(res.Field)
			if err != nil {
				return err
			}
			if holes := m.Holes(); len(holes) > 0 {
				printWarning(out, fmt.Sprintf("%d masked nodes in %d holes", m.Count(), len(holes)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&blend, "blend", "b", string(stitch.BlendCosine), "Overlap blend mode: none, average, cubic or cosine")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (required)")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Interpolate both fields concurrently")
	cmd.Flags().BoolVar(&independent, "independent-axes", false, "Size the y axis from its own span")
	cmd.Flags().BoolVar(&corrected, "corrected-weights", false, "Weight field 1 by W1 and field 2 by W2")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func describeOverlap(l stitch.Layout) string {
	if !l.HasOverlap() {
		return "none"
	}
	o := l.Overlap

	return fmt.Sprintf("rows [%d,%d) cols [%d,%d)", o.Row0, o.Row1, o.Col0, o.Col1)
}
