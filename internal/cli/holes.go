package cli

import (
	"fmt"

	"github.com/katalvlaran/pivkit/codec"
	"github.com/katalvlaran/pivkit/mask"
	"github.com/spf13/cobra"
)

func newHolesCmd(a *app) *cobra.Command {
	var (
		diagonal   bool
		zeroMasked bool
	)

	cmd := &cobra.Command{
		Use:   "holes FIELD",
		Short: "List connected regions of masked nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := codec.ReadField(args[0])
			if err != nil {
				return err
			}
			var opts []mask.Option
			if diagonal {
				opts = append(opts, mask.WithConnectivity(mask.Conn8))
			}
			if zeroMasked {
				opts = append(opts, mask.WithZeroMasked())
			}
			m, err := mask.FromField(f, opts...)
			if err != nil {
				return err
			}
			holes := m.Holes()
			a.logger.Debug("labelled holes", "input", args[0], "holes", len(holes))

			out := cmd.OutOrStdout()
			if len(holes) == 0 {
				printSuccess(out, "%s has no masked nodes", args[0])
				return nil
			}
			printWarning(out, fmt.Sprintf("%d masked nodes in %d holes", m.Count(), len(holes)))
			for k, h := range holes {
				printLabelValue(out, fmt.Sprintf("hole %d", k+1), "%d nodes, rows [%d,%d) cols [%d,%d), depth %d",
					h.Size(), h.Row0, h.Row1, h.Col0, h.Col1, h.Depth)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "Join nodes that touch at a corner")
	cmd.Flags().BoolVar(&zeroMasked, "zero-masked", false, "Treat u = v = 0 as masked")

	return cmd
}
