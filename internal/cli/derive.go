package cli

import (
	"github.com/katalvlaran/pivkit/calculus"
	"github.com/katalvlaran/pivkit/codec"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

func newDivergenceCmd(a *app) *cobra.Command {
	var (
		output    string
		vorticity bool
	)

	cmd := &cobra.Command{
		Use:   "divergence FIELD",
		Short: "Compute the in-plane divergence (or vorticity) of a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := codec.ReadField(args[0])
			if err != nil {
				return err
			}
			name, derive := "divergence", calculus.Divergence
			if vorticity {
				name, derive = "vorticity", calculus.Vorticity
			}
			s, err := derive(f)
			if err != nil {
				return err
			}
			if err := codec.WriteScalar(output, codec.NewScalar(f, s)); err != nil {
				return err
			}
			a.logger.Debug("derived scalar", "quantity", name, "input", args[0], "output", output)

			raw := s.RawMatrix().Data
			out := cmd.OutOrStdout()
			printSuccess(out, "%s of %s -> %s", name, args[0], output)
			printLabelValue(out, "range", "[%g, %g]", floats.Min(raw), floats.Max(raw))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (required)")
	cmd.Flags().BoolVar(&vorticity, "vorticity", false, "Compute ∂v/∂x − ∂u/∂y instead")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func newStreamCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "stream FIELD",
		Short: "Integrate the stream function of a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := codec.ReadField(args[0])
			if err != nil {
				return err
			}
			psi, err := calculus.StreamFunction(f)
			if err != nil {
				return err
			}
			if err := codec.WriteScalar(output, codec.NewScalar(f, psi)); err != nil {
				return err
			}
			a.logger.Debug("derived scalar", "quantity", "stream function", "input", args[0], "output", output)

			printSuccess(cmd.OutOrStdout(), "stream function of %s -> %s", args[0], output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func newEnergyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "energy FIELD",
		Short: "Print the kinetic energy and enstrophy of a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := codec.ReadField(args[0])
			if err != nil {
				return err
			}
			ke, err := calculus.KineticEnergy(f)
			if err != nil {
				return err
			}
			ens, err := calculus.Enstrophy(f)
			if err != nil {
				return err
			}
			a.logger.Debug("integrated field", "input", args[0])

			out := cmd.OutOrStdout()
			printLabelValue(out, "kinetic energy", "%g", ke)
			printLabelValue(out, "enstrophy", "%g", ens)
			return nil
		},
	}
}
