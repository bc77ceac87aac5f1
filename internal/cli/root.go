// Package cli implements the pivkit command line.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the global flags and the logger built from them.
type app struct {
	logFormat string
	logLevel  string
	logger    *slog.Logger
}

// NewRootCmd assembles the pivkit command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}
	if version == "" {
		version = "dev"
	}

	root := &cobra.Command{
		Use:     "pivkit",
		Version: version,
		Short:   "Post-processing for planar PIV and CFD velocity fields",
		Long: `pivkit merges and analyses planar velocity fields stored as JSON meshgrids.

Fields are {"x","y","u","v"} matrices; masked samples are null. Files ending in
.gz, .zst or .lz4 are compressed accordingly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), a.logFormat, a.logLevel)
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format on stderr: text or json")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Minimum log level: debug, info, warn or error")

	root.AddGroup(
		&cobra.Group{ID: "fields", Title: "Field Operations:"},
		&cobra.Group{ID: "tooling", Title: "CLI & Tooling:"},
	)

	for _, c := range []*cobra.Command{
		newStitchCmd(a),
		newDivergenceCmd(a),
		newStreamCmd(a),
		newEnergyCmd(a),
		newHolesCmd(a),
	} {
		c.GroupID = "fields"
		root.AddCommand(c)
	}

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the pivkit version",
		Args:    cobra.NoArgs,
		GroupID: "tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), root.Version)
		},
	}
	root.AddCommand(versionCmd)
	root.SetHelpCommandGroupID("tooling")

	return root
}

// Execute runs the command line with os.Args.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}
