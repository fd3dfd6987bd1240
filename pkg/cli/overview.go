package cli

import (
	"github.com/spf13/cobra"

	"github.com/anrid/malaria-stats/pkg/dashboard"
)

// NewOverviewCommand creates the overview command.
func NewOverviewCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Countries above the median average death rate, from the bundled sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := root.load()
			if err != nil {
				return err
			}
			db, err := cfg.OpenDatabase()
			if err != nil {
				return err
			}

			res, err := dashboard.SampleOverview(db)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), root.Format, res)
		},
	}
}
