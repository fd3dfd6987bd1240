package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anrid/malaria-stats/pkg/dashboard"
)

// NewInfoCommand creates the info command.
func NewInfoCommand(root *RootOptions) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Summarize the reference and sample files",
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

			if dump {
				db.Dump(cmd.OutOrStdout())
				return nil
			}
			return db.Info(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print a debug dump of the loaded data")
	return cmd
}

// NewViewsCommand creates the views command.
func NewViewsCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the available views and their region choices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if root.Format == "json" {
				type view struct {
					Name    string            `json:"name"`
					Heading string            `json:"heading"`
					Subject string            `json:"subject"`
					Filter  *dashboard.Filter `json:"filter,omitempty"`
				}
				var views []view
				for _, name := range dashboard.Names() {
					v := dashboard.Views[name]
					views = append(views, view{Name: v.Name, Heading: v.Heading, Subject: v.Subject.Name, Filter: v.Filter})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			for _, name := range dashboard.Names() {
				v := dashboard.Views[name]
				fmt.Fprintf(out, "%-34s %s\n", v.Name, v.Heading)
				if v.Filter != nil {
					fmt.Fprintf(out, "%-34s   --region %v (default %q)\n", "", v.Filter.Choices, v.Filter.Default)
				}
			}
			return nil
		},
	}
}
