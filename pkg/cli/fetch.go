package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/anrid/malaria-stats/pkg/stats"
)

// NewFetchCommand creates the fetch command.
func NewFetchCommand(root *RootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the sample datasets into the data directory",
		Long: "Downloads the TidyTuesday 2018-11-13 malaria datasets to the configured sample " +
			"file locations. The country reference file is not downloaded.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.DataDir
			}

			samples := cfg.Samples.Map()
			for name, p := range samples {
				if p != "" && !filepath.IsAbs(p) {
					samples[name] = filepath.Join(dir, p)
				}
			}

			written, err := stats.DownloadSamples(cmd.Context(), samples)
			for _, p := range written {
				log.Info("sample downloaded", "path", p)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "target directory (default: the data directory)")
	return cmd
}
