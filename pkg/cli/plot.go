package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anrid/malaria-stats/pkg/chart"
	"github.com/anrid/malaria-stats/pkg/dashboard"
	"github.com/anrid/malaria-stats/pkg/stats"
)

// ViewOptions selects the input of a view.
type ViewOptions struct {
	File   string
	Region string
}

func (v *ViewOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&v.File, "file", "f", "", "data file to use instead of the bundled sample")
	cmd.Flags().StringVarP(&v.Region, "region", "r", "", "region to filter on (views with a region selector only)")
}

// run computes a view from the given file, or from the bundled sample.
func (v *ViewOptions) run(db *stats.Database, name string) (*dashboard.Result, error) {
	view, err := dashboard.Lookup(name)
	if err != nil {
		return nil, err
	}
	if v.File == "" {
		return dashboard.RunSample(db, view, v.Region)
	}
	t, err := stats.LoadTable(v.File)
	if err != nil {
		return nil, err
	}
	return view.Run(t, db.Reference, v.Region)
}

// PlotOptions holds flags of the plot command.
type PlotOptions struct {
	ViewOptions
	PNG    string
	Width  int
	Height int
}

// NewPlotCommand creates the plot command.
func NewPlotCommand(root *RootOptions) *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot <view>",
		Short: "Aggregate a dataset and describe its chart",
		Long: "Runs one of the dashboard views (see `malaria views`) on a data file, or on " +
			"the bundled sample, and prints the aggregate table or the chart description.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			db, err := cfg.OpenDatabase()
			if err != nil {
				return err
			}

			res, err := opts.run(db, args[0])
			if err != nil {
				return err
			}
			log.Debug("view computed", "view", res.View, "region", res.Region, "groups", res.Aggregate.Len())

			if opts.PNG != "" {
				if err := writePNG(opts.PNG, res.Chart, opts.Width, opts.Height); err != nil {
					return err
				}
				log.Info("chart written", "path", opts.PNG)
			}
			return writeResult(cmd.OutOrStdout(), root.Format, res)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.PNG, "png", "", "also render the chart to this PNG file")
	cmd.Flags().IntVar(&opts.Width, "width", 1024, "PNG width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 600, "PNG height in pixels")

	return cmd
}

func writePNG(path string, c *chart.Chart, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.RenderPNG(c, f, width, height); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
