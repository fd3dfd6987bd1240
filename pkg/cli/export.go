package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anrid/malaria-stats/pkg/dashboard"
	"github.com/anrid/malaria-stats/pkg/stats"
)

// ExportOptions holds flags of the export command.
type ExportOptions struct {
	ViewOptions
	Out string
}

// NewExportCommand creates the export command.
func NewExportCommand(root *RootOptions) *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export <view>",
		Short: "Write the aggregate table of a view to CSV, XLSX or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isExportFormat(opts.Out) {
				return fmt.Errorf("unsupported export format %q", filepath.Ext(opts.Out))
			}

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

			f, err := os.Create(opts.Out)
			if err != nil {
				return err
			}
			if err := exportResult(f, opts.Out, res); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			log.Info("aggregate exported", "view", res.View, "rows", res.Table.Len(), "path", opts.Out)
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file (.csv, .xlsx or .json)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func isExportFormat(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", ".xlsx", ".json":
		return true
	}
	return false
}

// exportResult picks the writer from the file extension of path.
func exportResult(w io.Writer, path string, res *dashboard.Result) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return stats.WriteCSV(w, res.Table)
	case ".xlsx":
		return stats.WriteXLSX(w, res.Table, res.View)
	case ".json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		return fmt.Errorf("unsupported export format %q", ext)
	}
}
