package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anrid/malaria-stats/pkg/dashboard"
	"github.com/anrid/malaria-stats/pkg/stats"
)

// writeResult prints a view result in the requested format.
func writeResult(w io.Writer, format string, res *dashboard.Result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(w, "%s\n\n", res.Chart.Title)
	if err := writeTable(w, res.Table); err != nil {
		return err
	}
	if res.Observations != "" {
		fmt.Fprintf(w, "\nObservations:\n%s\n", res.Observations)
	}
	return nil
}

// writeTable prints t aligned in columns. The value column, which is always
// last, is rounded to two decimals with thousands separators.
func writeTable(w io.Writer, t *stats.Table) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, c := range t.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)

	last := len(t.Columns) - 1
	for i := range t.Rows {
		for c := range t.Columns {
			if c > 0 {
				fmt.Fprint(tw, "\t")
			}
			v := t.Cell(i, c)
			if f, err := strconv.ParseFloat(v, 64); err == nil && c == last {
				v = p.Sprintf("%.2f", f)
			}
			fmt.Fprint(tw, v)
		}
		fmt.Fprintln(tw)
	}

	p.Fprintf(tw, "\n%d rows\n", t.Len())
	return tw.Flush()
}
