package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/tickr/internal/export"
	"github.com/sadopc/tickr/internal/store"
)

type exportOptions struct {
	Output string
	Start  string
	End    string
	Format string
}

func addExport(topLevel *cobra.Command, r *runtime) {
	o := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tracked intervals",
		Long: `Export one row per tracked interval. Intervals are selected by their
start time; running intervals are measured up to now.`,
		Example: `
tickr export
tickr export -o march.csv -s 2026-03-01T00:00:00Z -e 2026-03-31T23:59:59Z
tickr export --format json -o tickr.json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format := strings.ToLower(o.Format)
			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.Output)), ".")
			}
			if format != "csv" && format != "json" {
				return fmt.Errorf("unknown export format %q, expected csv or json", format)
			}

			start, err := parseTime("start", o.Start)
			if err != nil {
				return err
			}
			end, err := parseTime("end", o.End)
			if err != nil {
				return err
			}

			s, err := r.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			tickrs, err := s.ListTickrs(store.AllTickrs)
			if err != nil {
				return err
			}
			projects, err := s.ListProjects()
			if err != nil {
				return err
			}
			categories, err := s.ListCategories()
			if err != nil {
				return err
			}

			now := r.now()
			rows := export.Rows(tickrs, projects, categories, export.Range{Start: start, End: end}, now)
			if format == "json" {
				err = export.ToJSON(rows, now, o.Output)
			} else {
				err = export.ToCSV(rows, o.Output)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d intervals to %s\n", len(rows), o.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&o.Output, "output", "o", "tickr_export.csv", "Output file path.")
	cmd.Flags().StringVarP(&o.Start, "start", "s", "", "Only intervals starting at or after this time (RFC3339).")
	cmd.Flags().StringVarP(&o.End, "end", "e", "", "Only intervals starting at or before this time (RFC3339).")
	cmd.Flags().StringVar(&o.Format, "format", "", "csv or json. Defaults to the output file extension.")

	topLevel.AddCommand(cmd)
}
