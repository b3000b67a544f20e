package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quality-care/careview/internal/model"
	"github.com/quality-care/careview/internal/normalize"
)

var (
	inspectFormat  string
	inspectRecords bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Audit report data quality before aggregation",
	Long: `Loads the review category report and audits what normalization would do
to it: rows dropped for missing identity, count coercions, synonym rewrites,
category fallbacks, and company types outside the fixed vocabulary.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		raw, err := loadRaw()
		if err != nil {
			return err
		}

		audit := normalize.Audit(raw)

		switch inspectFormat {
		case "table":
			renderAudit(os.Stdout, audit)
			if inspectRecords {
				fmt.Fprintln(os.Stdout)
				renderRecords(os.Stdout, normalize.Normalize(raw))
			}
			return nil
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if inspectRecords {
				return enc.Encode(struct {
					Audit   normalize.Report        `json:"audit"`
					Records []model.CanonicalRecord `json:"records"`
				}{audit, normalize.Normalize(raw)})
			}
			return enc.Encode(audit)
		case "yaml":
			var payload any = audit
			if inspectRecords {
				payload = struct {
					Audit   normalize.Report        `yaml:"audit"`
					Records []model.CanonicalRecord `yaml:"records"`
				}{audit, normalize.Normalize(raw)}
			}
			data, err := yaml.Marshal(payload)
			if err != nil {
				return eris.Wrap(err, "inspect: marshal yaml")
			}
			_, err = os.Stdout.Write(data)
			return err
		default:
			return eris.Errorf("inspect: unknown format %q (want table, json, or yaml)", inspectFormat)
		}
	},
}

func init() {
	addInputFlags(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "table", "output format: table, json, or yaml")
	inspectCmd.Flags().BoolVar(&inspectRecords, "records", false, "also dump the canonical records")
	rootCmd.AddCommand(inspectCmd)
}

func renderAudit(out io.Writer, a normalize.Report) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CHECK\tCOUNT")
	_, _ = fmt.Fprintf(w, "rows in\t%d\n", a.RowsIn)
	_, _ = fmt.Fprintf(w, "rows kept\t%d\n", a.RowsKept)
	_, _ = fmt.Fprintf(w, "rows dropped\t%d\n", a.RowsDropped)
	_, _ = fmt.Fprintf(w, "missing counts\t%d\n", a.MissingCounts)
	_, _ = fmt.Fprintf(w, "invalid counts\t%d\n", a.InvalidCounts)
	_, _ = fmt.Fprintf(w, "negative counts clamped\t%d\n", a.ClampedCounts)
	_, _ = fmt.Fprintf(w, "fractional counts truncated\t%d\n", a.TruncatedCounts)
	_, _ = fmt.Fprintf(w, "company type synonyms rewritten\t%d\n", a.MappedTypes)
	_, _ = fmt.Fprintf(w, "category synonyms rewritten\t%d\n", a.MappedCategories)
	_, _ = fmt.Fprintf(w, "categories folded into Others\t%d\n", a.OtherCategories)
	_ = w.Flush()

	if len(a.UnmappedTypes) > 0 {
		fmt.Fprintln(out, "\nCompany types outside the fixed vocabulary (kept as-is):")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "TYPE\tRECORDS")
		for _, t := range a.UnmappedTypes {
			_, _ = fmt.Fprintf(w, "%s\t%d\n", t.Value, t.Records)
		}
		_ = w.Flush()
	}
}

func renderRecords(out io.Writer, records []model.CanonicalRecord) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "COMPANY\tTYPE\tLOCATION\tCATEGORY\tREVIEWS")
	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			r.CompanyName, r.CompanyType, r.CompanyLocation, r.Category, r.ReviewCount)
	}
	_ = w.Flush()
}
