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

	"github.com/quality-care/careview/internal/aggregate"
	"github.com/quality-care/careview/internal/dashboard"
	"github.com/quality-care/careview/internal/model"
)

var (
	reportCategory string
	reportFormat   string
	reportOutput   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the aggregate review report",
	Long: `Loads the review category report, normalizes it, and renders every
aggregate view: summary metrics, the company-count and review-volume tables,
per-category shares, and the distribution and company directory for the
selected category.

Examples:
  # Human-readable tables on stdout
  careview report

  # Focus the category-scoped views
  careview report --category "Hostility"

  # Export the full view bundle
  careview report --format json --output report.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := loadCanonical()
		if err != nil {
			return err
		}

		category := cfg.DefaultCategory()
		if reportCategory != "" {
			category = model.Category(reportCategory)
			if !category.IsValid() {
				return eris.Errorf("report: unknown category %q", reportCategory)
			}
		}

		dash := dashboard.New(records, category)
		payload := buildReportPayload(dash)

		out := os.Stdout
		if reportOutput != "" {
			f, err := os.Create(reportOutput)
			if err != nil {
				return eris.Wrap(err, "report: create output file")
			}
			defer f.Close() //nolint:errcheck
			out = f
		}

		switch reportFormat {
		case "table":
			renderReport(out, payload)
			return nil
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		case "yaml":
			data, err := yaml.Marshal(payload)
			if err != nil {
				return eris.Wrap(err, "report: marshal yaml")
			}
			_, err = out.Write(data)
			return err
		default:
			return eris.Errorf("report: unknown format %q (want table, json, or yaml)", reportFormat)
		}
	},
}

func init() {
	addInputFlags(reportCmd)
	reportCmd.Flags().StringVar(&reportCategory, "category", "", "category for the distribution and directory views (default from config)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "table", "output format: table, json, or yaml")
	reportCmd.Flags().StringVar(&reportOutput, "output", "", "write output to file (default: stdout)")
	rootCmd.AddCommand(reportCmd)
}

// reportPayload is the full view bundle for one build of the dashboard state.
type reportPayload struct {
	Snapshot      string                     `json:"snapshot" yaml:"snapshot"`
	Summary       aggregate.Summary          `json:"summary" yaml:"summary"`
	CompanyCounts aggregate.TotalsTable      `json:"company_counts" yaml:"company_counts"`
	ReviewVolume  aggregate.TotalsTable      `json:"review_volume" yaml:"review_volume"`
	Shares        []aggregate.CategoryShare  `json:"shares" yaml:"shares"`
	VolumeByType  []aggregate.TypeVolume     `json:"volume_by_type" yaml:"volume_by_type"`
	Category      model.Category             `json:"category" yaml:"category"`
	Distribution  aggregate.TypeDistribution `json:"distribution" yaml:"distribution"`
	Companies     []aggregate.CompanyRef     `json:"companies" yaml:"companies"`
}

func buildReportPayload(dash *dashboard.Dashboard) reportPayload {
	category, distribution := dash.CurrentDistribution()
	_, companies := dash.CurrentDirectory()

	return reportPayload{
		Snapshot:      dash.ID().String(),
		Summary:       dash.Summary(),
		CompanyCounts: dash.CompanyCounts(),
		ReviewVolume:  dash.ReviewTotals(),
		Shares:        dash.Shares(),
		VolumeByType:  dash.VolumeMatrix(),
		Category:      category,
		Distribution:  distribution,
		Companies:     companies,
	}
}

// renderReport writes the human-readable report.
func renderReport(out io.Writer, p reportPayload) {
	fmt.Fprintf(out, "Healthcare service quality review report (snapshot %s)\n", p.Snapshot)
	fmt.Fprintf(out, "%s across %d companies and %d categories (%d records)\n\n",
		aggregate.FormatReviewCount(p.Summary.TotalReviews),
		p.Summary.DistinctCompanies,
		p.Summary.Categories,
		p.Summary.Records,
	)

	fmt.Fprintln(out, "Companies reviewed, by category and company type")
	renderTotals(out, p.CompanyCounts)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Review volume, by category and company type")
	renderVolume(out, p.ReviewVolume)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Share of all reviews, by category")
	renderShares(out, p.Shares, p.Summary.TotalReviews)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Company type distribution for %q\n", p.Category)
	renderDistribution(out, p.Distribution)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Companies reviewed for %q\n", p.Category)
	renderDirectory(out, p.Companies)
}

func renderTotals(out io.Writer, t aggregate.TotalsTable) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tGOVERNMENT\tSMALL PRIVATE\tHIGH-CLASS PRIVATE\tTOTAL")
	for _, row := range t {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
			row.Category, row.Government, row.SmallPrivate, row.HighClass, row.Total)
	}
	_ = w.Flush()
}

// renderVolume renders the review-volume table with display-formatted cells.
func renderVolume(out io.Writer, t aggregate.TotalsTable) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tGOVERNMENT\tSMALL PRIVATE\tHIGH-CLASS PRIVATE\tTOTAL")
	for _, row := range aggregate.DisplayTable(t) {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			row.Category, row.Government, row.SmallPrivate, row.HighClass, row.Total)
	}
	_ = w.Flush()
}

func renderShares(out io.Writer, shares []aggregate.CategoryShare, total int) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tREVIEWS\tSHARE")
	for _, s := range shares {
		share := 0.0
		if total > 0 {
			share = float64(s.Reviews) / float64(total) * 100
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", s.Category, s.Reviews, share)
	}
	_ = w.Flush()
}

func renderDistribution(out io.Writer, d aggregate.TypeDistribution) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "COMPANY TYPE\tREVIEWS")
	_, _ = fmt.Fprintf(w, "%s\t%d\n", model.TypeGovernment, d.Government)
	_, _ = fmt.Fprintf(w, "%s\t%d\n", model.TypeSmallPrivate, d.SmallPrivate)
	_, _ = fmt.Fprintf(w, "%s\t%d\n", model.TypeHighClass, d.HighClass)
	if d.Other > 0 {
		_, _ = fmt.Fprintf(w, "Other\t%d\n", d.Other)
	}
	_, _ = fmt.Fprintf(w, "Total\t%d\n", d.Total)
	_ = w.Flush()
}

func renderDirectory(out io.Writer, companies []aggregate.CompanyRef) {
	if len(companies) == 0 {
		fmt.Fprintln(out, "No companies found for the selected category.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "COMPANY\tLOCATION")
	for _, c := range companies {
		location := c.Location
		if location == "" {
			location = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", c.Name, location)
	}
	_ = w.Flush()
}
