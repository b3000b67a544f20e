package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quality-care/careview/internal/ingest"
	"github.com/quality-care/careview/internal/model"
	"github.com/quality-care/careview/internal/normalize"
)

var (
	inputPath  string
	inputSheet string
)

// addInputFlags registers the report location flags shared by every command
// that ingests data. Empty values fall back to config.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&inputPath, "input", "", "path to the review category report (default from config)")
	cmd.Flags().StringVar(&inputSheet, "sheet", "", "xlsx worksheet name (default from config)")
}

// loadRaw reads the configured report into raw records.
func loadRaw() ([]model.RawRecord, error) {
	path := inputPath
	if path == "" {
		path = cfg.Input.Path
	}
	sheet := inputSheet
	if sheet == "" {
		sheet = cfg.Input.Sheet
	}

	raw, err := ingest.Load(path, ingest.Options{Sheet: sheet})
	if err != nil {
		return nil, err
	}

	zap.L().Info("report loaded",
		zap.String("component", "ingest"),
		zap.String("path", path),
		zap.Int("rows", len(raw)),
	)
	return raw, nil
}

// loadCanonical reads the configured report and normalizes it into the
// canonical set.
func loadCanonical() ([]model.CanonicalRecord, error) {
	raw, err := loadRaw()
	if err != nil {
		return nil, err
	}

	records := normalize.Normalize(raw)
	if len(records) == 0 {
		return nil, eris.New("report: no usable records after normalization")
	}

	zap.L().Info("report normalized",
		zap.String("component", "normalize"),
		zap.Int("raw_rows", len(raw)),
		zap.Int("canonical_records", len(records)),
		zap.Int("dropped", len(raw)-len(records)),
	)
	return records, nil
}
