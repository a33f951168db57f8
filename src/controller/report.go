package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/model"
	"complexity-analyzer/src/service/report"
	"complexity-analyzer/src/util"
)

const batchReportStem = "complexity-report"

// formatExtensions maps report formats to file extensions where they differ
var formatExtensions = map[string]string{
	"markdown": "md",
}

// ReportController renders batches and persists them to the output directory
type ReportController struct {
	cfg       *config.Config
	generator *report.Generator
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg, generator: report.NewGenerator(cfg)}
}

// GenerateReports writes the batch once per configured format and returns
// the written paths in format order. The first failure stops the run.
func (c *ReportController) GenerateReports(batch *model.BatchReport) ([]string, error) {
	formats := c.cfg.Output.Formats
	util.Debug("Rendering %d report(s) into %s: %v", len(formats), c.cfg.Output.OutputDir, formats)

	if err := os.MkdirAll(c.cfg.Output.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	written := make([]string, 0, len(formats))
	for _, format := range formats {
		rendered, err := c.generator.GenerateBatch(batch, format)
		if err != nil {
			return written, fmt.Errorf("rendering %s report: %w", format, err)
		}

		target := filepath.Join(c.cfg.Output.OutputDir, reportFileName(batch, format))
		if err := writeFileAtomic(target, []byte(rendered)); err != nil {
			util.Error("Could not persist %s report: %v", format, err)
			return written, err
		}

		util.Info("Report written: %s", target)
		written = append(written, target)
	}

	return written, nil
}

// GenerateToString renders a batch to a string
func (c *ReportController) GenerateToString(batch *model.BatchReport, format string) (string, error) {
	return c.generator.GenerateBatch(batch, format)
}

// reportFileName names a single-file report after its source stem and a
// directory run after the fixed batch stem.
func reportFileName(batch *model.BatchReport, format string) string {
	ext, ok := formatExtensions[format]
	if !ok {
		ext = format
	}

	stem := batchReportStem
	if batch.RunID == "" && len(batch.Reports) == 1 {
		base := filepath.Base(batch.Reports[0].FileName)
		if s := strings.TrimSuffix(base, filepath.Ext(base)); s != "" && s != "." {
			stem = s + "-complexity"
		}
	}
	return stem + "." + ext
}

// writeFileAtomic writes data next to path and renames it into place so
// readers never observe a partially written report.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
