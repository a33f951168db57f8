package controller

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/model"
)

func TestReportController_GenerateReports_Batch(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = filepath.Join(t.TempDir(), "out")
	cfg.Output.Formats = []string{"json", "markdown"}

	r := newTestController().Analyze(AnalyzeRequest{Source: "x = 1", FileName: "x.js"})
	batch := &model.BatchReport{RunID: "run", Reports: []model.AnalysisReport{*r}}

	paths, err := NewReportController(cfg).GenerateReports(batch)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(cfg.Output.OutputDir, "complexity-report.json"),
		filepath.Join(cfg.Output.OutputDir, "complexity-report.md"),
	}, paths)

	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestReportController_GenerateReports_SingleFileName(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = t.TempDir()
	cfg.Output.Formats = []string{"sarif"}

	r := newTestController().Analyze(AnalyzeRequest{Source: "x = 1", FileName: "src/lib/parser.ts"})
	batch := &model.BatchReport{Reports: []model.AnalysisReport{*r}}

	paths, err := NewReportController(cfg).GenerateReports(batch)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(cfg.Output.OutputDir, "parser-complexity.sarif")}, paths)
}

func TestReportController_GenerateReports_UnsupportedFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = t.TempDir()
	cfg.Output.Formats = []string{"pdf"}

	_, err := NewReportController(cfg).GenerateReports(&model.BatchReport{})
	require.Error(t, err)
}

func TestReportController_GenerateToString(t *testing.T) {
	r := newTestController().Analyze(AnalyzeRequest{Source: "x = 1", FileName: "x.js"})

	out, err := NewReportController(config.DefaultConfig()).GenerateToString(
		&model.BatchReport{Reports: []model.AnalysisReport{*r}}, "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "file_name: x.js")
}

func TestReportController_GenerateReports_LeavesNoTempFiles(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = t.TempDir()
	cfg.Output.Formats = []string{"json", "yaml"}

	r := newTestController().Analyze(AnalyzeRequest{Source: "x = 1", FileName: "x.js"})
	_, err := NewReportController(cfg).GenerateReports(&model.BatchReport{Reports: []model.AnalysisReport{*r}})
	require.NoError(t, err)

	entries, err := os.ReadDir(cfg.Output.OutputDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"x-complexity.json", "x-complexity.yaml"}, names)
}
