package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/model"
	"complexity-analyzer/src/service/analyzer"
)

func newTestReport(t *testing.T, source, fileName string) *model.AnalysisReport {
	t.Helper()
	return analyzer.New(config.DefaultConfig()).Analyze(source, "javascript", fileName)
}

func newTestBatch(t *testing.T) *model.BatchReport {
	t.Helper()
	a := newTestReport(t, "for (i) { for (j) { } }", "a.js")
	b := newTestReport(t, "function b() {\n  return 1;\n}\n", "b.js")
	return &model.BatchReport{
		RunID:       "run-1",
		GeneratedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Reports:     []model.AnalysisReport{*a, *b},
		Summary: model.BatchSummary{
			FileCount:           2,
			WorstTimeComplexity: model.ComplexityQuadratic,
			Hotspots: []model.FileHotspot{
				{FileName: "a.js", CyclomaticComplexity: 3, MaintainabilityIndex: 94},
			},
		},
	}
}

func TestGenerator_JSON_SingleReport(t *testing.T) {
	g := NewGenerator(config.DefaultConfig())
	r := newTestReport(t, "for (i) { for (j) { } }", "a.js")

	out, err := g.Generate(r, "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "a.js", decoded["file_name"])
	assert.Equal(t, true, decoded["functions_fallback"])

	bigO := decoded["big_o"].(map[string]any)
	assert.Equal(t, "O(n²)", bigO["time_complexity"])
	assert.NotContains(t, bigO, "signals")
}

func TestGenerator_JSON_IncludeSignals(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.IncludeSignals = true
	r := newTestReport(t, "for (i) { }", "a.js")

	out, err := NewGenerator(cfg).Generate(r, "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"signals"`)
	assert.NotEmpty(t, r.BigO.Signals, "input report is not modified")
}

func TestGenerator_DoesNotModifyInput(t *testing.T) {
	r := newTestReport(t, "for (i) { }", "a.js")
	require.NotEmpty(t, r.BigO.Signals)

	_, err := NewGenerator(config.DefaultConfig()).Generate(r, "json")
	require.NoError(t, err)
	assert.NotEmpty(t, r.BigO.Signals)
}

func TestGenerator_JSON_Batch(t *testing.T) {
	out, err := NewGenerator(config.DefaultConfig()).GenerateBatch(newTestBatch(t), "json")
	require.NoError(t, err)

	var decoded model.BatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Len(t, decoded.Reports, 2)
	assert.Equal(t, 2, decoded.Summary.FileCount)
}

func TestGenerator_YAML(t *testing.T) {
	r := newTestReport(t, "const x = 1;", "x.js")

	out, err := NewGenerator(config.DefaultConfig()).Generate(r, "yaml")
	require.NoError(t, err)

	var decoded model.AnalysisReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "x.js", decoded.FileName)
	assert.Equal(t, r.MaintainabilityIndex, decoded.MaintainabilityIndex)
	assert.Equal(t, model.ComplexityConstant, decoded.BigO.TimeComplexity)
}

func TestGenerator_Markdown(t *testing.T) {
	g := NewGenerator(config.DefaultConfig())

	out, err := g.GenerateBatch(newTestBatch(t), "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# Code Complexity Report")
	assert.Contains(t, out, "**Run:** run-1")
	assert.Contains(t, out, "### Hotspot Files")
	assert.Contains(t, out, "## a.js (javascript)")
	assert.Contains(t, out, "_No functions detected; the entries below are illustrative placeholders._")
	assert.Contains(t, out, "| `b` |")

	md, err := g.GenerateBatch(newTestBatch(t), "md")
	require.NoError(t, err)
	assert.Equal(t, out, md)
}

func TestGenerator_Markdown_SingleReportHasNoSummary(t *testing.T) {
	r := newTestReport(t, "const x = 1;", "x.js")

	out, err := NewGenerator(config.DefaultConfig()).Generate(r, "markdown")
	require.NoError(t, err)
	assert.NotContains(t, out, "## Summary")
	assert.Contains(t, out, "- **Time:** O(1) (Excellent)")
}

func TestGenerator_SARIF(t *testing.T) {
	src := strings.Repeat("if (a) { b(); }\n", 30)
	r := newTestReport(t, src, "complex.js")
	require.Greater(t, r.CyclomaticComplexity, 25)

	out, err := NewGenerator(config.DefaultConfig()).Generate(r, "sarif")
	require.NoError(t, err)

	var decoded struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string           `json:"name"`
					Rules []map[string]any `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string `json:"ruleId"`
				Level  string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "2.1.0", decoded.Version)
	require.Len(t, decoded.Runs, 1)
	assert.Equal(t, "complexity-analyzer", decoded.Runs[0].Tool.Driver.Name)
	assert.Len(t, decoded.Runs[0].Tool.Driver.Rules, 4)

	// Placeholder functions produce no function findings
	require.Len(t, decoded.Runs[0].Results, 1)
	assert.Equal(t, "complexity/file", decoded.Runs[0].Results[0].RuleID)
	assert.Equal(t, "error", decoded.Runs[0].Results[0].Level)
}

func TestGenerator_SARIF_FunctionFindings(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("function busy(a) {\n")
	for i := 0; i < 40; i++ {
		sb.WriteString("  if (a && b) { a--; }\n")
	}
	sb.WriteString("}\n")
	r := newTestReport(t, sb.String(), "busy.js")
	require.False(t, r.FunctionsFallback)
	require.Greater(t, r.Functions[0].Complexity, 10)

	out, err := NewGenerator(config.DefaultConfig()).Generate(r, "sarif")
	require.NoError(t, err)
	assert.Contains(t, out, `"ruleId": "complexity/function"`)
	assert.Contains(t, out, "Function busy has complexity")
}

func TestGenerator_SARIF_CleanReport(t *testing.T) {
	r := newTestReport(t, "const x = 1;", "x.js")

	out, err := NewGenerator(config.DefaultConfig()).Generate(r, "sarif")
	require.NoError(t, err)
	assert.Contains(t, out, `"results": []`)
}

func TestGenerator_UnsupportedFormat(t *testing.T) {
	r := newTestReport(t, "x", "x.js")

	_, err := NewGenerator(config.DefaultConfig()).Generate(r, "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format: html")
}
