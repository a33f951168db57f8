package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/model"
	"complexity-analyzer/src/util"
)

// Generator generates reports in various formats
type Generator struct {
	cfg       config.OutputConfig
	rules     config.RecommendationsConfig
	agentName string
	version   string
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		cfg:       cfg.Output,
		rules:     cfg.Recommendations,
		agentName: cfg.Agent.Name,
		version:   cfg.Agent.Version,
	}
}

// Generate renders a single-file report in the specified format
func (g *Generator) Generate(report *model.AnalysisReport, format string) (string, error) {
	return g.GenerateBatch(&model.BatchReport{Reports: []model.AnalysisReport{*report}}, format)
}

// GenerateBatch renders a batch report in the specified format.
// A batch holding a single report without a run id is rendered as that report.
func (g *Generator) GenerateBatch(batch *model.BatchReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d files)", format, len(batch.Reports))
	batch = g.prepare(batch)

	var payload any = batch
	if batch.RunID == "" && len(batch.Reports) == 1 {
		payload = &batch.Reports[0]
	}

	switch format {
	case "json":
		return g.generateJSON(payload)
	case "yaml":
		return g.generateYAML(payload)
	case "markdown", "md":
		return g.generateMarkdown(batch)
	case "sarif":
		return g.generateSARIF(batch)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// prepare applies output options on a shallow copy
func (g *Generator) prepare(batch *model.BatchReport) *model.BatchReport {
	if g.cfg.IncludeSignals {
		return batch
	}
	out := *batch
	out.Reports = make([]model.AnalysisReport, len(batch.Reports))
	for i, r := range batch.Reports {
		r.BigO.Signals = nil
		out.Reports[i] = r
	}
	return &out
}

func (g *Generator) generateJSON(payload any) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateYAML(payload any) (string, error) {
	data, err := yaml.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(batch *model.BatchReport) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Code Complexity Report\n\n")
	if batch.RunID != "" {
		sb.WriteString(fmt.Sprintf("**Run:** %s\n", batch.RunID))
		sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", batch.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

		s := batch.Summary
		sb.WriteString("## Summary\n\n")
		sb.WriteString(fmt.Sprintf("- **Files:** %d\n", s.FileCount))
		sb.WriteString(fmt.Sprintf("- **Lines:** %d (%d code)\n", s.TotalLines, s.CodeLines))
		sb.WriteString(fmt.Sprintf("- **Average Maintainability:** %.1f/100\n", s.AvgMaintainability))
		sb.WriteString(fmt.Sprintf("- **Worst Time Complexity:** %s\n\n", s.WorstTimeComplexity))

		if len(s.Hotspots) > 0 {
			sb.WriteString("### Hotspot Files\n\n")
			sb.WriteString("| File | Cyclomatic | Maintainability |\n")
			sb.WriteString("|------|------------|-----------------|\n")
			for _, hs := range s.Hotspots {
				sb.WriteString(fmt.Sprintf("| %s | %d | %d |\n", hs.FileName, hs.CyclomaticComplexity, hs.MaintainabilityIndex))
			}
			sb.WriteString("\n")
		}
	}

	for i := range batch.Reports {
		g.writeFileMarkdown(&sb, &batch.Reports[i])
	}

	return sb.String(), nil
}

func (g *Generator) writeFileMarkdown(sb *strings.Builder, r *model.AnalysisReport) {
	sb.WriteString(fmt.Sprintf("## %s (%s)\n\n", r.FileName, r.Language))

	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total lines | %d |\n", r.TotalLines))
	sb.WriteString(fmt.Sprintf("| Code lines | %d |\n", r.CodeLines))
	sb.WriteString(fmt.Sprintf("| Comment lines | %d |\n", r.CommentLines))
	sb.WriteString(fmt.Sprintf("| Blank lines | %d |\n", r.BlankLines))
	sb.WriteString(fmt.Sprintf("| Cyclomatic complexity | %d (%s) |\n", r.CyclomaticComplexity, r.Summary.ComplexityLevel))
	sb.WriteString(fmt.Sprintf("| Cognitive complexity | %d |\n", r.CognitiveComplexity))
	sb.WriteString(fmt.Sprintf("| Maintainability index | %d/100 (%s) |\n", r.MaintainabilityIndex, r.Summary.MaintainabilityLevel))
	sb.WriteString("\n")

	sb.WriteString("### Big-O Estimate\n\n")
	sb.WriteString(fmt.Sprintf("- **Time:** %s (%s)\n", r.BigO.TimeComplexity, r.Summary.TimeComplexityLevel))
	sb.WriteString(fmt.Sprintf("- **Space:** %s\n", r.BigO.SpaceComplexity))
	sb.WriteString(fmt.Sprintf("- **Confidence:** %d%%\n", r.BigO.Confidence))
	sb.WriteString(fmt.Sprintf("- **Explanation:** %s\n\n", r.BigO.Explanation))

	sb.WriteString("### Functions\n\n")
	if r.FunctionsFallback {
		if len(r.Functions) > 0 {
			sb.WriteString("_No functions detected; the entries below are illustrative placeholders._\n\n")
		} else {
			sb.WriteString("_No functions detected._\n\n")
		}
	}
	if len(r.Functions) > 0 {
		sb.WriteString("| Name | Complexity | Lines | Range |\n")
		sb.WriteString("|------|------------|-------|-------|\n")
		for _, fn := range r.Functions {
			sb.WriteString(fmt.Sprintf("| `%s` | %d | %d | %d-%d |\n", fn.Name, fn.Complexity, fn.Lines, fn.StartLine, fn.EndLine))
		}
		sb.WriteString("\n")
	}

	if len(r.Classes) > 0 {
		sb.WriteString("### Classes\n\n")
		sb.WriteString("| Name | Line | Complexity | Methods | Lines |\n")
		sb.WriteString("|------|------|------------|---------|-------|\n")
		for _, c := range r.Classes {
			sb.WriteString(fmt.Sprintf("| `%s` | %d | %d | %d | %d |\n", c.Name, c.StartLine, c.Complexity, c.Methods, c.Lines))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("### Recommendations\n\n")
	for _, rec := range r.Recommendations {
		sb.WriteString(fmt.Sprintf("- %s\n", rec))
	}
	sb.WriteString("\n")
}

func (g *Generator) generateSARIF(batch *model.BatchReport) (string, error) {
	sarif := map[string]any{
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"version": "2.1.0",
		"runs": []map[string]any{
			{
				"tool": map[string]any{
					"driver": map[string]any{
						"name":    g.agentName,
						"version": g.version,
						"rules":   sarifRules(),
					},
				},
				"results": g.buildSARIFResults(batch.Reports),
			},
		},
	}

	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func sarifRules() []map[string]any {
	rule := func(id, text, level string) map[string]any {
		return map[string]any{
			"id":                   id,
			"name":                 id,
			"shortDescription":     map[string]any{"text": text},
			"defaultConfiguration": map[string]any{"level": level},
		}
	}
	return []map[string]any{
		rule("complexity/file", "File cyclomatic complexity above threshold", "warning"),
		rule("complexity/function", "Function complexity above threshold", "warning"),
		rule("size/function", "Function longer than threshold", "note"),
		rule("size/file", "File code lines above threshold", "note"),
	}
}

func (g *Generator) buildSARIFResults(reports []model.AnalysisReport) []map[string]any {
	results := []map[string]any{}

	add := func(ruleID, level, file, msg string, start, end int) {
		results = append(results, map[string]any{
			"ruleId":  ruleID,
			"level":   level,
			"message": map[string]any{"text": msg},
			"locations": []map[string]any{
				{
					"physicalLocation": map[string]any{
						"artifactLocation": map[string]any{"uri": file},
						"region":           map[string]any{"startLine": start, "endLine": end},
					},
				},
			},
		})
	}

	for _, r := range reports {
		if r.CyclomaticComplexity > g.rules.DecomposeComplexity {
			level := "warning"
			if r.CyclomaticComplexity > g.rules.RefactorComplexity {
				level = "error"
			}
			add("complexity/file", level, r.FileName,
				fmt.Sprintf("Cyclomatic complexity %d exceeds %d", r.CyclomaticComplexity, g.rules.DecomposeComplexity),
				1, r.TotalLines)
		}
		if r.CodeLines > g.rules.MaxFileCodeLines {
			add("size/file", "note", r.FileName,
				fmt.Sprintf("%d code lines exceeds %d", r.CodeLines, g.rules.MaxFileCodeLines),
				1, r.TotalLines)
		}
		// Placeholders are not locations in the file
		if r.FunctionsFallback {
			continue
		}
		for _, fn := range r.Functions {
			if fn.Complexity > g.rules.FunctionComplexity {
				add("complexity/function", "warning", r.FileName,
					fmt.Sprintf("Function %s has complexity %d", fn.Name, fn.Complexity),
					fn.StartLine, fn.EndLine)
			}
			if fn.Lines > g.rules.MaxFunctionLines {
				add("size/function", "note", r.FileName,
					fmt.Sprintf("Function %s spans %d lines", fn.Name, fn.Lines),
					fn.StartLine, fn.EndLine)
			}
		}
	}

	return results
}
