package extractor

import (
	"strings"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/model"
	"complexity-analyzer/src/service/complexity"
	"complexity-analyzer/src/service/language"
	"complexity-analyzer/src/service/lines"
	"complexity-analyzer/src/util"
)

// placeholders are shown when no function declaration is detected
var placeholders = []model.FunctionRecord{
	{Name: "main", Complexity: 5, Lines: 15, StartLine: 1, EndLine: 15, Placeholder: true},
	{Name: "processData", Complexity: 8, Lines: 25, StartLine: 17, EndLine: 41, Placeholder: true},
	{Name: "validateInput", Complexity: 3, Lines: 10, StartLine: 43, EndLine: 52, Placeholder: true},
}

// Placeholders returns a fresh copy of the placeholder function list
func Placeholders() []model.FunctionRecord {
	out := make([]model.FunctionRecord, len(placeholders))
	copy(out, placeholders)
	return out
}

// FunctionResult is the outcome of function extraction
type FunctionResult struct {
	Records  []model.FunctionRecord
	Detected int  // detections before truncation
	Fallback bool // nothing was detected
}

// Builder turns detections into function and class records
type Builder struct {
	extractor Extractor
	scorer    *complexity.Scorer
	sizer     *Sizer
	cfg       config.AnalyzerConfig
}

// NewBuilder creates a record builder
func NewBuilder(extractor Extractor, scorer *complexity.Scorer, cfg config.AnalyzerConfig) *Builder {
	return &Builder{
		extractor: extractor,
		scorer:    scorer,
		sizer:     NewSizer(cfg),
		cfg:       cfg,
	}
}

// Functions extracts function records in discovery order, truncated to
// the configured maximum. Each function body is approximated by a slice
// of the lines following its declaration.
func (b *Builder) Functions(text string, p *language.Profile) FunctionResult {
	detected := b.extractor.Functions(text, p)
	if len(detected) == 0 {
		util.Debug("No function declarations matched for %s, using fallback", p.Tag)
		result := FunctionResult{Fallback: true, Records: []model.FunctionRecord{}}
		if b.cfg.PlaceholderFunctions {
			result.Records = truncate(Placeholders(), b.cfg.MaxFunctions)
		}
		return result
	}

	kept := truncate(detected, b.cfg.MaxFunctions)
	records := make([]model.FunctionRecord, 0, len(kept))
	for _, d := range kept {
		body := lines.Split(text[d.Offset:])
		n := min(len(body), b.sizer.BodyLines(d))
		bodyText := strings.Join(body[:n], "\n")

		records = append(records, model.FunctionRecord{
			Name:       d.Name,
			Complexity: b.scorer.Cyclomatic(bodyText, p),
			Lines:      n,
			StartLine:  d.Line,
			EndLine:    d.Line + n - 1,
			Estimated:  true,
		})
	}

	util.Debug("Detected %d function declarations (%d kept)", len(detected), len(records))
	return FunctionResult{Records: records, Detected: len(detected)}
}

// Classes extracts class records in discovery order, truncated to the
// configured maximum. Class metrics are estimates, not measurements.
func (b *Builder) Classes(text string, p *language.Profile) []model.ClassRecord {
	detected := truncate(b.extractor.Classes(text, p), b.cfg.MaxClasses)
	records := make([]model.ClassRecord, 0, len(detected))
	for _, d := range detected {
		cc, methods, lineCount := b.sizer.ClassMetrics(d)
		records = append(records, model.ClassRecord{
			Name:       d.Name,
			StartLine:  d.Line,
			Complexity: cc,
			Methods:    methods,
			Lines:      lineCount,
			Estimated:  true,
		})
	}
	return records
}

// truncate keeps the first limit items; a limit of zero keeps everything
func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
