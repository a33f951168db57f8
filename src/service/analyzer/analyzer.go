// Package analyzer assembles the complexity report for one source file.
//
// The analysis is a pure function of its inputs: it performs no I/O, keeps
// no state between calls, and never fails on string input. An Analyzer is
// safe for concurrent use.
package analyzer

import (
	"complexity-analyzer/src/config"
	"complexity-analyzer/src/model"
	"complexity-analyzer/src/service/bigo"
	"complexity-analyzer/src/service/complexity"
	"complexity-analyzer/src/service/extractor"
	"complexity-analyzer/src/service/language"
	"complexity-analyzer/src/service/lines"
	"complexity-analyzer/src/service/maintainability"
	"complexity-analyzer/src/service/recommend"
	"complexity-analyzer/src/util"
)

// Analyzer runs the analysis pipeline
type Analyzer struct {
	scorer      *complexity.Scorer
	builder     *extractor.Builder
	recommender *recommend.Generator
	classifier  *bigo.Classifier
}

// New creates an analyzer from configuration using the regex extractor
func New(cfg *config.Config) *Analyzer {
	return NewWithExtractor(cfg, extractor.NewRegexExtractor())
}

// NewWithExtractor creates an analyzer with a custom declaration extractor
func NewWithExtractor(cfg *config.Config, ex extractor.Extractor) *Analyzer {
	scorer := complexity.NewScorer(cfg.Analyzer)
	return &Analyzer{
		scorer:      scorer,
		builder:     extractor.NewBuilder(ex, scorer, cfg.Analyzer),
		recommender: recommend.NewGenerator(cfg.Recommendations),
		classifier:  bigo.NewClassifier(),
	}
}

var defaultAnalyzer = New(config.DefaultConfig())

// Analyze runs the default analyzer
func Analyze(source, languageTag, fileName string) *model.AnalysisReport {
	return defaultAnalyzer.Analyze(source, languageTag, fileName)
}

// Analyze produces the report for source. languageTag selects the
// language profile, falling back to the default profile when unknown.
// fileName is carried into the report unchanged.
func (a *Analyzer) Analyze(source, languageTag, fileName string) *model.AnalysisReport {
	profile := language.Resolve(languageTag)
	if profile.Tag != languageTag {
		util.Debug("Unknown language %q, using %s profile", languageTag, profile.Tag)
	}

	counts := lines.Classify(source, profile)
	cyclomatic := a.scorer.Cyclomatic(source, profile)
	functions := a.builder.Functions(source, profile)
	classes := a.builder.Classes(source, profile)
	index := maintainability.Index(counts.Code, cyclomatic)

	recommendations := a.recommender.Generate(recommend.Input{
		Cyclomatic: cyclomatic,
		CodeLines:  counts.Code,
		Functions:  functions.Records,
	})

	// Placeholder functions never feed the recursion detector
	var names []string
	if !functions.Fallback {
		for _, fn := range functions.Records {
			names = append(names, fn.Name)
		}
	}
	bigO := a.classifier.Classify(source, names)

	report := &model.AnalysisReport{
		FileName:             fileName,
		Language:             languageTag,
		TotalLines:           counts.Total,
		CodeLines:            counts.Code,
		CommentLines:         counts.Comment,
		BlankLines:           counts.Blank,
		CyclomaticComplexity: cyclomatic,
		CognitiveComplexity:  a.scorer.Cognitive(cyclomatic),
		Functions:            functions.Records,
		FunctionsFallback:    functions.Fallback,
		Classes:              classes,
		MaintainabilityIndex: index,
		Recommendations:      recommendations,
		BigO:                 bigO,
		Summary: model.ReportSummary{
			ComplexityLevel:      complexity.Level(cyclomatic),
			MaintainabilityLevel: maintainability.Level(index),
			TimeComplexityLevel:  bigo.Level(bigO.TimeComplexity),
			Distribution:         complexity.Distribution(functions.Records),
		},
	}

	util.Debug("Analyzed %s (%s): %d lines, CC=%d, MI=%d, %s",
		fileName, profile.Tag, counts.Total, cyclomatic, index, bigO.TimeComplexity)
	return report
}
