package controller

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/model"
	"complexity-analyzer/src/service/analyzer"
	"complexity-analyzer/src/service/language"
	"complexity-analyzer/src/service/metrics"
	"complexity-analyzer/src/util"
)

// AnalysisController orchestrates analysis of source text, files and directories
type AnalysisController struct {
	cfg        *config.Config
	provider   *metrics.Provider
	exclusions *util.ExclusionMatcher
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{
		cfg:        cfg,
		provider:   metrics.NewProvider(analyzer.New(cfg), cfg.Cache),
		exclusions: util.NewExclusionMatcher(cfg.Exclusions),
	}
}

// AnalyzeRequest represents a request to analyze source text
type AnalyzeRequest struct {
	Source   string
	Language string // Optional: detected from FileName when empty
	FileName string
}

// AnalyzePathsRequest represents a request to analyze files and directories
type AnalyzePathsRequest struct {
	Paths    []string
	Language string // Optional: overrides detection for every file
}

// Provider returns the report provider backing this controller
func (c *AnalysisController) Provider() *metrics.Provider {
	return c.provider
}

// Analyze analyzes source text that is already in memory
func (c *AnalysisController) Analyze(req AnalyzeRequest) *model.AnalysisReport {
	lang := req.Language
	if lang == "" {
		lang = language.Detect(req.FileName)
		util.Debug("Detected language %s for %q", lang, req.FileName)
	}
	return c.provider.GetReport(req.Source, lang, req.FileName)
}

// AnalyzeFile reads and analyzes one file
func (c *AnalysisController) AnalyzeFile(path, lang string) (*model.AnalysisReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return c.Analyze(AnalyzeRequest{
		Source:   string(data),
		Language: lang,
		FileName: path,
	}), nil
}

// AnalyzePaths analyzes every file named in req, walking directories.
// Files are analyzed in parallel; reports keep the order of discovery.
func (c *AnalysisController) AnalyzePaths(ctx context.Context, req AnalyzePathsRequest) (*model.BatchReport, error) {
	startTime := time.Now()

	files, err := c.collectFiles(req.Paths, req.Language)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no source files found in %v", req.Paths)
	}
	util.Info("Analyzing %d files", len(files))

	limit := c.cfg.Concurrency.MaxParallelFiles
	if limit < 1 {
		limit = 1
	}

	reports := make([]model.AnalysisReport, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := c.AnalyzeFile(path, req.Language)
			if err != nil {
				util.Error("Analysis of %s failed: %v", path, err)
				return err
			}
			reports[i] = *report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	batch := &model.BatchReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Reports:     reports,
		Summary:     c.generateSummary(reports),
	}

	hits, misses := c.provider.Stats()
	util.Info("Analysis complete: %d files, avg maintainability %.1f (took %v, cache %d/%d)",
		len(reports), batch.Summary.AvgMaintainability, time.Since(startTime), hits, hits+misses)

	return batch, nil
}

// collectFiles expands directories into analyzable files.
// Explicitly named files are always included; directory walks keep only
// files with a known extension that are not excluded.
func (c *AnalysisController) collectFiles(paths []string, langOverride string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && c.exclusions.Matches(path+"/", "") {
					util.Debug("Skipping excluded directory %s", path)
					return filepath.SkipDir
				}
				return nil
			}

			lang, known := language.DetectStrict(path)
			if langOverride != "" {
				lang, known = langOverride, true
			}
			if !known {
				return nil
			}
			if c.exclusions.Matches(path, lang) {
				util.Debug("Skipping excluded file %s", path)
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	}

	return files, nil
}

func (c *AnalysisController) generateSummary(reports []model.AnalysisReport) model.BatchSummary {
	summary := model.BatchSummary{
		FileCount:           len(reports),
		WorstTimeComplexity: model.ComplexityConstant,
	}

	var maintainability int
	hotspots := make([]model.FileHotspot, 0, len(reports))
	for _, r := range reports {
		summary.TotalLines += r.TotalLines
		summary.CodeLines += r.CodeLines
		maintainability += r.MaintainabilityIndex
		if r.BigO.TimeComplexity.Rank() > summary.WorstTimeComplexity.Rank() {
			summary.WorstTimeComplexity = r.BigO.TimeComplexity
		}
		hotspots = append(hotspots, model.FileHotspot{
			FileName:             r.FileName,
			CyclomaticComplexity: r.CyclomaticComplexity,
			MaintainabilityIndex: r.MaintainabilityIndex,
		})
	}
	if len(reports) > 0 {
		summary.AvgMaintainability = float64(maintainability) / float64(len(reports))
	}

	sort.SliceStable(hotspots, func(i, j int) bool {
		return hotspots[i].CyclomaticComplexity > hotspots[j].CyclomaticComplexity
	})
	topN := c.cfg.Output.HotspotsTopN
	if topN > len(hotspots) || topN <= 0 {
		topN = len(hotspots)
	}
	summary.Hotspots = hotspots[:topN]

	return summary
}
