package metrics

import (
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/model"
	"complexity-analyzer/src/service/analyzer"
	"complexity-analyzer/src/util"
)

// Provider provides analysis reports with caching.
// Reports are keyed by a hash of (language, file name, source), so repeated
// requests for identical input skip the analysis.
type Provider struct {
	analyzer *analyzer.Analyzer
	cfg      config.CacheConfig

	mu      sync.RWMutex
	reports map[uint64]*model.AnalysisReport
	order   []uint64 // insertion order for eviction
	hits    int
	misses  int
}

// NewProvider creates a new report provider
func NewProvider(a *analyzer.Analyzer, cfg config.CacheConfig) *Provider {
	return &Provider{
		analyzer: a,
		cfg:      cfg,
		reports:  make(map[uint64]*model.AnalysisReport),
	}
}

// Stats returns cache hit and miss counts
func (p *Provider) Stats() (hits, misses int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.hits, p.misses
}

// GetReport returns the analysis report for source.
// The returned report is a copy the caller may modify.
func (p *Provider) GetReport(source, languageTag, fileName string) *model.AnalysisReport {
	if !p.cfg.Enabled {
		return p.analyzer.Analyze(source, languageTag, fileName)
	}

	key := cacheKey(source, languageTag, fileName)

	p.mu.RLock()
	if cached, ok := p.reports[key]; ok {
		p.mu.RUnlock()
		p.mu.Lock()
		p.hits++
		p.mu.Unlock()
		util.Debug("Returning cached report for %s", fileName)
		return cloneReport(cached)
	}
	p.mu.RUnlock()

	report := p.analyzer.Analyze(source, languageTag, fileName)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.misses++
	// Double-check after acquiring write lock
	if _, ok := p.reports[key]; !ok {
		p.reports[key] = cloneReport(report)
		p.order = append(p.order, key)
		p.evict()
	}

	return report
}

// evict drops the oldest entries beyond the configured size. Callers hold p.mu.
func (p *Provider) evict() {
	if p.cfg.MaxEntries <= 0 {
		return
	}
	for len(p.order) > p.cfg.MaxEntries {
		delete(p.reports, p.order[0])
		p.order = p.order[1:]
	}
}

// Len returns the number of cached reports
func (p *Provider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.reports)
}

// ClearCache clears all cached reports
func (p *Provider) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reports = make(map[uint64]*model.AnalysisReport)
	p.order = nil
	util.Debug("Report cache cleared")
}

func cacheKey(source, languageTag, fileName string) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(languageTag)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(fileName)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(source)
	return h.Sum64()
}

// cloneReport copies the slices of a report so cached entries are never shared
func cloneReport(r *model.AnalysisReport) *model.AnalysisReport {
	c := *r
	c.Functions = slices.Clone(r.Functions)
	c.Classes = slices.Clone(r.Classes)
	c.Recommendations = slices.Clone(r.Recommendations)
	c.BigO.Signals = slices.Clone(r.BigO.Signals)
	c.Summary.Distribution = slices.Clone(r.Summary.Distribution)
	return &c
}
