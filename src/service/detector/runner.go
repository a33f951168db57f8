package detector

import (
	"complexity-analyzer/src/model"
	"complexity-analyzer/src/util"
)

// Scan holds the match counts produced by a Runner
type Scan struct {
	counts  map[string]int
	Signals []model.Signal
}

// Count returns the match count of the named detector, zero if it did not run
func (s Scan) Count(name string) int {
	return s.counts[name]
}

// Has reports whether the named detector matched at least once
func (s Scan) Has(name string) bool {
	return s.counts[name] > 0
}

// Runner runs a fixed set of detectors over a text
type Runner struct {
	detectors []Detector
}

// NewRunner creates a runner; nil detectors are skipped
func NewRunner(detectors ...Detector) *Runner {
	r := &Runner{}
	for _, d := range detectors {
		if d != nil {
			r.detectors = append(r.detectors, d)
		}
	}
	return r
}

// Run executes every detector in registration order
func (r *Runner) Run(text string) Scan {
	scan := Scan{
		counts:  make(map[string]int, len(r.detectors)),
		Signals: make([]model.Signal, 0, len(r.detectors)),
	}
	for _, d := range r.detectors {
		n := d.Count(text)
		scan.counts[d.Name()] = n
		scan.Signals = append(scan.Signals, model.Signal{Name: d.Name(), Count: n})
	}
	util.Debug("Pattern scan ran %d detectors", len(r.detectors))
	return scan
}

// ListDetectors returns names of all registered detectors
func (r *Runner) ListDetectors() []string {
	names := make([]string, len(r.detectors))
	for i, d := range r.detectors {
		names[i] = d.Name()
	}
	return names
}
