package model

import "time"

// AnalysisReport is the complete result of analyzing one source file
type AnalysisReport struct {
	FileName string `json:"file_name" yaml:"file_name"`
	Language string `json:"language" yaml:"language"`

	// Line counts; TotalLines == CodeLines + CommentLines + BlankLines
	TotalLines   int `json:"total_lines" yaml:"total_lines"`
	CodeLines    int `json:"code_lines" yaml:"code_lines"`
	CommentLines int `json:"comment_lines" yaml:"comment_lines"`
	BlankLines   int `json:"blank_lines" yaml:"blank_lines"`

	CyclomaticComplexity int `json:"cyclomatic_complexity" yaml:"cyclomatic_complexity"`
	CognitiveComplexity  int `json:"cognitive_complexity" yaml:"cognitive_complexity"`

	Functions         []FunctionRecord `json:"functions" yaml:"functions"`
	FunctionsFallback bool             `json:"functions_fallback" yaml:"functions_fallback"` // no declaration matched
	Classes           []ClassRecord    `json:"classes" yaml:"classes"`

	MaintainabilityIndex int        `json:"maintainability_index" yaml:"maintainability_index"`
	Recommendations      []string   `json:"recommendations" yaml:"recommendations"`
	BigO                 BigOResult `json:"big_o" yaml:"big_o"`

	Summary ReportSummary `json:"summary" yaml:"summary"`
}

// ReportSummary contains display ratings derived from the report metrics
type ReportSummary struct {
	ComplexityLevel      Level                `json:"complexity_level" yaml:"complexity_level"`
	MaintainabilityLevel Level                `json:"maintainability_level" yaml:"maintainability_level"`
	TimeComplexityLevel  Level                `json:"time_complexity_level" yaml:"time_complexity_level"`
	Distribution         []DistributionBucket `json:"distribution" yaml:"distribution"`
}

// DistributionBucket counts functions within a complexity band
type DistributionBucket struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// BatchReport aggregates reports for several files analyzed in one run
type BatchReport struct {
	RunID       string           `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Summary     BatchSummary     `json:"summary" yaml:"summary"`
	Reports     []AnalysisReport `json:"reports" yaml:"reports"`
}

// BatchSummary contains aggregated statistics over a batch
type BatchSummary struct {
	FileCount           int             `json:"file_count" yaml:"file_count"`
	TotalLines          int             `json:"total_lines" yaml:"total_lines"`
	CodeLines           int             `json:"code_lines" yaml:"code_lines"`
	AvgMaintainability  float64         `json:"avg_maintainability" yaml:"avg_maintainability"`
	WorstTimeComplexity ComplexityClass `json:"worst_time_complexity" yaml:"worst_time_complexity"`
	Hotspots            []FileHotspot   `json:"hotspots" yaml:"hotspots"`
}

// FileHotspot represents a file with high cyclomatic complexity
type FileHotspot struct {
	FileName             string `json:"file_name" yaml:"file_name"`
	CyclomaticComplexity int    `json:"cyclomatic_complexity" yaml:"cyclomatic_complexity"`
	MaintainabilityIndex int    `json:"maintainability_index" yaml:"maintainability_index"`
}
