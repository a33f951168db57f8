package model

// FunctionRecord describes one detected function
type FunctionRecord struct {
	Name       string `json:"name" yaml:"name"`
	Complexity int    `json:"complexity" yaml:"complexity"`
	Lines      int    `json:"lines" yaml:"lines"`
	StartLine  int    `json:"start_line" yaml:"start_line"`
	EndLine    int    `json:"end_line" yaml:"end_line"`

	// Estimated is set when Lines and Complexity come from a sized body slice
	// rather than a real function boundary.
	Estimated   bool `json:"estimated" yaml:"estimated"`
	Placeholder bool `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// ClassRecord describes one detected class, struct, or interface
type ClassRecord struct {
	Name       string `json:"name" yaml:"name"`
	StartLine  int    `json:"start_line" yaml:"start_line"`
	Complexity int    `json:"complexity" yaml:"complexity"`
	Methods    int    `json:"methods" yaml:"methods"`
	Lines      int    `json:"lines" yaml:"lines"`
	Estimated  bool   `json:"estimated" yaml:"estimated"`
}
