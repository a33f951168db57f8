package language

import (
	"path/filepath"
	"sort"
	"strings"
)

// DefaultTag is the profile used for unrecognized language tags
const DefaultTag = "javascript"

var cStyleComments = struct {
	line  []string
	block []BlockComment
}{
	line:  []string{"//"},
	block: []BlockComment{{Start: "/*", End: "*/"}},
}

var cFamilyTokens = []string{"if", "else", "while", "for", "do", "switch", "case", "catch", "finally", "&&", "||", "?"}

var jsFunctions = []string{
	`function\s+(\w+)\s*\([^)]*\)`,
	`(?:const|let|var)\s+(\w+)\s*=\s*(?:function|\([^)]*\)\s*=>)`,
	`(\w+)\s*:\s*function\s*\([^)]*\)`,
}

var definitions = map[string]definition{
	"java": {
		extensions:    []string{".java"},
		lineComments:  cStyleComments.line,
		blockComments: cStyleComments.block,
		tokens:        cFamilyTokens,
		functions: []string{
			`(?:public|private|protected|static)?\s*\w+\s+(\w+)\s*\([^)]*\)\s*\{`,
			`(?:public|private|protected|static)?\s*(?:static)?\s*\w+\s+(\w+)\s*\([^)]*\)`,
		},
		classes: []string{`(?:public|private|protected)?\s*class\s+(\w+)`},
	},
	"javascript": {
		extensions:    []string{".js", ".jsx", ".mjs", ".cjs"},
		lineComments:  cStyleComments.line,
		blockComments: cStyleComments.block,
		tokens:        cFamilyTokens,
		functions:     jsFunctions,
		classes:       []string{`class\s+(\w+)`},
	},
	"typescript": {
		extensions:    []string{".ts", ".tsx", ".mts", ".cts"},
		lineComments:  cStyleComments.line,
		blockComments: cStyleComments.block,
		tokens:        cFamilyTokens,
		functions: []string{
			jsFunctions[0],
			jsFunctions[1],
			`(\w+)\s*\([^)]*\)\s*:\s*\w+\s*\{`,
		},
		classes: []string{`(?:export\s+)?class\s+(\w+)`},
	},
	"python": {
		extensions:    []string{".py", ".pyw"},
		lineComments:  []string{"#"},
		blockComments: []BlockComment{{Start: `"""`, End: `"""`}, {Start: "'''", End: "'''"}},
		tokens:        []string{"if", "elif", "else", "while", "for", "try", "except", "finally", "and", "or"},
		functions: []string{
			`def\s+(\w+)\s*\([^)]*\)\s*:`,
			`async\s+def\s+(\w+)\s*\([^)]*\)\s*:`,
		},
		classes: []string{`class\s+(\w+)\s*(?:\([^)]*\))?\s*:`},
	},
	"c": {
		extensions:    []string{".c", ".h"},
		lineComments:  cStyleComments.line,
		blockComments: cStyleComments.block,
		tokens:        []string{"if", "else", "while", "for", "do", "switch", "case", "&&", "||", "?"},
		functions: []string{
			`\w+\s+(\w+)\s*\([^)]*\)\s*\{`,
			`static\s+\w+\s+(\w+)\s*\([^)]*\)\s*\{`,
		},
		classes: []string{`(?:typedef\s+)?struct\s+(\w+)`},
	},
	"cpp": {
		extensions:    []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx"},
		lineComments:  cStyleComments.line,
		blockComments: cStyleComments.block,
		tokens:        []string{"if", "else", "while", "for", "do", "switch", "case", "catch", "&&", "||", "?"},
		functions: []string{
			`\w+\s+(\w+)\s*\([^)]*\)\s*\{`,
			`(?:virtual|static|inline)?\s*\w+\s+(\w+)\s*\([^)]*\)\s*\{`,
		},
		classes: []string{`(?:class|struct)\s+(\w+)`},
	},
	"csharp": {
		extensions:    []string{".cs"},
		lineComments:  cStyleComments.line,
		blockComments: cStyleComments.block,
		tokens:        cFamilyTokens,
		functions: []string{
			`(?:public|private|protected|internal|static)?\s*(?:virtual|override|abstract)?\s*\w+\s+(\w+)\s*\([^)]*\)\s*\{`,
			`(?:public|private|protected|internal)?\s*(?:static)?\s*(?:async)?\s*\w+\s+(\w+)\s*\([^)]*\)`,
			`(?:public|private|protected|internal)?\s*(?:static)?\s*void\s+(\w+)\s*\([^)]*\)`,
		},
		classes: []string{
			`(?:public|private|protected|internal)?\s*(?:static|abstract|sealed)?\s*class\s+(\w+)`,
			`(?:public|private|protected|internal)?\s*(?:static)?\s*struct\s+(\w+)`,
			`(?:public|private|protected|internal)?\s*interface\s+(\w+)`,
		},
	},
	"go": {
		extensions:    []string{".go"},
		lineComments:  cStyleComments.line,
		blockComments: cStyleComments.block,
		tokens:        []string{"if", "else", "for", "switch", "case", "select", "&&", "||"},
		functions:     []string{`func\s+(?:\([^)]*\)\s*)?(\w+)\s*(?:\[[^\]]*\])?\s*\(`},
		classes:       []string{`type\s+(\w+)(?:\[[^\]]*\])?\s+(?:struct|interface)\b`},
	},
	"rust": {
		extensions:    []string{".rs"},
		lineComments:  cStyleComments.line,
		blockComments: cStyleComments.block,
		tokens:        []string{"if", "else", "while", "for", "loop", "match", "&&", "||"},
		functions:     []string{`fn\s+(\w+)\s*(?:<[^>]*>)?\s*\(`},
		classes:       []string{`(?:struct|enum|trait)\s+(\w+)`},
	},
}

var (
	registry    = make(map[string]*Profile, len(definitions))
	byExtension = make(map[string]string)
)

func init() {
	for tag, def := range definitions {
		p := def.compile(tag)
		registry[tag] = p
		for _, ext := range p.Extensions {
			byExtension[ext] = tag
		}
	}
}

// Lookup returns the profile registered for tag.
// Tags are matched case-sensitively.
func Lookup(tag string) (*Profile, bool) {
	p, ok := registry[tag]
	return p, ok
}

// Resolve returns the profile for tag, or the default profile when the tag is unknown
func Resolve(tag string) *Profile {
	if p, ok := registry[tag]; ok {
		return p
	}
	return registry[DefaultTag]
}

// Tags returns all registered language tags in sorted order
func Tags() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Detect infers a language tag from a file name's extension.
// Unknown or missing extensions resolve to DefaultTag.
func Detect(fileName string) string {
	if tag, ok := DetectStrict(fileName); ok {
		return tag
	}
	return DefaultTag
}

// DetectStrict is like Detect but reports whether the extension is known
func DetectStrict(fileName string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(fileName))
	tag, ok := byExtension[ext]
	return tag, ok
}
