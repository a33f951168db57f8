package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_UnknownTag_UsesDefaultProfile(t *testing.T) {
	js, ok := Lookup("javascript")
	require.True(t, ok)

	assert.Same(t, js, Resolve("cobol"))
	assert.Same(t, js, Resolve(""))
	assert.Same(t, js, Resolve("JavaScript"), "tags are case-sensitive")
}

func TestResolve_KnownTag_ReturnsOwnProfile(t *testing.T) {
	for _, tag := range Tags() {
		p := Resolve(tag)
		assert.Equal(t, tag, p.Tag)
		assert.NotEmpty(t, p.Tokens, "%s has no complexity tokens", tag)
		assert.NotEmpty(t, p.FunctionPatterns, "%s has no function templates", tag)
		assert.NotEmpty(t, p.ClassPatterns, "%s has no class templates", tag)
	}
}

func TestTags_Sorted(t *testing.T) {
	assert.Equal(t, []string{
		"c", "cpp", "csharp", "go", "java", "javascript", "python", "rust", "typescript",
	}, Tags())
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
		known    bool
	}{
		{"go source", "cmd/main.go", "go", true},
		{"upper-case extension", "Main.JAVA", "java", true},
		{"tsx", "src/App.tsx", "typescript", true},
		{"header", "include/list.h", "c", true},
		{"c++", "engine.cpp", "cpp", true},
		{"python", "tool.py", "python", true},
		{"no extension", "Makefile", "javascript", false},
		{"unknown extension", "notes.txt", "javascript", false},
		{"empty", "", "javascript", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.fileName))
			_, known := DetectStrict(tt.fileName)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestToken_Count(t *testing.T) {
	tests := []struct {
		name  string
		token string
		text  string
		want  int
	}{
		{"whole word", "if", "if (x) { if (y) {} }", 2},
		{"not inside identifiers", "if", "diff := modify(elif)", 0},
		{"case-sensitive", "if", "IF (x) If (y)", 0},
		{"symbolic literal", "?", "a ? b : c ?? d", 3},
		{"double operator", "&&", "a && b &&& c", 2},
		{"or operator", "||", "a || b", 1},
		{"no match", "while", "for (;;) {}", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newToken(tt.token).Count(tt.text))
		})
	}
}

func TestProfile_IsCommentStart(t *testing.T) {
	js := Resolve("javascript")
	assert.True(t, js.IsCommentStart("// note"))
	assert.True(t, js.IsCommentStart("/* block"))
	assert.False(t, js.IsCommentStart("# not a js comment"))
	assert.False(t, js.IsCommentStart("x = 1 // trailing"))

	py := Resolve("python")
	assert.True(t, py.IsCommentStart("# note"))
	assert.True(t, py.IsCommentStart(`"""docstring`))
	assert.True(t, py.IsCommentStart("'''docstring"))
	assert.False(t, py.IsCommentStart("// not a python comment"))
}

func TestProfile_TokenTexts(t *testing.T) {
	p := Resolve("python")
	assert.Equal(t, []string{"if", "elif", "else", "while", "for", "try", "except", "finally", "and", "or"}, p.TokenTexts())
}

func TestProfile_DeclarationTemplates(t *testing.T) {
	tests := []struct {
		tag      string
		function string
		class    string
		fnName   string
		clsName  string
	}{
		{"go", "func (s *Server) Start(ctx context.Context) error {", "type Server struct {", "Start", "Server"},
		{"go", "func Map[T any](xs []T) []T {", "type Set[T comparable] interface {", "Map", "Set"},
		{"rust", "pub fn parse<'a>(input: &'a str) -> Result<()> {", "pub enum Token {", "parse", "Token"},
		{"python", "async def fetch(url):", "class Client(Base):", "fetch", "Client"},
		{"typescript", "function render(props) {", "export class View {", "render", "View"},
		{"java", "public int size() {", "public class Stack {", "size", "Stack"},
		{"c", "static int count(node *n) {", "typedef struct list {", "count", "list"},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.fnName, func(t *testing.T) {
			p := Resolve(tt.tag)

			var fnNames []string
			for _, re := range p.FunctionPatterns {
				if m := re.FindStringSubmatch(tt.function); m != nil {
					fnNames = append(fnNames, m[1])
				}
			}
			assert.Contains(t, fnNames, tt.fnName)

			var clsNames []string
			for _, re := range p.ClassPatterns {
				if m := re.FindStringSubmatch(tt.class); m != nil {
					clsNames = append(clsNames, m[1])
				}
			}
			assert.Contains(t, clsNames, tt.clsName)
		})
	}
}
