package logcon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CompileError aggregates every lex/parse diagnostic produced while
// compiling one source file, so a caller can report them all at once
// instead of stopping at the first.
type CompileError struct {
	Path       string
	LexErrors  []LexError
	ParseErrors []ParseError
}

func (e *CompileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d lex error(s), %d parse error(s)", e.Path, len(e.LexErrors), len(e.ParseErrors))
	for _, le := range e.LexErrors {
		fmt.Fprintf(&b, "\n  lex: %s", le.Error())
	}
	for _, pe := range e.ParseErrors {
		fmt.Fprintf(&b, "\n  parse: %s", pe.Error())
	}
	return b.String()
}

// CompiledScript is the output of compiling one .logcon source file: its
// parsed AST, the language it was detected as written in, and any
// sidecar metadata found alongside it.
type CompiledScript struct {
	Path     string
	Language string
	Script   *Script
	Metadata ScriptMetadata
}

// ScriptMetadata is optional per-script configuration loaded from a
// "<script>.meta.yaml" sidecar file next to the source: author/version
// bookkeeping and a declared set of custom event names a host editor can
// use to offer autocompletion, without needing to parse the script body
// to discover them.
type ScriptMetadata struct {
	Author       string   `yaml:"author"`
	Version      string   `yaml:"version"`
	CustomEvents []string `yaml:"custom_events"`
}

// ScriptCompiler turns LogCon source files into CompiledScript values,
// running the lexer with language auto-detection followed by the parser.
type ScriptCompiler struct {
	Languages *LanguageRegistry
}

func NewScriptCompiler() *ScriptCompiler {
	return &ScriptCompiler{Languages: NewLanguageRegistry()}
}

// CompileSource compiles already-loaded source text; path is used only
// for diagnostics and metadata sidecar lookup (pass "" to skip the
// sidecar lookup).
func (c *ScriptCompiler) CompileSource(path, source string) (*CompiledScript, error) {
	lang := DetectLanguage(source, c.Languages)
	lexer := NewLexer(source, lang)
	tokens := lexer.Tokenize()

	parser := NewParser(tokens)
	script := parser.ParseScript()

	if len(lexer.Errors()) > 0 || len(parser.Errors()) > 0 {
		return nil, &CompileError{Path: path, LexErrors: lexer.Errors(), ParseErrors: parser.Errors()}
	}

	compiled := &CompiledScript{Path: path, Script: script}
	if lang != nil {
		compiled.Language = lang.Name
	}
	if path != "" {
		compiled.Metadata, _ = loadMetadata(path)
	}
	return compiled, nil
}

// CompileFile reads path and compiles it.
func (c *ScriptCompiler) CompileFile(path string) (*CompiledScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	return c.CompileSource(path, string(data))
}

func metadataPath(scriptPath string) string {
	ext := filepath.Ext(scriptPath)
	base := strings.TrimSuffix(scriptPath, ext)
	return base + ".meta.yaml"
}

func loadMetadata(scriptPath string) (ScriptMetadata, error) {
	data, err := os.ReadFile(metadataPath(scriptPath))
	if err != nil {
		return ScriptMetadata{}, nil // sidecar is optional; absence is not an error
	}
	var meta ScriptMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return ScriptMetadata{}, fmt.Errorf("parsing metadata for %s: %w", scriptPath, err)
	}
	return meta, nil
}

// FindEntity returns the named EntityDecl from a compiled script's top
// level, if present.
func (cs *CompiledScript) FindEntity(name string) (*EntityDecl, bool) {
	for _, e := range cs.Script.Entities {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}
