// Package engine defines the boundary to the external compiler and
// language-service engine the program cache is a facade over. Type checking,
// parsing, emit, and formatting all happen behind the Service interface;
// nothing in this module reimplements them.
package engine

import (
	"context"

	"github.com/tstools/tsvc/internal/config"
	"github.com/tstools/tsvc/internal/logging"
	"github.com/tstools/tsvc/internal/vfs"
)

// TextRange is a half-open [Pos, End) offset range within a file.
type TextRange struct {
	Pos int
	End int
}

func (r TextRange) Len() int {
	return r.End - r.Pos
}

// TextChange replaces the text in Range with NewText.
type TextChange struct {
	Range   TextRange
	NewText string
}

type DiagnosticCategory int

const (
	CategoryError DiagnosticCategory = iota
	CategoryWarning
	CategorySuggestion
	CategoryMessage
)

func (c DiagnosticCategory) String() string {
	switch c {
	case CategoryError:
		return "error"
	case CategoryWarning:
		return "warning"
	case CategorySuggestion:
		return "suggestion"
	default:
		return "message"
	}
}

// Diagnostic is an error or warning produced by the engine. FileName is empty
// for diagnostics with no associated source file, such as ones attributed to
// a built-in library stub; Range is meaningless in that case.
type Diagnostic struct {
	FileName string
	Range    TextRange
	Message  string
	Category DiagnosticCategory
	Code     int32
}

// OutputFile is one emit artifact. Name is the absolute path the engine
// designates for the artifact.
type OutputFile struct {
	Name string
	Text string
}

type EmitOutput struct {
	OutputFiles []OutputFile
	EmitSkipped bool
}

// FileReference is a reference or import extracted by preprocessing. FileName
// is the reference target exactly as written in the source.
type FileReference struct {
	FileName string
	Range    TextRange
}

// PreProcessedFile is the result of scanning raw source text for statically
// declared dependencies, without parsing or type checking.
type PreProcessedFile struct {
	// ReferencedFiles are targets of reference directives, resolved
	// relative to the containing file.
	ReferencedFiles []FileReference
	// ImportedFiles are static import specifiers. Only relative specifiers
	// participate in closure building.
	ImportedFiles []FileReference
}

// Preprocessor extracts declared references and imports from raw source text.
type Preprocessor interface {
	PreProcessFile(sourceText string) *PreProcessedFile
}

type FormatCodeSettings struct {
	NewLineCharacter    string
	IndentSize          int
	TabSize             int
	ConvertTabsToSpaces bool
}

func DefaultFormatCodeSettings(newLine string) *FormatCodeSettings {
	return &FormatCodeSettings{
		NewLineCharacter:    newLine,
		IndentSize:          4,
		TabSize:             4,
		ConvertTabsToSpaces: true,
	}
}

// Service is the wrapped compiler/language-service engine. Implementations
// host source files keyed by file name and perform incremental analysis over
// them. Methods are not safe for concurrent use; callers serialize access per
// service handle.
type Service interface {
	Preprocessor

	// AddFile adds a file to the engine's input set, or replaces its
	// content if already hosted. Adding the same content twice is a no-op.
	AddFile(fileName string, content string)

	// GetEmitOutput produces the compiled outputs for a hosted file.
	// Failure is reported through EmitOutput.EmitSkipped, not an error.
	GetEmitOutput(ctx context.Context, fileName string) *EmitOutput

	GetSyntacticDiagnostics(ctx context.Context, fileName string) []*Diagnostic
	GetSemanticDiagnostics(ctx context.Context, fileName string) []*Diagnostic
	GetCompilerOptionsDiagnostics(ctx context.Context) []*Diagnostic

	GetFormattingEditsForDocument(fileName string, settings *FormatCodeSettings) []*TextChange
	GetFormattingEditsForRange(fileName string, pos int, end int, settings *FormatCodeSettings) []*TextChange
}

// Host carries everything an engine implementation needs at construction.
type Host struct {
	FS               vfs.FS
	CurrentDirectory string
	CompilerOptions  *config.CompilerOptions
	Logger           logging.Logger
}
