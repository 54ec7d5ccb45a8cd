package ls

import (
	"context"

	"github.com/tstools/tsvc/internal/core"
	"github.com/tstools/tsvc/internal/engine"
	"github.com/tstools/tsvc/internal/tspath"
)

// Location is a 0-based line and character position within a file.
type Location struct {
	Line      int
	Character int
}

// ErrorRecord is a diagnostic translated into the editor-facing shape:
// positions as line/character rather than offsets, plus a preview of the
// offending source span.
type ErrorRecord struct {
	FileName string
	Start    Location
	End      Location
	Message  string
	Category engine.DiagnosticCategory
	Code     int32
	// Preview is the source text of the offending span, or "" when the
	// attributed file's content is not hosted by the program.
	Preview string
}

// GetErrorsForFile returns the diagnostics for a project file. Syntactic
// diagnostics are requested first; semantic diagnostics are only requested
// when no syntactic ones exist, since semantic errors on top of a malformed
// file are noise. Diagnostics with no associated file are skipped.
func (l *LanguageService) GetErrorsForFile(ctx context.Context, fileName string) []*ErrorRecord {
	return l.getErrorsForFile(ctx, fileName, false)
}

// GetErrorsForFileFiltered is GetErrorsForFile restricted to diagnostics
// whose originating file is the queried file, excluding diagnostics
// attributed to referenced or imported files. File identity is compared in
// canonical path form, so attribution survives case differences on
// case-insensitive file systems.
func (l *LanguageService) GetErrorsForFileFiltered(ctx context.Context, fileName string) []*ErrorRecord {
	return l.getErrorsForFile(ctx, fileName, true)
}

func (l *LanguageService) getErrorsForFile(ctx context.Context, fileName string, filtered bool) []*ErrorRecord {
	fileName = tspath.GetNormalizedAbsolutePath(fileName, l.program.Root())
	queriedPath := l.program.ToPath(fileName)
	service := l.program.Service()
	diagnostics := service.GetSyntacticDiagnostics(ctx, fileName)
	if len(diagnostics) == 0 {
		diagnostics = service.GetSemanticDiagnostics(ctx, fileName)
	}

	records := make([]*ErrorRecord, 0, len(diagnostics))
	for _, diagnostic := range diagnostics {
		if diagnostic.FileName == "" {
			continue
		}
		if filtered && l.program.ToPath(diagnostic.FileName) != queriedPath {
			continue
		}
		records = append(records, l.toErrorRecord(diagnostic))
	}
	return records
}

func (l *LanguageService) toErrorRecord(diagnostic *engine.Diagnostic) *ErrorRecord {
	record := &ErrorRecord{
		FileName: diagnostic.FileName,
		Message:  diagnostic.Message,
		Category: diagnostic.Category,
		Code:     diagnostic.Code,
	}
	content, ok := l.program.FileContent(diagnostic.FileName)
	if !ok {
		return record
	}
	pos := min(max(diagnostic.Range.Pos, 0), len(content))
	end := min(max(diagnostic.Range.End, pos), len(content))
	lineStarts := core.ComputeLineStarts(content)
	record.Start.Line, record.Start.Character = core.PositionToLineAndCharacter(lineStarts, pos)
	record.End.Line, record.End.Character = core.PositionToLineAndCharacter(lineStarts, end)
	record.Preview = content[pos:end]
	return record
}
