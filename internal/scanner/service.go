package scanner

import (
	"context"

	"github.com/tstools/tsvc/internal/engine"
)

// scanOnlyService is a degenerate engine.Service that only preprocesses.
// It backs operations that need closure building but no analysis, such as
// listing a project's files; emit always reports as skipped and diagnostic
// and formatting queries return nothing.
type scanOnlyService struct {
	Scanner
}

var _ engine.Service = (*scanOnlyService)(nil)

// NewScanOnlyService returns a Service backed solely by the preprocessor.
func NewScanOnlyService(engine.Host) (engine.Service, error) {
	return &scanOnlyService{}, nil
}

func (s *scanOnlyService) AddFile(fileName string, content string) {}

func (s *scanOnlyService) GetEmitOutput(ctx context.Context, fileName string) *engine.EmitOutput {
	return &engine.EmitOutput{EmitSkipped: true}
}

func (s *scanOnlyService) GetSyntacticDiagnostics(ctx context.Context, fileName string) []*engine.Diagnostic {
	return nil
}

func (s *scanOnlyService) GetSemanticDiagnostics(ctx context.Context, fileName string) []*engine.Diagnostic {
	return nil
}

func (s *scanOnlyService) GetCompilerOptionsDiagnostics(ctx context.Context) []*engine.Diagnostic {
	return nil
}

func (s *scanOnlyService) GetFormattingEditsForDocument(fileName string, settings *engine.FormatCodeSettings) []*engine.TextChange {
	return nil
}

func (s *scanOnlyService) GetFormattingEditsForRange(fileName string, pos int, end int, settings *engine.FormatCodeSettings) []*engine.TextChange {
	return nil
}
