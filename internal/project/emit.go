package project

import (
	"context"
	"fmt"

	"github.com/tstools/tsvc/internal/engine"
	"github.com/tstools/tsvc/internal/tspath"
)

// EmitResult reports one emit operation. Success is false when the engine
// skipped emission; callers must check it since emit failure is never
// surfaced as an error. OutputFiles lists the artifacts written to disk, or
// the source file itself for declaration-only inputs that need no separate
// output.
type EmitResult struct {
	Success     bool
	OutputFiles []string
}

// EmitFile produces and writes the compiled outputs for a project file.
// On engine failure the file's compiler-options, syntactic, and semantic
// diagnostics are logged (diagnostics with no associated file are skipped)
// and Success is false. Outputs are written as they arrive with no
// transactional guarantee: a write error mid-set leaves earlier outputs on
// disk and is returned to the caller.
func (p *Program) EmitFile(ctx context.Context, fileName string) (*EmitResult, error) {
	fileName = p.absolutePath(fileName)
	if !p.ContainsFile(fileName) {
		return nil, fmt.Errorf("project: %s is not part of program %s", fileName, p.Root())
	}

	output := p.service.GetEmitOutput(ctx, fileName)
	result := &EmitResult{Success: !output.EmitSkipped}
	if output.EmitSkipped {
		p.logEmitDiagnostics(ctx, fileName)
	}

	for _, outputFile := range output.OutputFiles {
		if err := p.fs.WriteFile(outputFile.Name, outputFile.Text); err != nil {
			return result, err
		}
		result.OutputFiles = append(result.OutputFiles, outputFile.Name)
	}

	if len(result.OutputFiles) == 0 && result.Success && tspath.TryGetExtensionFromPath(fileName) == ".d.ts" {
		// Declaration files produce no artifact; the input is its own output.
		result.OutputFiles = append(result.OutputFiles, fileName)
	}
	return result, nil
}

func (p *Program) logEmitDiagnostics(ctx context.Context, fileName string) {
	diagnostics := p.service.GetCompilerOptionsDiagnostics(ctx)
	diagnostics = append(diagnostics, p.service.GetSyntacticDiagnostics(ctx, fileName)...)
	diagnostics = append(diagnostics, p.service.GetSemanticDiagnostics(ctx, fileName)...)
	for _, diagnostic := range diagnostics {
		p.logDiagnostic(diagnostic)
	}
}

func (p *Program) logDiagnostic(diagnostic *engine.Diagnostic) {
	if diagnostic.FileName == "" {
		// Engine-internal diagnostics (e.g. from built-in library stubs)
		// have no file to report against.
		return
	}
	p.logger.Logf("%s(%d,%d): %s: %s",
		diagnostic.FileName, diagnostic.Range.Pos, diagnostic.Range.End,
		diagnostic.Category, diagnostic.Message)
}
