package ls

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tstools/tsvc/internal/engine"
)

// FormatDocument returns fileName's content with the engine's formatting
// edits applied. The result is not persisted.
func (l *LanguageService) FormatDocument(fileName string) (string, error) {
	content, ok := l.program.FileContent(fileName)
	if !ok {
		return "", fmt.Errorf("ls: file %s is not part of program %s", fileName, l.program.Root())
	}
	edits := l.program.Service().GetFormattingEditsForDocument(fileName, l.formatSettings)
	return ApplyEdits(content, edits), nil
}

// FormatDocumentRange is FormatDocument restricted to the [pos, end) range.
func (l *LanguageService) FormatDocumentRange(fileName string, pos int, end int) (string, error) {
	content, ok := l.program.FileContent(fileName)
	if !ok {
		return "", fmt.Errorf("ls: file %s is not part of program %s", fileName, l.program.Root())
	}
	edits := l.program.Service().GetFormattingEditsForRange(fileName, pos, end, l.formatSettings)
	return ApplyEdits(content, edits), nil
}

// ApplyEdits splices an ordered list of text edits into text. Edits are
// applied from the last to the first so that earlier edits' offsets remain
// valid as later-positioned spans are replaced. Zero edits returns text
// unchanged.
func ApplyEdits(text string, edits []*engine.TextChange) string {
	if len(edits) == 0 {
		return text
	}
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b *engine.TextChange) int {
		return a.Range.Pos - b.Range.Pos
	})

	var builder strings.Builder
	result := text
	for i := len(sorted) - 1; i >= 0; i-- {
		edit := sorted[i]
		pos := min(max(edit.Range.Pos, 0), len(result))
		end := min(max(edit.Range.End, pos), len(result))
		builder.Reset()
		builder.Grow(len(result) - (end - pos) + len(edit.NewText))
		builder.WriteString(result[:pos])
		builder.WriteString(edit.NewText)
		builder.WriteString(result[end:])
		result = builder.String()
	}
	return result
}
