package ls_test

import (
	"context"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/tstools/tsvc/internal/engine"
	"github.com/tstools/tsvc/internal/ls"
	"github.com/tstools/tsvc/internal/testutil/servicetest"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		edits []*engine.TextChange
		want  string
	}{
		{
			name: "zero edits returns the original text",
			text: "const x=1;",
			want: "const x=1;",
		},
		{
			name: "single replacement",
			text: "abcdef",
			edits: []*engine.TextChange{
				{Range: engine.TextRange{Pos: 2, End: 4}, NewText: "X"},
			},
			want: "abXef",
		},
		{
			name: "insertion at an empty span",
			text: "ab",
			edits: []*engine.TextChange{
				{Range: engine.TextRange{Pos: 1, End: 1}, NewText: "-"},
			},
			want: "a-b",
		},
		{
			name: "deletion",
			text: "a  b",
			edits: []*engine.TextChange{
				{Range: engine.TextRange{Pos: 1, End: 3}, NewText: " "},
			},
			want: "a b",
		},
		{
			name: "earlier offsets stay valid under multiple edits",
			text: "abcdef",
			edits: []*engine.TextChange{
				{Range: engine.TextRange{Pos: 0, End: 1}, NewText: "AAA"},
				{Range: engine.TextRange{Pos: 4, End: 6}, NewText: "Z"},
			},
			want: "AAAbcdZ",
		},
		{
			name: "edits given out of order",
			text: "abcdef",
			edits: []*engine.TextChange{
				{Range: engine.TextRange{Pos: 4, End: 6}, NewText: "Z"},
				{Range: engine.TextRange{Pos: 0, End: 1}, NewText: "AAA"},
			},
			want: "AAAbcdZ",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, ls.ApplyEdits(test.text, test.edits), test.want)
		})
	}
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	t.Run("applies engine edits without persisting", func(t *testing.T) {
		t.Parallel()
		registry, utils := servicetest.Setup(map[string]string{
			"/src/tsconfig.json": `{"files": ["main.ts"], "compilerOptions": {"noEmit": true}}`,
			"/src/main.ts":       "const x=1;",
		})
		utils.Prepare = func(service *servicetest.Service) {
			service.FormattingEdits["/src/main.ts"] = []*engine.TextChange{
				{Range: engine.TextRange{Pos: 7, End: 8}, NewText: " = "},
			}
		}
		program, err := registry.AcquireProgram(context.Background(), "/src/main.ts")
		assert.NilError(t, err)
		formatted, err := ls.NewLanguageService(program, nil).FormatDocument("/src/main.ts")
		assert.NilError(t, err)
		assert.Equal(t, formatted, "const x = 1;")

		content, ok := utils.FS().ReadFile("/src/main.ts")
		assert.Assert(t, ok)
		assert.Equal(t, content, "const x=1;")
	})

	t.Run("range formatting only applies edits inside the range", func(t *testing.T) {
		t.Parallel()
		registry, utils := servicetest.Setup(map[string]string{
			"/src/tsconfig.json": `{"files": ["main.ts"], "compilerOptions": {"noEmit": true}}`,
			"/src/main.ts":       "a=1;b=2;",
		})
		utils.Prepare = func(service *servicetest.Service) {
			service.FormattingEdits["/src/main.ts"] = []*engine.TextChange{
				{Range: engine.TextRange{Pos: 1, End: 2}, NewText: " = "},
				{Range: engine.TextRange{Pos: 5, End: 6}, NewText: " = "},
			}
		}
		program, err := registry.AcquireProgram(context.Background(), "/src/main.ts")
		assert.NilError(t, err)
		formatted, err := ls.NewLanguageService(program, nil).FormatDocumentRange("/src/main.ts", 0, 4)
		assert.NilError(t, err)
		assert.Equal(t, formatted, "a = 1;b=2;")
	})

	t.Run("unknown file is an error", func(t *testing.T) {
		t.Parallel()
		registry, _ := servicetest.Setup(map[string]string{
			"/src/tsconfig.json": `{"files": ["main.ts"], "compilerOptions": {"noEmit": true}}`,
			"/src/main.ts":       "export {};",
		})
		program, err := registry.AcquireProgram(context.Background(), "/src/main.ts")
		assert.NilError(t, err)
		_, err = ls.NewLanguageService(program, nil).FormatDocument("/src/other.ts")
		assert.ErrorContains(t, err, "not part of program")
	})
}
