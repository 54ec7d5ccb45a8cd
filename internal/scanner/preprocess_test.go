package scanner_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/tstools/tsvc/internal/core"
	"github.com/tstools/tsvc/internal/engine"
	"github.com/tstools/tsvc/internal/scanner"
)

func referencedNames(info *engine.PreProcessedFile) []string {
	return core.Map(info.ReferencedFiles, func(ref engine.FileReference) string { return ref.FileName })
}

func importedNames(info *engine.PreProcessedFile) []string {
	return core.Map(info.ImportedFiles, func(ref engine.FileReference) string { return ref.FileName })
}

func TestPreProcessFile(t *testing.T) {
	t.Parallel()

	t.Run("reference directives", func(t *testing.T) {
		t.Parallel()
		info := scanner.PreProcessFile(
			"/// <reference path=\"lib.d.ts\" />\n" +
				"///<reference path='other.d.ts'/>\n" +
				"// <reference path=\"not-a-directive.d.ts\" />\n" +
				"export {};\n")
		assert.DeepEqual(t, referencedNames(info), []string{"lib.d.ts", "other.d.ts"})
	})

	t.Run("import forms", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name   string
			source string
			want   []string
		}{
			{"bare import", `import "./a";`, []string{"./a"}},
			{"default import", `import def from "./a";`, []string{"./a"}},
			{"named imports", `import { one, two } from "./a";`, []string{"./a"}},
			{"namespace import", `import * as ns from "./a";`, []string{"./a"}},
			{"type-only import", `import type { T } from "./a";`, []string{"./a"}},
			{"import equals require", `import a = require("./a");`, []string{"./a"}},
			{"export from", `export { one } from "./a";`, []string{"./a"}},
			{"export star from", `export * from "./a";`, []string{"./a"}},
			{"require call", `const a = require("./a");`, []string{"./a"}},
			{"single quotes", `import './a';`, []string{"./a"}},
			{"package specifier", `import "lodash";`, []string{"lodash"}},
			{"no imports", `const x = 1;`, nil},
			{"plain export", `export const x = 1;`, nil},
		}
		for _, test := range tests {
			test := test
			t.Run(test.name, func(t *testing.T) {
				t.Parallel()
				info := scanner.PreProcessFile(test.source)
				assert.DeepEqual(t, importedNames(info), test.want)
			})
		}
	})

	t.Run("multiple imports keep source order", func(t *testing.T) {
		t.Parallel()
		info := scanner.PreProcessFile(
			"import \"./first\";\n" +
				"import second from \"./second\";\n" +
				"export * from \"./third\";\n")
		assert.DeepEqual(t, importedNames(info), []string{"./first", "./second", "./third"})
	})

	t.Run("ranges cover the specifier text", func(t *testing.T) {
		t.Parallel()
		source := `import "./dep";`
		info := scanner.PreProcessFile(source)
		assert.Equal(t, len(info.ImportedFiles), 1)
		ref := info.ImportedFiles[0]
		assert.Equal(t, source[ref.Range.Pos:ref.Range.End], "./dep")
	})
}
