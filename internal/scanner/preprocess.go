// Package scanner implements source preprocessing: extracting reference
// directives and static import specifiers from raw text without parsing.
// Engines that don't expose their own preprocess operation embed Scanner to
// satisfy engine.Preprocessor.
package scanner

import (
	"github.com/dlclark/regexp2"

	"github.com/tstools/tsvc/internal/engine"
)

var (
	// /// <reference path="..." /> directives, one per line.
	referenceRe = regexp2.MustCompile(`(?m)^\s*///\s*<reference\s+path\s*=\s*(?:"([^"]+)"|'([^']+)')`, regexp2.None)

	// import "m"; import d from "m"; import { a, b } from "m"; import * as ns from "m";
	// import d = require("m")
	importRe = regexp2.MustCompile(`(?m)^\s*import\s+(?:[\w$]+\s*=\s*require\s*\(\s*)?(?:[^"'=]*?\bfrom\s+)?(?:"([^"]+)"|'([^']+)')`, regexp2.None)

	// export { a } from "m"; export * from "m"
	exportFromRe = regexp2.MustCompile(`(?m)^\s*export\s+[^"'=;]*?\bfrom\s+(?:"([^"]+)"|'([^']+)')`, regexp2.None)

	// bare require("m") calls outside import-equals declarations
	requireRe = regexp2.MustCompile(`\brequire\s*\(\s*(?:"([^"]+)"|'([^']+)')\s*\)`, regexp2.None)
)

// Scanner is a regexp-based engine.Preprocessor.
type Scanner struct{}

var _ engine.Preprocessor = Scanner{}

func (Scanner) PreProcessFile(sourceText string) *engine.PreProcessedFile {
	return PreProcessFile(sourceText)
}

// PreProcessFile scans sourceText for reference directives and import
// specifiers. Duplicate specifiers are reported once each time they occur;
// deduplication is the caller's concern.
func PreProcessFile(sourceText string) *engine.PreProcessedFile {
	result := &engine.PreProcessedFile{
		ReferencedFiles: collectMatches(referenceRe, sourceText),
	}
	imports := collectMatches(importRe, sourceText)
	imports = append(imports, collectMatches(exportFromRe, sourceText)...)
	for _, ref := range collectMatches(requireRe, sourceText) {
		if !containsRange(imports, ref.Range) {
			imports = append(imports, ref)
		}
	}
	result.ImportedFiles = imports
	return result
}

func collectMatches(re *regexp2.Regexp, sourceText string) []engine.FileReference {
	var refs []engine.FileReference
	match, err := re.FindStringMatch(sourceText)
	for err == nil && match != nil {
		if group := specifierGroup(match); group != nil {
			refs = append(refs, engine.FileReference{
				FileName: group.String(),
				Range: engine.TextRange{
					Pos: group.Index,
					End: group.Index + group.Length,
				},
			})
		}
		match, err = re.FindNextMatch(match)
	}
	return refs
}

// specifierGroup returns whichever quote alternation captured the specifier.
func specifierGroup(match *regexp2.Match) *regexp2.Group {
	for i := 1; i <= 2; i++ {
		if group := match.GroupByNumber(i); group != nil && len(group.Captures) > 0 {
			return group
		}
	}
	return nil
}

func containsRange(refs []engine.FileReference, r engine.TextRange) bool {
	for _, ref := range refs {
		if ref.Range == r {
			return true
		}
	}
	return false
}
