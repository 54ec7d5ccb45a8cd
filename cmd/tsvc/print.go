package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/tstools/tsvc/internal/engine"
	"github.com/tstools/tsvc/internal/ls"
)

type diagnosticPrinter struct {
	w      io.Writer
	pretty bool

	fileColor     *color.Color
	errorColor    *color.Color
	warningColor  *color.Color
	positionColor *color.Color
}

func newDiagnosticPrinter(w io.Writer) *diagnosticPrinter {
	pretty := !flagNoColor && os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))
	return &diagnosticPrinter{
		w:             w,
		pretty:        pretty,
		fileColor:     color.New(color.FgCyan),
		errorColor:    color.New(color.FgRed, color.Bold),
		warningColor:  color.New(color.FgYellow, color.Bold),
		positionColor: color.New(color.FgHiBlack),
	}
}

// print writes one diagnostic in the compiler's canonical shape:
//
//	path(line,col): category: message
//
// followed by the offending span when one is available.
func (p *diagnosticPrinter) print(record *ls.ErrorRecord) {
	file := record.FileName
	position := fmt.Sprintf("(%d,%d)", record.Start.Line+1, record.Start.Character+1)
	category := record.Category.String()
	if p.pretty {
		file = p.fileColor.Sprint(file)
		position = p.positionColor.Sprint(position)
		switch record.Category {
		case engine.CategoryError:
			category = p.errorColor.Sprint(category)
		case engine.CategoryWarning:
			category = p.warningColor.Sprint(category)
		}
	}
	fmt.Fprintf(p.w, "%s%s: %s: %s\n", file, position, category, record.Message)
	if preview := previewLine(record.Preview); preview != "" {
		fmt.Fprintf(p.w, "\t%s\n", preview)
	}
}

// previewLine trims a span preview to its first line so multi-line spans
// don't flood the terminal.
func previewLine(preview string) string {
	preview = strings.TrimSpace(preview)
	if i := strings.IndexAny(preview, "\r\n"); i >= 0 {
		preview = preview[:i] + " ..."
	}
	return preview
}
