package core

import "sort"

// ComputeLineStarts returns the offset of the first character of each line.
// Recognizes \n, \r, and \r\n line breaks.
func ComputeLineStarts(text string) []int {
	lineStarts := []int{0}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			lineStarts = append(lineStarts, i+1)
		case '\n':
			lineStarts = append(lineStarts, i+1)
		}
	}
	return lineStarts
}

// PositionToLineAndCharacter converts an offset into 0-based line and
// character numbers given precomputed line starts.
func PositionToLineAndCharacter(lineStarts []int, position int) (line int, character int) {
	line = sort.SearchInts(lineStarts, position+1) - 1
	if line < 0 {
		line = 0
	}
	return line, position - lineStarts[line]
}
