package render

import "strings"

// wrapText greedily word-wraps s to lines of at most width characters.
// Words longer than width get a line of their own. Used for node labels,
// where long RFC titles would otherwise produce absurdly wide ellipses.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) <= width {
			line += " " + w
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
