package models

import "strings"

const tabStop = 8

// Cleandoc normalizes a docstring: tabs are expanded to 8-column
// stops, the first line loses its leading whitespace, the remaining
// lines lose their common leading margin, and blank lines at either
// end are dropped. An empty input stays empty.
func Cleandoc(doc string) string {
	if doc == "" {
		return ""
	}

	lines := strings.Split(expandTabs(doc), "\n")

	margin := -1
	for _, line := range lines[1:] {
		content := strings.TrimLeft(line, " \t\v\f\r")
		if content == "" {
			continue
		}
		indent := len(line) - len(content)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	lines[0] = strings.TrimLeft(lines[0], " \t\v\f\r")
	if margin > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) > margin {
				lines[i] = lines[i][margin:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}

	return strings.Join(lines, "\n")
}

// expandTabs replaces tabs with spaces up to the next multiple of the
// tab stop, resetting the column on newlines.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := tabStop - col%tabStop
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
