package cellref

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCell reads an address such as "F6", "$F$6", "Sheet1.F6",
// "$'My Sheet'.$B$2" or ".F6". Surrounding brackets are accepted.
func ParseCell(s string) (Cell, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	var c Cell

	if i := sheetSeparator(body); i >= 0 {
		sheet := body[:i]
		body = body[i+1:]
		if strings.HasPrefix(sheet, "$") {
			c.AbsSheet = true
			sheet = sheet[1:]
		}
		name, err := unquoteSheet(sheet)
		if err != nil {
			return Cell{}, fmt.Errorf("parse cell %q: %w", s, err)
		}
		c.Sheet = name
	}

	if strings.HasPrefix(body, "$") {
		c.AbsCol = true
		body = body[1:]
	}
	letters := 0
	for letters < len(body) && isLetter(body[letters]) {
		letters++
	}
	col, err := ParseColumn(body[:letters])
	if err != nil {
		return Cell{}, fmt.Errorf("parse cell %q: %w", s, err)
	}
	rest := body[letters:]
	if strings.HasPrefix(rest, "$") {
		c.AbsRow = true
		rest = rest[1:]
	}
	row, err := strconv.Atoi(rest)
	if err != nil || row < 1 || strings.HasPrefix(rest, "+") {
		return Cell{}, fmt.Errorf("parse cell %q: invalid row %q", s, rest)
	}

	c.Row, c.Col = row-1, col
	return c, nil
}

// ParseRange reads "F5:J9" or "Sheet1.A1:.B2". Surrounding brackets are
// accepted.
func ParseRange(s string) (Range, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	i := rangeSeparator(body)
	if i < 0 {
		return Range{}, fmt.Errorf("parse range %q: missing ':'", s)
	}
	from, err := ParseCell(body[:i])
	if err != nil {
		return Range{}, fmt.Errorf("parse range: %w", err)
	}
	to, err := ParseCell(body[i+1:])
	if err != nil {
		return Range{}, fmt.Errorf("parse range: %w", err)
	}
	r := Range{From: from, To: to}
	if err := r.Validate(); err != nil {
		return Range{}, fmt.Errorf("parse range %q: %w", s, err)
	}
	return r, nil
}

// sheetSeparator returns the index of the '.' ending the sheet part, skipping
// dots inside a quoted sheet name, or -1.
func sheetSeparator(s string) int {
	quoted := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			quoted = !quoted
		case '.':
			if !quoted {
				return i
			}
		}
	}
	return -1
}

// rangeSeparator is sheetSeparator for ':'.
func rangeSeparator(s string) int {
	quoted := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			quoted = !quoted
		case ':':
			if !quoted {
				return i
			}
		}
	}
	return -1
}

func unquoteSheet(s string) (string, error) {
	if !strings.HasPrefix(s, "'") {
		for _, r := range s {
			if !isPlain(r) {
				return "", fmt.Errorf("sheet name %q must be quoted", s)
			}
		}
		return s, nil
	}
	if len(s) < 2 || !strings.HasSuffix(s, "'") {
		return "", fmt.Errorf("unterminated sheet name %s", s)
	}
	inner := s[1 : len(s)-1]
	if strings.Count(strings.ReplaceAll(inner, "''", ""), "'") > 0 {
		return "", fmt.Errorf("stray quote in sheet name %s", s)
	}
	return strings.ReplaceAll(inner, "''", "'"), nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
