package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// Scanner is a window onto a grammar source. Scanners are values; eating
// text advances the receiver and leaves copies untouched.
type Scanner struct {
	src    *source
	start  int // offset of the window within src
	length int // length of the window
}

type source struct {
	text     string
	filename string
}

func NewScanner(text string) *Scanner {
	return NewScannerWithFilename(text, "")
}

func NewScannerWithFilename(text, filename string) *Scanner {
	return &Scanner{&source{text: text, filename: filename}, 0, len(text)}
}

// Filename of the source, or empty if it did not come from a file.
func (s Scanner) Filename() string {
	if s.src == nil {
		return ""
	}
	return s.src.filename
}

func (s Scanner) String() string {
	if s.src == nil {
		return ""
	}
	return s.src.text[s.start : s.start+s.length]
}

func (s Scanner) Len() int {
	return s.length
}

func (s Scanner) IsEmpty() bool {
	return s.length == 0
}

// Offset of the start of the window within the source.
func (s Scanner) Offset() int {
	return s.start
}

// Position is the 1-indexed line and column of the start of the window.
func (s Scanner) Position() (line, col int) {
	if s.src == nil {
		return 1, 1
	}
	return lineColumn(s.src.text, s.start)
}

// Location renders the window start as file:line:col (or line:col).
func (s Scanner) Location() string {
	line, col := s.Position()
	if f := s.Filename(); f != "" {
		return fmt.Sprintf("%s:%d:%d", f, line, col)
	}
	return fmt.Sprintf("%d:%d", line, col)
}

// Slice returns the sub-window [a, b) relative to this window.
func (s Scanner) Slice(a, b int) *Scanner {
	return &Scanner{s.src, s.start + a, b - a}
}

func (s Scanner) Skip(i int) *Scanner {
	return &Scanner{s.src, s.start + i, s.length - i}
}

// Lines splits the window into physical lines, without their terminators.
func (s Scanner) Lines() []Scanner {
	var lines []Scanner
	text := s.String()
	for offset := 0; offset <= len(text); {
		end := strings.IndexByte(text[offset:], '\n')
		if end < 0 {
			lines = append(lines, *s.Slice(offset, len(text)))
			break
		}
		lines = append(lines, *s.Slice(offset, offset+end))
		offset += end + 1
	}
	return lines
}

// TrimSpace drops leading and trailing whitespace from the window.
func (s Scanner) TrimSpace() *Scanner {
	text := s.String()
	left := len(text) - len(strings.TrimLeft(text, " \t\r"))
	right := len(strings.TrimRight(text, " \t\r"))
	if right < left {
		right = left
	}
	return s.Slice(left, right)
}

func (s *Scanner) EatString(str string, eaten *Scanner) bool {
	if strings.HasPrefix(s.String(), str) {
		if eaten != nil {
			*eaten = *s.Slice(0, len(str))
		}
		*s = *s.Skip(len(str))
		return true
	}
	return false
}

// EatRegexp eats the text matching re, which must be \A-anchored, populating
// match (if != nil) with the whole match and captures (if != nil) with any
// captured groups. Returns n as the number of captures set and ok iff a match
// was found.
func (s *Scanner) EatRegexp(re *regexp.Regexp, match *Scanner, captures []Scanner) (n int, ok bool) {
	loc := re.FindStringSubmatchIndex(s.String())
	if loc == nil {
		return 0, false
	}
	if loc[0] != 0 {
		panic(`re not \A-anchored`)
	}
	if match != nil {
		*match = *s.Slice(loc[0], loc[1])
	}
	skip := loc[1]
	loc = loc[2:]
	n = len(loc) / 2
	if len(captures) > n {
		captures = captures[:n]
	}
	for i := range captures {
		if loc[2*i] < 0 {
			captures[i] = Scanner{}
			continue
		}
		captures[i] = *s.Slice(loc[2*i], loc[2*i+1])
	}
	*s = *s.Skip(skip)
	return n, true
}

// The 1-indexed line and column number of the given position within the given string.
func lineColumn(str string, pos int) (line, col int) {
	prefix := str[:pos]
	line = strings.Count(prefix, "\n") + 1
	col = pos - strings.LastIndex(prefix, "\n")
	return
}
