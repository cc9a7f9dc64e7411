package pagination

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Measurer reports the byte offset in text at which rendering overflows
// one screen, or len(text) when everything fits.
type Measurer interface {
	Measure(text string) int
}

// FixedMeasurer fits a fixed number of runes on every screen.
type FixedMeasurer struct {
	Runes int
}

func (m FixedMeasurer) Measure(text string) int {
	n := 0
	for i := range text {
		if n == m.Runes {
			return i
		}
		n++
	}
	return len(text)
}

// MonospaceMeasurer lays text out on a terminal of Width cells by Height
// lines. Words move to the next line when they do not fit; words longer
// than a line are broken. East Asian wide runes take two cells.
type MonospaceMeasurer struct {
	Width  int
	Height int
}

func (m MonospaceMeasurer) Measure(text string) int {
	_, overflow := m.layout(text)
	return overflow
}

// Wrap returns the lines text is rendered as, at most Height of them. It
// breaks lines exactly where Measure counts them.
func (m MonospaceMeasurer) Wrap(text string) []string {
	lines, _ := m.layout(text)
	return lines
}

func (m MonospaceMeasurer) layout(text string) ([]string, int) {
	if m.Width <= 0 || m.Height <= 0 {
		return nil, 0
	}

	var (
		lines []string
		line  strings.Builder
		col   int
	)
	// breakLine reports false once the screen is full.
	breakLine := func() bool {
		lines = append(lines, line.String())
		line.Reset()
		col = 0
		return len(lines) < m.Height
	}

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case r == '\n':
			if !breakLine() {
				return lines, i + size
			}
			i += size

		case unicode.IsSpace(r):
			w := runewidth.RuneWidth(r)
			if col+w > m.Width {
				// trailing space is swallowed by the line break
				if !breakLine() {
					return lines, i + size
				}
				i += size
				continue
			}
			line.WriteRune(r)
			col += w
			i += size

		default:
			j := i + wordLength(text[i:])
			if w := runewidth.StringWidth(text[i:j]); col > 0 && col+w > m.Width && w <= m.Width {
				if !breakLine() {
					return lines, i
				}
			}
			for i < j {
				r, size := utf8.DecodeRuneInString(text[i:])
				w := runewidth.RuneWidth(r)
				if col > 0 && col+w > m.Width {
					if !breakLine() {
						return lines, i
					}
				}
				line.WriteRune(r)
				col += w
				i += size
			}
		}
	}

	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines, len(text)
}

// wordLength returns the byte length of the word text starts with.
func wordLength(text string) int {
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		return i
	}
	return len(text)
}
