// Package haiku decides whether a message scans as a 5-7-5 haiku.
//
// Segmentation is a single forward pass: a line closes the moment the running
// syllable total reaches 5, 12 or 17, and boundaries are never reconsidered.
// A word that straddles a boundary therefore makes the message fail the final
// check even if a reader would hear a haiku.
package haiku

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines and Syllables describe a complete haiku.
const (
	Lines     = 3
	Syllables = 17
)

// boundaries are the cumulative totals that close lines one, two and three.
var boundaries = map[int]bool{5: true, 12: true, Syllables: true}

// Counter returns the syllable count of a raw token.
type Counter interface {
	Count(ctx context.Context, raw string) (int, error)
}

// PreClean splits hyphenated words and detaches words glued to an ellipsis.
func PreClean(text string) string {
	text = strings.ReplaceAll(text, "-", " ")
	return strings.ReplaceAll(text, "...", "... ")
}

// Segment reports whether text is a haiku and, if so, returns it as three
// newline-terminated lines. Each line keeps the original tokens separated by
// single spaces (with a trailing space); the first token of a line is
// capitalized. Tokens that count zero syllables never close a line, so a
// "/" line hint stays with the line it opens. The only errors are those
// returned by counter.
func Segment(ctx context.Context, counter Counter, text string) (string, bool, error) {
	var (
		lines int
		total int
		line  strings.Builder
		out   strings.Builder
	)

	for _, token := range strings.Fields(PreClean(text)) {
		if line.Len() == 0 {
			line.WriteString(capitalize(token))
		} else {
			line.WriteString(token)
		}
		line.WriteByte(' ')

		n, err := counter.Count(ctx, token)
		if err != nil {
			return "", false, err
		}
		total += n

		if n > 0 && boundaries[total] {
			out.WriteString(line.String())
			out.WriteByte('\n')
			line.Reset()
			lines++
		}
	}

	if lines == Lines && total == Syllables {
		return out.String(), true, nil
	}
	return "", false, nil
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError {
		return token
	}
	return string(unicode.ToUpper(r)) + cases.Lower(language.English).String(token[size:])
}
