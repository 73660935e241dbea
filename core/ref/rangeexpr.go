package ref

import (
	"regexp"
	"strings"

	"github.com/FocuswithJustin/BibleRef/core/errors"
)

// Range expression sides.
var (
	// Matches a full citation: "James 2:10", "1 John 3:10", "Song of Solomon 2:1"
	rangeCitationRe = regexp.MustCompile(`^([ a-zA-Z1-3]+) ([0-9]+):([0-9]+)$`)

	// Matches "3:4" on the right of the hyphen.
	rangeChapterVerseRe = regexp.MustCompile(`^([0-9]+):([0-9]+)$`)

	// Matches "12" on the right of the hyphen.
	rangeVerseRe = regexp.MustCompile(`^([0-9]+)$`)
)

// citation is one side of a range expression.
type citation struct {
	book, chapter, verse string
}

func (c citation) String() string {
	return c.book + " " + c.chapter + ":" + c.verse
}

// rightSide is one way of reading the text right of the hyphen, given the
// parsed left side.
type rightSide func(left citation, s string) (citation, bool)

// rightSides are tried in order; the first match wins.
var rightSides = []rightSide{
	// "12": same book and chapter
	func(left citation, s string) (citation, bool) {
		m := rangeVerseRe.FindStringSubmatch(s)
		if m == nil {
			return citation{}, false
		}
		return citation{book: left.book, chapter: left.chapter, verse: m[1]}, true
	},
	// "3:4": same book
	func(left citation, s string) (citation, bool) {
		m := rangeChapterVerseRe.FindStringSubmatch(s)
		if m == nil {
			return citation{}, false
		}
		return citation{book: left.book, chapter: m[1], verse: m[2]}, true
	},
	// "2 John 1:7": independent citation
	func(_ citation, s string) (citation, bool) {
		return parseRangeCitation(s)
	},
}

func parseRangeCitation(s string) (citation, bool) {
	m := rangeCitationRe.FindStringSubmatch(s)
	if m == nil {
		return citation{}, false
	}
	return citation{book: m[1], chapter: m[2], verse: m[3]}, true
}

// SplitRange splits a hyphenated range expression into two citations that
// can be resolved independently. Accepted forms:
//   - "James 2:10-12" (verse range within a chapter)
//   - "James 2:10-3:4" (range across chapters)
//   - "1 John 3:10-2 John 1:7" (range across books)
//
// Whole-chapter and whole-book ranges such as "James 2-3" are rejected.
// Spaces around the hyphen are ignored, so SmartFormat output splits back.
func SplitRange(expr string) (string, string, error) {
	if n := strings.Count(expr, "-"); n != 1 {
		return "", "", errors.NewRangeFormat(expr, "expecting exactly one hyphen in verse range expression")
	}

	leftStr, rightStr, _ := strings.Cut(expr, "-")
	leftStr = strings.TrimSpace(leftStr)
	rightStr = strings.TrimSpace(rightStr)

	left, ok := parseRangeCitation(leftStr)
	if !ok {
		return "", "", errors.NewRangeFormat(expr, "problem on left side of hyphen")
	}

	for _, side := range rightSides {
		if right, ok := side(left, rightStr); ok {
			return leftStr, right.String(), nil
		}
	}
	return "", "", errors.NewRangeFormat(expr, "problem on right side of hyphen")
}
