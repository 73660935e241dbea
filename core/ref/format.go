package ref

import (
	"strconv"
	"strings"
	"unicode"
)

// Template letters understood by Verse.Format and Passage.Format:
//
//	B  full book name ("Romans")
//	A  first abbreviation, title-cased ("Rom")
//	C  chapter number
//	V  verse number
//	T  translation code, empty if none
//
// Any other character is copied through. In a passage template upper-case
// letters refer to the start verse, lower-case letters to the end verse,
// and P expands to SmartFormat().
const (
	DefaultVerseFormat = "B C:V"

	sameChapterFormat = "B C:V-v"
	sameBookFormat    = "B C:V - c:v"
	crossBookFormat   = "B C:V - b c:v"
)

// Format renders the verse through template. Letters are matched without
// regard to case. The result is trimmed of surrounding whitespace.
func (v Verse) Format(template string) string {
	var sb strings.Builder
	for _, c := range template {
		sb.WriteString(v.formatChar(c))
	}
	return strings.TrimSpace(sb.String())
}

func (v Verse) formatChar(c rune) string {
	switch unicode.ToUpper(c) {
	case 'B':
		return v.BookName()
	case 'A':
		b, ok := v.tab.book(v.book)
		if !ok || len(b.Abbreviations) == 0 {
			return ""
		}
		return titleCase(b.Abbreviations[0])
	case 'C':
		return strconv.Itoa(v.chapter)
	case 'V':
		return strconv.Itoa(v.verse)
	case 'T':
		return v.translation
	default:
		return string(c)
	}
}

// Format renders the passage through template. An empty template is the
// same as SmartFormat().
func (p Passage) Format(template string) string {
	if template == "" {
		return p.SmartFormat()
	}

	var sb strings.Builder
	for _, c := range template {
		switch {
		case c == 'P':
			sb.WriteString(p.SmartFormat())
		case unicode.IsUpper(c):
			sb.WriteString(p.start.formatChar(c))
		default:
			sb.WriteString(p.end.formatChar(c))
		}
	}
	return strings.TrimSpace(sb.String())
}

// SmartFormat picks the shortest readable template for the passage:
//
//	Romans 12:1-8
//	Romans 1:1 - 2:1
//	Acts 1:1 - Romans 1:1
func (p Passage) SmartFormat() string {
	switch {
	case p.start.book != p.end.book:
		return p.Format(crossBookFormat)
	case p.start.chapter != p.end.chapter:
		return p.Format(sameBookFormat)
	default:
		return p.Format(sameChapterFormat)
	}
}

// titleCase upper-cases each letter that follows a non-letter and
// lower-cases the rest, so "1cor" becomes "1Cor" and "song of sol"
// becomes "Song Of Sol".
func titleCase(s string) string {
	var sb strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		sb.WriteRune(r)
		prevLetter = false
	}
	return sb.String()
}
