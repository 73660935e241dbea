package ref

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/BibleRef/core/bibledata"
	"github.com/FocuswithJustin/BibleRef/core/errors"
)

// normalizedGrammar is the participle grammar for normalized references.
// Examples: "46-2-1", "46-2-1-esv"
//
//nolint:govet // participle grammar tags are not standard struct tags
type normalizedGrammar struct {
	Book        string `parser:"@Int"`
	Chapter     string `parser:"\"-\" @Int"`
	Verse       string `parser:"\"-\" @Int"`
	Translation string `parser:"( \"-\" @Ident )?"`
}

// normalizedLexer has no whitespace rule: normalized strings never contain spaces.
var normalizedLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]{2,}`},
	{Name: "Dash", Pattern: `-`},
})

var normalizedParser = participle.MustBuild[normalizedGrammar](
	participle.Lexer(normalizedLexer),
)

// parseNormalized parses "b-c-v[-t]" with book of 1-2 digits and chapter
// and verse of 1-3 digits. The translation keeps its case.
func parseNormalized(s string) (Fields, bool) {
	parsed, err := normalizedParser.ParseString("", s)
	if err != nil {
		return Fields{}, false
	}

	book, ok := parseDigits(parsed.Book, 2)
	if !ok {
		return Fields{}, false
	}
	chapter, ok := parseDigits(parsed.Chapter, 3)
	if !ok {
		return Fields{}, false
	}
	verse, ok := parseDigits(parsed.Verse, 3)
	if !ok {
		return Fields{}, false
	}

	return Fields{
		Book:        book,
		Chapter:     chapter,
		Verse:       verse,
		Translation: parsed.Translation,
	}, true
}

func parseDigits(s string, maxLen int) (int, bool) {
	if len(s) == 0 || len(s) > maxLen {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// Free-form citation fragments.
var (
	// Matches: "1 Cor ", "1cor", "Romans ", "Song of Solomon "
	bookFragmentRe = regexp.MustCompile(`^\d*[a-zA-Z ]*`)

	// Matches the first "chapter:verse" anywhere in the string.
	chapterVerseRe = regexp.MustCompile(`\d{1,3}:\d{1,3}`)

	// Matches a trailing translation code: "Rom 8:28 ESV"
	translationRe = regexp.MustCompile(`[a-zA-Z]{2,}$`)
)

// freeForm holds the fragments extracted from human-written text.
type freeForm struct {
	book        string
	chapter     int
	verse       int
	translation string
}

// splitFreeForm extracts the book, chapter:verse and translation fragments.
func splitFreeForm(s string) (freeForm, error) {
	book := normalizeBookFragment(bookFragmentRe.FindString(s))
	if book == "" {
		return freeForm{}, errors.NewReferenceFormat(s, "book not found")
	}

	cv := chapterVerseRe.FindString(s)
	if cv == "" {
		return freeForm{}, errors.NewReferenceFormat(s, "chapter:verse not found")
	}
	chapterStr, verseStr, _ := strings.Cut(cv, ":")
	chapter, _ := strconv.Atoi(chapterStr)
	verse, _ := strconv.Atoi(verseStr)

	return freeForm{
		book:        book,
		chapter:     chapter,
		verse:       verse,
		translation: strings.ToUpper(translationRe.FindString(s)),
	}, nil
}

// normalizeBookFragment lower-cases a book fragment and strips trailing
// periods and surrounding whitespace.
func normalizeBookFragment(s string) string {
	return strings.TrimSpace(strings.ToLower(strings.TrimRight(s, ".")))
}

// BookScan selects how a book fragment is matched against a book table.
type BookScan int

const (
	// ScanFirstMatch returns the first book, in table order, whose name or
	// one of whose abbreviations equals the fragment.
	ScanFirstMatch BookScan = iota

	// ScanLastMatch scans the whole table: a name match stops the scan, an
	// abbreviation match is remembered but may be replaced by a later book.
	// This reproduces the resolution order of older releases, where "ez"
	// resolved to Ezekiel rather than Ezra.
	ScanLastMatch
)

// String returns the scan mode name.
func (s BookScan) String() string {
	if s == ScanLastMatch {
		return "last-match"
	}
	return "first-match"
}

// findBook returns the 1-based index of the book matching fragment, or 0.
func findBook(books []bibledata.Book, fragment string, scan BookScan) int {
	found := 0
	for i, b := range books {
		if strings.ToLower(b.Name) == fragment {
			return i + 1
		}
		for _, abbr := range b.Abbreviations {
			if strings.ToLower(abbr) == fragment {
				if scan == ScanFirstMatch {
					return i + 1
				}
				found = i + 1
				break
			}
		}
	}
	return found
}
