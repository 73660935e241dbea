package ref

import (
	"cmp"
	"strconv"

	"github.com/FocuswithJustin/BibleRef/core/bibledata"
)

// table is the book table a verse was validated against.
type table struct {
	books []bibledata.Book
}

func (t *table) book(n int) (bibledata.Book, bool) {
	if t == nil || n < 1 || n > len(t.books) {
		return bibledata.Book{}, false
	}
	return t.books[n-1], true
}

func (t *table) omitted(book, chapter, verse int) bool {
	b, ok := t.book(book)
	return ok && b.IsOmitted(chapter, verse)
}

// Verse is a validated reference to a single verse. The zero value is not a
// valid verse; obtain one from a Resolver.
type Verse struct {
	book        int
	chapter     int
	verse       int
	translation string
	tab         *table
}

// Book returns the 1-based book number.
func (v Verse) Book() int { return v.book }

// Chapter returns the chapter number.
func (v Verse) Chapter() int { return v.chapter }

// Verse returns the verse number.
func (v Verse) Verse() int { return v.verse }

// Translation returns the translation code and whether one was given.
func (v Verse) Translation() (string, bool) {
	return v.translation, v.translation != ""
}

// BookName returns the display name of the book.
func (v Verse) BookName() string {
	b, _ := v.tab.book(v.book)
	return b.Name
}

// IsZero reports whether v is the zero Verse.
func (v Verse) IsZero() bool {
	return v.book == 0
}

// Equal reports whether v and o name the same verse in the same translation.
func (v Verse) Equal(o Verse) bool {
	return v.book == o.book && v.chapter == o.chapter &&
		v.verse == o.verse && v.translation == o.translation
}

// Compare orders verses by book, chapter and verse, ignoring translation.
// It returns -1, 0 or +1.
func (v Verse) Compare(o Verse) int {
	if c := cmp.Compare(v.book, o.book); c != 0 {
		return c
	}
	if c := cmp.Compare(v.chapter, o.chapter); c != 0 {
		return c
	}
	return cmp.Compare(v.verse, o.verse)
}

// CanonicalString returns the normalized "book-chapter-verse[-translation]"
// form, suitable for storage. Resolving it yields an equal Verse.
func (v Verse) CanonicalString() string {
	s := strconv.Itoa(v.book) + "-" + strconv.Itoa(v.chapter) + "-" + strconv.Itoa(v.verse)
	if v.translation != "" {
		s += "-" + v.translation
	}
	return s
}

// String returns the verse formatted as "B C:V", e.g. "Ephesians 2:10".
func (v Verse) String() string {
	return v.Format(DefaultVerseFormat)
}

func (Verse) isInput() {}
