// Package bibledata provides the per-translation book tables that scripture
// references are validated against: book names, accepted abbreviations,
// verse counts for every chapter and the verses a translation omits.
package bibledata

import (
	"slices"
)

// Testament identifies which testament a book belongs to.
type Testament string

// Testament constants.
const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

// Book is the reference record for a single book in one translation.
// Books are identified by their 1-based position in a table.
type Book struct {
	// Name is the display name (e.g., "Romans", "1 Corinthians").
	Name string `json:"name"`

	// Testament is OT or NT.
	Testament Testament `json:"testament,omitempty"`

	// Abbreviations are lower-case match keys in priority order. The first
	// one is used for display.
	Abbreviations []string `json:"abbrs"`

	// VerseCounts holds the number of verses in each chapter (index = chapter-1).
	VerseCounts []int `json:"verse_counts"`

	// Omissions maps a 1-based chapter to verse numbers absent from the
	// translation. Chapters without omissions are not present.
	Omissions map[int][]int `json:"omissions,omitempty"`
}

// Chapters returns the number of chapters in the book.
func (b Book) Chapters() int {
	return len(b.VerseCounts)
}

// VerseCount returns the number of verses in chapter, or false if the
// chapter does not exist.
func (b Book) VerseCount(chapter int) (int, bool) {
	if chapter < 1 || chapter > len(b.VerseCounts) {
		return 0, false
	}
	return b.VerseCounts[chapter-1], true
}

// IsOmitted reports whether verse is omitted from chapter.
func (b Book) IsOmitted(chapter, verse int) bool {
	return slices.Contains(b.Omissions[chapter], verse)
}

// CountVerses returns the number of non-omitted verses in chapter between
// from and to inclusive, clamped to the chapter. A from of 0 means the
// first verse and a to of 0 means the last.
func (b Book) CountVerses(chapter, from, to int) int {
	total, ok := b.VerseCount(chapter)
	if !ok {
		return 0
	}
	if from < 1 {
		from = 1
	}
	if to < 1 || to > total {
		to = total
	}
	if from > to {
		return 0
	}

	count := to - from + 1
	for _, v := range b.Omissions[chapter] {
		if v >= from && v <= to {
			count--
		}
	}
	return count
}

// clone returns a deep copy so omission rules can be applied without
// touching the shared default table.
func (b Book) clone() Book {
	c := b
	c.Abbreviations = slices.Clone(b.Abbreviations)
	c.VerseCounts = slices.Clone(b.VerseCounts)
	if b.Omissions != nil {
		c.Omissions = make(map[int][]int, len(b.Omissions))
		for ch, verses := range b.Omissions {
			c.Omissions[ch] = slices.Clone(verses)
		}
	}
	return c
}

func (b *Book) omit(chapter int, verses ...int) {
	if b.Omissions == nil {
		b.Omissions = make(map[int][]int)
	}
	for _, v := range verses {
		if !slices.Contains(b.Omissions[chapter], v) {
			b.Omissions[chapter] = append(b.Omissions[chapter], v)
		}
	}
}

// CloneBooks returns a deep copy of a book table.
func CloneBooks(books []Book) []Book {
	out := make([]Book, len(books))
	for i, b := range books {
		out[i] = b.clone()
	}
	return out
}
