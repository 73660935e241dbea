package bibledata

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/BibleRef/core/errors"
)

// Abbreviations lists every book as "<Name>:<abbr1>,<abbr2>,...", one per line.
func Abbreviations(books []Book) string {
	lines := make([]string, 0, len(books))
	for _, b := range books {
		lines = append(lines, b.Name+":"+strings.Join(b.Abbreviations, ","))
	}
	return strings.Join(lines, "\n")
}

// ListAbbreviations lists the abbreviations of the built-in default table.
func ListAbbreviations() string {
	return Abbreviations(defaultBooks)
}

// Fingerprint returns the hex BLAKE3 hash of the table's JSON encoding.
// Two tables with the same fingerprint resolve references identically.
func Fingerprint(books []Book) (string, error) {
	data, err := json.Marshal(books)
	if err != nil {
		return "", errors.Wrap(err, "encode book table")
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Validate checks the invariants every book table must satisfy.
func Validate(books []Book) error {
	if len(books) == 0 {
		return errors.NewParse("book table", "", "no books")
	}
	for i, b := range books {
		pos := i + 1
		if strings.TrimSpace(b.Name) == "" {
			return errors.NewParse("book table", "", fmt.Sprintf("book %d has no name", pos))
		}
		if len(b.VerseCounts) == 0 {
			return errors.NewParse("book table", "", fmt.Sprintf("%s has no chapters", b.Name))
		}
		for ch, n := range b.VerseCounts {
			if n < 1 {
				return errors.NewParse("book table", "", fmt.Sprintf("%s %d has no verses", b.Name, ch+1))
			}
		}
		for ch, verses := range b.Omissions {
			n, ok := b.VerseCount(ch)
			if !ok {
				return errors.NewParse("book table", "", fmt.Sprintf("%s has omissions for missing chapter %d", b.Name, ch))
			}
			for _, v := range verses {
				if v < 1 || v > n {
					return errors.NewParse("book table", "", fmt.Sprintf("%s %d omits verse %d beyond %d", b.Name, ch, v, n))
				}
			}
		}
	}
	return nil
}
