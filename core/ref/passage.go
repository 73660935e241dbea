package ref

import (
	"github.com/FocuswithJustin/BibleRef/core/bibledata"
	"github.com/FocuswithJustin/BibleRef/core/errors"
)

// Passage is an inclusive range of verses between Start and End, both in
// the same translation. Start is not required to precede End and a
// reversed pair is kept as given.
type Passage struct {
	start Verse
	end   Verse
}

// NewPassage builds a passage from two inputs with the default Resolver.
func NewPassage(start, end Input) (Passage, error) {
	return defaultResolver.NewPassage(start, end)
}

// ParsePassage builds a passage from two citation strings with the default Resolver.
func ParsePassage(start, end string) (Passage, error) {
	return defaultResolver.ParsePassage(start, end)
}

// ParseRange builds a passage from a hyphenated range expression with the
// default Resolver.
func ParseRange(expr string) (Passage, error) {
	return defaultResolver.ParseRange(expr)
}

// NewPassage resolves start and end and checks that they share a
// translation. Verses are accepted as-is.
func (r *Resolver) NewPassage(start, end Input) (Passage, error) {
	s, err := r.Resolve(start)
	if err != nil {
		return Passage{}, errors.Wrap(err, "passage start")
	}
	e, err := r.Resolve(end)
	if err != nil {
		return Passage{}, errors.Wrap(err, "passage end")
	}

	if s.translation != e.translation {
		return Passage{}, errors.NewTranslationMismatch(s.translation, e.translation)
	}
	return Passage{start: s, end: e}, nil
}

// ParsePassage resolves two citation strings of any accepted shape.
func (r *Resolver) ParsePassage(start, end string) (Passage, error) {
	return r.NewPassage(Text(start), Text(end))
}

// ParseRange splits expr with SplitRange and resolves both sides.
func (r *Resolver) ParseRange(expr string) (Passage, error) {
	left, right, err := SplitRange(expr)
	if err != nil {
		return Passage{}, err
	}
	return r.ParsePassage(left, right)
}

// Start returns the first verse of the passage.
func (p Passage) Start() Verse { return p.start }

// End returns the last verse of the passage.
func (p Passage) End() Verse { return p.end }

// Translation returns the translation code shared by both ends.
func (p Passage) Translation() (string, bool) {
	return p.start.Translation()
}

// Equal reports whether both passages have equal start and end verses.
func (p Passage) Equal(o Passage) bool {
	return p.start.Equal(o.start) && p.end.Equal(o.end)
}

// IsReversed reports whether the start verse comes after the end verse.
func (p Passage) IsReversed() bool {
	return p.start.Compare(p.end) > 0
}

// String returns SmartFormat().
func (p Passage) String() string {
	return p.SmartFormat()
}

func (p Passage) books() []bibledata.Book {
	if p.start.tab == nil {
		return nil
	}
	return p.start.tab.books
}
