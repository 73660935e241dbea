package ref

import (
	"fmt"

	"github.com/FocuswithJustin/BibleRef/core/bibledata"
	"github.com/FocuswithJustin/BibleRef/core/errors"
	"github.com/FocuswithJustin/BibleRef/internal/logging"
)

// Resolver turns citations into validated verses using the book tables of
// a bibledata.Provider. A Resolver is safe for concurrent use.
type Resolver struct {
	provider bibledata.Provider
	scan     BookScan
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBookScan selects how free-form book fragments are matched.
func WithBookScan(scan BookScan) Option {
	return func(r *Resolver) {
		r.scan = scan
	}
}

// NewResolver creates a Resolver backed by provider.
func NewResolver(provider bibledata.Provider, opts ...Option) *Resolver {
	r := &Resolver{
		provider: provider,
		scan:     ScanFirstMatch,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver(bibledata.Default())

// Default returns the Resolver backed by the built-in book tables.
func Default() *Resolver {
	return defaultResolver
}

// Resolve resolves in with the default Resolver.
func Resolve(in Input) (Verse, error) {
	return defaultResolver.Resolve(in)
}

// Parse resolves a normalized or free-form string with the default Resolver.
func Parse(s string) (Verse, error) {
	return defaultResolver.Resolve(Text(s))
}

// New resolves explicit fields with the default Resolver.
func New(book, chapter, verse int, translation string) (Verse, error) {
	return defaultResolver.Resolve(Fields{Book: book, Chapter: chapter, Verse: verse, Translation: translation})
}

// MustParse is like Parse but panics if s cannot be resolved.
// It is intended for tests and package-level initialization.
func MustParse(s string) Verse {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("ref: MustParse(%q): %v", s, err))
	}
	return v
}

// Resolve converts in into a validated Verse. It fails with an error
// matching errors.ErrInvalidReferenceFormat when in has no recognizable
// shape and errors.ErrOutOfRange when the reference does not exist in the
// applicable translation.
func (r *Resolver) Resolve(in Input) (Verse, error) {
	var (
		v       Verse
		err     error
		raw     string
		grammar string
	)

	switch in := in.(type) {
	case Verse:
		if in.IsZero() {
			return Verse{}, errors.NewReferenceFormat("", "zero verse")
		}
		return in, nil
	case Fields:
		grammar = "fields"
		raw = fieldsString(in)
		v, err = r.validate(in, raw)
	case Normalized:
		grammar = "normalized"
		raw = string(in)
		fields, ok := parseNormalized(raw)
		if !ok {
			err = errors.NewReferenceFormat(raw, "expected normalized b-c-v(-t) format")
			break
		}
		v, err = r.validate(fields, raw)
	case FreeForm:
		grammar = "free-form"
		raw = string(in)
		v, err = r.resolveFreeForm(raw)
	case Text:
		raw = string(in)
		if fields, ok := parseNormalized(raw); ok {
			grammar = "normalized"
			v, err = r.validate(fields, raw)
			break
		}
		grammar = "free-form"
		v, err = r.resolveFreeForm(raw)
	default:
		return Verse{}, errors.NewReferenceFormat("", fmt.Sprintf("unsupported input %T", in))
	}

	if err != nil {
		logging.ResolveFailure(raw, err, "grammar", grammar)
		return Verse{}, err
	}
	logging.ReferenceParsed(raw, grammar, v.CanonicalString())
	return v, nil
}

func (r *Resolver) resolveFreeForm(s string) (Verse, error) {
	ff, err := splitFreeForm(s)
	if err != nil {
		return Verse{}, err
	}

	tab, err := r.table(ff.translation)
	if err != nil {
		return Verse{}, err
	}
	book := findBook(tab.books, ff.book, r.scan)
	if book == 0 {
		return Verse{}, errors.NewRange(s, "book not found: "+ff.book)
	}

	return r.check(tab, Fields{
		Book:        book,
		Chapter:     ff.chapter,
		Verse:       ff.verse,
		Translation: ff.translation,
	}, s)
}

// table fetches the book table for translation.
func (r *Resolver) table(translation string) (*table, error) {
	books, err := r.provider.Lookup(translation)
	if err != nil {
		return nil, errors.Wrapf(err, "load book table for %q", translation)
	}
	return &table{books: books}, nil
}

func (r *Resolver) validate(f Fields, raw string) (Verse, error) {
	tab, err := r.table(f.Translation)
	if err != nil {
		return Verse{}, err
	}
	return r.check(tab, f, raw)
}

// check enforces the Verse invariants against tab.
func (r *Resolver) check(tab *table, f Fields, raw string) (Verse, error) {
	b, ok := tab.book(f.Book)
	if !ok {
		return Verse{}, errors.NewRange(raw, fmt.Sprintf("no such book %d", f.Book))
	}

	count, ok := b.VerseCount(f.Chapter)
	if !ok {
		return Verse{}, errors.NewRange(raw, "no such chapter in "+b.Name)
	}

	if f.Verse < 1 || f.Verse > count {
		return Verse{}, errors.NewRange(raw, fmt.Sprintf("no such verse %d in %s %d", f.Verse, b.Name, f.Chapter))
	}

	if b.IsOmitted(f.Chapter, f.Verse) {
		scope := "all modern translations"
		if f.Translation != "" {
			scope = f.Translation
		}
		return Verse{}, errors.NewRange(raw, "verse omitted from "+scope)
	}

	return Verse{
		book:        f.Book,
		chapter:     f.Chapter,
		verse:       f.Verse,
		translation: f.Translation,
		tab:         tab,
	}, nil
}

func fieldsString(f Fields) string {
	s := fmt.Sprintf("%d-%d-%d", f.Book, f.Chapter, f.Verse)
	if f.Translation != "" {
		s += "-" + f.Translation
	}
	return s
}
