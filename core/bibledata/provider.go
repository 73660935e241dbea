package bibledata

import (
	"strings"

	"github.com/FocuswithJustin/BibleRef/core/cache"
)

// Provider returns the ordered book table for a translation. An empty
// translation selects the default table, which covers every book that can
// be referenced without naming a translation.
//
// Implementations must return the same sequence for the same code on every
// call. Callers must treat the returned slice as read-only.
type Provider interface {
	Lookup(translation string) ([]Book, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(translation string) ([]Book, error)

// Lookup calls f(translation).
func (f ProviderFunc) Lookup(translation string) ([]Book, error) {
	return f(translation)
}

// NormalizeTranslation returns the lookup key for a translation code.
func NormalizeTranslation(translation string) string {
	return strings.ToUpper(strings.TrimSpace(translation))
}

// builtin serves the compiled-in tables. Translation codes are matched
// case-insensitively; unknown codes get the default table.
type builtin struct{}

func (builtin) Lookup(translation string) ([]Book, error) {
	code := NormalizeTranslation(translation)
	if code == "" || !hasOmissions(code) {
		return defaultBooks, nil
	}
	return withOmissions(defaultBooks, code), nil
}

// defaultProvider is shared process-wide; the tables are static.
var defaultProvider = NewCachedProvider(builtin{}, cache.DefaultConfig())

// Default returns the built-in provider.
func Default() Provider {
	return defaultProvider
}

// DefaultBooks returns the default (no translation) table of the built-in provider.
func DefaultBooks() []Book {
	return defaultBooks
}

// CachedProvider memoizes another provider per normalized translation code.
type CachedProvider struct {
	next  Provider
	cache cache.Cache[string, []Book]
}

// NewCachedProvider wraps next with an LRU cache.
func NewCachedProvider(next Provider, config cache.Config) *CachedProvider {
	return &CachedProvider{
		next:  next,
		cache: cache.NewLRUCache[string, []Book](config),
	}
}

// Lookup returns the cached table for translation, loading it on first use.
func (p *CachedProvider) Lookup(translation string) ([]Book, error) {
	code := NormalizeTranslation(translation)
	return p.cache.GetOrLoad(code, func() ([]Book, error) {
		return p.next.Lookup(code)
	})
}

// Stats exposes the underlying cache statistics.
func (p *CachedProvider) Stats() cache.Stats {
	return p.cache.Stats()
}

// StaticProvider serves tables loaded from an external source.
type StaticProvider struct {
	def           []Book
	byTranslation map[string][]Book
}

// NewStaticProvider returns a provider serving def for the empty code and
// for any code missing from byTranslation. Keys of byTranslation are
// normalized with NormalizeTranslation.
func NewStaticProvider(def []Book, byTranslation map[string][]Book) *StaticProvider {
	m := make(map[string][]Book, len(byTranslation))
	for code, books := range byTranslation {
		m[NormalizeTranslation(code)] = books
	}
	return &StaticProvider{def: def, byTranslation: m}
}

// Lookup returns the table for translation.
func (p *StaticProvider) Lookup(translation string) ([]Book, error) {
	if books, ok := p.byTranslation[NormalizeTranslation(translation)]; ok {
		return books, nil
	}
	return p.def, nil
}

// Translations returns the codes with a dedicated table.
func (p *StaticProvider) Translations() []string {
	codes := make([]string, 0, len(p.byTranslation))
	for code := range p.byTranslation {
		codes = append(codes, code)
	}
	return codes
}
