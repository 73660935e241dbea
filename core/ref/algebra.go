package ref

import (
	"iter"
)

// Includes reports whether v falls inside the passage. Verses the
// passage's translation omits are never included.
func (p Passage) Includes(v Verse) bool {
	s, e := p.start, p.end

	if v.book < s.book || v.book > e.book {
		return false
	}

	if v.book == s.book {
		if v.chapter < s.chapter {
			return false
		}
		if v.chapter == s.chapter && v.verse < s.verse {
			return false
		}
	}

	if v.book == e.book {
		if v.chapter > e.chapter {
			return false
		}
		if v.chapter == e.chapter && v.verse > e.verse {
			return false
		}
	}

	return !p.start.tab.omitted(v.book, v.chapter, v.verse)
}

// singleChapter reports whether the passage lies within one chapter.
func (p Passage) singleChapter() bool {
	return p.start.book == p.end.book && p.start.chapter == p.end.chapter
}

// Overlap reports whether the two passages share at least one verse.
// Overlap is symmetric.
func (p Passage) Overlap(o Passage) bool {
	// disjoint by book
	if p.end.book < o.start.book || o.end.book < p.start.book {
		return false
	}
	// disjoint by chapter within a shared boundary book
	if p.end.book == o.start.book && p.end.chapter < o.start.chapter {
		return false
	}
	if o.end.book == p.start.book && o.end.chapter < p.start.chapter {
		return false
	}
	// disjoint by verse within a shared boundary chapter
	if p.end.book == o.start.book && p.end.chapter == o.start.chapter && p.end.verse < o.start.verse {
		return false
	}
	if o.end.book == p.start.book && o.end.chapter == p.start.chapter && o.end.verse < p.start.verse {
		return false
	}

	// Two passages confined to the same chapter only overlap if a verse
	// they share is not omitted.
	if p.singleChapter() && o.singleChapter() {
		return sharedVerses(p, o) > 0
	}
	return true
}

// sharedVerses counts the verses common to two passages in the same
// chapter that neither translation omits. Either passage may be reversed.
func sharedVerses(p, o Passage) int {
	book, chapter := p.start.book, p.start.chapter
	lo := max(min(p.start.verse, p.end.verse), min(o.start.verse, o.end.verse))
	hi := min(max(p.start.verse, p.end.verse), max(o.start.verse, o.end.verse))

	count := 0
	for v := lo; v <= hi; v++ {
		if p.start.tab.omitted(book, chapter, v) || o.start.tab.omitted(book, chapter, v) {
			continue
		}
		count++
	}
	return count
}

// Length counts the verses in the passage, excluding verses its
// translation omits. A reversed passage counts the tail of its start
// chapter or book and the head of its end chapter or book.
func (p Passage) Length() int {
	if p.start.tab == nil {
		return 0
	}

	books := p.books()
	s, e := p.start, p.end
	startBook := books[s.book-1]

	if s.book == e.book {
		if s.chapter == e.chapter {
			return startBook.CountVerses(s.chapter, s.verse, e.verse)
		}

		count := startBook.CountVerses(s.chapter, s.verse, 0)
		for ch := s.chapter + 1; ch < e.chapter; ch++ {
			count += startBook.CountVerses(ch, 0, 0)
		}
		return count + startBook.CountVerses(e.chapter, 1, e.verse)
	}

	// tail of the start book
	count := startBook.CountVerses(s.chapter, s.verse, 0)
	for ch := s.chapter + 1; ch <= startBook.Chapters(); ch++ {
		count += startBook.CountVerses(ch, 0, 0)
	}

	// whole books in between
	for n := s.book + 1; n < e.book; n++ {
		b := books[n-1]
		for ch := 1; ch <= b.Chapters(); ch++ {
			count += b.CountVerses(ch, 0, 0)
		}
	}

	// head of the end book
	endBook := books[e.book-1]
	for ch := 1; ch < e.chapter; ch++ {
		count += endBook.CountVerses(ch, 0, 0)
	}
	return count + endBook.CountVerses(e.chapter, 1, e.verse)
}

// Verses yields every non-omitted verse of the passage, walking the same
// spans Length counts.
func (p Passage) Verses() iter.Seq[Verse] {
	return func(yield func(Verse) bool) {
		if p.start.tab == nil {
			return
		}
		books := p.books()
		s, e := p.start, p.end

		// span yields verses first..last of one chapter; last 0 means the
		// end of the chapter.
		span := func(n, ch, first, last int) bool {
			b := books[n-1]
			total, ok := b.VerseCount(ch)
			if !ok {
				return true
			}
			if last < 1 || last > total {
				last = total
			}
			for vn := max(first, 1); vn <= last; vn++ {
				if b.IsOmitted(ch, vn) {
					continue
				}
				v := Verse{book: n, chapter: ch, verse: vn, translation: s.translation, tab: s.tab}
				if !yield(v) {
					return false
				}
			}
			return true
		}

		if s.book == e.book {
			if s.chapter == e.chapter {
				span(s.book, s.chapter, s.verse, e.verse)
				return
			}
			if !span(s.book, s.chapter, s.verse, 0) {
				return
			}
			for ch := s.chapter + 1; ch < e.chapter; ch++ {
				if !span(s.book, ch, 1, 0) {
					return
				}
			}
			span(e.book, e.chapter, 1, e.verse)
			return
		}

		// tail of the start book
		for ch := s.chapter; ch <= books[s.book-1].Chapters(); ch++ {
			first := 1
			if ch == s.chapter {
				first = s.verse
			}
			if !span(s.book, ch, first, 0) {
				return
			}
		}

		// whole books in between
		for n := s.book + 1; n < e.book; n++ {
			for ch := 1; ch <= books[n-1].Chapters(); ch++ {
				if !span(n, ch, 1, 0) {
					return
				}
			}
		}

		// head of the end book
		for ch := 1; ch < e.chapter; ch++ {
			if !span(e.book, ch, 1, 0) {
				return
			}
		}
		span(e.book, e.chapter, 1, e.verse)
	}
}
