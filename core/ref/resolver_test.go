package ref

import (
	"errors"
	"strings"
	"testing"

	"github.com/FocuswithJustin/BibleRef/core/bibledata"
	bterrors "github.com/FocuswithJustin/BibleRef/core/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input     string
		canonical string
		name      string
	}{
		// Free-form
		{"1 Cor 12:1", "46-12-1", "1 Corinthians 12:1"},
		{"1cor12:1", "46-12-1", "1 Corinthians 12:1"},
		{"1c 12:1", "46-12-1", "1 Corinthians 12:1"},
		{"Eph 2:10", "49-2-10", "Ephesians 2:10"},
		{"Rom. 1:1", "45-1-1", "Romans 1:1"},
		{"romans 3:23", "45-3-23", "Romans 3:23"},
		{"Song of Solomon 2:1", "22-2-1", "Song of Solomon 2:1"},
		{"1 John 3:24", "62-3-24", "1 John 3:24"},
		{"3 John 1:2", "64-1-2", "3 John 1:2"},
		{"Ps 119:176", "19-119-176", "Psalms 119:176"},
		{"Romans 8:28 esv", "45-8-28-ESV", "Romans 8:28"},
		{"Jude 1:3 NIV", "65-1-3-NIV", "Jude 1:3"},
		// Normalized
		{"46-2-1", "46-2-1", "1 Corinthians 2:1"},
		{"46-2-1-esv", "46-2-1-esv", "1 Corinthians 2:1"},
		{"1-1-1-KJV", "1-1-1-KJV", "Genesis 1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got := v.CanonicalString(); got != tt.canonical {
				t.Errorf("Parse(%q).CanonicalString() = %q, want %q", tt.input, got, tt.canonical)
			}
			if got := v.String(); got != tt.name {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.input, got, tt.name)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
		msg   string
	}{
		{"Acts 2:48", bterrors.ErrOutOfRange, "no such verse 48 in Acts 2"},
		{"Romans 17:1", bterrors.ErrOutOfRange, "no such chapter in Romans"},
		{"1 Maccabees 1:8", bterrors.ErrOutOfRange, "book not found"},
		{"12:1", bterrors.ErrOutOfRange, "book not found"},
		{"Romans", bterrors.ErrInvalidReferenceFormat, "chapter:verse not found"},
		{"Romans 1", bterrors.ErrInvalidReferenceFormat, "chapter:verse not found"},
		{"123-1-1", bterrors.ErrInvalidReferenceFormat, "chapter:verse not found"},
		{"!!! 1:1", bterrors.ErrInvalidReferenceFormat, "book not found"},
		{"", bterrors.ErrInvalidReferenceFormat, "book not found"},
		{"Acts 8:37 ESV", bterrors.ErrOutOfRange, "verse omitted from ESV"},
		{"44-8-37-esv", bterrors.ErrOutOfRange, "verse omitted from esv"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.input)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("Parse(%q) error = %q, want it to contain %q", tt.input, err, tt.msg)
			}
		})
	}
}

func TestResolveFields(t *testing.T) {
	v, err := New(44, 8, 37, "kvj")
	if err != nil {
		t.Fatalf("New(44, 8, 37, kvj) error: %v", err)
	}
	if got := v.CanonicalString(); got != "44-8-37-kvj" {
		t.Errorf("CanonicalString() = %q, want %q", got, "44-8-37-kvj")
	}
	if tr, ok := v.Translation(); !ok || tr != "kvj" {
		t.Errorf("Translation() = %q, %v; want kvj, true", tr, ok)
	}

	noTr, err := New(44, 8, 37, "")
	if err != nil {
		t.Fatalf("New(44, 8, 37) error: %v", err)
	}
	if _, ok := noTr.Translation(); ok {
		t.Error("Translation() ok = true for a verse without translation")
	}
	if got := noTr.CanonicalString(); got != "44-8-37" {
		t.Errorf("CanonicalString() = %q, want %q", got, "44-8-37")
	}

	tests := []struct {
		name   string
		fields Fields
		msg    string
	}{
		{"book zero", Fields{Book: 0, Chapter: 1, Verse: 1}, "no such book 0"},
		{"book beyond canon", Fields{Book: 67, Chapter: 1, Verse: 1}, "no such book 67"},
		{"chapter zero", Fields{Book: 45, Chapter: 0, Verse: 1}, "no such chapter in Romans"},
		{"chapter beyond book", Fields{Book: 45, Chapter: 17, Verse: 1}, "no such chapter in Romans"},
		{"verse zero", Fields{Book: 45, Chapter: 1, Verse: 0}, "no such verse 0 in Romans 1"},
		{"verse beyond chapter", Fields{Book: 45, Chapter: 1, Verse: 33}, "no such verse 33 in Romans 1"},
		{"omitted", Fields{Book: 44, Chapter: 8, Verse: 37, Translation: "esv"}, "verse omitted from esv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.fields)
			if !errors.Is(err, bterrors.ErrOutOfRange) {
				t.Fatalf("Resolve(%+v) error = %v, want ErrOutOfRange", tt.fields, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("Resolve(%+v) error = %q, want it to contain %q", tt.fields, err, tt.msg)
			}
		})
	}
}

func TestResolveInputShapes(t *testing.T) {
	if _, err := Resolve(Normalized("Romans 1:1")); !errors.Is(err, bterrors.ErrInvalidReferenceFormat) {
		t.Errorf("Resolve(Normalized(free text)) error = %v, want ErrInvalidReferenceFormat", err)
	}
	if _, err := Resolve(Normalized("46-2")); !errors.Is(err, bterrors.ErrInvalidReferenceFormat) {
		t.Errorf("Resolve(Normalized(46-2)) error = %v, want ErrInvalidReferenceFormat", err)
	}

	// FreeForm never tries the normalized grammar.
	if _, err := Resolve(FreeForm("46-2-1")); !errors.Is(err, bterrors.ErrInvalidReferenceFormat) {
		t.Errorf("Resolve(FreeForm(46-2-1)) error = %v, want ErrInvalidReferenceFormat", err)
	}

	v := MustParse("Rom 3:23")
	again, err := Resolve(v)
	if err != nil {
		t.Fatalf("Resolve(Verse) error: %v", err)
	}
	if !again.Equal(v) {
		t.Errorf("Resolve(Verse) = %v, want %v", again, v)
	}

	if _, err := Resolve(Verse{}); !errors.Is(err, bterrors.ErrInvalidReferenceFormat) {
		t.Errorf("Resolve(Verse{}) error = %v, want ErrInvalidReferenceFormat", err)
	}
}

func TestNormalizedGrammar(t *testing.T) {
	tests := []struct {
		input string
		want  Fields
		ok    bool
	}{
		{"46-2-1", Fields{Book: 46, Chapter: 2, Verse: 1}, true},
		{"1-150-6", Fields{Book: 1, Chapter: 150, Verse: 6}, true},
		{"46-2-1-esv", Fields{Book: 46, Chapter: 2, Verse: 1, Translation: "esv"}, true},
		{"46-2-1-e", Fields{}, false},
		{"460-2-1", Fields{}, false},
		{"46-1000-1", Fields{}, false},
		{"46-2-1000", Fields{}, false},
		{"46-2", Fields{}, false},
		{"46 2 1", Fields{}, false},
		{"46-2-1-", Fields{}, false},
		{"46-2-1-esv-x", Fields{}, false},
		{"Gen.1.1", Fields{}, false},
	}

	for _, tt := range tests {
		got, ok := parseNormalized(tt.input)
		if ok != tt.ok {
			t.Errorf("parseNormalized(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("parseNormalized(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestSplitFreeForm(t *testing.T) {
	tests := []struct {
		input string
		want  freeForm
	}{
		{"1 Cor 12:1", freeForm{book: "1 cor", chapter: 12, verse: 1}},
		{"Rom. 1:1", freeForm{book: "rom", chapter: 1, verse: 1}},
		{"Romans 8:28 esv", freeForm{book: "romans", chapter: 8, verse: 28, translation: "ESV"}},
		{"Gen 1234:5", freeForm{book: "gen", chapter: 234, verse: 5}},
	}

	for _, tt := range tests {
		got, err := splitFreeForm(tt.input)
		if err != nil {
			t.Errorf("splitFreeForm(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("splitFreeForm(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestBookScan(t *testing.T) {
	first := NewResolver(bibledata.Default())
	last := NewResolver(bibledata.Default(), WithBookScan(ScanLastMatch))

	tests := []struct {
		input     string
		firstBook string
		lastBook  string
	}{
		// "ez" abbreviates both Ezra and Ezekiel
		{"ez 1:1", "Ezra", "Ezekiel"},
		// a name match stops the scan in both modes
		{"Ezra 1:1", "Ezra", "Ezra"},
		{"Ezekiel 1:1", "Ezekiel", "Ezekiel"},
		{"rom 1:1", "Romans", "Romans"},
	}

	for _, tt := range tests {
		v, err := first.Resolve(Text(tt.input))
		if err != nil {
			t.Fatalf("first-match Resolve(%q) error: %v", tt.input, err)
		}
		if got := v.BookName(); got != tt.firstBook {
			t.Errorf("first-match Resolve(%q) book = %q, want %q", tt.input, got, tt.firstBook)
		}

		v, err = last.Resolve(Text(tt.input))
		if err != nil {
			t.Fatalf("last-match Resolve(%q) error: %v", tt.input, err)
		}
		if got := v.BookName(); got != tt.lastBook {
			t.Errorf("last-match Resolve(%q) book = %q, want %q", tt.input, got, tt.lastBook)
		}
	}

	if ScanFirstMatch.String() != "first-match" || ScanLastMatch.String() != "last-match" {
		t.Errorf("BookScan.String() = %q, %q", ScanFirstMatch, ScanLastMatch)
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	for bookIdx, b := range bibledata.DefaultBooks() {
		for ch, count := range b.VerseCounts {
			for _, vn := range []int{1, count} {
				v, err := New(bookIdx+1, ch+1, vn, "")
				if err != nil {
					t.Fatalf("New(%d, %d, %d) error: %v", bookIdx+1, ch+1, vn, err)
				}
				again, err := Resolve(Normalized(v.CanonicalString()))
				if err != nil {
					t.Fatalf("Resolve(%q) error: %v", v.CanonicalString(), err)
				}
				if !again.Equal(v) {
					t.Fatalf("round trip of %q = %q", v.CanonicalString(), again.CanonicalString())
				}
			}
		}
	}
}

func TestProviderError(t *testing.T) {
	boom := errors.New("table unavailable")
	r := NewResolver(bibledata.ProviderFunc(func(string) ([]bibledata.Book, error) {
		return nil, boom
	}))
	if _, err := r.Resolve(Text("Rom 1:1")); !errors.Is(err, boom) {
		t.Errorf("Resolve() error = %v, want %v", err, boom)
	}
}

func TestCustomProvider(t *testing.T) {
	books := []bibledata.Book{
		{Name: "First", Abbreviations: []string{"fst"}, VerseCounts: []int{3, 2}},
		{Name: "Second", Abbreviations: []string{"snd"}, VerseCounts: []int{4}, Omissions: map[int][]int{1: {2}}},
	}
	r := NewResolver(bibledata.NewStaticProvider(books, nil))

	v, err := r.Resolve(Text("fst 2:2"))
	if err != nil {
		t.Fatalf("Resolve(fst 2:2) error: %v", err)
	}
	if v.CanonicalString() != "1-2-2" || v.String() != "First 2:2" {
		t.Errorf("Resolve(fst 2:2) = %q (%q)", v.CanonicalString(), v.String())
	}

	_, err = r.Resolve(Text("Second 1:2"))
	if !errors.Is(err, bterrors.ErrOutOfRange) || !strings.Contains(err.Error(), "all modern translations") {
		t.Errorf("Resolve(Second 1:2) error = %v, want omission error", err)
	}
}

func TestVerseCompare(t *testing.T) {
	a := MustParse("Rom 1:1")
	b := MustParse("Rom 1:2")
	c := MustParse("Rom 2:1")
	d := MustParse("1 Cor 1:1")

	ordered := []Verse{a, b, c, d}
	for i := range ordered {
		for j := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := ordered[i].Compare(ordered[j]); got != want {
				t.Errorf("%v.Compare(%v) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}

	withTr := MustParse("Rom 1:1 ESV")
	if a.Equal(withTr) {
		t.Error("verses in different translations must not be Equal")
	}
	if a.Compare(withTr) != 0 {
		t.Error("Compare must ignore translation")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse(Acts 2:48) did not panic")
		}
	}()
	MustParse("Acts 2:48")
}
