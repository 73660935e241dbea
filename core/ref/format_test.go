package ref

import "testing"

func TestVerseFormat(t *testing.T) {
	tests := []struct {
		verse    string
		template string
		want     string
	}{
		{"Eph 2:10", DefaultVerseFormat, "Ephesians 2:10"},
		{"Eph 2:10", "b c:v", "Ephesians 2:10"},
		{"Eph 2:10", "A C:V", "Eph 2:10"},
		{"1 Cor 12:1", "A C:V", "1Cor 12:1"},
		{"Song of Solomon 2:1", "A C.V", "Song 2.1"},
		{"Rom 8:28 ESV", "B C:V T", "Romans 8:28 ESV"},
		{"Rom 8:28", "B C:V T", "Romans 8:28"},
		{"Rom 8:28", "  C:V  ", "8:28"},
		{"Rom 8:28", "", ""},
	}

	for _, tt := range tests {
		v := MustParse(tt.verse)
		if got := v.Format(tt.template); got != tt.want {
			t.Errorf("%s.Format(%q) = %q, want %q", tt.verse, tt.template, got, tt.want)
		}
	}
}

func TestVerseString(t *testing.T) {
	if got := MustParse("46-2-1").String(); got != "1 Corinthians 2:1" {
		t.Errorf("String() = %q, want %q", got, "1 Corinthians 2:1")
	}
}

func TestPassageFormat(t *testing.T) {
	tests := []struct {
		start, end string
		template   string
		want       string
	}{
		{"Rom 1:1", "Rom 16:27", "", "Romans 1:1 - 16:27"},
		{"Rom 1:1", "Rom 16:27", "P", "Romans 1:1 - 16:27"},
		{"Rom 1:1", "Rom 16:27", "A C:V-c:v", "Rom 1:1-16:27"},
		{"Rom 1:1", "Rom 16:27", "Paul's letter to the B", "Romans 1:1 - 16:27Romul's leer o he Romans"},
		{"Acts 1:1", "Rom 1:1", "A - a", "Acts - Rom"},
		{"Rom 1:1 ESV", "Rom 1:5 ESV", "B C:V-v T", "Romans 1:1-5 ESV"},
		{"Rom 1:1 ESV", "Rom 1:5 ESV", "B C:V-v t", "Romans 1:1-5 ESV"},
	}

	for _, tt := range tests {
		p := mustPassage(t, tt.start, tt.end)
		if got := p.Format(tt.template); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestSmartFormat(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"Rom 12:1", "Rom 12:8", "Romans 12:1-8"},
		{"Rom 8:28", "Rom 8:28", "Romans 8:28-28"},
		{"Rom 1:1", "Rom 2:1", "Romans 1:1 - 2:1"},
		{"Acts 1:1", "Rom 1:1", "Acts 1:1 - Romans 1:1"},
		{"1 John 3:10", "2 John 1:7", "1 John 3:10 - 2 John 1:7"},
	}

	for _, tt := range tests {
		p := mustPassage(t, tt.start, tt.end)
		if got := p.SmartFormat(); got != tt.want {
			t.Errorf("SmartFormat() = %q, want %q", got, tt.want)
		}
		if got := p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"rom":         "Rom",
		"1cor":        "1Cor",
		"1 co":        "1 Co",
		"ROM":         "Rom",
		"song of sol": "Song Of Sol",
		"":            "",
	}
	for in, want := range tests {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
