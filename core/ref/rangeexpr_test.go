package ref

import (
	"errors"
	"strings"
	"testing"

	bterrors "github.com/FocuswithJustin/BibleRef/core/errors"
)

func TestSplitRange(t *testing.T) {
	tests := []struct {
		expr  string
		left  string
		right string
	}{
		{"James 2:10-12", "James 2:10", "James 2:12"},
		{"James 2:10-3:4", "James 2:10", "James 3:4"},
		{"1 John 3:10-2 John 1:7", "1 John 3:10", "2 John 1:7"},
		{"Song of Solomon 2:1-3", "Song of Solomon 2:1", "Song of Solomon 2:3"},
		{"James 2:10 - 3:4", "James 2:10", "James 3:4"},
		{"Acts 1:1 - Romans 1:1", "Acts 1:1", "Romans 1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			left, right, err := SplitRange(tt.expr)
			if err != nil {
				t.Fatalf("SplitRange(%q) error: %v", tt.expr, err)
			}
			if left != tt.left || right != tt.right {
				t.Errorf("SplitRange(%q) = %q, %q; want %q, %q", tt.expr, left, right, tt.left, tt.right)
			}
		})
	}
}

func TestSplitRangeErrors(t *testing.T) {
	tests := []struct {
		expr string
		msg  string
	}{
		{"James 2:10", "exactly one hyphen"},
		{"James 2:10-3:4-5", "exactly one hyphen"},
		{"James 2-3", "left side"},
		{"James-3:4", "left side"},
		{"1 John-2 John", "left side"},
		{"James 2:10-", "right side"},
		{"James 2:10-3:", "right side"},
		{"James 2:10-John", "right side"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, _, err := SplitRange(tt.expr)
			if !errors.Is(err, bterrors.ErrInvalidRangeFormat) {
				t.Fatalf("SplitRange(%q) error = %v, want ErrInvalidRangeFormat", tt.expr, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("SplitRange(%q) error = %q, want it to contain %q", tt.expr, err, tt.msg)
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		expr   string
		start  string
		end    string
		length int
	}{
		{"James 2:10-12", "59-2-10", "59-2-12", 3},
		{"James 2:10-3:4", "59-2-10", "59-3-4", 21},
		{"1 John 3:10-2 John 1:7", "62-3-10", "63-1-7", 64},
		{"Jas 2:10-3:4", "59-2-10", "59-3-4", 21},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := ParseRange(tt.expr)
			if err != nil {
				t.Fatalf("ParseRange(%q) error: %v", tt.expr, err)
			}
			if got := p.Start().CanonicalString(); got != tt.start {
				t.Errorf("Start() = %q, want %q", got, tt.start)
			}
			if got := p.End().CanonicalString(); got != tt.end {
				t.Errorf("End() = %q, want %q", got, tt.end)
			}
			if got := p.Length(); got != tt.length {
				t.Errorf("Length() = %d, want %d", got, tt.length)
			}
		})
	}
}

func TestParseRangeErrors(t *testing.T) {
	if _, err := ParseRange("James 2-3"); !errors.Is(err, bterrors.ErrInvalidRangeFormat) {
		t.Errorf("ParseRange(James 2-3) error = %v, want ErrInvalidRangeFormat", err)
	}

	_, err := ParseRange("Jas 2:10-3:99")
	if !errors.Is(err, bterrors.ErrOutOfRange) {
		t.Fatalf("ParseRange(Jas 2:10-3:99) error = %v, want ErrOutOfRange", err)
	}
	if !strings.HasPrefix(err.Error(), "passage end") {
		t.Errorf("ParseRange(Jas 2:10-3:99) error = %q, want passage end context", err)
	}
}

func TestSmartFormatRoundTrip(t *testing.T) {
	exprs := []string{
		"Romans 12:1-8",
		"James 2:10 - 3:4",
		"Acts 1:1 - Romans 16:27",
		"1 John 3:10 - 2 John 1:7",
		"Song of Solomon 1:1 - 8:14",
	}

	for _, expr := range exprs {
		p, err := ParseRange(expr)
		if err != nil {
			t.Fatalf("ParseRange(%q) error: %v", expr, err)
		}
		if got := p.SmartFormat(); got != expr {
			t.Errorf("ParseRange(%q).SmartFormat() = %q", expr, got)
		}
		again, err := ParseRange(p.SmartFormat())
		if err != nil {
			t.Fatalf("ParseRange(%q) error: %v", p.SmartFormat(), err)
		}
		if !again.Equal(p) {
			t.Errorf("round trip of %q gave %q", expr, again)
		}
	}
}
