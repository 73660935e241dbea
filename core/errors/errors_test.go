package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestReferenceFormatError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ReferenceFormatError
		wantMsg string
	}{
		{
			name:    "with input",
			err:     &ReferenceFormatError{Input: "Romans", Message: "chapter:verse not found"},
			wantMsg: `invalid reference "Romans": chapter:verse not found`,
		},
		{
			name:    "without input",
			err:     &ReferenceFormatError{Message: "book not found"},
			wantMsg: "invalid reference: book not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidReferenceFormat) {
				t.Errorf("errors.Is(%v, ErrInvalidReferenceFormat) = false", tt.err)
			}
		})
	}
}

func TestRangeError(t *testing.T) {
	tests := []struct {
		name    string
		err     *RangeError
		wantMsg string
	}{
		{
			name:    "with input",
			err:     &RangeError{Input: "Acts 2:48", Message: "no such verse 48 in Acts 2"},
			wantMsg: "no such verse 48 in Acts 2: Acts 2:48",
		},
		{
			name:    "message only",
			err:     &RangeError{Message: "verse omitted from all modern translations"},
			wantMsg: "verse omitted from all modern translations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrOutOfRange) {
				t.Errorf("errors.Is(%v, ErrOutOfRange) = false", tt.err)
			}
			if errors.Is(tt.err, ErrInvalidReferenceFormat) {
				t.Errorf("RangeError must not match ErrInvalidReferenceFormat")
			}
		})
	}
}

func TestRangeFormatError(t *testing.T) {
	err := NewRangeFormat("James 2-3", "problem on left side of hyphen")
	want := `invalid range expression "James 2-3": problem on left side of hyphen`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrInvalidRangeFormat) {
		t.Error("Is() failed to match RangeFormatError to ErrInvalidRangeFormat")
	}
}

func TestTranslationMismatchError(t *testing.T) {
	tests := []struct {
		start, end string
		wantMsg    string
	}{
		{"ESV", "NIV", "verses must be in the same translation to form a passage: ESV != NIV"},
		{"", "esv", "verses must be in the same translation to form a passage: (none) != esv"},
	}

	for _, tt := range tests {
		err := NewTranslationMismatch(tt.start, tt.end)
		if got := err.Error(); got != tt.wantMsg {
			t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
		}
		if !Is(err, ErrTranslationMismatch) {
			t.Errorf("Is(%v, ErrTranslationMismatch) = false", err)
		}
	}
}

func TestIOError(t *testing.T) {
	baseErr := fmt.Errorf("permission denied")
	tests := []struct {
		name    string
		err     *IOError
		wantMsg string
	}{
		{
			name:    "with path",
			err:     &IOError{Operation: "read", Path: "/test/books.json", Err: baseErr},
			wantMsg: "failed to read /test/books.json: permission denied",
		},
		{
			name:    "without path",
			err:     &IOError{Operation: "write", Err: baseErr},
			wantMsg: "failed to write: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, baseErr) {
				t.Errorf("Unwrap() = %v, want %v", got, baseErr)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with path",
			err:      &ParseError{Format: "JSON", Path: "books.json", Message: "unexpected EOF"},
			wantMsg:  "failed to parse JSON at books.json: unexpected EOF",
			wantBase: ErrInvalidInput,
		},
		{
			name:     "without path",
			err:      &ParseError{Format: "dataset", Message: "no books"},
			wantMsg:  "failed to parse dataset: no books",
			wantBase: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("json: unexpected token")
		err := &ParseError{Format: "JSON", Path: "books.json", Message: "invalid syntax", Err: underlyingErr}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("wraps error", func(t *testing.T) {
		wrapped := Wrap(NewRange("", "book not found"), "resolve")
		if !errors.Is(wrapped, ErrOutOfRange) {
			t.Errorf("Wrap() error does not unwrap to ErrOutOfRange")
		}
		wantMsg := "resolve: book not found"
		if wrapped.Error() != wantMsg {
			t.Errorf("Wrap() = %q, want %q", wrapped.Error(), wantMsg)
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil) = %v, want nil", got)
		}
	})
}

func TestWrapf(t *testing.T) {
	baseErr := fmt.Errorf("base error")
	wrapped := Wrapf(baseErr, "failed to load %s", "ESV")
	if !errors.Is(wrapped, baseErr) {
		t.Errorf("Wrapf() error does not unwrap to base error")
	}
	wantMsg := "failed to load ESV: base error"
	if wrapped.Error() != wantMsg {
		t.Errorf("Wrapf() = %q, want %q", wrapped.Error(), wantMsg)
	}
	if got := Wrapf(nil, "context %s", "test"); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
}

func TestAs(t *testing.T) {
	err := Wrap(NewRange("Acts 2:48", "no such verse"), "passage start")
	var rangeErr *RangeError
	if !As(err, &rangeErr) {
		t.Fatal("As() failed to match RangeError")
	}
	if rangeErr.Input != "Acts 2:48" {
		t.Errorf("As() rangeErr.Input = %q, want %q", rangeErr.Input, "Acts 2:48")
	}
}
