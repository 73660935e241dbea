// Package validation checks user-supplied dataset paths before they are
// opened: path hygiene and a magic-byte check that the content matches the
// extension.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// MaxPathLength is the maximum allowed path length.
const MaxPathLength = 4096

// Common validation errors.
var (
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrUnknownKind      = errors.New("unknown dataset kind")
	ErrKindMismatch     = errors.New("file content does not match extension")
)

// ValidatePath rejects empty paths, overlong paths and paths containing
// NUL or other control characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}
	return nil
}

// Kind is the storage kind of a dataset file.
type Kind string

// Dataset kinds.
const (
	KindSQLite Kind = "sqlite"
	KindJSON   Kind = "json"
	KindJSONGz Kind = "json.gz"
	KindJSONXZ Kind = "json.xz"
)

// magicBytes are the signatures checked against the file header.
var magicBytes = []struct {
	kind  Kind
	magic []byte
}{
	{KindSQLite, []byte("SQLite format 3\x00")},
	{KindJSONXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{KindJSONGz, []byte{0x1f, 0x8b}},
}

// KindFromExtension maps a file name to the dataset kind its extension
// names. It returns "" for unknown extensions.
func KindFromExtension(filename string) Kind {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".json.xz"):
		return KindJSONXZ
	case strings.HasSuffix(lower, ".json.gz"):
		return KindJSONGz
	case strings.HasSuffix(lower, ".json"):
		return KindJSON
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return KindSQLite
	}
	return ""
}

// DetectKind reads the header of r and checks it against the kind named
// by filename's extension.
func DetectKind(r io.Reader, filename string) (Kind, error) {
	want := KindFromExtension(filename)
	if want == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, filename)
	}

	buf := make([]byte, 512)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read file header: %w", err)
	}
	buf = buf[:n]

	got := detectFromMagic(buf)
	if got == "" && want == KindJSON && isLikelyText(buf) {
		got = KindJSON
	}
	if got != want {
		return "", fmt.Errorf("%w: extension suggests %s", ErrKindMismatch, want)
	}
	return got, nil
}

// DetectFile opens path and runs DetectKind on it.
func DetectFile(path string) (Kind, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return DetectKind(f, path)
}

func detectFromMagic(buf []byte) Kind {
	for _, sig := range magicBytes {
		if bytes.HasPrefix(buf, sig.magic) {
			return sig.kind
		}
	}
	return ""
}

// isLikelyText reports whether buf looks like UTF-8 text.
func isLikelyText(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	if bytes.IndexByte(buf, 0) != -1 {
		return false
	}

	printable, control := 0, 0
	for _, b := range buf {
		switch {
		case b == '\n' || b == '\r' || b == '\t':
			printable++
		case b < 32 || b == 127:
			control++
		default:
			printable++
		}
	}
	return control*10 < printable
}
