// Package datafile reads and writes book table datasets as JSON files,
// optionally compressed. The compression is chosen by file extension:
// .json, .json.gz or .json.xz.
package datafile

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/BibleRef/core/bibledata"
	"github.com/FocuswithJustin/BibleRef/core/errors"
	"github.com/FocuswithJustin/BibleRef/internal/logging"
)

// FormatName identifies dataset files.
const FormatName = "bibleref-books"

// FormatVersion is the current dataset file version.
const FormatVersion = 1

// Dataset is the on-disk form of a set of book tables.
type Dataset struct {
	Format  string `json:"format"`
	Version int    `json:"version"`

	// Default is the table for references without a translation.
	Default []bibledata.Book `json:"default"`

	// Translations holds dedicated tables keyed by upper-case code.
	Translations map[string][]bibledata.Book `json:"translations,omitempty"`

	// Fingerprints records bibledata.Fingerprint of each table; the
	// default table is under "". Checked on load when present.
	Fingerprints map[string]string `json:"fingerprints,omitempty"`
}

// New builds a dataset from a default table and optional per-translation
// tables, computing fingerprints.
func New(def []bibledata.Book, translations map[string][]bibledata.Book) (*Dataset, error) {
	d := &Dataset{
		Format:       FormatName,
		Version:      FormatVersion,
		Default:      def,
		Translations: make(map[string][]bibledata.Book, len(translations)),
		Fingerprints: make(map[string]string, len(translations)+1),
	}
	for code, books := range translations {
		d.Translations[bibledata.NormalizeTranslation(code)] = books
	}
	for code, books := range d.tables() {
		fp, err := bibledata.Fingerprint(books)
		if err != nil {
			return nil, err
		}
		d.Fingerprints[code] = fp
	}
	return d, nil
}

// FromProvider snapshots the default table of p and the tables of the
// given translation codes.
func FromProvider(p bibledata.Provider, codes ...string) (*Dataset, error) {
	def, err := p.Lookup("")
	if err != nil {
		return nil, errors.Wrap(err, "lookup default table")
	}
	tables := make(map[string][]bibledata.Book, len(codes))
	for _, code := range codes {
		books, err := p.Lookup(code)
		if err != nil {
			return nil, errors.Wrapf(err, "lookup %s table", code)
		}
		tables[code] = books
	}
	return New(def, tables)
}

func (d *Dataset) tables() map[string][]bibledata.Book {
	all := make(map[string][]bibledata.Book, len(d.Translations)+1)
	all[""] = d.Default
	for code, books := range d.Translations {
		all[code] = books
	}
	return all
}

// Codes returns the translation codes with a dedicated table, sorted.
func (d *Dataset) Codes() []string {
	codes := make([]string, 0, len(d.Translations))
	for code := range d.Translations {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Validate checks the header, every table and any recorded fingerprints.
func (d *Dataset) Validate() error {
	if d.Format != FormatName {
		return errors.NewParse("dataset", "", fmt.Sprintf("unknown format %q", d.Format))
	}
	if d.Version < 1 || d.Version > FormatVersion {
		return errors.NewParse("dataset", "", fmt.Sprintf("unsupported version %d", d.Version))
	}
	for code, books := range d.tables() {
		if err := bibledata.Validate(books); err != nil {
			return errors.Wrapf(err, "table %q", code)
		}
		want, ok := d.Fingerprints[code]
		if !ok {
			continue
		}
		got, err := bibledata.Fingerprint(books)
		if err != nil {
			return err
		}
		if got != want {
			return errors.NewParse("dataset", "", fmt.Sprintf("fingerprint mismatch for table %q", code))
		}
	}
	return nil
}

// Provider returns a provider serving the dataset's tables.
func (d *Dataset) Provider() *bibledata.StaticProvider {
	return bibledata.NewStaticProvider(d.Default, d.Translations)
}

// IsDatasetPath reports whether path has an extension this package reads.
func IsDatasetPath(path string) bool {
	_, ok := compressionOf(path)
	return ok
}

type compression int

const (
	compressNone compression = iota
	compressGzip
	compressXZ
)

func compressionOf(path string) (compression, bool) {
	p := strings.ToLower(path)
	switch {
	case strings.HasSuffix(p, ".json.xz"):
		return compressXZ, true
	case strings.HasSuffix(p, ".json.gz"):
		return compressGzip, true
	case strings.HasSuffix(p, ".json"):
		return compressNone, true
	}
	return compressNone, false
}

// Load reads and validates the dataset at path.
func Load(path string) (*Dataset, error) {
	kind, ok := compressionOf(path)
	if !ok {
		return nil, errors.NewParse("dataset", path, "unsupported file extension")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch kind {
	case compressXZ:
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, &errors.ParseError{Format: "xz", Path: path, Message: "bad xz stream", Err: err}
		}
		r = xzr
	case compressGzip:
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, &errors.ParseError{Format: "gzip", Path: path, Message: "bad gzip stream", Err: err}
		}
		defer gzr.Close()
		r = gzr
	}

	var d Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, &errors.ParseError{Format: "JSON", Path: path, Message: err.Error(), Err: err}
	}
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}

	logging.DatasetLoaded(path, "", len(d.Default), "translations", len(d.Translations))
	return &d, nil
}

// Save writes d to path, creating parent directories as needed. The file
// is written to a temporary name and renamed into place.
func Save(path string, d *Dataset) error {
	kind, ok := compressionOf(path)
	if !ok {
		return errors.NewParse("dataset", path, "unsupported file extension")
	}
	if err := d.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewIO("create directory for", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".bibleref-*")
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp, kind, d); err != nil {
		tmp.Close()
		return errors.NewIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewIO("write", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.NewIO("rename", path, err)
	}

	logging.DatasetSaved(path, len(d.Translations)+1)
	return nil
}

func encode(w io.Writer, kind compression, d *Dataset) error {
	out := w
	var closer io.Closer
	switch kind {
	case compressXZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return err
		}
		out, closer = xw, xw
	case compressGzip:
		gw := gzip.NewWriter(w)
		out, closer = gw, gw
	}

	enc := json.NewEncoder(out)
	if kind == compressNone {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(d); err != nil {
		return err
	}
	if closer != nil {
		return closer.Close()
	}
	return nil
}
