package main

import (
	"context"
	"fmt"
	"io"

	"github.com/FocuswithJustin/BibleRef/core/bibledata"
	"github.com/FocuswithJustin/BibleRef/core/ref"
	"github.com/FocuswithJustin/BibleRef/internal/datafile"
	"github.com/FocuswithJustin/BibleRef/internal/logging"
	"github.com/FocuswithJustin/BibleRef/internal/store"
	"github.com/FocuswithJustin/BibleRef/internal/validation"
)

// app is the state shared by every command: the active dataset and the
// resolver built on it.
type app struct {
	ctx      context.Context
	out      io.Writer
	source   string
	provider bibledata.Provider
	codes    []string
	resolver *ref.Resolver
	closers  []io.Closer
}

func newApp(ctx context.Context, cli *CLI, out io.Writer) (*app, error) {
	a := &app{ctx: ctx, out: out}
	if err := a.openDataset(cli.Data); err != nil {
		return nil, err
	}

	var opts []ref.Option
	if cli.LegacyScan {
		opts = append(opts, ref.WithBookScan(ref.ScanLastMatch))
	}
	a.resolver = ref.NewResolver(a.provider, opts...)
	return a, nil
}

// openDataset selects the provider for path. An empty path selects the
// built-in tables.
func (a *app) openDataset(path string) error {
	if path == "" {
		a.source = "builtin"
		a.provider = bibledata.Default()
		a.codes = bibledata.Translations()
		return nil
	}

	kind, err := validation.DetectFile(path)
	if err != nil {
		return fmt.Errorf("dataset %s: %w", path, err)
	}

	switch kind {
	case validation.KindSQLite:
		s, err := store.OpenReadOnly(path)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, s)

		tables, err := s.Tables(a.ctx)
		if err != nil {
			return err
		}
		for _, t := range tables {
			if t.Translation != "" {
				a.codes = append(a.codes, t.Translation)
			}
		}
		a.provider = s.Provider()
	default:
		d, err := datafile.Load(path)
		if err != nil {
			return err
		}
		a.codes = d.Codes()
		a.provider = d.Provider()
	}

	a.source = string(kind) + ":" + path
	logging.InfoContext(a.ctx, "dataset opened", "source", a.source, "translations", len(a.codes))
	return nil
}

// Close releases any open dataset.
func (a *app) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
