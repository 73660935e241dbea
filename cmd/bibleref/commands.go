package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/FocuswithJustin/BibleRef/core/bibledata"
	"github.com/FocuswithJustin/BibleRef/core/ref"
	"github.com/FocuswithJustin/BibleRef/core/sqlite"
	"github.com/FocuswithJustin/BibleRef/internal/datafile"
	"github.com/FocuswithJustin/BibleRef/internal/store"
	"github.com/FocuswithJustin/BibleRef/internal/validation"
)

// ResolveCmd resolves citations and prints canonical and formatted forms.
type ResolveCmd struct {
	Citations []string `arg:"" help:"Citations such as \"1 Cor 12:1\" or \"46-12-1-esv\""`
	Format    string   `short:"f" help:"Output template (B book, A abbreviation, C chapter, V verse, T translation)" default:"B C:V"`
}

func (c *ResolveCmd) Run(a *app) error {
	for _, s := range c.Citations {
		v, err := a.resolver.Resolve(ref.Text(s))
		if err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
		fmt.Fprintf(a.out, "%s\t%s\n", v.CanonicalString(), v.Format(c.Format))
	}
	return nil
}

// PassageCmd shows a passage given as one range expression or two citations.
type PassageCmd struct {
	Citations []string `arg:"" help:"A range such as \"James 2:10-3:4\", or a start and an end citation"`
	Format    string   `short:"f" help:"Output template; upper-case letters use the start verse, lower-case the end verse, P the smart format"`
	Verses    bool     `help:"List every verse of the passage"`
}

func (c *PassageCmd) Run(a *app) error {
	p, err := parsePassage(a, c.Citations)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\t%d\n", p.Format(c.Format), p.Length())
	if c.Verses {
		for v := range p.Verses() {
			fmt.Fprintf(a.out, "%s\t%s\n", v.CanonicalString(), v)
		}
	}
	return nil
}

func parsePassage(a *app, args []string) (ref.Passage, error) {
	switch len(args) {
	case 1:
		return a.resolver.ParseRange(args[0])
	case 2:
		return a.resolver.ParsePassage(args[0], args[1])
	default:
		return ref.Passage{}, fmt.Errorf("expected a range expression or a start and end citation, got %d arguments", len(args))
	}
}

// IncludesCmd prints whether a passage includes a verse.
type IncludesCmd struct {
	Range    string `arg:"" help:"Range expression"`
	Citation string `arg:"" help:"Verse citation"`
}

func (c *IncludesCmd) Run(a *app) error {
	p, err := a.resolver.ParseRange(c.Range)
	if err != nil {
		return err
	}
	v, err := a.resolver.Resolve(ref.Text(c.Citation))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, strconv.FormatBool(p.Includes(v)))
	return nil
}

// OverlapCmd prints whether two passages share a verse.
type OverlapCmd struct {
	First  string `arg:"" help:"First range expression"`
	Second string `arg:"" help:"Second range expression"`
}

func (c *OverlapCmd) Run(a *app) error {
	p, err := a.resolver.ParseRange(c.First)
	if err != nil {
		return err
	}
	o, err := a.resolver.ParseRange(c.Second)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, strconv.FormatBool(p.Overlap(o)))
	return nil
}

// AbbrevsCmd lists book names and accepted abbreviations.
type AbbrevsCmd struct {
	Translation string `short:"t" help:"Translation whose table to list"`
}

func (c *AbbrevsCmd) Run(a *app) error {
	books, err := a.provider.Lookup(c.Translation)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, bibledata.Abbreviations(books))
	return nil
}

// DataExportCmd writes the active dataset to a file.
type DataExportCmd struct {
	Out         string   `required:"" short:"o" help:"Output file (.json, .json.gz, .json.xz or .db)" type:"path"`
	Translation []string `short:"t" help:"Translation tables to include (default: all known)"`
}

func (c *DataExportCmd) Run(a *app) error {
	if err := validation.ValidatePath(c.Out); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	codes := c.Translation
	if len(codes) == 0 {
		codes = a.codes
	}

	switch validation.KindFromExtension(c.Out) {
	case validation.KindSQLite:
		return exportSQLite(a, c.Out, codes)
	case "":
		return fmt.Errorf("%w: %s", validation.ErrUnknownKind, c.Out)
	default:
		d, err := datafile.FromProvider(a.provider, codes...)
		if err != nil {
			return err
		}
		if err := datafile.Save(c.Out, d); err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "wrote %s (%d translation tables)\n", c.Out, len(codes))
	return nil
}

func exportSQLite(a *app, path string, codes []string) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, code := range append([]string{""}, codes...) {
		books, err := a.provider.Lookup(code)
		if err != nil {
			return err
		}
		if err := s.Save(a.ctx, code, books); err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "wrote %s (%d translation tables)\n", path, len(codes))
	return nil
}

// DataInfoCmd prints the active dataset's tables and fingerprints.
type DataInfoCmd struct{}

func (c *DataInfoCmd) Run(a *app) error {
	info := sqlite.GetInfo()
	fmt.Fprintf(a.out, "source\t%s\n", a.source)
	fmt.Fprintf(a.out, "sqlite\t%s (%s)\n", info.DriverType, info.Package)

	codes := slices.Concat([]string{""}, a.codes)
	for _, code := range codes {
		books, err := a.provider.Lookup(code)
		if err != nil {
			return err
		}
		fp, err := bibledata.Fingerprint(books)
		if err != nil {
			return err
		}
		name := code
		if name == "" {
			name = "(default)"
		}
		fmt.Fprintf(a.out, "%s\t%d\t%s\n", name, len(books), fp)
	}
	return nil
}
