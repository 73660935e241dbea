// Command bibleref resolves scripture citations and passages from the
// command line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/BibleRef/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for bibleref.
type CLI struct {
	// Global flags
	LogLevel   string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"warn" enum:"debug,info,warn,error" env:"BIBLEREF_LOG_LEVEL"`
	LogFormat  string `name:"log-format" help:"Log format (text, json)" default:"text" enum:"text,json" env:"BIBLEREF_LOG_FORMAT"`
	Data       string `name:"data" short:"d" help:"Dataset file (.json, .json.gz, .json.xz or .db); built-in tables when empty" type:"path" env:"BIBLEREF_DATA"`
	LegacyScan bool   `name:"legacy-scan" help:"Resolve ambiguous abbreviations to the last matching book" env:"BIBLEREF_LEGACY_SCAN"`

	Resolve  ResolveCmd  `cmd:"" help:"Resolve citations to canonical form"`
	Passage  PassageCmd  `cmd:"" help:"Show a passage and its length"`
	Includes IncludesCmd `cmd:"" help:"Check whether a passage includes a verse"`
	Overlap  OverlapCmd  `cmd:"" help:"Check whether two passages share a verse"`
	Abbrevs  AbbrevsCmd  `cmd:"" help:"List book names and abbreviations"`
	Dataset  DataGroup   `cmd:"" name:"data" help:"Dataset export and inspection"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// DataGroup contains dataset operations.
type DataGroup struct {
	Export DataExportCmd `cmd:"" help:"Write book tables to a .json, .json.gz, .json.xz or .db file"`
	Info   DataInfoCmd   `cmd:"" help:"Show the tables of the active dataset and their fingerprints"`
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.out, "bibleref version %s\n", version)
	return nil
}

// run parses args and executes the selected command, writing command
// output to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("bibleref"),
		kong.Description("BibleRef - scripture citation resolver"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logging.InitLoggerTo(stderr, logging.ParseLevel(cli.LogLevel), logging.ParseFormat(cli.LogFormat))
	ctx := logging.WithCommand(context.Background(), kctx.Command())

	a, err := newApp(ctx, &cli, stdout)
	if err != nil {
		return err
	}
	defer a.Close()

	logging.DebugContext(ctx, "running command", "source", a.source)
	if err := kctx.Run(a); err != nil {
		logging.DebugContext(ctx, "command failed", "error", err)
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bibleref: %v\n", err)
		os.Exit(1)
	}
}
