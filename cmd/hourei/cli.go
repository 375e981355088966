package main

import (
	"context"
	"io"
	"time"

	hourei "github.com/ToAmano/hourei-api"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Laws hourei.LawService
	Text hourei.Converter
	YAML hourei.Converter

	// WriterFor returns the output writer for a target directory.
	WriterFor func(dir string) hourei.OutputWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search  SearchCmd  `cmd:"" help:"Search the law index by statute title"`
	Fetch   FetchCmd   `cmd:"" help:"Fetch statute XML by title or law ID"`
	Convert ConvertCmd `cmd:"" help:"Convert a statute to plain text or YAML"`

	Timeout time.Duration `default:"10s" help:"API request timeout"`
	Rate    float64       `default:"2" help:"API rate limit in requests per second"`
	Verbose bool          `short:"v" help:"Log operations to stderr"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Title string `arg:"" help:"Statute title to search for"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Title string `arg:"" optional:"" help:"Statute title (resolved to a law ID by exact match)"`
	ID    string `help:"Law ID (skips title resolution)"`
	Out   string `short:"o" help:"Directory to save the XML into (prints to stdout when unset)"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Title  string `arg:"" optional:"" help:"Statute title (resolved to a law ID by exact match)"`
	ID     string `help:"Law ID (skips title resolution)"`
	File   string `short:"f" help:"Read statute XML from a file instead of the API" type:"existingfile"`
	Format string `default:"text" enum:"text,yaml" help:"Output format (text or yaml)"`
	Out    string `short:"o" help:"Directory to save the rendering into (prints to stdout when unset)"`
}
