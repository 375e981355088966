package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	hourei "github.com/ToAmano/hourei-api"
	"github.com/ToAmano/hourei-api/egov"
	"github.com/ToAmano/hourei-api/etree"
	"github.com/ToAmano/hourei-api/fs"
	houreislog "github.com/ToAmano/hourei-api/slog"
	"github.com/ToAmano/hourei-api/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// API endpoint. Set before calling Run().
	BaseURL string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		BaseURL: defaultBaseURL(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hourei"),
		kong.Description("Fetch Japanese statutes from the e-Gov law API and convert them to text or YAML."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hourei --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire services
	var laws hourei.LawService = egov.NewClient(
		egov.WithBaseURL(m.BaseURL),
		egov.WithTimeout(cli.Timeout),
		egov.WithRateLimit(cli.Rate),
	)
	var text hourei.Converter = etree.NewTextConverter()
	var yamlConv hourei.Converter = yaml.NewConverter(etree.NewDocumentParser())

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		laws = houreislog.NewLoggingLawService(laws, logger)
		text = houreislog.NewLoggingConverter(text, hourei.FormatText, logger)
		yamlConv = houreislog.NewLoggingConverter(yamlConv, hourei.FormatYAML, logger)
	}

	deps.Laws = laws
	deps.Text = text
	deps.YAML = yamlConv
	deps.WriterFor = func(dir string) hourei.OutputWriter {
		return fs.NewWriter(dir)
	}

	return kongCtx.Run(deps)
}

func defaultBaseURL() string {
	if u := os.Getenv("HOUREI_API_URL"); u != "" {
		return u
	}
	return egov.DefaultBaseURL
}
