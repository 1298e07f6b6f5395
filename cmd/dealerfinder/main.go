package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"github.com/ammanabbasi/used-car-dealer-finder/gemini"
	dfgoquery "github.com/ammanabbasi/used-car-dealer-finder/goquery"
	"github.com/ammanabbasi/used-car-dealer-finder/googlemaps"
	"github.com/ammanabbasi/used-car-dealer-finder/htmltomarkdown"
	dfhttp "github.com/ammanabbasi/used-car-dealer-finder/http"
	"github.com/ammanabbasi/used-car-dealer-finder/rod"
	"github.com/ammanabbasi/used-car-dealer-finder/search"
	dfslog "github.com/ammanabbasi/used-car-dealer-finder/slog"
	"github.com/ammanabbasi/used-car-dealer-finder/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	// Load .env if present; real environment still wins.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher kept for Close(); the browser fetcher holds a Chrome process.
	fetcher dealerfinder.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully releases program resources.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dealerfinder"),
		kong.Description("Find independent used car dealers near a US zip code."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dealerfinder --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := m.wire(ctx, cli, kongCtx.Command(), deps); err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// wire builds the search pipeline for the parsed command.
func (m *Main) wire(ctx context.Context, cli *CLI, command string, deps *Dependencies) error {
	var enrich, browser, sameZip bool
	switch strings.Fields(command)[0] {
	case "serve":
		enrich, browser, sameZip = !cli.Serve.NoEnrich, cli.Serve.Browser, cli.Serve.SameZip
	case "search":
		enrich, browser, sameZip = !cli.Search.NoEnrich, cli.Search.Browser, cli.Search.SameZip
	}

	mapsClient, err := googlemaps.NewClient(cli.MapsAPIKey)
	if err != nil {
		return fmt.Errorf("creating maps client: %w", err)
	}

	geocoder := googlemaps.NewGeocoder(mapsClient)
	places := dfslog.NewLoggingPlaceSearcher(googlemaps.NewSearcher(mapsClient), deps.Logger)

	opts := dealerfinder.DefaultSearchOptions()
	opts.SameZipOnly = sameZip

	searcherOpts := []search.Option{search.WithSearchOptions(opts)}

	if enrich {
		enricher, err := m.buildEnricher(ctx, cli, browser, deps.Logger)
		if err != nil {
			return err
		}
		searcherOpts = append(searcherOpts, search.WithEnricher(enricher))
	}

	deps.Searcher = search.NewSearcher(geocoder, places, searcherOpts...)
	return nil
}

func (m *Main) buildEnricher(ctx context.Context, cli *CLI, browser bool, logger *slog.Logger) (*search.Enricher, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cli.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	summarizer := dfslog.NewLoggingSummarizer(gemini.NewSummarizer(genaiClient), logger)

	if browser {
		f, err := rod.NewFetcher()
		if err != nil {
			return nil, fmt.Errorf("launching browser fetcher: %w", err)
		}
		m.fetcher = f
	} else {
		m.fetcher = dfhttp.NewFetcher()
	}

	return search.NewEnricher(
		m.fetcher,
		trafilatura.NewExtractor(),
		dfgoquery.NewExtractor(),
		htmltomarkdown.NewConverter(),
		summarizer,
	), nil
}
