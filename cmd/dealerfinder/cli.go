package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/ammanabbasi/used-car-dealer-finder/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Searcher http.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve  ServeCmd  `cmd:"" help:"Serve the dealer finder web UI"`
	Search SearchCmd `cmd:"" help:"Search for dealers near a zip code from the command line"`

	MapsAPIKey   string `env:"GOOGLE_MAPS_API_KEY" required:"" help:"Google Maps API key"`
	GeminiAPIKey string `env:"GEMINI_API_KEY" required:"" help:"Gemini API key for website summaries"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr     string `default:":8080" help:"Listen address"`
	NoEnrich bool   `help:"Skip website summaries"`
	Browser  bool   `help:"Fetch dealer sites with headless Chrome (for JS-heavy sites)"`
	SameZip  bool   `help:"Only show dealers whose address matches the searched zip"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Zip      string `arg:"" help:"5-digit US zip code"`
	NoEnrich bool   `help:"Skip website summaries"`
	Browser  bool   `help:"Fetch dealer sites with headless Chrome (for JS-heavy sites)"`
	SameZip  bool   `help:"Only show dealers whose address matches the searched zip"`
}
