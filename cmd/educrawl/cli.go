package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/jmoralesv/educrawl"
	"github.com/jmoralesv/educrawl/goquery"
)

// defaultStartURL is the catalog's landing page.
const defaultStartURL = "https://educacionvirtual.javeriana.edu.co/nuestros-programas-nuevo"

// defaultPages is the catalog's page count at the time of writing; the true
// count is not discoverable from the DOM, so it is an explicit bound.
const defaultPages = 69

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Courses educrawl.CourseService
	Terms   educrawl.TermService
	Search  educrawl.SearchService
	Runs    educrawl.RunService
	Session educrawl.BrowserSession
	Fetcher educrawl.Fetcher
}

// Cards returns the catalog card extractor.
func (d *Dependencies) Cards() educrawl.CardExtractor {
	return goquery.NewCardExtractor()
}

// Details returns the detail-page parser.
func (d *Dependencies) Details() educrawl.DetailParser {
	return goquery.NewDetailParser()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB string `help:"Database path" env:"EDUCRAWL_DB"`

	Crawl   CrawlCmd   `cmd:"" help:"Crawl the course catalog and store course records"`
	Compare CompareCmd `cmd:"" help:"Score the TF-IDF cosine similarity of two stored courses"`
	Search  SearchCmd  `cmd:"" help:"Full-text search stored courses with synonym expansion"`
	Term    TermCmd    `cmd:"" help:"Manage the synonym vocabulary"`
	Probe   ProbeCmd   `cmd:"" help:"Smoke-check the start URL over plain HTTP"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Start    string  `default:"${default_start_url}" help:"Catalog start URL"`
	Pages    int     `default:"${default_pages}" help:"Catalog pages to walk (upper bound)"`
	Delay    float64 `default:"1.0" help:"Seconds between browser actions"`
	SaveHTML bool    `name:"save-html" help:"Store raw detail-page HTML"`
	Show     bool    `help:"Show the browser window"`
}

// CompareCmd is the "compare" subcommand. Exactly one selector pair must be
// given.
type CompareCmd struct {
	IDs    []int64  `xor:"selector" required:"" help:"Two course ids, comma-separated"`
	URLs   []string `xor:"selector" required:"" help:"Two course URLs, comma-separated"`
	Titles []string `xor:"selector" required:"" help:"Two title substrings, comma-separated; each picks the first matching course"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Interests string `required:"" help:"Comma-separated interests, e.g. \"inteligencia artificial, python, datos\""`
	Top       int    `default:"20" help:"Result limit"`
}

// TermCmd groups vocabulary subcommands.
type TermCmd struct {
	Add TermAddCmd `cmd:"" help:"Add a term with its synonyms"`
}

// TermAddCmd is the "term add" subcommand.
type TermAddCmd struct {
	Term     string   `arg:"" help:"Vocabulary term"`
	Synonyms []string `arg:"" optional:"" help:"Synonyms for the term"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	Start string `default:"${default_start_url}" help:"URL to probe"`
	Limit int    `default:"10" help:"Sample links to print"`
}
