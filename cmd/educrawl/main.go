package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jmoralesv/educrawl"
	"github.com/jmoralesv/educrawl/crawl"
	"github.com/jmoralesv/educrawl/rod"
	"github.com/jmoralesv/educrawl/sqlite"

	educrawlhttp "github.com/jmoralesv/educrawl/http"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CourseService educrawl.CourseService
	TermService   educrawl.TermService
	SearchService educrawl.SearchService
	RunService    educrawl.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("educrawl"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"default_start_url": defaultStartURL,
			"default_pages":     strconv.Itoa(defaultPages),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'educrawl --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	// Wire dependencies off the parsed command, not the raw arguments:
	// kong accepts global flags before the command name.
	cmd := rootCommand(kongCtx)

	// The probe command needs no database; everything else does.
	if cmd != "probe" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set EDUCRAWL_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.CourseService = sqlite.NewCourseService(m.DB)
		m.TermService = sqlite.NewTermService(m.DB)
		m.SearchService = sqlite.NewSearchService(m.DB, m.TermService)
		m.RunService = sqlite.NewRunService(m.DB)

		deps.Courses = m.CourseService
		deps.Terms = m.TermService
		deps.Search = m.SearchService
		deps.Runs = m.RunService
	}

	if cmd == "crawl" {
		session, err := rod.NewSession(rod.WithHeadless(!cli.Crawl.Show))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer session.Close()
		deps.Session = rod.NewLoggingSession(session, logger)
	}

	if cmd == "probe" {
		fetcher := educrawlhttp.NewFetcher()
		defer fetcher.Close()
		deps.Fetcher = educrawlhttp.NewLoggingFetcher(fetcher, logger)
	}

	return kongCtx.Run(deps)
}

// rootCommand returns the first word of the selected command path, e.g.
// "term" for "term add <term>".
func rootCommand(kongCtx *kong.Context) string {
	cmd := kongCtx.Command()
	if i := strings.IndexByte(cmd, ' '); i >= 0 {
		return cmd[:i]
	}
	return cmd
}

// pacerRate converts a per-action delay in seconds to a token-bucket rate.
func pacerRate(delaySeconds float64) float64 {
	if delaySeconds <= 0 {
		return 0
	}
	return 1 / delaySeconds
}

func defaultDBPath() string {
	if path := os.Getenv("EDUCRAWL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "educrawl.db"
	}
	dir := filepath.Join(home, ".educrawl")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "educrawl.db")
}

// buildCrawler assembles the crawler for one run from the wired dependencies.
func buildCrawler(deps *Dependencies, delay float64, saveHTML bool) *crawl.Crawler {
	return &crawl.Crawler{
		Session:  deps.Session,
		Cards:    deps.Cards(),
		Details:  deps.Details(),
		Courses:  deps.Courses,
		Runs:     deps.Runs,
		Pacer:    crawl.NewPacer(pacerRate(delay)),
		Logger:   deps.Logger,
		SaveHTML: saveHTML,
	}
}
