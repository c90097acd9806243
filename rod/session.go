// Package rod provides a Chrome-backed implementation of
// educrawl.BrowserSession using go-rod. The catalog is rendered client-side,
// so plain HTTP fetching sees an empty result list; a real browser is
// required for the crawl.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/jmoralesv/educrawl"
)

// elementTimeout bounds individual element lookups so state polling returns
// promptly when an element is absent instead of blocking on rod's retry loop.
const elementTimeout = time.Second

// Ensure Session implements educrawl.BrowserSession at compile time.
var _ educrawl.BrowserSession = (*Session)(nil)

// Session drives a single browser page for the duration of a crawl run.
// It is not safe for concurrent use; the crawl is sequential by design.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	headless bool
}

// WithHeadless controls whether the browser runs headless. Defaults to true;
// pass false to watch the crawl (the CLI's --show flag).
func WithHeadless(headless bool) Option {
	return func(c *sessionConfig) {
		c.headless = headless
	}
}

// NewSession launches a Chrome browser and opens one page. Close must be
// called when the Session is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewSession(opts ...Option) (*Session, error) {
	cfg := &sessionConfig{headless: true}
	for _, opt := range opts {
		opt(cfg)
	}

	lnchr := launcher.New().
		Set("window-size", "1366,768").
		Set("lang", "es-419").
		Leakless(true).
		Headless(cfg.headless)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	return &Session{browser: browser, launcher: lnchr, page: page}, nil
}

// Navigate loads the URL and waits for the load event.
func (s *Session) Navigate(ctx context.Context, url string) error {
	page := s.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

// WaitVisible blocks until an element matching the selector is present and
// visible, or the context is done.
func (s *Session) WaitVisible(ctx context.Context, selector string) error {
	el, err := s.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	return el.WaitVisible()
}

// Click triggers activation of the first element matching the selector.
// Returns an error if no such element appears within the lookup timeout.
func (s *Session) Click(ctx context.Context, selector string) error {
	el, err := s.page.Context(ctx).Timeout(elementTimeout).Element(selector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

// Attribute returns the named attribute of the first element matching the
// selector, or "" if the element or attribute is absent.
func (s *Session) Attribute(ctx context.Context, selector, name string) (string, error) {
	el, err := s.page.Context(ctx).Timeout(elementTimeout).Element(selector)
	if err != nil {
		// Absent elements are an expected state while polling.
		return "", nil
	}
	attr, err := el.Attribute(name)
	if err != nil {
		return "", err
	}
	if attr == nil {
		return "", nil
	}
	return *attr, nil
}

// HTML returns the current rendered markup.
func (s *Session) HTML(ctx context.Context) (string, error) {
	return s.page.Context(ctx).HTML()
}

// Close releases browser resources. Close is safe to call when launch
// partially failed.
func (s *Session) Close() error {
	var err error
	if s.browser != nil {
		err = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Kill()
	}
	return err
}
