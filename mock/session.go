package mock

import (
	"context"

	"github.com/jmoralesv/educrawl"
)

var _ educrawl.BrowserSession = (*BrowserSession)(nil)

// BrowserSession is a mock implementation of educrawl.BrowserSession.
type BrowserSession struct {
	NavigateFn    func(ctx context.Context, url string) error
	WaitVisibleFn func(ctx context.Context, selector string) error
	ClickFn       func(ctx context.Context, selector string) error
	AttributeFn   func(ctx context.Context, selector, name string) (string, error)
	HTMLFn        func(ctx context.Context) (string, error)
	CloseFn       func() error
}

func (s *BrowserSession) Navigate(ctx context.Context, url string) error {
	return s.NavigateFn(ctx, url)
}

func (s *BrowserSession) WaitVisible(ctx context.Context, selector string) error {
	return s.WaitVisibleFn(ctx, selector)
}

func (s *BrowserSession) Click(ctx context.Context, selector string) error {
	return s.ClickFn(ctx, selector)
}

func (s *BrowserSession) Attribute(ctx context.Context, selector, name string) (string, error) {
	return s.AttributeFn(ctx, selector, name)
}

func (s *BrowserSession) HTML(ctx context.Context) (string, error) {
	return s.HTMLFn(ctx)
}

func (s *BrowserSession) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
