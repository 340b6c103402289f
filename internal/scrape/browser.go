package scrape

import (
	"context"
	"log"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/chromedp/chromedp"

	"hotelfinder/internal/config"
	"hotelfinder/internal/model"
)

// Fetcher retrieves the rendered text content of a page.
type Fetcher interface {
	FetchText(ctx context.Context, pageURL string) (string, error)
}

// Browser fetches pages through chromedp, over a remote CDP endpoint when one
// is configured, or a locally launched headless Chrome otherwise.
type Browser struct {
	cfg       config.BrowserConfig
	converter *md.Converter
}

// NewBrowser creates a browser-backed fetcher.
func NewBrowser(cfg config.BrowserConfig) *Browser {
	return &Browser{
		cfg:       cfg,
		converter: md.NewConverter("", true, nil),
	}
}

var _ Fetcher = (*Browser)(nil)

// FetchText navigates to the page, waits for it to settle, and returns its
// content as markdown-flavoured text. Every failure is wrapped as a
// ScrapeError carrying the target URL; nothing panics past this boundary.
func (b *Browser) FetchText(ctx context.Context, pageURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.cfg.NavigationTimeout)
	defer cancel()

	var allocCtx context.Context
	var allocCancel context.CancelFunc
	if b.cfg.RemoteWSURL != "" {
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(ctx, b.cfg.RemoteWSURL)
	} else {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", b.cfg.Headless),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("disable-blink-features", "AutomationControlled"),
			chromedp.UserAgent(b.cfg.UserAgent),
			chromedp.WindowSize(1440, 900),
		)
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, opts...)
	}
	defer allocCancel()

	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	defer tabCancel()

	log.Printf("Navigating to %s", pageURL)

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(b.cfg.SettleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", &model.ScrapeError{URL: pageURL, Err: err}
	}

	text, err := b.converter.ConvertString(html)
	if err != nil {
		return "", &model.ScrapeError{URL: pageURL, Err: err}
	}

	log.Printf("Page content retrieved (%d bytes)", len(text))
	return text, nil
}
