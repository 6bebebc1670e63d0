package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

const (
	consentFrameSel  = `iframe[src*='privacy-mgmt.com']`
	consentAcceptSel = `button[title*='Accept'], button[title*='accept'], button[aria-label*='Accept'], button[aria-label*='accept'], .sp_choice_type_11`

	loginEmailSel    = `#loginEmail`
	loginPasswordSel = `#loginPassword`
	loginSubmitSel   = `button[type='submit']`

	searchInputSel  = `#headerSearch_LocationSearch_input`
	searchOptionSel = `#headerSearch_LocationSearch_listbox button[role='option']`
	mainContentSel  = `#MainContent`

	consentWait  = 3 * time.Second
	pollInterval = 250 * time.Millisecond
)

// BrowserConfig configures the chromedp session.
type BrowserConfig struct {
	Headless bool
	// Timeout bounds every single browser operation.
	Timeout  time.Duration
	LoginURL string
	HomeURL  string
	BaseURL  string
	// NoSandbox disables the Chrome sandbox, needed when running as root in a container.
	NoSandbox bool
}

// Browser is a single logged-in weather.com tab.
// Operations are serialised; the tab is shared by every weather tool.
type Browser struct {
	cfg    BrowserConfig
	logger *slog.Logger

	allocCancel context.CancelFunc
	tabCancel   context.CancelFunc
	tab         context.Context

	mu       sync.Mutex
	loggedIn bool
}

// NewBrowser starts Chrome and opens an empty tab.
func NewBrowser(cfg BrowserConfig, logger *slog.Logger) (*Browser, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("deny-permission-prompts", true),
		chromedp.Flag("disable-notifications", true),
		chromedp.Flag("disable-geolocation", true),
		chromedp.WindowSize(1366, 900),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	tab, tabCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...), "component", "chromedp")
	}))

	// The first Run allocates the browser.
	if err := chromedp.Run(tab); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	return &Browser{
		cfg:         cfg,
		logger:      logger,
		allocCancel: allocCancel,
		tabCancel:   tabCancel,
		tab:         tab,
	}, nil
}

// Close shuts the tab and the browser process down.
func (b *Browser) Close() {
	b.tabCancel()
	b.allocCancel()
}

// actionContext derives a context for one operation on the tab. It ends when the
// operation times out or when ctx is cancelled.
func (b *Browser) actionContext(ctx context.Context) (context.Context, context.CancelFunc) {
	actx, cancel := context.WithTimeout(b.tab, b.cfg.Timeout)
	stop := context.AfterFunc(ctx, cancel)
	return actx, func() {
		stop()
		cancel()
	}
}

// Login signs in to weather.com and opens the home page.
func (b *Browser) Login(ctx context.Context, email, password string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	actx, cancel := b.actionContext(ctx)
	defer cancel()

	b.logger.Debug("opening login page", "url", b.cfg.LoginURL)
	if err := chromedp.Run(actx, chromedp.Navigate(b.cfg.LoginURL)); err != nil {
		return &LoginError{Step: "open login page", Err: err}
	}
	b.acceptConsent(actx)

	var before string
	err := chromedp.Run(actx,
		chromedp.WaitVisible(loginEmailSel, chromedp.ByQuery),
		chromedp.Clear(loginEmailSel, chromedp.ByQuery),
		chromedp.SendKeys(loginEmailSel, email, chromedp.ByQuery),
		chromedp.Clear(loginPasswordSel, chromedp.ByQuery),
		chromedp.SendKeys(loginPasswordSel, password, chromedp.ByQuery),
		chromedp.Location(&before),
		chromedp.Click(loginSubmitSel, chromedp.ByQuery),
	)
	if err != nil {
		return &LoginError{Step: "submit credentials", Err: err}
	}

	if _, err := b.waitForLocation(actx, func(u string) bool { return u != before }); err != nil {
		return &LoginError{Step: "wait for redirect", Err: err}
	}

	if err := chromedp.Run(actx, chromedp.Navigate(b.cfg.HomeURL)); err != nil {
		return &LoginError{Step: "open home page", Err: err}
	}
	b.acceptConsent(actx)

	b.loggedIn = true
	b.logger.Info("logged in to weather.com")
	return nil
}

// acceptConsent clicks through the privacy iframe when it is shown. A missing
// banner is not an error.
func (b *Browser) acceptConsent(ctx context.Context) {
	wctx, cancel := context.WithTimeout(ctx, consentWait)
	defer cancel()

	var frames []*cdp.Node
	if err := chromedp.Run(wctx, chromedp.Nodes(consentFrameSel, &frames, chromedp.ByQuery)); err != nil || len(frames) == 0 {
		return
	}
	err := chromedp.Run(wctx, chromedp.Click(consentAcceptSel, chromedp.ByQuery, chromedp.FromNode(frames[0])))
	if err != nil {
		b.logger.Debug("consent banner not accepted", "error", err)
		return
	}
	b.logger.Debug("consent banner accepted")
}

// waitForLocation polls the tab url until done reports true.
// Polling from Go survives navigations, unlike a page-side poll.
func (b *Browser) waitForLocation(ctx context.Context, done func(string) bool) (string, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		var loc string
		if err := chromedp.Run(ctx, chromedp.Location(&loc)); err == nil && done(loc) {
			return loc, nil
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

type listboxEntry struct {
	Text    string `json:"text"`
	Caption string `json:"caption"`
}

const listboxJS = `Array.from(document.querySelectorAll("` + searchOptionSel + `")).map(o => {
	const c = o.querySelector("[class*='FavoriteStar--saveLocationCaption']");
	return {text: o.innerText || "", caption: c ? c.innerText.trim() : ""};
})`

// Search types query into the header search box and returns the listbox options.
func (b *Browser) Search(ctx context.Context, query string) ([]Option, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.loggedIn {
		return nil, &SearchError{Query: query, Err: ErrNotLoggedIn}
	}

	actx, cancel := b.actionContext(ctx)
	defer cancel()

	var present bool
	if err := chromedp.Run(actx, chromedp.Evaluate(`document.querySelector("`+searchInputSel+`") !== null`, &present)); err != nil {
		return nil, &SearchError{Query: query, Err: err}
	}
	if !present {
		b.logger.Debug("search box missing, returning home", "url", b.cfg.HomeURL)
		if err := chromedp.Run(actx, chromedp.Navigate(b.cfg.HomeURL)); err != nil {
			return nil, &SearchError{Query: query, Err: err}
		}
	}

	var entries []listboxEntry
	err := chromedp.Run(actx,
		chromedp.WaitVisible(searchInputSel, chromedp.ByQuery),
		chromedp.Click(searchInputSel, chromedp.ByQuery),
		chromedp.Clear(searchInputSel, chromedp.ByQuery),
		chromedp.SendKeys(searchInputSel, query, chromedp.ByQuery),
		chromedp.Poll(`document.querySelectorAll("`+searchOptionSel+`").length > 0`, nil,
			chromedp.WithPollingInterval(pollInterval),
			chromedp.WithPollingTimeout(b.cfg.Timeout)),
		chromedp.Evaluate(listboxJS, &entries),
	)
	if err != nil {
		return nil, &SearchError{Query: query, Err: err}
	}

	options := make([]Option, 0, len(entries))
	for i, e := range entries {
		options = append(options, Option{
			Index: i,
			Label: cleanLabel(e.Text),
			Saved: strings.EqualFold(e.Caption, removeCaption),
		})
	}
	if len(options) == 0 {
		return nil, &SearchError{Query: query, Err: ErrNoOptions}
	}
	b.logger.Debug("search options", "query", query, "count", len(options))
	return options, nil
}

// clickOptionJS clicks the element matching inner inside the listbox option at
// the given index. An empty inner clicks the option itself.
func clickOptionJS(index int, inner string) string {
	target := "o"
	if inner != "" {
		target = fmt.Sprintf("o.querySelector(%q)", inner)
	}
	return fmt.Sprintf(`(() => {
	const o = document.querySelectorAll(%q)[%d];
	if (!o) return false;
	const t = %s;
	if (!t) return false;
	t.click();
	return true;
})()`, searchOptionSel, index, target)
}

var errOptionGone = errors.New("listbox option is no longer on the page")

// Open clicks a listbox option and returns the location id of the page it opens.
func (b *Browser) Open(ctx context.Context, opt Option) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	actx, cancel := b.actionContext(ctx)
	defer cancel()

	// The tab may still show the previous forecast, which is a location page too.
	var before string
	var clicked bool
	err := chromedp.Run(actx,
		chromedp.Location(&before),
		chromedp.Evaluate(clickOptionJS(opt.Index, ""), &clicked),
	)
	if err != nil {
		return "", err
	}
	if !clicked {
		return "", errOptionGone
	}

	loc, err := b.waitForLocation(actx, openedLocation(before))
	if err != nil {
		return "", fmt.Errorf("wait for location page: %w", err)
	}
	b.logger.Debug("opened location", "label", opt.Label, "url", loc)
	return locationIDFromURL(loc)
}

// openedLocation reports when the tab has left before for a location page.
func openedLocation(before string) func(string) bool {
	return func(u string) bool {
		return u != before && strings.Contains(u, "/l/")
	}
}

// ToggleFavorite clicks the favorite star of a listbox option.
func (b *Browser) ToggleFavorite(ctx context.Context, opt Option) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	actx, cancel := b.actionContext(ctx)
	defer cancel()

	var clicked bool
	if err := chromedp.Run(actx, chromedp.Evaluate(clickOptionJS(opt.Index, `[aria-label="favorite"]`), &clicked)); err != nil {
		return err
	}
	if !clicked {
		return errOptionGone
	}
	// Let the favorites request leave before the next navigation.
	return chromedp.Run(actx, chromedp.Sleep(time.Second))
}

// ForecastHTML opens a forecast page and returns the html of its main content.
func (b *Browser) ForecastHTML(ctx context.Context, page Page, id string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	actx, cancel := b.actionContext(ctx)
	defer cancel()

	url := forecastURL(b.cfg.BaseURL, page, id)
	b.logger.Debug("opening forecast", "url", url)

	var html string
	err := chromedp.Run(actx,
		chromedp.Navigate(url),
		chromedp.WaitReady(mainContentSel, chromedp.ByQuery),
		chromedp.OuterHTML(mainContentSel, &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return html, nil
}
