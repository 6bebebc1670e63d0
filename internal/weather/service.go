package weather

import (
	"context"
	"fmt"
	"log/slog"
)

// browser is the part of *Browser the service drives.
type browser interface {
	Search(ctx context.Context, query string) ([]Option, error)
	Open(ctx context.Context, opt Option) (string, error)
	ToggleFavorite(ctx context.Context, opt Option) error
	ForecastHTML(ctx context.Context, page Page, id string) (string, error)
}

// LocationCache remembers which weather.com location a query resolved to.
type LocationCache interface {
	Lookup(ctx context.Context, query string) (Location, bool, error)
	Store(ctx context.Context, query string, loc Location) error
	Forget(ctx context.Context, query string) error
}

// Service implements the weather capabilities on top of a browser session.
type Service struct {
	browser  browser
	selector Selector
	cache    LocationCache
	markdown *Markdown
	logger   *slog.Logger
}

// NewService creates a Service. cache may be nil to disable caching.
func NewService(b browser, sel Selector, cache LocationCache, markdown *Markdown, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		browser:  b,
		selector: sel,
		cache:    cache,
		markdown: markdown,
		logger:   logger,
	}
}

// Weather returns the forecast page for city as markdown.
func (s *Service) Weather(ctx context.Context, city string, page Page) (string, error) {
	if !page.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPage, page)
	}

	loc, cached, err := s.resolve(ctx, city)
	if err != nil {
		return "", err
	}

	html, err := s.browser.ForecastHTML(ctx, page, loc.ID)
	if err != nil && cached {
		// A cached id may have gone stale; search again once.
		s.logger.Warn("cached location failed, searching again", "city", city, "id", loc.ID, "error", err)
		if ferr := s.cache.Forget(ctx, normalizeQuery(city)); ferr != nil {
			s.logger.Warn("location cache forget failed", "city", city, "error", ferr)
		}
		if loc, err = s.search(ctx, city); err != nil {
			return "", err
		}
		html, err = s.browser.ForecastHTML(ctx, page, loc.ID)
	}
	if err != nil {
		return "", err
	}
	out, err := s.markdown.Convert(html)
	if err != nil {
		return "", fmt.Errorf("convert forecast to markdown: %w", err)
	}
	s.logger.Debug("forecast extracted", "city", city, "location", loc.Label, "page", page, "bytes", len(out))
	return out, nil
}

// resolve finds the location id for city, from the cache when possible.
// cached reports whether the id came from the cache.
func (s *Service) resolve(ctx context.Context, city string) (loc Location, cached bool, err error) {
	if s.cache != nil {
		key := normalizeQuery(city)
		hit, ok, lerr := s.cache.Lookup(ctx, key)
		switch {
		case lerr != nil:
			s.logger.Warn("location cache lookup failed", "query", key, "error", lerr)
		case ok:
			s.logger.Debug("location cache hit", "query", key, "id", hit.ID)
			return hit, true, nil
		}
	}
	loc, err = s.search(ctx, city)
	return loc, false, err
}

// search resolves city through the site search and caches the result.
func (s *Service) search(ctx context.Context, city string) (Location, error) {
	opt, err := s.choose(ctx, city)
	if err != nil {
		return Location{}, err
	}
	id, err := s.browser.Open(ctx, opt)
	if err != nil {
		return Location{}, &SearchError{Query: city, Err: err}
	}
	loc := Location{Label: opt.Label, ID: id}

	if s.cache != nil {
		key := normalizeQuery(city)
		if err := s.cache.Store(ctx, key, loc); err != nil {
			s.logger.Warn("location cache store failed", "query", key, "error", err)
		}
	}
	return loc, nil
}

// choose searches for city and picks one listbox option.
func (s *Service) choose(ctx context.Context, city string) (Option, error) {
	options, err := s.browser.Search(ctx, city)
	if err != nil {
		return Option{}, err
	}
	opt, err := SelectWithFallback(ctx, s.selector, city, options, s.logger)
	if err != nil {
		return Option{}, &SearchError{Query: city, Err: err}
	}
	s.logger.Debug("location selected", "query", city, "label", opt.Label, "saved", opt.Saved)
	return opt, nil
}

// AddFavorite saves city to the account's favorite locations.
func (s *Service) AddFavorite(ctx context.Context, city string) (string, error) {
	return s.setFavorite(ctx, city, true)
}

// RemoveFavorite removes city from the account's favorite locations.
func (s *Service) RemoveFavorite(ctx context.Context, city string) (string, error) {
	return s.setFavorite(ctx, city, false)
}

func (s *Service) setFavorite(ctx context.Context, city string, want bool) (string, error) {
	opt, err := s.choose(ctx, city)
	if err != nil {
		return "", err
	}

	if opt.Saved == want {
		if want {
			return fmt.Sprintf("%s is already in favorites.", opt.Label), nil
		}
		return fmt.Sprintf("%s is not in favorites.", opt.Label), nil
	}

	if err := s.browser.ToggleFavorite(ctx, opt); err != nil {
		return "", fmt.Errorf("toggle favorite for %s: %w", opt.Label, err)
	}
	if want {
		return fmt.Sprintf("Added %s to favorites.", opt.Label), nil
	}
	return fmt.Sprintf("Removed %s from favorites.", opt.Label), nil
}
