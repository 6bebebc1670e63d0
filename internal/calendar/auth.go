package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
)

// tokenFile reads both the golang.org/x/oauth2 token layout and the authorized
// user layout written by the Google Python client ("token" instead of "access_token").
type tokenFile struct {
	AccessToken  string `json:"access_token,omitempty"`
	Token        string `json:"token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Expiry       string `json:"expiry,omitempty"`
}

func (f tokenFile) oauth2Token() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  f.AccessToken,
		TokenType:    f.TokenType,
		RefreshToken: f.RefreshToken,
	}
	if tok.AccessToken == "" {
		tok.AccessToken = f.Token
	}
	if f.Expiry != "" {
		if t, err := time.Parse(time.RFC3339Nano, f.Expiry); err == nil {
			tok.Expiry = t
		}
	}
	return tok
}

func readToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTokenMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	var f tokenFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse token %s: %w", path, err)
	}
	tok := f.oauth2Token()
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, fmt.Errorf("%w: %s has neither an access nor a refresh token", ErrTokenMissing, path)
	}
	return tok, nil
}

func writeToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// persistingTokenSource writes every newly minted token back to the token file.
type persistingTokenSource struct {
	base oauth2.TokenSource
	path string

	mu   sync.Mutex
	last string
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		if err := writeToken(s.path, tok); err != nil {
			return nil, fmt.Errorf("save refreshed token: %w", err)
		}
	}
	return tok, nil
}

// TokenSource builds an auto-refreshing token source from an OAuth client secrets
// file and a previously saved token. There is no interactive consent flow: a
// missing token file is a configuration fault.
func TokenSource(ctx context.Context, credentialsFile, tokenPath string) (oauth2.TokenSource, error) {
	secrets, err := os.ReadFile(credentialsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCredentialsMissing, credentialsFile)
	}
	if err != nil {
		return nil, fmt.Errorf("read client secrets: %w", err)
	}
	conf, err := google.ConfigFromJSON(secrets, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse client secrets %s: %w", credentialsFile, err)
	}

	tok, err := readToken(tokenPath)
	if err != nil {
		return nil, err
	}

	src := &persistingTokenSource{
		base: conf.TokenSource(ctx, tok),
		path: tokenPath,
		last: tok.AccessToken,
	}
	return oauth2.ReuseTokenSource(tok, src), nil
}
