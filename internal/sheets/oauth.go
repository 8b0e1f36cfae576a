package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// LoadToken loads a saved OAuth2 token from file.
func LoadToken(tokenFile string) (*oauth2.Token, error) {
	f, err := os.Open(tokenFile) // #nosec G304
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return token, nil
}

// SaveToken persists an OAuth2 token to file.
func SaveToken(tokenFile string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(tokenFile), 0o750); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	f, err := os.OpenFile(tokenFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return json.NewEncoder(f).Encode(token)
}

// httpClient builds an authenticated HTTP client for the Sheets API.
func (c *Config) httpClient(ctx context.Context) (*http.Client, error) {
	if c.ServiceAccountPath != "" {
		data, err := os.ReadFile(c.ServiceAccountPath) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("failed to read service account file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
		}
		return oauth2.NewClient(ctx, creds.TokenSource), nil
	}

	token, err := LoadToken(c.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth2 token (run with a service account or refresh the token): %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{sheets.SpreadsheetsScope},
	}
	return oauthConfig.Client(ctx, token), nil
}
