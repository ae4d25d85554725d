// Package strava exchanges an OAuth refresh token for a short-lived
// access token against the Strava token endpoint.
package strava

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/McCune1224/matrix-miles/internal/pkg/stream"
)

const (
	// DefaultTokenURL is the production Strava OAuth token endpoint.
	DefaultTokenURL = "https://www.strava.com/oauth/token"

	contentTypeHeaderKey = "Content-Type"
	formURLEncodedValue  = "application/x-www-form-urlencoded"

	grantTypeRefreshToken = "refresh_token"

	// maxResponseBytes bounds the accumulated response body. Token
	// responses are a few hundred bytes; anything near this limit is
	// not a token response.
	maxResponseBytes = 1 << 20
)

// HTTPClient is the transport seam, satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	ClientID     string
	ClientSecret string
	// TokenURL overrides the token endpoint; empty means
	// DefaultTokenURL.
	TokenURL string
}

type Client struct {
	Log    *logrus.Entry
	Config Config
	HTTP   HTTPClient
}

// APIMessage is one entry of the errors array a token response may
// carry.
type APIMessage struct {
	Message string `json:"message"`
}

// TokenResponse is the parsed token endpoint response. Errors may be
// populated even when AccessToken is usable; the protocol does not
// make the two exclusive.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresAt    int64        `json:"expires_at"`
	ExpiresIn    int          `json:"expires_in"`
	Athlete      *Athlete     `json:"athlete,omitempty"`
	Errors       []APIMessage `json:"errors,omitempty"`
}

type Athlete struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// ReportedErrors returns a *APIError enumerating the errors[].message
// entries of the response, or nil when the API reported none.
func (t *TokenResponse) ReportedErrors() error {
	if len(t.Errors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(t.Errors))
	for _, apiErr := range t.Errors {
		messages = append(messages, apiErr.Message)
	}

	return &APIError{Messages: messages}
}

// RefreshToken posts the refresh-token grant to the token endpoint and
// returns the parsed response. Credential values are form-encoded, so
// secrets containing '&' or '=' cannot corrupt the request body.
//
// Failure modes are distinct and inspectable with errors.As:
// *TransportError, *ParseError, *TokenMissingError. A response that
// carries both an access token and an errors array succeeds with
// TokenResponse.Errors populated.
func (client *Client) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", grantTypeRefreshToken)
	form.Set("client_id", client.Config.ClientID)
	form.Set("client_secret", client.Config.ClientSecret)
	form.Set("refresh_token", refreshToken)

	endpoint := client.Config.TokenURL
	if endpoint == "" {
		endpoint = DefaultTokenURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating http request %w", err)
	}

	req.Header.Set(contentTypeHeaderKey, formURLEncodedValue)

	resp, err := client.HTTP.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	defer resp.Body.Close()

	body := stream.NewAccumulator(maxResponseBytes)
	defer body.Reset()

	if _, err := io.Copy(body, resp.Body); err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK && client.Log != nil {
		// The endpoint reports errors in the body with a non-200
		// status, so keep parsing; the status is only worth a line.
		client.Log.WithField("status", resp.StatusCode).Warn("token endpoint returned non-200 status")
	}

	return parseTokenResponse(body.Bytes())
}
