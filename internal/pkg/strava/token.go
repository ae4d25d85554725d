package strava

import (
	"encoding/json"
	"errors"
	"fmt"
)

// parseTokenResponse decodes a token endpoint body. The access_token
// field is decoded loosely so that a present-but-non-string value is
// reported as a missing token rather than a parse failure.
func parseTokenResponse(body []byte) (*TokenResponse, error) {
	if len(body) == 0 {
		return nil, &ParseError{Err: errors.New("empty response body")}
	}

	var wire struct {
		AccessToken  any          `json:"access_token"`
		RefreshToken string       `json:"refresh_token"`
		TokenType    string       `json:"token_type"`
		ExpiresAt    int64        `json:"expires_at"`
		ExpiresIn    int          `json:"expires_in"`
		Athlete      *Athlete     `json:"athlete"`
		Errors       []APIMessage `json:"errors"`
	}

	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &ParseError{Err: err}
	}

	messages := make([]string, 0, len(wire.Errors))
	for _, apiErr := range wire.Errors {
		messages = append(messages, apiErr.Message)
	}

	token, ok := wire.AccessToken.(string)
	if !ok || token == "" {
		return nil, &TokenMissingError{Messages: messages}
	}

	return &TokenResponse{
		AccessToken:  token,
		RefreshToken: wire.RefreshToken,
		TokenType:    wire.TokenType,
		ExpiresAt:    wire.ExpiresAt,
		ExpiresIn:    wire.ExpiresIn,
		Athlete:      wire.Athlete,
		Errors:       wire.Errors,
	}, nil
}

// String masks the token values so a TokenResponse can be logged
// without leaking credentials.
func (t *TokenResponse) String() string {
	return fmt.Sprintf("TokenResponse{AccessToken: %s, RefreshToken: %s, ExpiresAt: %d}",
		mask(t.AccessToken), mask(t.RefreshToken), t.ExpiresAt)
}

func mask(secret string) string {
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:4] + "****"
}
