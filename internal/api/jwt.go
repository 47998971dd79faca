package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// UserIDFromToken extracts the user id from a JWT payload without verifying
// the signature — verification is the backend's job; the client only needs
// the id to build the history URL. Backends disagree on the claim name, so
// id, _id and userId are all accepted.
func UserIDFromToken(token string) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed token: expected 3 segments, got %d", len(parts))
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		// Some issuers pad the segment.
		payload, err = base64.URLEncoding.DecodeString(parts[1])
		if err != nil {
			return "", fmt.Errorf("decode token payload: %w", err)
		}
	}

	var claims struct {
		ID     string `json:"id"`
		AltID  string `json:"_id"`
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", fmt.Errorf("parse token payload: %w", err)
	}

	for _, id := range []string{claims.ID, claims.AltID, claims.UserID} {
		if id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("token payload carries no user id claim")
}
