package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// tokenInfoURL validates Google identity tokens. The endpoint performs
// the signature check server-side; we verify audience and email claims.
const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

var ErrInvalidCredential = errors.New("invalid google credential")

// Verifier implements port.IdentityVerifier against Google's tokeninfo
// endpoint.
type Verifier struct {
	clientID string
	http     *http.Client
	endpoint string
}

// NewVerifier returns a verifier expecting tokens issued for clientID.
func NewVerifier(clientID string) *Verifier {
	return &Verifier{
		clientID: clientID,
		http:     &http.Client{Timeout: 10 * time.Second},
		endpoint: tokenInfoURL,
	}
}

type tokenInfo struct {
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
}

// VerifyIDToken checks the identity token and returns the email address
// it asserts.
func (v *Verifier) VerifyIDToken(ctx context.Context, credential string) (string, error) {
	if credential == "" || v.clientID == "" {
		return "", ErrInvalidCredential
	}

	u := fmt.Sprintf("%s?id_token=%s", v.endpoint, url.QueryEscape(credential))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := v.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrInvalidCredential
	}
	var info tokenInfo
	if err = json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", ErrInvalidCredential
	}
	if info.Audience != v.clientID || info.Email == "" || info.EmailVerified != "true" {
		return "", ErrInvalidCredential
	}
	return info.Email, nil
}
