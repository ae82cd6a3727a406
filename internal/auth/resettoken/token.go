// Package resettoken issues and verifies stateless password-reset tokens.
//
// A token is base64url("email|expiryMillis|signature") where the
// signature is HMAC-SHA256 over "email|expiryMillis". Nothing is
// persisted; expiry and integrity are carried by the token itself.
package resettoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

const TTL = 15 * time.Minute

var ErrInvalidToken = errors.New("invalid or expired reset token")

// Issuer signs and verifies reset tokens with a shared secret.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Generate returns a token for the email, valid for TTL from now.
func (i *Issuer) Generate(email string, now time.Time) string {
	expiry := strconv.FormatInt(now.Add(TTL).UnixMilli(), 10)
	payload := email + "|" + expiry
	token := payload + "|" + i.sign(payload)
	return base64.RawURLEncoding.EncodeToString([]byte(token))
}

// Verify returns the email embedded in a valid, unexpired token.
func (i *Issuer) Verify(token string, now time.Time) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return "", ErrInvalidToken
	}

	parts := strings.Split(string(raw), "|")
	if len(parts) != 3 {
		return "", ErrInvalidToken
	}
	email, expiry, signature := parts[0], parts[1], parts[2]

	expected := i.sign(email + "|" + expiry)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return "", ErrInvalidToken
	}

	expiryMillis, err := strconv.ParseInt(expiry, 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}
	if now.UnixMilli() > expiryMillis {
		return "", ErrInvalidToken
	}

	return email, nil
}

func (i *Issuer) sign(payload string) string {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
