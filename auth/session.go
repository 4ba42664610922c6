package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "fleet_session"

// Session is the server-side record of an authenticated dispatch user,
// referenced by a client-held opaque token.
//
// Sessions deliberately have no expiry, matching the behavior this backend
// replaces; CreatedAt is stored so a TTL can be introduced without changing
// the Store interface.
type Session struct {
	Token     string    `json:"-"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps sessions keyed by their opaque token. Get returns (nil, nil)
// for unknown tokens; errors are reserved for backend failures.
type Store interface {
	Create(session Session) (string, error)
	Get(token string) (*Session, error)
	Delete(token string) error
}

// CookieCodec signs session tokens for transport in a cookie. The token
// itself stays opaque; the signature only proves the cookie was minted by
// this server.
type CookieCodec struct {
	secret []byte
}

func NewCookieCodec(secret string) *CookieCodec {
	return &CookieCodec{secret: []byte(secret)}
}

func (c *CookieCodec) sign(token string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// Encode produces the cookie value for a session token.
func (c *CookieCodec) Encode(token string) string {
	return token + "." + c.sign(token)
}

// Decode extracts the session token from a cookie value. A malformed or
// tampered value yields ok=false and is treated as no session.
func (c *CookieCodec) Decode(value string) (string, bool) {
	token, signature, found := strings.Cut(value, ".")
	if !found || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(signature), []byte(c.sign(token))) {
		return "", false
	}
	return token, true
}
