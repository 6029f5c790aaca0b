// client/session.go
package client

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/BelskviK/Styler-sub001/models"
)

// Identity is the signed-in principal as seen by the client: the subject id,
// the company it belongs to and its role claim.
type Identity struct {
	ID        string
	CompanyID string
	Role      models.Role
}

// Session holds the bearer token and its decoded claims. It is constructed
// explicitly at sign-in and passed to whatever needs it; there is no global
// session state.
//
// The claims are decoded without signature verification and must only drive
// UI gating (which views to render, when to log out). Authorization is
// enforced by the server on every request; nothing here is trusted for it.
type Session struct {
	Token     string
	Identity  Identity
	ExpiresAt time.Time
}

type tokenClaims struct {
	Sub       string      `json:"sub"`
	Role      string      `json:"role"`
	CompanyID string      `json:"companyId"`
	Exp       json.Number `json:"exp"`
}

// NewSession decodes the JWT payload out of a bearer token.
func NewSession(token string) (*Session, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errors.New("malformed token")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, errors.New("malformed token payload")
	}

	var claims tokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, errors.New("malformed token claims")
	}

	session := &Session{
		Token: token,
		Identity: Identity{
			ID:        claims.Sub,
			CompanyID: claims.CompanyID,
			Role:      models.Role(claims.Role),
		},
	}
	if exp, err := claims.Exp.Int64(); err == nil && exp > 0 {
		session.ExpiresAt = time.Unix(exp, 0)
	}
	return session, nil
}

// Expired reports whether the token's expiry has passed. Used as the local
// logout trigger; the server rejects expired tokens regardless.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
