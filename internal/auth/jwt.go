package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"agroconnect/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrNoSecret     = errors.New("delegated auth is not configured")
)

// UserMetadata is the profile block the hosted auth service puts in its tokens.
type UserMetadata struct {
	Name string `json:"name,omitempty"`
}

// Claims represents the access token claims of the hosted auth service.
type Claims struct {
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

// Verifier checks access tokens issued by the hosted auth service.
type Verifier struct {
	secretKey []byte
	now       func() time.Time
}

// NewVerifier returns a verifier for HS256 tokens. An empty secret disables
// delegated sign-in: every token is rejected with ErrNoSecret.
func NewVerifier(secretKey string) *Verifier {
	return &Verifier{secretKey: []byte(secretKey), now: time.Now}
}

func (v *Verifier) Enabled() bool { return len(v.secretKey) > 0 }

// Verify validates a token and returns the identity it carries. The role is
// left empty; it lives with the profile, not the token.
func (v *Verifier) Verify(tokenString string) (*domain.Identity, error) {
	if !v.Enabled() {
		return nil, ErrNoSecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secretKey, nil
	}, jwt.WithTimeFunc(v.now), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	id := &domain.Identity{
		ID:     claims.Subject,
		Email:  claims.Email,
		Name:   claims.UserMetadata.Name,
		Source: domain.SourceDelegated,
	}
	if claims.IssuedAt != nil {
		id.CreatedAt = claims.IssuedAt.UTC().Format(time.RFC3339)
	}
	return id, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(prefix):])
	return tok, tok != ""
}

// Issue signs a token the way the hosted auth service does. Used by local
// tooling and tests.
func Issue(secretKey, subject, email, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:        email,
		UserMetadata: UserMetadata{Name: name},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   subject,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
