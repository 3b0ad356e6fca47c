package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agroconnect/internal/auth"
	"agroconnect/internal/domain"
	applog "agroconnect/internal/log"
	"agroconnect/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

type demoCredential struct {
	email, password, name, farmName string
	role                            domain.Role
}

var demoCredentials = []demoCredential{
	{email: "consumer@agroconnect.com", password: "consumer123", role: domain.RoleConsumer, name: "Sanidhya Singh"},
	{email: "buyer@agroconnect.com", password: "buyer123", role: domain.RoleConsumer, name: "Dhruv Bansal"},
	{email: "farmer@agroconnect.com", password: "farmer123", role: domain.RoleFarmer, name: "Priyanshu Mishra", farmName: "Green Valley Farm"},
	{email: "provider@agroconnect.com", password: "provider123", role: domain.RoleFarmer, name: "Saksham Kumar", farmName: "Organic Harvest Farm"},
}

// AuthService resolves who the caller is: a delegated bearer token, or a
// demo account signed in on this browser profile.
type AuthService struct {
	Users  *repos.UserRepo
	Tokens *auth.Verifier

	accounts []domain.DemoAccount
	now      func() time.Time

	// OnSignOut runs after a profile signs out so other services can drop
	// in-process state kept for it.
	OnSignOut func(profileID string)
}

// NewAuthService hashes the demo credential table with the given bcrypt cost.
func NewAuthService(users *repos.UserRepo, tokens *auth.Verifier, cost int) (*AuthService, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	accounts := make([]domain.DemoAccount, 0, len(demoCredentials))
	for _, c := range demoCredentials {
		h, err := bcrypt.GenerateFromPassword([]byte(c.password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash demo account %s: %w", c.email, err)
		}
		accounts = append(accounts, domain.DemoAccount{
			Email: c.email, PasswordHash: string(h), Role: c.role, Name: c.name, FarmName: c.farmName,
		})
	}
	return &AuthService{Users: users, Tokens: tokens, accounts: accounts, now: time.Now}, nil
}

// Account returns the demo account row for an email.
func (s *AuthService) Account(email string) (domain.DemoAccount, bool) {
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			return a, true
		}
	}
	return domain.DemoAccount{}, false
}

// Login checks the demo credential table and binds a fresh identity to the
// profile. Unknown email and wrong password look the same to the caller.
func (s *AuthService) Login(ctx context.Context, kv repos.KV, email, password string) (*domain.Identity, error) {
	a, ok := s.Account(strings.TrimSpace(email))
	if !ok {
		return nil, domain.ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrBadCredentials
	}
	now := s.now()
	id := &domain.Identity{
		ID:        fmt.Sprintf("dummy_%s_%d", a.Role, now.UnixMilli()),
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		Source:    domain.SourceLocalDemo,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
	if err := s.Users.BindSession(ctx, kv, *id); err != nil {
		return nil, err
	}
	return id, nil
}

// Resolve returns the caller's identity or nil when signed out. A valid
// bearer token wins over a demo session stored on the profile.
func (s *AuthService) Resolve(ctx context.Context, kv repos.KV, authorization string) (*domain.Identity, error) {
	if tok, ok := auth.BearerToken(authorization); ok && s.Tokens != nil && s.Tokens.Enabled() {
		id, err := s.Tokens.Verify(tok)
		if err == nil {
			role, err := s.Users.Role(ctx, kv)
			if err != nil {
				return nil, err
			}
			id.Role = role
			return id, nil
		}
		applog.Warn("auth.token.rejected", map[string]any{"profile": kv.Profile(), "reason": err.Error()})
	}
	return s.Users.SessionUser(ctx, kv)
}

// Logout forgets the demo session, the cart and the favorites of the profile.
// The order log is kept.
func (s *AuthService) Logout(ctx context.Context, kv repos.KV) error {
	if err := s.Users.UnbindSession(ctx, kv); err != nil {
		return err
	}
	if s.OnSignOut != nil {
		s.OnSignOut(kv.Profile())
	}
	return nil
}

// SetRole records the role a signed-in caller picked.
func (s *AuthService) SetRole(ctx context.Context, sess Session, role domain.Role) error {
	if !sess.SignedIn() {
		return domain.ErrUnauthenticated
	}
	if !role.Valid() {
		return domain.ErrInvalidRole
	}
	if err := s.Users.SetRole(ctx, sess.KV, role); err != nil {
		return err
	}
	sess.Identity.Role = role
	if sess.Identity.Source == domain.SourceLocalDemo {
		return s.Users.BindSession(ctx, sess.KV, *sess.Identity)
	}
	return nil
}

// RedirectFor is where the storefront sends a user right after sign-in.
func RedirectFor(role domain.Role) string {
	if role == domain.RoleFarmer {
		return "/farmer-dashboard"
	}
	return "/"
}
