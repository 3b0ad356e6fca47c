package repos

import (
	"context"
	"encoding/json"
	"log"

	"agroconnect/internal/domain"
)

// UserRepo stores the session side of identity on the profile: the
// fabricated demo identity and the cached role tag.
type UserRepo struct{}

func NewUserRepo() *UserRepo { return &UserRepo{} }

// BindSession records a demo identity and its role on the profile.
func (r *UserRepo) BindSession(ctx context.Context, kv KV, u domain.Identity) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := kv.Save(ctx, KeyDemoUser, b); err != nil {
		return err
	}
	return kv.Save(ctx, KeyUserRole, []byte(u.Role))
}

// SessionUser returns the demo identity bound to the profile, or nil.
// An unreadable record is cleared together with its role.
func (r *UserRepo) SessionUser(ctx context.Context, kv KV) (*domain.Identity, error) {
	raw, ok, err := kv.Load(ctx, KeyDemoUser)
	if err != nil || !ok {
		return nil, err
	}
	role, hasRole, err := kv.Load(ctx, KeyUserRole)
	if err != nil {
		return nil, err
	}
	var u domain.Identity
	if err := json.Unmarshal(raw, &u); err != nil || u.ID == "" || !hasRole {
		log.Printf("[auth] clearing unreadable demo session on profile %s", kv.Profile())
		_ = kv.Clear(ctx, KeyDemoUser)
		_ = kv.Clear(ctx, KeyUserRole)
		return nil, nil
	}
	u.Role = domain.Role(role)
	u.Source = domain.SourceLocalDemo
	return &u, nil
}

func (r *UserRepo) Role(ctx context.Context, kv KV) (domain.Role, error) {
	raw, ok, err := kv.Load(ctx, KeyUserRole)
	if err != nil || !ok {
		return "", err
	}
	role := domain.Role(raw)
	if !role.Valid() {
		return "", nil
	}
	return role, nil
}

func (r *UserRepo) SetRole(ctx context.Context, kv KV, role domain.Role) error {
	return kv.Save(ctx, KeyUserRole, []byte(role))
}

// UnbindSession removes everything sign-out must forget on the profile.
func (r *UserRepo) UnbindSession(ctx context.Context, kv KV) error {
	for _, k := range []string{KeyDemoUser, KeyUserRole, KeyCart, KeyFavorites} {
		if err := kv.Clear(ctx, k); err != nil {
			return err
		}
	}
	return nil
}
