package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"agroconnect/internal/auth"
	"agroconnect/internal/domain"
	"agroconnect/internal/repos"
)

const testSecret = "test-secret"

type fixture struct {
	store  *repos.MemoryStore
	prods  *repos.ProductRepo
	auth   *AuthService
	carts  *CartService
	orders *OrderService
	pub    *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	prods := repos.NewProductRepo()
	a, err := NewAuthService(repos.NewUserRepo(), auth.NewVerifier(testSecret), bcrypt.MinCost)
	require.NoError(t, err)
	pub := &recordingPublisher{}
	f := &fixture{
		store:  repos.NewMemoryStore(),
		prods:  prods,
		auth:   a,
		carts:  NewCartService(repos.NewCartRepo(), prods),
		orders: NewOrderService(repos.NewOrderRepo(), pub),
		pub:    pub,
	}
	a.OnSignOut = f.carts.Forget
	return f
}

func (f *fixture) anon(profile string) Session {
	return NewSession(f.store, profile, nil)
}

func (f *fixture) as(profile, userID string) Session {
	return NewSession(f.store, profile, &domain.Identity{ID: userID, Role: domain.RoleConsumer, Source: domain.SourceDelegated})
}

func (f *fixture) product(t *testing.T, id int) domain.Product {
	t.Helper()
	p, err := f.prods.Get(id)
	require.NoError(t, err)
	return p
}

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Millisecond)
		return t
	}
}

func validAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		FullName: "Asha Verma",
		Phone:    "9876543210",
		Email:    "asha@example.in",
		Address:  "12 MG Road, Shivajinagar",
		City:     "Pune",
		State:    "Maharashtra",
		Pincode:  "411005",
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []any
	fail   bool
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, ev any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker down")
	}
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// flakyKV fails every Save after the first `allow` saves.
type flakyKV struct {
	repos.KV
	mu    sync.Mutex
	allow int
}

func (k *flakyKV) Save(ctx context.Context, key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.allow <= 0 {
		return errors.New("storage quota exceeded")
	}
	k.allow--
	return k.KV.Save(ctx, key, value)
}
