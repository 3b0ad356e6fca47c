package repos

import (
	"context"
	"sync"
)

// Keys of the per-profile store. They mirror the browser storage keys the
// storefront used before the server kept them.
const (
	KeyCart       = "cart"
	KeyDemoUser   = "dummyUser"
	KeyUserRole   = "userRole"
	KeyUserOrders = "userOrders"
	KeyFavorites  = "favorites"
)

// Store is a key/value backend partitioned by browser profile.
type Store interface {
	Get(ctx context.Context, profile, key string) ([]byte, bool, error)
	Put(ctx context.Context, profile, key string, value []byte) error
	Delete(ctx context.Context, profile, key string) error
	Close() error
}

// KV is the persistence adapter the services see: one profile's keys.
type KV interface {
	Profile() string
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}

type scoped struct {
	s       Store
	profile string
}

// Scope binds a Store to one profile.
func Scope(s Store, profile string) KV { return scoped{s: s, profile: profile} }

func (k scoped) Profile() string { return k.profile }

func (k scoped) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return k.s.Get(ctx, k.profile, key)
}

func (k scoped) Save(ctx context.Context, key string, value []byte) error {
	return k.s.Put(ctx, k.profile, key, value)
}

func (k scoped) Clear(ctx context.Context, key string) error {
	return k.s.Delete(ctx, k.profile, key)
}

// keyedMutex serialises read-modify-write cycles per profile.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex { return &keyedMutex{locks: map[string]*refLock{}} }

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &refLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
