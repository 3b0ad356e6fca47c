package services

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"agroconnect/internal/domain"
	applog "agroconnect/internal/log"
	"agroconnect/internal/repos"
)

type CartView struct {
	Items []domain.LineItem `json:"items"`
	Count int               `json:"count"`
	Total decimal.Decimal   `json:"total"`
}

func viewOf(c *domain.Cart) CartView {
	snap := c.Snapshot()
	if snap.Items == nil {
		snap.Items = []domain.LineItem{}
	}
	return CartView{Items: snap.Items, Count: c.Count(), Total: snap.Total}
}

// liveCart is the in-process cart of a signed-in profile.
type liveCart struct {
	mu    sync.Mutex
	owner string
	cart  *domain.Cart
	seen  time.Time // guarded by CartService.mu
}

const (
	liveIdleTTL = 2 * time.Hour
	liveMax     = 10000
)

// CartService owns the cart of every profile. Signed-out carts are written
// through to the profile store on every change; a signed-in cart lives in
// process and takes over whatever the profile had saved. Live carts idle for
// longer than idleTTL are dropped, and at most maxLive are kept.
type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo

	mu        sync.Mutex
	live      map[string]*liveCart
	lastSweep time.Time
	idleTTL   time.Duration
	maxLive   int
	now       func() time.Time
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{
		Carts:   carts,
		Prods:   prods,
		live:    map[string]*liveCart{},
		idleTTL: liveIdleTTL,
		maxLive: liveMax,
		now:     time.Now,
	}
}

// liveFor returns the caller's live cart. A new owner on the profile starts
// over from the saved snapshot, which is consumed so it is never seeded twice.
func (s *CartService) liveFor(ctx context.Context, sess Session) (*liveCart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweep(now)
	if lc, ok := s.live[sess.ProfileID]; ok && lc.owner == sess.UserID() {
		lc.seen = now
		return lc, nil
	}
	lines, err := s.Carts.Load(ctx, sess.KV)
	if err != nil {
		return nil, err
	}
	if err := s.Carts.Clear(ctx, sess.KV); err != nil {
		return nil, err
	}
	if _, ok := s.live[sess.ProfileID]; !ok && len(s.live) >= s.maxLive {
		s.evictOldest()
	}
	lc := &liveCart{owner: sess.UserID(), cart: domain.NewCart(lines).WithClock(s.now), seen: now}
	s.live[sess.ProfileID] = lc
	return lc, nil
}

// sweep drops idle live carts, at most once a minute. Caller holds s.mu.
func (s *CartService) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < time.Minute {
		return
	}
	s.lastSweep = now
	for id, lc := range s.live {
		if now.Sub(lc.seen) > s.idleTTL {
			delete(s.live, id)
		}
	}
}

// evictOldest drops the least recently used live cart. Caller holds s.mu.
func (s *CartService) evictOldest() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, lc := range s.live {
		if oldestID == "" || lc.seen.Before(oldest) {
			oldestID, oldest = id, lc.seen
		}
	}
	if oldestID != "" {
		applog.Warn("cart.live.evict", map[string]any{"profile": oldestID})
		delete(s.live, oldestID)
	}
}

// mutate applies fn to the caller's cart under the profile's lock.
func (s *CartService) mutate(ctx context.Context, sess Session, fn func(*domain.Cart)) (CartView, error) {
	if !sess.SignedIn() {
		c, err := s.Carts.Mutate(ctx, sess.KV, func(c *domain.Cart) {
			c.WithClock(s.now)
			fn(c)
		})
		if err != nil {
			return CartView{}, err
		}
		return viewOf(c), nil
	}
	lc, err := s.liveFor(ctx, sess)
	if err != nil {
		return CartView{}, err
	}
	lc.mu.Lock()
	defer lc.mu.Unlock()
	fn(lc.cart)
	return viewOf(lc.cart), nil
}

func (s *CartService) View(ctx context.Context, sess Session) (CartView, error) {
	if !sess.SignedIn() {
		lines, err := s.Carts.Load(ctx, sess.KV)
		if err != nil {
			return CartView{}, err
		}
		return viewOf(domain.NewCart(lines)), nil
	}
	return s.mutate(ctx, sess, func(*domain.Cart) {})
}

// Add puts quantity units of a catalog product in the cart.
func (s *CartService) Add(ctx context.Context, sess Session, productID, quantity int) (CartView, domain.LineItem, error) {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return CartView{}, domain.LineItem{}, err
	}
	var line domain.LineItem
	v, err := s.mutate(ctx, sess, func(c *domain.Cart) { line = c.Add(p, quantity) })
	return v, line, err
}

// Remove drops a line. A missing line is not an error.
func (s *CartService) Remove(ctx context.Context, sess Session, lineID string) (CartView, error) {
	return s.mutate(ctx, sess, func(c *domain.Cart) { c.Remove(lineID) })
}

func (s *CartService) SetQuantity(ctx context.Context, sess Session, lineID string, quantity int) (CartView, error) {
	return s.mutate(ctx, sess, func(c *domain.Cart) { c.SetQuantity(lineID, quantity) })
}

func (s *CartService) Clear(ctx context.Context, sess Session) (CartView, error) {
	return s.mutate(ctx, sess, func(c *domain.Cart) { c.Clear() })
}

// Snapshot captures the cart for checkout.
func (s *CartService) Snapshot(ctx context.Context, sess Session) (domain.CartSnapshot, error) {
	if !sess.SignedIn() {
		lines, err := s.Carts.Load(ctx, sess.KV)
		if err != nil {
			return domain.CartSnapshot{}, err
		}
		return domain.NewCart(lines).Snapshot(), nil
	}
	var snap domain.CartSnapshot
	_, err := s.mutate(ctx, sess, func(c *domain.Cart) { snap = c.Snapshot() })
	return snap, err
}

// Forget drops the in-process cart of a profile.
func (s *CartService) Forget(profileID string) {
	s.mu.Lock()
	delete(s.live, profileID)
	s.mu.Unlock()
}
