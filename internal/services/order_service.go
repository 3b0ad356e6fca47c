package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"agroconnect/internal/domain"
	"agroconnect/internal/events"
	applog "agroconnect/internal/log"
	"agroconnect/internal/repos"
	"agroconnect/internal/validate"
)

const publishTimeout = 5 * time.Second

type OrderService struct {
	Orders *repos.OrderRepo
	Events events.Publisher

	now    func() time.Time
	suffix func() string
}

func NewOrderService(orders *repos.OrderRepo, pub events.Publisher) *OrderService {
	if pub == nil {
		pub = events.Noop{}
	}
	return &OrderService{Orders: orders, Events: pub, now: time.Now, suffix: randomSuffix}
}

// randomSuffix is nine lowercase hex characters of a v4 UUID.
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

// Place records an order for the signed-in caller from a cart snapshot. It
// does not touch the cart; clearing it after success is the caller's job.
func (s *OrderService) Place(ctx context.Context, sess Session, snap domain.CartSnapshot, addr domain.ShippingAddress) (domain.Order, error) {
	if !sess.SignedIn() {
		return domain.Order{}, domain.ErrUnauthenticated
	}
	if len(snap.Items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}
	clean, fieldErrs := validate.Shipping(addr)
	if fieldErrs != nil {
		return domain.Order{}, &domain.AddressError{Fields: fieldErrs}
	}

	now := s.now()
	o := domain.Order{
		ID:              fmt.Sprintf("order_%d_%s", now.UnixMilli(), s.suffix()),
		UserID:          sess.Identity.ID,
		Items:           make([]domain.OrderLine, 0, len(snap.Items)),
		ShippingAddress: clean,
		OrderDate:       now,
		CreatedAt:       now,
		Status:          domain.StatusConfirmed,
	}
	for _, it := range snap.Items {
		o.Items = append(o.Items, domain.OrderLine{
			ProductID:    it.Product.ID,
			Quantity:     it.Quantity,
			Price:        it.Product.Price,
			ProductName:  it.Product.Name,
			ProductImage: it.Product.Image,
		})
	}
	o.Total = o.LinesTotal()
	if !snap.Total.IsZero() && !snap.Total.Equal(o.Total) {
		applog.Warn("order.total.mismatch", map[string]any{
			"order_id": o.ID, "reported": snap.Total.String(), "computed": o.Total.String(),
		})
	}

	if err := s.Orders.Append(ctx, sess.KV, o); err != nil {
		return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.Events.Publish(pctx, o.UserID, events.NewOrderPlaced(o)); err != nil {
		applog.Fail("order.event.publish", err, map[string]any{"order_id": o.ID})
	}
	return o, nil
}

// History returns the caller's orders, newest first. It never fails: an
// unreadable log is logged and treated as empty.
func (s *OrderService) History(ctx context.Context, sess Session) []domain.Order {
	if !sess.SignedIn() {
		return []domain.Order{}
	}
	orders, err := s.Orders.ListByUser(ctx, sess.KV, sess.Identity.ID)
	if err != nil {
		applog.Fail("order.history.read", err, map[string]any{"profile": sess.ProfileID})
		return []domain.Order{}
	}
	return orders
}

func (s *OrderService) Get(ctx context.Context, sess Session, orderID string) (domain.Order, error) {
	if !sess.SignedIn() {
		return domain.Order{}, domain.ErrUnauthenticated
	}
	return s.Orders.Get(ctx, sess.KV, sess.Identity.ID, orderID)
}
