package repos

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroconnect/internal/domain"
)

type failingKV struct {
	KV
	failSave bool
}

func (f failingKV) Save(ctx context.Context, key string, value []byte) error {
	if f.failSave {
		return errors.New("quota exceeded")
	}
	return f.KV.Save(ctx, key, value)
}

func order(id, user string, at time.Time) domain.Order {
	return domain.Order{
		ID: id, UserID: user, CreatedAt: at, OrderDate: at, Status: domain.StatusConfirmed,
		Items: []domain.OrderLine{{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(90)}},
		Total: decimal.NewFromInt(90),
	}
}

func TestOrderRepo_AppendAndListByUser(t *testing.T) {
	ctx := context.Background()
	kv := Scope(NewMemoryStore(), "p")
	r := NewOrderRepo()
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.Append(ctx, kv, order("o1", "u1", t0)))
	require.NoError(t, r.Append(ctx, kv, order("o2", "u2", t0.Add(time.Minute))))
	require.NoError(t, r.Append(ctx, kv, order("o3", "u1", t0.Add(2*time.Minute))))

	n, err := r.Count(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := r.ListByUser(ctx, kv, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "o3", got[0].ID)
	assert.Equal(t, "o1", got[1].ID)

	none, err := r.ListByUser(ctx, kv, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestOrderRepo_FailedSaveLeavesLogUnchanged(t *testing.T) {
	ctx := context.Background()
	base := Scope(NewMemoryStore(), "p")
	r := NewOrderRepo()
	require.NoError(t, r.Append(ctx, base, order("o1", "u1", time.Now())))

	err := r.Append(ctx, failingKV{KV: base, failSave: true}, order("o2", "u1", time.Now()))
	require.Error(t, err)

	n, err := r.Count(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOrderRepo_RejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	kv := Scope(NewMemoryStore(), "p")
	r := NewOrderRepo()
	require.NoError(t, r.Append(ctx, kv, order("o1", "u1", time.Now())))
	assert.Error(t, r.Append(ctx, kv, order("o1", "u1", time.Now())))
}

func TestOrderRepo_CorruptLog(t *testing.T) {
	ctx := context.Background()
	kv := Scope(NewMemoryStore(), "p")
	require.NoError(t, kv.Save(ctx, KeyUserOrders, []byte("{not json")))
	r := NewOrderRepo()

	_, err := r.ListByUser(ctx, kv, "u1")
	assert.Error(t, err)
	assert.Error(t, r.Append(ctx, kv, order("o1", "u1", time.Now())))
	raw, _, _ := kv.Load(ctx, KeyUserOrders)
	assert.Equal(t, "{not json", string(raw))
}

func TestOrderRepo_Get(t *testing.T) {
	ctx := context.Background()
	kv := Scope(NewMemoryStore(), "p")
	r := NewOrderRepo()
	require.NoError(t, r.Append(ctx, kv, order("o1", "u1", time.Now())))

	o, err := r.Get(ctx, kv, "u1", "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)

	_, err = r.Get(ctx, kv, "u2", "o1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderRepo_ConcurrentAppendsAllLand(t *testing.T) {
	ctx := context.Background()
	kv := Scope(sqliteStore(t), "p")
	r := NewOrderRepo()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, r.Append(ctx, kv, order(fmt.Sprintf("o%d", i), "u1", time.Now())))
		}(i)
	}
	wg.Wait()
	n, err := r.Count(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
}
