package storefront

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/notify"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/session"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/store"
)

var errRemote = errors.New("remote operation failed")

type fakeSessions struct {
	current session.Session
}

func (f *fakeSessions) Current() session.Session { return f.current }

func loggedIn() *fakeSessions {
	return &fakeSessions{current: session.Session{Token: "tok", Role: "USER", UserName: "ken"}}
}

// fakeCartBackend records calls and fails the ones listed in failOn.
type fakeCartBackend struct {
	calls  []string
	failOn map[string]bool
	cart   []domain.CartItem
}

func (f *fakeCartBackend) call(name string) error {
	f.calls = append(f.calls, name)
	if f.failOn[name] {
		return errRemote
	}
	return nil
}

func (f *fakeCartBackend) AddCartItem(_ context.Context, id int64, quantity int) error {
	return f.call(fmt.Sprintf("add %d x%d", id, quantity))
}

func (f *fakeCartBackend) UpdateCartItem(_ context.Context, id int64, quantity int) error {
	return f.call(fmt.Sprintf("update %d x%d", id, quantity))
}

func (f *fakeCartBackend) RemoveCartItem(_ context.Context, id int64) error {
	return f.call(fmt.Sprintf("remove %d", id))
}

func (f *fakeCartBackend) ClearCart(_ context.Context) error {
	return f.call("clear")
}

func (f *fakeCartBackend) FetchCart(_ context.Context) ([]domain.CartItem, error) {
	if err := f.call("fetch"); err != nil {
		return nil, err
	}
	return f.cart, nil
}

func newCartFixture(failOn ...string) (*CartService, *store.Cart, *fakeCartBackend, *notify.Recorder) {
	backend := &fakeCartBackend{failOn: map[string]bool{}}
	for _, name := range failOn {
		backend.failOn[name] = true
	}
	cart := store.NewCart()
	recorder := &notify.Recorder{}
	svc := NewCartService(cart, backend, loggedIn(), recorder)
	return svc, cart, backend, recorder
}

func apple(quantity int) domain.CartItem {
	return domain.CartItem{ID: 1, Name: "Apple", Price: decimal.NewFromFloat(2.5), Image: "x", Quantity: quantity}
}

// ============================================
// Add Tests
// ============================================

func TestCartService_Add_Success(t *testing.T) {
	svc, cart, backend, recorder := newCartFixture()

	err := svc.Add(context.Background(), apple(2))

	require.NoError(t, err)
	assert.Equal(t, []string{"add 1 x2"}, backend.calls)
	item, ok := cart.Get(1)
	require.True(t, ok)
	assert.Equal(t, 2, item.Quantity)
	assert.Empty(t, recorder.All())
}

func TestCartService_Add_FailureRollsBackInsert(t *testing.T) {
	svc, cart, _, recorder := newCartFixture("add 1 x2")

	err := svc.Add(context.Background(), apple(2))

	require.Error(t, err)
	assert.Equal(t, 0, cart.Len(), "failed add must leave the cart as it was")
	require.Len(t, recorder.All(), 1)
	assert.Equal(t, notify.LevelError, recorder.All()[0].Level)
}

func TestCartService_Add_FailureRollsBackMerge(t *testing.T) {
	svc, cart, _, recorder := newCartFixture("add 1 x3")
	require.NoError(t, svc.Add(context.Background(), apple(2)))

	err := svc.Add(context.Background(), apple(3))

	require.Error(t, err)
	item, ok := cart.Get(1)
	require.True(t, ok)
	assert.Equal(t, 2, item.Quantity, "merge must roll back to the prior quantity")
	assert.Len(t, recorder.All(), 1)
}

func TestCartService_Add_NotLoggedInBlocksWithNotification(t *testing.T) {
	backend := &fakeCartBackend{failOn: map[string]bool{}}
	cart := store.NewCart()
	recorder := &notify.Recorder{}
	svc := NewCartService(cart, backend, &fakeSessions{}, recorder)

	err := svc.Add(context.Background(), apple(1))

	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Empty(t, backend.calls, "no backend call without an identity")
	assert.Equal(t, 0, cart.Len())
	assert.Len(t, recorder.All(), 1)
}

// ============================================
// Increment / Decrement Tests
// ============================================

func TestCartService_Increment(t *testing.T) {
	svc, cart, backend, _ := newCartFixture()
	require.NoError(t, svc.Add(context.Background(), apple(2)))

	err := svc.Increment(context.Background(), 1)

	require.NoError(t, err)
	item, _ := cart.Get(1)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, []string{"add 1 x2", "update 1 x3"}, backend.calls)
}

func TestCartService_Decrement_AboveOneUpdates(t *testing.T) {
	svc, cart, backend, _ := newCartFixture()
	require.NoError(t, svc.Add(context.Background(), apple(2)))

	err := svc.Decrement(context.Background(), 1)

	require.NoError(t, err)
	item, _ := cart.Get(1)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, []string{"add 1 x2", "update 1 x1"}, backend.calls)
}

func TestCartService_Decrement_AtOneRemoves(t *testing.T) {
	svc, cart, backend, _ := newCartFixture()
	require.NoError(t, svc.Add(context.Background(), apple(1)))

	err := svc.Decrement(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 0, cart.Len(), "decrement at quantity 1 is a removal")
	assert.Equal(t, []string{"add 1 x1", "remove 1"}, backend.calls)

	// The backend never sees an update below quantity 1.
	for _, call := range backend.calls {
		assert.NotContains(t, call, "update 1 x0")
	}
}

func TestCartService_Decrement_FailureRestoresQuantity(t *testing.T) {
	svc, cart, _, recorder := newCartFixture("update 1 x2")
	require.NoError(t, svc.Add(context.Background(), apple(3)))

	err := svc.Decrement(context.Background(), 1)

	require.Error(t, err)
	item, _ := cart.Get(1)
	assert.Equal(t, 3, item.Quantity)
	assert.Len(t, recorder.All(), 1)
}

func TestCartService_Decrement_AbsentItem(t *testing.T) {
	svc, _, backend, _ := newCartFixture()

	err := svc.Decrement(context.Background(), 42)

	assert.ErrorIs(t, err, ErrItemNotInCart)
	assert.Empty(t, backend.calls)
}

// ============================================
// Remove / Clear Tests
// ============================================

func TestCartService_Remove_FailureRestoresLine(t *testing.T) {
	svc, cart, _, recorder := newCartFixture("remove 1")
	require.NoError(t, svc.Add(context.Background(), apple(2)))

	err := svc.Remove(context.Background(), 1)

	require.Error(t, err)
	item, ok := cart.Get(1)
	require.True(t, ok, "failed remove must restore the line")
	assert.Equal(t, 2, item.Quantity)
	assert.Len(t, recorder.All(), 1)
}

func TestCartService_Remove_AbsentIsNoop(t *testing.T) {
	svc, _, backend, recorder := newCartFixture()

	err := svc.Remove(context.Background(), 42)

	require.NoError(t, err)
	assert.Empty(t, backend.calls)
	assert.Empty(t, recorder.All())
}

func TestCartService_Clear_FailureRestoresSnapshot(t *testing.T) {
	svc, cart, _, recorder := newCartFixture("clear")
	require.NoError(t, svc.Add(context.Background(), apple(2)))
	other := domain.CartItem{ID: 2, Name: "Milk", Price: decimal.NewFromFloat(1.2), Quantity: 1}
	require.NoError(t, svc.Add(context.Background(), other))

	err := svc.Clear(context.Background())

	require.Error(t, err)
	assert.Equal(t, 2, cart.Len(), "failed clear must restore every line")
	assert.Len(t, recorder.All(), 1)
}

// ============================================
// Refresh Tests
// ============================================

func TestCartService_Refresh_ReplacesLocalState(t *testing.T) {
	svc, cart, backend, _ := newCartFixture()
	backend.cart = []domain.CartItem{apple(4)}
	require.NoError(t, svc.Add(context.Background(), domain.CartItem{ID: 9, Name: "Stale", Quantity: 1}))

	err := svc.Refresh(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, cart.Len())
	item, _ := cart.Get(1)
	assert.Equal(t, 4, item.Quantity)
}

func TestCartService_Refresh_FailureKeepsLocalState(t *testing.T) {
	svc, cart, _, recorder := newCartFixture("fetch")
	require.NoError(t, svc.Add(context.Background(), apple(2)))

	err := svc.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, 1, cart.Len())
	assert.Len(t, recorder.All(), 1)
}
