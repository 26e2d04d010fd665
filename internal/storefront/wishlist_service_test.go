package storefront

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/notify"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/store"
)

type fakeWishlistBackend struct {
	calls     []string
	failOn    map[string]bool
	favorites []domain.WishlistItem
}

func (f *fakeWishlistBackend) call(name string) error {
	f.calls = append(f.calls, name)
	if f.failOn[name] {
		return errRemote
	}
	return nil
}

func (f *fakeWishlistBackend) AddFavorite(_ context.Context, id int64) error {
	return f.call(fmt.Sprintf("add %d", id))
}

func (f *fakeWishlistBackend) RemoveFavorite(_ context.Context, id int64) error {
	return f.call(fmt.Sprintf("remove %d", id))
}

func (f *fakeWishlistBackend) FetchFavorites(_ context.Context) ([]domain.WishlistItem, error) {
	if err := f.call("fetch"); err != nil {
		return nil, err
	}
	return f.favorites, nil
}

func newWishlistFixture(failOn ...string) (*WishlistService, *store.Wishlist, *fakeWishlistBackend, *notify.Recorder) {
	backend := &fakeWishlistBackend{failOn: map[string]bool{}}
	for _, name := range failOn {
		backend.failOn[name] = true
	}
	wishlist := store.NewWishlist()
	recorder := &notify.Recorder{}
	svc := NewWishlistService(wishlist, backend, loggedIn(), recorder)
	return svc, wishlist, backend, recorder
}

func mango() domain.WishlistItem {
	return domain.WishlistItem{ID: 1, Name: "Mango", Price: decimal.NewFromFloat(3.0), Category: "fruit"}
}

func TestWishlistService_Add_Success(t *testing.T) {
	svc, wishlist, backend, recorder := newWishlistFixture()

	err := svc.Add(context.Background(), mango())

	require.NoError(t, err)
	assert.True(t, wishlist.Has(1))
	assert.Equal(t, []string{"add 1"}, backend.calls)
	assert.Empty(t, recorder.All())
}

func TestWishlistService_Add_DuplicateIsNoop(t *testing.T) {
	svc, _, backend, _ := newWishlistFixture()
	require.NoError(t, svc.Add(context.Background(), mango()))

	err := svc.Add(context.Background(), mango())

	require.NoError(t, err)
	assert.Equal(t, []string{"add 1"}, backend.calls, "duplicate add must not hit the backend")
}

func TestWishlistService_Add_FailureRollsBack(t *testing.T) {
	svc, wishlist, _, recorder := newWishlistFixture("add 1")

	err := svc.Add(context.Background(), mango())

	require.Error(t, err)
	assert.False(t, wishlist.Has(1))
	assert.Len(t, recorder.All(), 1)
}

func TestWishlistService_Remove_FailureRestoresEntry(t *testing.T) {
	svc, wishlist, _, recorder := newWishlistFixture("remove 1")
	require.NoError(t, svc.Add(context.Background(), mango()))

	err := svc.Remove(context.Background(), 1)

	require.Error(t, err)
	item, ok := wishlist.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Mango", item.Name)
	assert.Len(t, recorder.All(), 1)
}

func TestWishlistService_Toggle(t *testing.T) {
	svc, wishlist, backend, _ := newWishlistFixture()

	require.NoError(t, svc.Toggle(context.Background(), mango()))
	assert.True(t, wishlist.Has(1))

	require.NoError(t, svc.Toggle(context.Background(), mango()))
	assert.False(t, wishlist.Has(1))

	assert.Equal(t, []string{"add 1", "remove 1"}, backend.calls)
}

func TestWishlistService_Refresh_HydratesFromSnapshot(t *testing.T) {
	svc, wishlist, backend, _ := newWishlistFixture()
	backend.favorites = []domain.WishlistItem{mango(), {ID: 2, Name: "Kiwi"}}
	wishlist.Add(domain.WishlistItem{ID: 99, Name: "Stale"})

	err := svc.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, wishlist.Len())
	assert.False(t, wishlist.Has(99))
	assert.True(t, wishlist.Has(2))
}

func TestWishlistService_NotLoggedIn(t *testing.T) {
	backend := &fakeWishlistBackend{failOn: map[string]bool{}}
	recorder := &notify.Recorder{}
	svc := NewWishlistService(store.NewWishlist(), backend, &fakeSessions{}, recorder)

	err := svc.Add(context.Background(), mango())

	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Empty(t, backend.calls)
	assert.Len(t, recorder.All(), 1)
}
