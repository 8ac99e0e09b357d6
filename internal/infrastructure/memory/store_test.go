package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
	"github.com/jhoicas/SmartOps-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newBusiness(t *testing.T, repos repository.Repos, subdomain string) *entity.Business {
	t.Helper()
	b := &entity.Business{Name: subdomain, Subdomain: subdomain, Settings: map[string]any{}}
	require.NoError(t, repos.Businesses.Create(context.Background(), b))
	return b
}

func newItem(t *testing.T, repos repository.Repos, businessID int64, name string, qty int64) *entity.InventoryItem {
	t.Helper()
	it := &entity.InventoryItem{BusinessID: businessID, Name: name, Quantity: qty, Price: decimal.NewFromInt(10)}
	require.NoError(t, repos.Inventory.Create(context.Background(), it))
	return it
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_ErrorRevierteTodo(t *testing.T) {
	store := memory.New()
	repos := store.Repos()
	ctx := context.Background()
	b := newBusiness(t, repos, "shop")
	it := newItem(t, repos, b.ID, "Widget", 10)

	boom := errors.New("boom")
	err := memory.NewTxRunner(store).Run(ctx, func(r repository.Repos) error {
		cur, err := r.Inventory.GetForUpdate(ctx, b.ID, it.ID)
		require.NoError(t, err)
		cur.Quantity = 0
		require.NoError(t, r.Inventory.Update(ctx, cur))
		require.NoError(t, r.Sales.Create(ctx, &entity.Sale{BusinessID: b.ID}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repos.Inventory.GetByID(ctx, b.ID, it.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Quantity, "el descuento de stock debe revertirse")
	sales, err := repos.Sales.ListByBusiness(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, sales, "la venta no debe quedar guardada")
}

func TestTxRunner_CommitPublicaCambios(t *testing.T) {
	store := memory.New()
	repos := store.Repos()
	ctx := context.Background()
	b := newBusiness(t, repos, "shop")

	err := memory.NewTxRunner(store).Run(ctx, func(r repository.Repos) error {
		return r.Customers.Create(ctx, &entity.Customer{BusinessID: b.ID, Name: "Ana"})
	})
	require.NoError(t, err)

	list, err := repos.Customers.ListByBusiness(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].Name)
}

func TestTxRunner_ContextoCancelado(t *testing.T) {
	store := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := memory.NewTxRunner(store).Run(ctx, func(repository.Repos) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento por negocio y unicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_AislamientoEntreNegocios(t *testing.T) {
	store := memory.New()
	repos := store.Repos()
	ctx := context.Background()
	a := newBusiness(t, repos, "a")
	b := newBusiness(t, repos, "b")
	itA := newItem(t, repos, a.ID, "Widget", 1)
	newItem(t, repos, b.ID, "Gadget", 1)

	list, err := repos.Inventory.ListByBusiness(ctx, b.ID)
	require.NoError(t, err)
	for _, it := range list {
		assert.Equal(t, b.ID, it.BusinessID)
	}

	got, err := repos.Inventory.GetByID(ctx, b.ID, itA.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "un id de otro negocio no debe resolverse")

	err = repos.Inventory.Delete(ctx, b.ID, itA.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	itA.BusinessID = b.ID
	err = repos.Inventory.Update(ctx, itA)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestRepos_Unicidad(t *testing.T) {
	store := memory.New()
	repos := store.Repos()
	ctx := context.Background()
	b := newBusiness(t, repos, "shop")

	err := repos.Businesses.Create(ctx, &entity.Business{Name: "otro", Subdomain: "shop"})
	assert.ErrorIs(t, err, domain.ErrSubdomainTaken)

	require.NoError(t, repos.Users.Create(ctx, &entity.User{BusinessID: b.ID, Email: "a@x.com"}))
	err = repos.Users.Create(ctx, &entity.User{BusinessID: b.ID + 1, Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken, "el email es único entre todos los negocios")

	require.NoError(t, repos.Inventory.Create(ctx, &entity.InventoryItem{BusinessID: b.ID, Name: "x", SKU: "W1"}))
	err = repos.Inventory.Create(ctx, &entity.InventoryItem{BusinessID: b.ID, Name: "y", SKU: "W1"})
	assert.ErrorIs(t, err, domain.ErrSKUTaken)
	assert.NoError(t, repos.Inventory.Create(ctx, &entity.InventoryItem{BusinessID: b.ID + 1, Name: "y", SKU: "W1"}))
}

func TestRepos_DevuelvenCopias(t *testing.T) {
	store := memory.New()
	repos := store.Repos()
	ctx := context.Background()
	b := newBusiness(t, repos, "shop")

	got, err := repos.Businesses.GetByID(ctx, b.ID)
	require.NoError(t, err)
	got.Settings["theme"] = "dark"
	got.Name = "mutado"

	again, err := repos.Businesses.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "shop", again.Name)
	assert.NotContains(t, again.Settings, "theme")
}

func TestRepos_GetInexistenteDevuelveNil(t *testing.T) {
	repos := memory.New().Repos()
	ctx := context.Background()

	b, err := repos.Businesses.GetBySubdomain(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, b)

	u, err := repos.Users.GetByEmail(ctx, "nadie@x.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

// ──────────────────────────────────────────────────────────────────────────────
// Analytics
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalytics_MetricasYOrden(t *testing.T) {
	store := memory.New()
	repos := store.Repos()
	an := memory.NewAnalyticsRepo(store)
	ctx := context.Background()
	b := newBusiness(t, repos, "shop")

	low := newItem(t, repos, b.ID, "Low", 1)
	low.ReorderPoint = 5
	low.SoldCount = 2
	require.NoError(t, repos.Inventory.Update(ctx, low))
	top := newItem(t, repos, b.ID, "Top", 50)
	top.SoldCount = 9
	require.NoError(t, repos.Inventory.Update(ctx, top))

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Now().UTC()
	require.NoError(t, repos.Sales.Create(ctx, &entity.Sale{BusinessID: b.ID, Total: decimal.NewFromInt(10), CreatedAt: old}))
	require.NoError(t, repos.Sales.Create(ctx, &entity.Sale{BusinessID: b.ID, Total: decimal.NewFromInt(5), CreatedAt: recent}))
	require.NoError(t, repos.Sales.Create(ctx, &entity.Sale{BusinessID: b.ID + 1, Total: decimal.NewFromInt(99), CreatedAt: recent}))

	all, err := an.GetSalesMetrics(ctx, b.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Count)
	assert.True(t, all.Revenue.Equal(decimal.NewFromInt(15)))

	since, err := an.GetSalesMetrics(ctx, b.ID, recent.Add(-time.Hour), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), since.Count)

	inv, err := an.GetInventoryMetrics(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inv.Products)
	assert.Equal(t, int64(1), inv.LowStock)

	recentSales, err := an.RecentSales(ctx, b.ID, 1)
	require.NoError(t, err)
	require.Len(t, recentSales, 1)
	assert.True(t, recentSales[0].Total.Equal(decimal.NewFromInt(5)))

	topProducts, err := an.TopProducts(ctx, b.ID, 5)
	require.NoError(t, err)
	require.Len(t, topProducts, 2)
	assert.Equal(t, "Top", topProducts[0].Name)

	counts, err := an.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.Sales)
	assert.Equal(t, int64(1), counts.Businesses)
}
