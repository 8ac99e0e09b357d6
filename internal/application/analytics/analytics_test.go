package analytics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
	"github.com/jhoicas/SmartOps-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func seed(t *testing.T) (*memory.Store, repository.Repos, int64) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	repos := store.Repos()

	b := &entity.Business{Name: "Shop", Subdomain: "shop", Settings: map[string]any{}}
	require.NoError(t, repos.Businesses.Create(ctx, b))

	items := []*entity.InventoryItem{
		{BusinessID: b.ID, Name: "A", Price: decimal.NewFromInt(10), Cost: decimal.NewFromInt(6), Quantity: 1, ReorderPoint: 5, SoldCount: 3},
		{BusinessID: b.ID, Name: "B", Price: decimal.NewFromInt(5), Cost: decimal.NewFromInt(2), Quantity: 20, ReorderPoint: 5, SoldCount: 9},
	}
	for _, it := range items {
		require.NoError(t, repos.Inventory.Create(ctx, it))
	}
	require.NoError(t, repos.Customers.Create(ctx, &entity.Customer{BusinessID: b.ID, Name: "Ana", IsVIP: true}))
	require.NoError(t, repos.Customers.Create(ctx, &entity.Customer{BusinessID: b.ID, Name: "Luis"}))

	sales := []*entity.Sale{
		{BusinessID: b.ID, Total: decimal.NewFromInt(100), Tax: decimal.NewFromInt(10), CreatedAt: time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)},
		{BusinessID: b.ID, Total: decimal.NewFromInt(50), Tax: decimal.NewFromInt(5), CreatedAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)},
		{BusinessID: b.ID, Total: decimal.NewFromInt(25), CreatedAt: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)},
	}
	for _, s := range sales {
		require.NoError(t, repos.Sales.Create(ctx, s))
	}
	return store, repos, b.ID
}

// ─────────────────────────────────────────────────────────────────────────────
// Dashboard
// ─────────────────────────────────────────────────────────────────────────────

func TestOverview_TotalesYMes(t *testing.T) {
	store, _, businessID := seed(t)
	uc := NewDashboardUseCase(memory.NewAnalyticsRepo(store), store.Repos().Businesses)
	uc.now = func() time.Time { return fixedNow }

	res, err := uc.Overview(context.Background(), businessID)
	require.NoError(t, err)
	assert.True(t, res.Revenue.Total.Equal(decimal.NewFromInt(175)))
	assert.True(t, res.Revenue.Monthly.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, int64(3), res.Sales.Total)
	assert.Equal(t, int64(2), res.Sales.Monthly)
	assert.Equal(t, dto.ProductStats{Total: 2, LowStock: 1}, res.Products)
	assert.Equal(t, dto.CustomerStats{Total: 2, VIP: 1}, res.Customers)
}

func TestOverview_MesEnZonaHorariaDelNegocio(t *testing.T) {
	store, repos, businessID := seed(t)
	ctx := context.Background()
	uc := NewDashboardUseCase(memory.NewAnalyticsRepo(store), repos.Businesses)
	// 1 de marzo 03:00 UTC sigue siendo 29 de febrero en Nueva York.
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC) }

	utc, err := uc.Overview(ctx, businessID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), utc.Sales.Monthly, "sin zona horaria el mes es marzo en UTC")

	b, err := repos.Businesses.GetByID(ctx, businessID)
	require.NoError(t, err)
	b.Timezone = "America/New_York"
	require.NoError(t, repos.Businesses.Update(ctx, b))

	ny, err := uc.Overview(ctx, businessID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ny.Sales.Monthly, "febrero local incluye la venta del día 10")
	assert.True(t, ny.Revenue.Monthly.Equal(decimal.NewFromInt(175)))
}

func TestStats_RecientesYMasVendidos(t *testing.T) {
	store, _, businessID := seed(t)
	uc := NewDashboardUseCase(memory.NewAnalyticsRepo(store), store.Repos().Businesses)

	res, err := uc.Stats(context.Background(), businessID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.TotalSales)
	assert.Equal(t, int64(1), res.LowStockItems)
	require.Len(t, res.RecentSales, 3)
	assert.True(t, res.RecentSales[0].CreatedAt.After(res.RecentSales[1].CreatedAt))
	require.Len(t, res.TopProducts, 2)
	assert.Equal(t, "B", res.TopProducts[0].Name)
}

func TestStats_NegocioVacio(t *testing.T) {
	store := memory.New()
	uc := NewDashboardUseCase(memory.NewAnalyticsRepo(store), store.Repos().Businesses)

	res, err := uc.Stats(context.Background(), 99)
	require.NoError(t, err)
	assert.True(t, res.TotalRevenue.IsZero())
	assert.Empty(t, res.RecentSales)
	assert.Empty(t, res.TopProducts)
}

func TestStartOfMonth(t *testing.T) {
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), startOfMonth(fixedNow))
}

// ─────────────────────────────────────────────────────────────────────────────
// Reportes
// ─────────────────────────────────────────────────────────────────────────────

func TestReport_VentasConRangoInclusivo(t *testing.T) {
	store, repos, businessID := seed(t)
	uc := NewReportUseCase(repos.Reports, memory.NewAnalyticsRepo(store))

	rep, err := uc.Create(context.Background(), businessID, dto.CreateReportRequest{
		Name: "Marzo", Type: "Sales",
		DateRange: dto.DateRangeDTO{From: "2024-03-01", To: "2024-03-10"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusReady, rep.Status)
	assert.Equal(t, "json", rep.Format)
	assert.Equal(t, "sales", rep.Type)

	var data dto.SalesReportData
	require.NoError(t, json.Unmarshal(rep.Data, &data))
	assert.Equal(t, int64(2), data.Count)
	assert.True(t, data.Revenue.Equal(decimal.NewFromInt(75)))
	assert.True(t, data.AvgTicket.Equal(decimal.RequireFromString("37.5")))

	got, err := uc.Get(context.Background(), businessID, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marzo", got.Name)
}

func TestReport_InventarioYClientes(t *testing.T) {
	store, repos, businessID := seed(t)
	uc := NewReportUseCase(repos.Reports, memory.NewAnalyticsRepo(store))
	ctx := context.Background()

	inv, err := uc.Create(ctx, businessID, dto.CreateReportRequest{Name: "Stock", Type: "inventory", Format: "CSV"})
	require.NoError(t, err)
	assert.Equal(t, "csv", inv.Format)
	var invData dto.InventoryReportData
	require.NoError(t, json.Unmarshal(inv.Data, &invData))
	assert.Equal(t, int64(21), invData.Units)
	assert.True(t, invData.StockValue.Equal(decimal.NewFromInt(46)))

	cust, err := uc.Create(ctx, businessID, dto.CreateReportRequest{Name: "Clientes", Type: "customers"})
	require.NoError(t, err)
	var custData dto.CustomerReportData
	require.NoError(t, json.Unmarshal(cust.Data, &custData))
	assert.Equal(t, int64(1), custData.VIP)

	list, err := uc.List(ctx, businessID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestReport_Validaciones(t *testing.T) {
	store, repos, businessID := seed(t)
	uc := NewReportUseCase(repos.Reports, memory.NewAnalyticsRepo(store))
	ctx := context.Background()

	cases := map[string]dto.CreateReportRequest{
		"sin nombre":      {Type: "sales"},
		"tipo inválido":   {Name: "X", Type: "payroll"},
		"fecha inválida":  {Name: "X", Type: "sales", DateRange: dto.DateRangeDTO{From: "03/01/2024"}},
		"rango invertido": {Name: "X", Type: "sales", DateRange: dto.DateRangeDTO{From: "2024-03-10", To: "2024-03-01"}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, businessID, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := uc.Get(ctx, businessID, 999)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}
