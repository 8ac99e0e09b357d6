package dto

import "github.com/shopspring/decimal"

// AnalyticsResponse respuesta de GET /api/analytics.
type AnalyticsResponse struct {
	Revenue   RevenueStats  `json:"revenue"`
	Sales     SalesStats    `json:"sales"`
	Products  ProductStats  `json:"products"`
	Customers CustomerStats `json:"customers"`
}

// RevenueStats ingresos totales y del mes en curso.
type RevenueStats struct {
	Total   decimal.Decimal `json:"total"`
	Monthly decimal.Decimal `json:"monthly"`
}

// SalesStats número de ventas totales y del mes en curso.
type SalesStats struct {
	Total   int64 `json:"total"`
	Monthly int64 `json:"monthly"`
}

// ProductStats artículos totales y con stock bajo.
type ProductStats struct {
	Total    int64 `json:"total"`
	LowStock int64 `json:"lowStock"`
}

// CustomerStats clientes totales y VIP.
type CustomerStats struct {
	Total int64 `json:"total"`
	VIP   int64 `json:"vip"`
}

// DashboardStatsResponse respuesta de GET /api/dashboard/stats.
type DashboardStatsResponse struct {
	TotalRevenue   decimal.Decimal         `json:"totalRevenue"`
	TotalSales     int64                   `json:"totalSales"`
	TotalProducts  int64                   `json:"totalProducts"`
	TotalCustomers int64                   `json:"totalCustomers"`
	LowStockItems  int64                   `json:"lowStockItems"`
	RecentSales    []SaleResponse          `json:"recentSales"`
	TopProducts    []InventoryItemResponse `json:"topProducts"`
}

// SalesReportData resumen de un reporte de ventas.
type SalesReportData struct {
	From      string          `json:"from,omitempty"`
	To        string          `json:"to,omitempty"`
	Count     int64           `json:"count"`
	Revenue   decimal.Decimal `json:"revenue"`
	Tax       decimal.Decimal `json:"tax"`
	AvgTicket decimal.Decimal `json:"averageTicket"`
}

// InventoryReportData resumen de un reporte de inventario.
type InventoryReportData struct {
	Products   int64           `json:"products"`
	LowStock   int64           `json:"lowStock"`
	Units      int64           `json:"units"`
	StockValue decimal.Decimal `json:"stockValue"`
}

// CustomerReportData resumen de un reporte de clientes.
type CustomerReportData struct {
	Total      int64           `json:"total"`
	VIP        int64           `json:"vip"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}
