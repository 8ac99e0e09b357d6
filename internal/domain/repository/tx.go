package repository

import "context"

// Repos agrupa repositorios atados a una misma transacción.
type Repos struct {
	Businesses    BusinessRepository
	Users         UserRepository
	Inventory     InventoryRepository
	Sales         SaleRepository
	Customers     CustomerRepository
	Notifications NotificationRepository
	Reports       ReportRepository
}

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error no queda
// ningún cambio aplicado (Rollback); en caso contrario se confirma (Commit).
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}
