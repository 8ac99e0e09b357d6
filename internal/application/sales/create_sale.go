// Package sales registra ventas del punto de venta y su efecto sobre inventario y clientes.
package sales

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

const defaultPaymentMethod = "cash"

// SaleUseCase registra y consulta ventas.
type SaleUseCase struct {
	txRunner repository.TxRunner
	sales    repository.SaleRepository
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner repository.TxRunner, sales repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, sales: sales, now: time.Now}
}

// List devuelve las ventas del negocio, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context, businessID int64) ([]dto.SaleResponse, error) {
	list, err := uc.sales.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return dto.FromSales(list), nil
}

// Get devuelve una venta por (businessID, id).
func (uc *SaleUseCase) Get(ctx context.Context, businessID, id int64) (*dto.SaleResponse, error) {
	s, err := uc.sales.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrSaleNotFound
	}
	return dto.FromSale(s), nil
}

// Create registra la venta en una sola transacción:
//  1. por cada línea bloquea el artículo (SELECT FOR UPDATE) acotado al negocio,
//     valida stock, descuenta quantity y suma soldCount;
//  2. si hay cliente, suma el total a totalSpent e incrementa visitCount;
//  3. guarda la venta.
//
// Cualquier error revierte todos los pasos.
func (uc *SaleUseCase) Create(ctx context.Context, businessID, userID int64, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.MissingFields("Missing required fields", "items")
	}
	for _, line := range in.Items {
		if line.ID <= 0 {
			return nil, domain.Invalid("Each sale item requires an inventory id")
		}
		if line.Quantity <= 0 {
			return nil, domain.Invalid("Sale item quantity must be greater than zero")
		}
		if line.Price.Decimal().IsNegative() {
			return nil, domain.Invalid("Sale item price cannot be negative")
		}
	}
	tax, discount := in.Tax.Decimal(), in.Discount.Decimal()
	if tax.IsNegative() || discount.IsNegative() {
		return nil, domain.Invalid("Tax and discount cannot be negative")
	}

	now := uc.now().UTC()
	sale := &entity.Sale{
		BusinessID:    businessID,
		UserID:        userID,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Tax:           tax,
		Discount:      discount,
		CreatedAt:     now,
	}
	if sale.PaymentMethod == "" {
		sale.PaymentMethod = defaultPaymentMethod
	}

	err := uc.txRunner.Run(ctx, func(r repository.Repos) error {
		subtotal := decimal.Zero
		sale.Items = make([]entity.SaleItem, 0, len(in.Items))
		for _, line := range in.Items {
			item, err := r.Inventory.GetForUpdate(ctx, businessID, line.ID.Int64())
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrItemNotFound
			}
			qty := line.Quantity.Int64()
			if qty > item.Quantity {
				return domain.ErrInsufficientStock
			}
			item.Quantity -= qty
			item.SoldCount += qty
			item.UpdatedAt = now
			if err := r.Inventory.Update(ctx, item); err != nil {
				return err
			}

			price := line.Price.Decimal()
			if price.IsZero() {
				price = item.Price
			}
			name := strings.TrimSpace(line.Name)
			if name == "" {
				name = item.Name
			}
			sale.Items = append(sale.Items, entity.SaleItem{ItemID: item.ID, Name: name, Quantity: qty, Price: price})
			subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(qty)))
		}

		if in.Total != nil {
			sale.Total = in.Total.Decimal()
		} else {
			sale.Total = subtotal.Add(tax).Sub(discount)
		}
		if sale.Total.IsNegative() {
			return domain.Invalid("Sale total cannot be negative")
		}

		if in.CustomerID != nil && *in.CustomerID > 0 {
			customerID := in.CustomerID.Int64()
			customer, err := r.Customers.GetForUpdate(ctx, businessID, customerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return domain.ErrCustomerNotFound
			}
			customer.TotalSpent = customer.TotalSpent.Add(sale.Total)
			customer.VisitCount++
			customer.UpdatedAt = now
			if err := r.Customers.Update(ctx, customer); err != nil {
				return err
			}
			sale.CustomerID = &customerID
		}

		return r.Sales.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return dto.FromSale(sale), nil
}
