package usecase

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

// CustomerUseCase CRUD de clientes. TotalSpent y VisitCount los actualizan las ventas.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List devuelve los clientes del negocio.
func (uc *CustomerUseCase) List(ctx context.Context, businessID int64) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomers(list), nil
}

// Get devuelve un cliente por (businessID, id).
func (uc *CustomerUseCase) Get(ctx context.Context, businessID, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return dto.FromCustomer(c), nil
}

// Create da de alta un cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, businessID int64, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.MissingFields("Missing required fields", "name")
	}
	now := time.Now().UTC()
	c := &entity.Customer{
		BusinessID: businessID,
		Name:       name,
		Email:      strings.TrimSpace(in.Email),
		Phone:      in.Phone,
		Address:    in.Address,
		IsVIP:      in.IsVIP,
		TotalSpent: decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return dto.FromCustomer(c), nil
}

// Update aplica los campos presentes sobre el cliente (businessID, id).
func (uc *CustomerUseCase) Update(ctx context.Context, businessID, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
		if c.Name == "" {
			return nil, domain.Invalid("Customer name cannot be empty")
		}
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.IsVIP != nil {
		c.IsVIP = *in.IsVIP
	}
	c.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return dto.FromCustomer(c), nil
}

// Delete elimina el cliente (businessID, id). Las ventas asociadas conservan la referencia.
func (uc *CustomerUseCase) Delete(ctx context.Context, businessID, id int64) error {
	return uc.repo.Delete(ctx, businessID, id)
}
