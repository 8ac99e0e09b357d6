package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
)

var maxTaxRate = decimal.NewFromInt(100)

// BusinessUseCase directorio de tenants: alta, consulta y actualización parcial.
type BusinessUseCase struct {
	repo repository.BusinessRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo}
}

// Create registra un negocio suelto (sin owner). Usado por el seed.
func (uc *BusinessUseCase) Create(ctx context.Context, in dto.CreateBusinessRequest) (*entity.Business, error) {
	return CreateBusiness(ctx, uc.repo, in, time.Now().UTC())
}

// Get devuelve el negocio del tenant.
func (uc *BusinessUseCase) Get(ctx context.Context, businessID int64) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBusinessNotFound
	}
	return dto.FromBusiness(b), nil
}

// GetBySubdomain busca un negocio por su slug.
func (uc *BusinessUseCase) GetBySubdomain(ctx context.Context, subdomain string) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetBySubdomain(ctx, strings.ToLower(strings.TrimSpace(subdomain)))
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBusinessNotFound
	}
	return dto.FromBusiness(b), nil
}

// Update aplica solo los campos presentes en el request. Un valor cero explícito
// (por ejemplo taxRate 0) se aplica; un campo ausente conserva el valor actual.
func (uc *BusinessUseCase) Update(ctx context.Context, businessID int64, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBusinessNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.Invalid("Business name cannot be empty")
		}
		b.Name = name
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.Email != nil {
		email, err := businessEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		b.Email = email
	}
	if in.Phone != nil {
		b.Phone = *in.Phone
	}
	if in.Address != nil {
		b.Address = *in.Address
	}
	if in.Timezone != nil {
		tz := strings.TrimSpace(*in.Timezone)
		if _, err := time.LoadLocation(tz); err != nil || tz == "" {
			return nil, domain.Invalid("Invalid timezone")
		}
		b.Timezone = tz
	}
	if in.Currency != nil {
		code, err := normalizeCurrency(*in.Currency)
		if err != nil {
			return nil, err
		}
		b.Currency = code
	}
	if in.TaxRate != nil {
		rate := in.TaxRate.Decimal()
		if rate.IsNegative() || rate.GreaterThan(maxTaxRate) {
			return nil, domain.Invalid("Tax rate must be between 0 and 100")
		}
		b.TaxRate = rate
	}
	if in.Settings != nil {
		b.Settings = *in.Settings
		if b.Settings == nil {
			b.Settings = map[string]any{}
		}
	}
	b.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return dto.FromBusiness(b), nil
}

// NewBusiness valida los datos de alta y aplica los valores por defecto.
func NewBusiness(in dto.CreateBusinessRequest, now time.Time) (*entity.Business, error) {
	name := strings.TrimSpace(in.Name)
	subdomain := strings.ToLower(strings.TrimSpace(in.Subdomain))
	if name == "" || subdomain == "" {
		return nil, domain.MissingFields("Missing required fields", "businessName", "subdomain")
	}
	if !entity.SubdomainPattern.MatchString(subdomain) {
		return nil, domain.Invalid("Subdomain may only contain lowercase letters, numbers and hyphens")
	}
	email, err := businessEmail(in.Email)
	if err != nil {
		return nil, err
	}
	return &entity.Business{
		Name:      name,
		Subdomain: subdomain,
		Email:     email,
		Phone:     in.Phone,
		Address:   in.Address,
		Timezone:  entity.DefaultTimezone,
		Currency:  entity.DefaultCurrency,
		TaxRate:   decimal.Zero,
		IsActive:  true,
		Settings:  map[string]any{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CreateBusiness valida, comprueba la unicidad del subdominio y persiste con repo.
// repo puede estar atado a una transacción.
func CreateBusiness(ctx context.Context, repo repository.BusinessRepository, in dto.CreateBusinessRequest, now time.Time) (*entity.Business, error) {
	b, err := NewBusiness(in, now)
	if err != nil {
		return nil, err
	}
	existing, err := repo.GetBySubdomain(ctx, b.Subdomain)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSubdomainTaken
	}
	if err := repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// businessEmail el email de contacto es opcional; vacío lo borra.
func businessEmail(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return ValidateEmail(raw)
}

func normalizeCurrency(s string) (string, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return "", domain.Invalid("Invalid currency code")
	}
	return unit.String(), nil
}
