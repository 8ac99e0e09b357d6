// Package seed carga negocios de demostración desde un archivo YAML.
// Los negocios cuyo subdominio ya existe se omiten, por lo que aplicar el mismo
// archivo dos veces no duplica datos.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/SmartOps-api/internal/application/auth"
	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/application/usecase"
	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/pkg/logger"
)

// Fixture contenido del archivo de seed.
type Fixture struct {
	Businesses []Business `yaml:"businesses"`
}

// Business negocio con su owner y sus datos iniciales.
type Business struct {
	Name          string         `yaml:"name"`
	Subdomain     string         `yaml:"subdomain"`
	Email         string         `yaml:"email"`
	Phone         string         `yaml:"phone"`
	Address       string         `yaml:"address"`
	Owner         User           `yaml:"owner"`
	Users         []User         `yaml:"users"`
	Inventory     []Item         `yaml:"inventory"`
	Customers     []Customer     `yaml:"customers"`
	Notifications []Notification `yaml:"notifications"`
}

// User usuario del negocio. Role se ignora para el owner.
type User struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
	Role      string `yaml:"role"`
}

// Item artículo de inventario. Price y Cost son decimales en texto ("9.99").
type Item struct {
	Name         string `yaml:"name"`
	SKU          string `yaml:"sku"`
	Description  string `yaml:"description"`
	Category     string `yaml:"category"`
	Barcode      string `yaml:"barcode"`
	Price        string `yaml:"price"`
	Cost         string `yaml:"cost"`
	Quantity     int64  `yaml:"quantity"`
	ReorderPoint int64  `yaml:"reorderPoint"`
}

// Customer cliente del negocio.
type Customer struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
	IsVIP   bool   `yaml:"isVip"`
}

// Notification notificación inicial.
type Notification struct {
	Title    string `yaml:"title"`
	Message  string `yaml:"message"`
	Type     string `yaml:"type"`
	Priority string `yaml:"priority"`
}

// Summary conteo de lo creado por Apply.
type Summary struct {
	Businesses    int
	Skipped       int
	Users         int
	Items         int
	Customers     int
	Notifications int
}

// Load decodifica un fixture. Los campos desconocidos son un error.
func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decodificar seed: %w", err)
	}
	return &f, nil
}

// LoadFile abre y decodifica el archivo en path.
func LoadFile(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Seeder aplica fixtures a través de los casos de uso, con sus mismas validaciones.
type Seeder struct {
	Auth          *auth.AuthUseCase
	Businesses    *usecase.BusinessUseCase
	Users         *usecase.UserUseCase
	Inventory     *usecase.InventoryUseCase
	Customers     *usecase.CustomerUseCase
	Notifications *usecase.NotificationUseCase
	Log           *logger.Logger
}

// Apply crea cada negocio del fixture que aún no exista.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (Summary, error) {
	log := s.Log
	if log == nil {
		log = logger.Nop()
	}
	var sum Summary
	for _, b := range f.Businesses {
		_, err := s.Businesses.GetBySubdomain(ctx, b.Subdomain)
		switch {
		case err == nil:
			log.Info().Str("subdomain", b.Subdomain).Msg("negocio existente, se omite")
			sum.Skipped++
			continue
		case !errors.Is(err, domain.ErrBusinessNotFound):
			return sum, err
		}

		if err := s.business(ctx, b, &sum); err != nil {
			return sum, fmt.Errorf("seed %s: %w", b.Subdomain, err)
		}
		sum.Businesses++
		log.Info().Str("subdomain", b.Subdomain).Msg("negocio creado")
	}
	return sum, nil
}

func (s *Seeder) business(ctx context.Context, b Business, sum *Summary) error {
	reg, err := s.Auth.Register(ctx, dto.RegisterRequest{
		Email:           b.Owner.Email,
		Password:        b.Owner.Password,
		FirstName:       b.Owner.FirstName,
		LastName:        b.Owner.LastName,
		BusinessName:    b.Name,
		Subdomain:       b.Subdomain,
		BusinessEmail:   b.Email,
		BusinessPhone:   b.Phone,
		BusinessAddress: b.Address,
	})
	if err != nil {
		return err
	}
	businessID := reg.User.BusinessID
	sum.Users++

	for _, u := range b.Users {
		if _, err := s.Users.Create(ctx, businessID, dto.CreateUserRequest{
			Email: u.Email, Password: u.Password, FirstName: u.FirstName, LastName: u.LastName, Role: u.Role,
		}); err != nil {
			return fmt.Errorf("usuario %s: %w", u.Email, err)
		}
		sum.Users++
	}
	for _, it := range b.Inventory {
		price, err := parseAmount(it.Price)
		if err != nil {
			return fmt.Errorf("artículo %s: %w", it.Name, err)
		}
		cost, err := parseAmount(it.Cost)
		if err != nil {
			return fmt.Errorf("artículo %s: %w", it.Name, err)
		}
		if _, err := s.Inventory.Create(ctx, businessID, dto.CreateInventoryItemRequest{
			Name:         it.Name,
			SKU:          it.SKU,
			Description:  it.Description,
			Category:     it.Category,
			Barcode:      it.Barcode,
			Price:        dto.FlexDecimal(price),
			Cost:         dto.FlexDecimal(cost),
			Quantity:     dto.FlexInt(it.Quantity),
			ReorderPoint: dto.FlexInt(it.ReorderPoint),
		}); err != nil {
			return fmt.Errorf("artículo %s: %w", it.Name, err)
		}
		sum.Items++
	}
	for _, c := range b.Customers {
		if _, err := s.Customers.Create(ctx, businessID, dto.CreateCustomerRequest{
			Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address, IsVIP: c.IsVIP,
		}); err != nil {
			return fmt.Errorf("cliente %s: %w", c.Name, err)
		}
		sum.Customers++
	}
	for _, n := range b.Notifications {
		if _, err := s.Notifications.Create(ctx, businessID, dto.CreateNotificationRequest{
			Title: n.Title, Message: n.Message, Type: n.Type, Priority: n.Priority,
		}); err != nil {
			return fmt.Errorf("notificación %s: %w", n.Title, err)
		}
		sum.Notifications++
	}
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("importe inválido %q", s)
	}
	return d, nil
}
