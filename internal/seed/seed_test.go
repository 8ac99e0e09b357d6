package seed_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/SmartOps-api/internal/application/auth"
	"github.com/jhoicas/SmartOps-api/internal/application/usecase"
	"github.com/jhoicas/SmartOps-api/internal/infrastructure/storage"
	"github.com/jhoicas/SmartOps-api/internal/seed"
	"github.com/jhoicas/SmartOps-api/pkg/password"
)

const fixture = `
businesses:
  - name: Tienda Demo
    subdomain: demo
    owner:
      email: owner@demo.com
      password: password123
      firstName: Ana
      lastName: Ruiz
    users:
      - email: caja@demo.com
        password: password123
        firstName: Luis
        lastName: Gómez
        role: cashier
    inventory:
      - name: Café
        sku: CAF-1
        price: "9.99"
        cost: "4.50"
        quantity: 10
        reorderPoint: 2
    customers:
      - name: Marta
        isVip: true
    notifications:
      - title: Bienvenida
        message: Tienda lista
`

func newSeeder(b *storage.Backend) *seed.Seeder {
	hasher := password.NewWithCost(bcrypt.MinCost)
	return &seed.Seeder{
		Auth: auth.NewAuthUseCase(b.Repos.Users, b.Repos.Businesses, b.Tx, hasher, nil,
			auth.JWTConfig{Secret: "seed-secret", TTL: time.Hour, Issuer: "seed"}, nil),
		Businesses:    usecase.NewBusinessUseCase(b.Repos.Businesses),
		Users:         usecase.NewUserUseCase(b.Repos.Users, hasher, nil, nil),
		Inventory:     usecase.NewInventoryUseCase(b.Repos.Inventory),
		Customers:     usecase.NewCustomerUseCase(b.Repos.Customers),
		Notifications: usecase.NewNotificationUseCase(b.Repos.Notifications),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Load
// ─────────────────────────────────────────────────────────────────────────────

func TestLoad_DecodificaFixture(t *testing.T) {
	f, err := seed.Load(strings.NewReader(fixture))
	require.NoError(t, err)

	require.Len(t, f.Businesses, 1)
	b := f.Businesses[0]
	assert.Equal(t, "demo", b.Subdomain)
	assert.Equal(t, "owner@demo.com", b.Owner.Email)
	assert.Equal(t, "9.99", b.Inventory[0].Price)
	assert.True(t, b.Customers[0].IsVIP)
}

func TestLoad_CampoDesconocido_Error(t *testing.T) {
	_, err := seed.Load(strings.NewReader("businesses:\n  - nombre: x\n"))
	assert.Error(t, err)
}

func TestLoad_Vacio(t *testing.T) {
	f, err := seed.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Businesses)
}

func TestLoadFile_ArchivoDemo(t *testing.T) {
	f, err := seed.LoadFile("../../seeds/demo.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, f.Businesses)
}

// ─────────────────────────────────────────────────────────────────────────────
// Apply
// ─────────────────────────────────────────────────────────────────────────────

func TestApply_CreaNegocioCompleto(t *testing.T) {
	ctx := context.Background()
	b := storage.Memory()
	defer b.Close()
	f, err := seed.Load(strings.NewReader(fixture))
	require.NoError(t, err)

	sum, err := newSeeder(b).Apply(ctx, f)
	require.NoError(t, err)

	assert.Equal(t, seed.Summary{Businesses: 1, Users: 2, Items: 1, Customers: 1, Notifications: 1}, sum)
	counts, err := b.Stats.Counts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts.Businesses)
	assert.EqualValues(t, 2, counts.Users)
	assert.EqualValues(t, 1, counts.Inventory)

	owner, err := b.Repos.Users.GetByEmail(ctx, "owner@demo.com")
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, "owner", owner.Role)
}

func TestApply_Idempotente(t *testing.T) {
	ctx := context.Background()
	b := storage.Memory()
	defer b.Close()
	f, err := seed.Load(strings.NewReader(fixture))
	require.NoError(t, err)
	s := newSeeder(b)

	_, err = s.Apply(ctx, f)
	require.NoError(t, err)
	sum, err := s.Apply(ctx, f)
	require.NoError(t, err)

	assert.Equal(t, seed.Summary{Skipped: 1}, sum)
	counts, err := b.Stats.Counts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts.Businesses)
}

func TestApply_ImporteInvalido_Error(t *testing.T) {
	b := storage.Memory()
	defer b.Close()
	f := &seed.Fixture{Businesses: []seed.Business{{
		Name: "X", Subdomain: "x",
		Owner:     seed.User{Email: "o@x.com", Password: "password123", FirstName: "O", LastName: "X"},
		Inventory: []seed.Item{{Name: "Malo", Price: "abc"}},
	}}}

	_, err := newSeeder(b).Apply(context.Background(), f)
	assert.ErrorContains(t, err, "importe inválido")
}
