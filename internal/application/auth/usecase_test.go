package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/SmartOps-api/internal/application/auth"
	"github.com/jhoicas/SmartOps-api/internal/application/dto"
	"github.com/jhoicas/SmartOps-api/internal/domain"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
	"github.com/jhoicas/SmartOps-api/internal/domain/repository"
	"github.com/jhoicas/SmartOps-api/internal/infrastructure/memory"
	"github.com/jhoicas/SmartOps-api/pkg/jwt"
	"github.com/jhoicas/SmartOps-api/pkg/password"
)

const secret = "test-secret"

// mapCache caché en memoria para verificar el camino de lectura.
type mapCache struct {
	m       map[int64]entity.Principal
	failGet bool
}

func (c *mapCache) Get(_ context.Context, id int64) (*entity.Principal, error) {
	if c.failGet {
		return nil, errors.New("redis caído")
	}
	p, ok := c.m[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *mapCache) Set(_ context.Context, p entity.Principal) error {
	c.m[p.UserID] = p
	return nil
}

func (c *mapCache) Delete(_ context.Context, id int64) error {
	delete(c.m, id)
	return nil
}

type env struct {
	uc    *auth.AuthUseCase
	repos repository.Repos
	cache *mapCache
}

func setup(t *testing.T) env {
	t.Helper()
	store := memory.New()
	repos := store.Repos()
	cache := &mapCache{m: map[int64]entity.Principal{}}
	uc := auth.NewAuthUseCase(repos.Users, repos.Businesses, memory.NewTxRunner(store),
		password.NewWithCost(bcrypt.MinCost), cache,
		auth.JWTConfig{Secret: secret, TTL: time.Hour, Issuer: "test"}, nil)
	return env{uc: uc, repos: repos, cache: cache}
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email: "Owner@Shop.com", Password: "password123",
		FirstName: "Ana", LastName: "Ruiz",
		BusinessName: "Shop", Subdomain: "shop",
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Register / Login
// ─────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaNegocioYOwner(t *testing.T) {
	e := setup(t)

	res, err := e.uc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	assert.Equal(t, "User and business created successfully", res.Message)
	assert.Equal(t, entity.RoleOwner, res.User.Role)
	assert.Equal(t, "owner@shop.com", res.User.Email)
	assert.NotNil(t, res.User.LastLogin)
	require.NotNil(t, res.User.Business)
	assert.Equal(t, "shop", res.User.Business.Subdomain)

	claims, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, res.User.BusinessID, claims.BusinessID)
}

func TestRegister_CamposFaltantes(t *testing.T) {
	e := setup(t)
	in := registerReq()
	in.Subdomain = ""

	_, err := e.uc.Register(context.Background(), in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required fields", verr.Message)
	assert.Contains(t, verr.Required, "subdomain")
}

func TestRegister_EmailDuplicadoNoDejaNegocioHuerfano(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	_, err := e.uc.Register(ctx, registerReq())
	require.NoError(t, err)

	in := registerReq()
	in.Subdomain = "otra"
	_, err = e.uc.Register(ctx, in)
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	b, err := e.repos.Businesses.GetBySubdomain(ctx, "otra")
	require.NoError(t, err)
	assert.Nil(t, b, "el negocio debe revertirse con la transacción")
}

func TestRegister_SubdominioDuplicado(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	_, err := e.uc.Register(ctx, registerReq())
	require.NoError(t, err)

	in := registerReq()
	in.Email = "otro@shop.com"
	_, err = e.uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrSubdomainTaken)
}

func TestLogin_CredencialesUniformes(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	reg, err := e.uc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, err = e.uc.Login(ctx, dto.LoginRequest{Email: "nadie@shop.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = e.uc.Login(ctx, dto.LoginRequest{Email: "owner@shop.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	u, err := e.repos.Users.GetByID(ctx, reg.User.ID)
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, e.repos.Users.Update(ctx, u))
	_, err = e.uc.Login(ctx, dto.LoginRequest{Email: "owner@shop.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_Exitoso(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	_, err := e.uc.Register(ctx, registerReq())
	require.NoError(t, err)

	res, err := e.uc.Login(ctx, dto.LoginRequest{Email: " OWNER@shop.com ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", res.Message)
	assert.NotEmpty(t, res.Token)
	require.NotNil(t, res.User.Business)
	assert.Equal(t, "Shop", res.User.Business.Name)
}

// ─────────────────────────────────────────────────────────────────────────────
// Perfil y contraseña
// ─────────────────────────────────────────────────────────────────────────────

func TestUpdateProfile_EmailEnUso(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	a, err := e.uc.Register(ctx, registerReq())
	require.NoError(t, err)
	in := registerReq()
	in.Email, in.Subdomain = "b@b.com", "b"
	_, err = e.uc.Register(ctx, in)
	require.NoError(t, err)

	email := "b@b.com"
	_, err = e.uc.UpdateProfile(ctx, a.User.ID, dto.UpdateProfileRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrEmailInUse)

	name := "Beatriz"
	res, err := e.uc.UpdateProfile(ctx, a.User.ID, dto.UpdateProfileRequest{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Beatriz", res.User.FirstName)
	assert.Equal(t, "Ruiz", res.User.LastName)
}

func TestChangePassword(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	reg, err := e.uc.Register(ctx, registerReq())
	require.NoError(t, err)

	err = e.uc.ChangePassword(ctx, reg.User.ID, dto.ChangePasswordRequest{CurrentPassword: "mala", NewPassword: "nueva-clave"})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)

	require.NoError(t, e.uc.ChangePassword(ctx, reg.User.ID, dto.ChangePasswordRequest{
		CurrentPassword: "password123", NewPassword: "nueva-clave",
	}))
	_, err = e.uc.Login(ctx, dto.LoginRequest{Email: "owner@shop.com", Password: "nueva-clave"})
	assert.NoError(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_ResuelvePrincipalYCachea(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	reg, err := e.uc.Register(ctx, registerReq())
	require.NoError(t, err)

	p, err := e.uc.Authenticate(ctx, reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, p.UserID)
	assert.Equal(t, entity.RoleOwner, p.Role)
	assert.Contains(t, e.cache.m, reg.User.ID)
}

func TestAuthenticate_TokenInvalido(t *testing.T) {
	e := setup(t)
	_, err := e.uc.Authenticate(context.Background(), "no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	other, err := jwt.Generate("otro-secreto", 1, 1, "test", time.Hour)
	require.NoError(t, err)
	_, err = e.uc.Authenticate(context.Background(), other)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthenticate_UsuarioEliminadoOInactivo(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	reg, err := e.uc.Register(ctx, registerReq())
	require.NoError(t, err)

	u, err := e.repos.Users.GetByID(ctx, reg.User.ID)
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, e.repos.Users.Update(ctx, u))

	_, err = e.uc.Authenticate(ctx, reg.Token)
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)

	require.NoError(t, e.repos.Users.Delete(ctx, reg.User.BusinessID, reg.User.ID))
	delete(e.cache.m, reg.User.ID)
	_, err = e.uc.Authenticate(ctx, reg.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthenticate_FalloDeCacheUsaRepositorio(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	reg, err := e.uc.Register(ctx, registerReq())
	require.NoError(t, err)

	e.cache.failGet = true
	p, err := e.uc.Authenticate(ctx, reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, p.UserID)
}
