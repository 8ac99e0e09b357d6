package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/SmartOps-api/docs"
	"github.com/jhoicas/SmartOps-api/internal/application/analytics"
	"github.com/jhoicas/SmartOps-api/internal/application/auth"
	"github.com/jhoicas/SmartOps-api/internal/application/sales"
	"github.com/jhoicas/SmartOps-api/internal/application/usecase"
	"github.com/jhoicas/SmartOps-api/internal/infrastructure/cache"
	"github.com/jhoicas/SmartOps-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/SmartOps-api/internal/interfaces/http"
	"github.com/jhoicas/SmartOps-api/pkg/config"
	"github.com/jhoicas/SmartOps-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testAPI struct {
	app *fiber.App
}

func newTestAPI(t *testing.T, rl config.RateLimitConfig, openAPI ...byte) *testAPI {
	t.Helper()
	store := memory.New()
	repos := store.Repos()
	tx := memory.NewTxRunner(store)
	analyticsRepo := memory.NewAnalyticsRepo(store)
	hasher := password.NewWithCost(bcrypt.MinCost)
	principalCache := cache.Nop{}

	deps := apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(repos.Users, repos.Businesses, tx, hasher, principalCache,
			auth.JWTConfig{Secret: "test-secret", TTL: time.Hour, Issuer: "test"}, nil),
		BusinessUC:     usecase.NewBusinessUseCase(repos.Businesses),
		UserUC:         usecase.NewUserUseCase(repos.Users, hasher, principalCache, nil),
		InventoryUC:    usecase.NewInventoryUseCase(repos.Inventory),
		SaleUC:         sales.NewSaleUseCase(tx, repos.Sales),
		CustomerUC:     usecase.NewCustomerUseCase(repos.Customers),
		NotificationUC: usecase.NewNotificationUseCase(repos.Notifications),
		ReportUC:       analytics.NewReportUseCase(repos.Reports, analyticsRepo),
		DashboardUC:    analytics.NewDashboardUseCase(analyticsRepo, repos.Businesses),
		Stats:          analyticsRepo,
		StorageDriver:  config.StorageMemory,
		RateLimit:      rl,
	}
	app := apphttp.NewApp(apphttp.ServerConfig{
		AppName:     "smartops-test",
		CORSOrigins: []string{"http://localhost:8080", "https://*.smartops.app"},
		OpenAPI:     openAPI,
	}, nil, deps)
	return &testAPI{app: app}
}

type result struct {
	status int
	header http.Header
	raw    []byte
}

func (r result) object(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(r.raw, &m), "respuesta no es un objeto JSON: %s", r.raw)
	return m
}

func (r result) list(t *testing.T) []any {
	t.Helper()
	var l []any
	require.NoError(t, json.Unmarshal(r.raw, &l), "respuesta no es un array JSON: %s", r.raw)
	return l
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any, headers ...string) result {
	t.Helper()
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			rd = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return result{status: resp.StatusCode, header: resp.Header, raw: raw}
}

// register crea un negocio con su owner y devuelve el token y el id del negocio.
func (a *testAPI) register(t *testing.T, subdomain string) (string, float64) {
	t.Helper()
	res := a.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":        "owner@" + subdomain + ".com",
		"password":     "password123",
		"firstName":    "Ana",
		"lastName":     "Ruiz",
		"businessName": "Shop " + subdomain,
		"subdomain":    subdomain,
	})
	require.Equal(t, fiber.StatusCreated, res.status, string(res.raw))
	body := res.object(t)
	user := body["user"].(map[string]any)
	return body["token"].(string), user["businessId"].(float64)
}

// addUser crea un usuario con el rol indicado y devuelve su token y su id.
func (a *testAPI) addUser(t *testing.T, ownerToken, email, role string) (string, float64) {
	t.Helper()
	res := a.do(t, http.MethodPost, "/api/users", ownerToken, map[string]any{
		"email": email, "password": "password123", "firstName": "Luis", "lastName": "Gómez", "role": role,
	})
	require.Equal(t, fiber.StatusCreated, res.status, string(res.raw))
	id := res.object(t)["user"].(map[string]any)["id"].(float64)

	login := a.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": email, "password": "password123"})
	require.Equal(t, fiber.StatusOK, login.status, string(login.raw))
	return login.object(t)["token"].(string), id
}

func (a *testAPI) createItem(t *testing.T, token string, body map[string]any) map[string]any {
	t.Helper()
	res := a.do(t, http.MethodPost, "/api/inventory", token, body)
	require.Equal(t, fiber.StatusCreated, res.status, string(res.raw))
	return res.object(t)
}

func noLimit() config.RateLimitConfig { return config.RateLimitConfig{} }

// ──────────────────────────────────────────────────────────────────────────────
// Registro y login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaNegocioYOwner(t *testing.T) {
	api := newTestAPI(t, noLimit())

	res := api.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": "owner@shop.com", "password": "password123",
		"firstName": "Ana", "lastName": "Ruiz",
		"businessName": "Shop", "subdomain": "shop",
	})

	require.Equal(t, fiber.StatusCreated, res.status, string(res.raw))
	body := res.object(t)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "owner", user["role"])
	assert.NotContains(t, user, "passwordHash")
	assert.Equal(t, "shop", user["business"].(map[string]any)["subdomain"])
}

func TestRegister_SubdominioDuplicado_Devuelve400(t *testing.T) {
	api := newTestAPI(t, noLimit())
	api.register(t, "shop")

	res := api.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": "otro@shop.com", "password": "password123",
		"firstName": "Eva", "lastName": "Paz",
		"businessName": "Otro", "subdomain": "shop",
	})

	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Equal(t, "Subdomain already taken", res.object(t)["error"])
}

func TestRegister_CamposFaltantes_ListaRequeridos(t *testing.T) {
	api := newTestAPI(t, noLimit())

	res := api.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{"email": "a@b.com"})

	assert.Equal(t, fiber.StatusBadRequest, res.status)
	body := res.object(t)
	assert.Equal(t, "Missing required fields", body["error"])
	assert.Contains(t, body["required"], "subdomain")
}

func TestRegister_BodyInvalido_Devuelve400(t *testing.T) {
	api := newTestAPI(t, noLimit())

	res := api.do(t, http.MethodPost, "/api/auth/register", "", "{no es json")

	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Equal(t, "Invalid request body", res.object(t)["error"])
}

func TestLogin_ErroresUniformes(t *testing.T) {
	api := newTestAPI(t, noLimit())
	api.register(t, "shop")

	wrongPass := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "owner@shop.com", "password": "incorrecta"})
	unknown := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "nadie@shop.com", "password": "password123"})

	assert.Equal(t, fiber.StatusUnauthorized, wrongPass.status)
	assert.Equal(t, fiber.StatusUnauthorized, unknown.status)
	assert.Equal(t, wrongPass.object(t)["error"], unknown.object(t)["error"])
	assert.Equal(t, "Invalid credentials", unknown.object(t)["error"])
}

func TestLogin_RateLimit_Devuelve429(t *testing.T) {
	api := newTestAPI(t, config.RateLimitConfig{RPS: 1, Burst: 2})
	creds := map[string]any{"email": "nadie@shop.com", "password": "password123"}

	for i := 0; i < 2; i++ {
		res := api.do(t, http.MethodPost, "/api/auth/login", "", creds)
		require.Equal(t, fiber.StatusUnauthorized, res.status)
	}
	res := api.do(t, http.MethodPost, "/api/auth/login", "", creds)

	assert.Equal(t, fiber.StatusTooManyRequests, res.status)
	assert.Equal(t, apphttp.CodeRateLimited, res.object(t)["code"])
}

func TestFlujoCompleto_RegistroInventarioVentaYAutoborrado(t *testing.T) {
	api := newTestAPI(t, noLimit())
	reg := map[string]any{
		"email": "a@x.com", "password": "password1", "firstName": "A", "lastName": "B",
		"businessName": "Shop", "subdomain": "shop-1",
	}

	res := api.do(t, http.MethodPost, "/api/auth/register", "", reg)
	require.Equal(t, fiber.StatusCreated, res.status, string(res.raw))
	body := res.object(t)
	token := body["token"].(string)
	user := body["user"].(map[string]any)
	business := user["business"].(map[string]any)
	assert.Equal(t, "shop-1", business["subdomain"])
	assert.Equal(t, "owner", user["role"])
	assert.Equal(t, business["id"], user["businessId"])

	profile := api.do(t, http.MethodGet, "/api/auth/profile", token, nil).object(t)
	assert.Equal(t, user["id"], profile["user"].(map[string]any)["id"])

	dup := api.do(t, http.MethodPost, "/api/auth/register", "", reg)
	assert.Equal(t, fiber.StatusBadRequest, dup.status)
	assert.Equal(t, "Subdomain already taken", dup.object(t)["error"])

	item := api.createItem(t, token, map[string]any{
		"name": "Widget", "sku": "W1", "price": "9.99", "cost": "5", "quantity": "10", "reorderPoint": "2",
	})
	assert.Equal(t, user["businessId"], item["businessId"])
	assert.EqualValues(t, 10, item["quantity"])

	sale := api.do(t, http.MethodPost, "/api/sales", token, map[string]any{
		"items": []map[string]any{{"id": item["id"], "name": "Widget", "quantity": 3, "price": "9.99"}},
		"total": "29.97",
	})
	require.Equal(t, fiber.StatusCreated, sale.status, string(sale.raw))
	assert.EqualValues(t, 29.97, sale.object(t)["total"])

	after := api.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/%v", item["id"]), token, nil).object(t)
	assert.EqualValues(t, 7, after["quantity"])
	assert.EqualValues(t, 3, after["soldCount"])

	self := api.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%v", user["id"]), token, nil)
	assert.Equal(t, fiber.StatusBadRequest, self.status)
	assert.Equal(t, "Cannot delete your own account", self.object(t)["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestProfile_LecturasIdempotentes(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, _ := api.register(t, "shop")

	first := api.do(t, http.MethodGet, "/api/auth/profile", token, nil)
	second := api.do(t, http.MethodGet, "/api/auth/profile", token, nil)

	require.Equal(t, fiber.StatusOK, first.status)
	assert.JSONEq(t, string(first.raw), string(second.raw))
	assert.Equal(t, "owner@shop.com", first.object(t)["user"].(map[string]any)["email"])
}

func TestProfile_SinToken_Devuelve401(t *testing.T) {
	api := newTestAPI(t, noLimit())

	res := api.do(t, http.MethodGet, "/api/auth/profile", "", nil)

	assert.Equal(t, fiber.StatusUnauthorized, res.status)
	assert.Equal(t, "Access token required", res.object(t)["error"])
}

func TestProfile_TokenInvalido_Devuelve403(t *testing.T) {
	api := newTestAPI(t, noLimit())

	res := api.do(t, http.MethodGet, "/api/auth/profile", "no.es.un.jwt", nil)

	assert.Equal(t, fiber.StatusForbidden, res.status)
	assert.Equal(t, "Invalid token", res.object(t)["error"])
}

func TestChangePassword_ActualIncorrecta_Devuelve400(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, _ := api.register(t, "shop")

	res := api.do(t, http.MethodPut, "/api/auth/change-password", token, map[string]any{
		"currentPassword": "incorrecta", "newPassword": "nuevaclave123",
	})

	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Equal(t, "Current password is incorrect", res.object(t)["error"])
}

func TestLogout_Autenticado(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, _ := api.register(t, "shop")

	res := api.do(t, http.MethodPost, "/api/auth/logout", token, nil)

	assert.Equal(t, fiber.StatusOK, res.status)
	assert.Equal(t, "Logged out successfully", res.object(t)["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario y ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_CreaConNumerosEnString(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, businessID := api.register(t, "shop")

	item := api.createItem(t, token, map[string]any{
		"name": "Café", "sku": "CAF-1", "price": "9.99", "quantity": "10", "reorderPoint": "2",
	})

	assert.EqualValues(t, 10, item["quantity"])
	assert.EqualValues(t, 9.99, item["price"])
	assert.Equal(t, businessID, item["businessId"])
	assert.EqualValues(t, 0, item["soldCount"])
}

func TestInventory_SinNombre_Devuelve400ConRequeridos(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, _ := api.register(t, "shop")

	res := api.do(t, http.MethodPost, "/api/inventory", token, map[string]any{"sku": "X"})

	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Contains(t, res.object(t)["required"], "name")
}

func TestInventory_CashierNoPuedeCrear(t *testing.T) {
	api := newTestAPI(t, noLimit())
	owner, _ := api.register(t, "shop")
	cashier, _ := api.addUser(t, owner, "caja@shop.com", "cashier")

	res := api.do(t, http.MethodPost, "/api/inventory", cashier, map[string]any{"name": "Té"})
	list := api.do(t, http.MethodGet, "/api/inventory", cashier, nil)

	assert.Equal(t, fiber.StatusForbidden, res.status)
	assert.Equal(t, "Insufficient permissions", res.object(t)["error"])
	assert.Equal(t, fiber.StatusOK, list.status)
}

func TestInventory_OtroNegocio_Devuelve404(t *testing.T) {
	api := newTestAPI(t, noLimit())
	tokenA, _ := api.register(t, "tienda-a")
	tokenB, _ := api.register(t, "tienda-b")
	item := api.createItem(t, tokenA, map[string]any{"name": "Café", "quantity": 5})
	path := fmt.Sprintf("/api/inventory/%v", item["id"])

	get := api.do(t, http.MethodGet, path, tokenB, nil)
	put := api.do(t, http.MethodPut, path, tokenB, map[string]any{"quantity": 0})
	del := api.do(t, http.MethodDelete, path, tokenB, nil)
	list := api.do(t, http.MethodGet, "/api/inventory", tokenB, nil)

	assert.Equal(t, fiber.StatusNotFound, get.status)
	assert.Equal(t, "Item not found", get.object(t)["error"])
	assert.Equal(t, fiber.StatusNotFound, put.status)
	assert.Equal(t, fiber.StatusNotFound, del.status)
	assert.Empty(t, list.list(t))

	still := api.do(t, http.MethodGet, path, tokenA, nil)
	assert.EqualValues(t, 5, still.object(t)["quantity"])
}

func TestInventory_IDNoNumerico_Devuelve400(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, _ := api.register(t, "shop")

	res := api.do(t, http.MethodGet, "/api/inventory/abc", token, nil)

	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Equal(t, "Invalid id", res.object(t)["error"])
}

func TestInventory_EliminarYListar(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, _ := api.register(t, "shop")
	item := api.createItem(t, token, map[string]any{"name": "Café"})

	del := api.do(t, http.MethodDelete, fmt.Sprintf("/api/inventory/%v", item["id"]), token, nil)

	assert.Equal(t, fiber.StatusOK, del.status)
	assert.Equal(t, "Item deleted successfully", del.object(t)["message"])
	assert.Empty(t, api.do(t, http.MethodGet, "/api/inventory", token, nil).list(t))
}

func TestSales_DescuentaStockYActualizaCliente(t *testing.T) {
	api := newTestAPI(t, noLimit())
	owner, _ := api.register(t, "shop")
	cashier, _ := api.addUser(t, owner, "caja@shop.com", "cashier")
	item := api.createItem(t, owner, map[string]any{"name": "Café", "price": 10, "quantity": 10})
	cust := api.do(t, http.MethodPost, "/api/customers", cashier, map[string]any{"name": "Marta"})
	require.Equal(t, fiber.StatusCreated, cust.status)
	customer := cust.object(t)

	res := api.do(t, http.MethodPost, "/api/sales", cashier, map[string]any{
		"items":         []map[string]any{{"id": item["id"], "quantity": 3, "price": 10}},
		"customerId":    customer["id"],
		"paymentMethod": "card",
		"total":         30,
	})

	require.Equal(t, fiber.StatusCreated, res.status, string(res.raw))
	sale := res.object(t)
	assert.EqualValues(t, 30, sale["total"])
	assert.Equal(t, "card", sale["paymentMethod"])

	after := api.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/%v", item["id"]), owner, nil).object(t)
	assert.EqualValues(t, 7, after["quantity"])
	assert.EqualValues(t, 3, after["soldCount"])

	c := api.do(t, http.MethodGet, fmt.Sprintf("/api/customers/%v", customer["id"]), owner, nil).object(t)
	assert.EqualValues(t, 30, c["totalSpent"])
	assert.EqualValues(t, 1, c["visitCount"])

	assert.Len(t, api.do(t, http.MethodGet, "/api/sales", owner, nil).list(t), 1)
}

func TestSales_StockInsuficiente_NoModificaNada(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, _ := api.register(t, "shop")
	item := api.createItem(t, token, map[string]any{"name": "Café", "quantity": 2})

	res := api.do(t, http.MethodPost, "/api/sales", token, map[string]any{
		"items": []map[string]any{{"id": item["id"], "quantity": 5, "price": 1}},
		"total": 5,
	})

	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Equal(t, "Insufficient stock", res.object(t)["error"])
	after := api.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/%v", item["id"]), token, nil).object(t)
	assert.EqualValues(t, 2, after["quantity"])
	assert.Empty(t, api.do(t, http.MethodGet, "/api/sales", token, nil).list(t))
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios y negocio
// ──────────────────────────────────────────────────────────────────────────────

func TestUsers_OwnerNoPuedeEliminarse(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, _ := api.register(t, "shop")
	profile := api.do(t, http.MethodGet, "/api/auth/profile", token, nil).object(t)
	ownerID := profile["user"].(map[string]any)["id"]

	res := api.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%v", ownerID), token, nil)

	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Equal(t, "Cannot delete your own account", res.object(t)["error"])
}

func TestUsers_EliminarUsuarioDeOtroNegocio_Devuelve404(t *testing.T) {
	api := newTestAPI(t, noLimit())
	ownerA, _ := api.register(t, "tienda-a")
	ownerB, _ := api.register(t, "tienda-b")
	_, cashierID := api.addUser(t, ownerA, "caja@a.com", "cashier")

	res := api.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%v", cashierID), ownerB, nil)

	assert.Equal(t, fiber.StatusNotFound, res.status)
	assert.Equal(t, "User not found", res.object(t)["error"])
}

func TestUsers_DesactivadoPierdeAcceso(t *testing.T) {
	api := newTestAPI(t, noLimit())
	owner, _ := api.register(t, "shop")
	cashier, cashierID := api.addUser(t, owner, "caja@shop.com", "cashier")

	upd := api.do(t, http.MethodPut, fmt.Sprintf("/api/users/%v", cashierID), owner, map[string]any{"isActive": false})
	require.Equal(t, fiber.StatusOK, upd.status, string(upd.raw))

	res := api.do(t, http.MethodGet, "/api/inventory", cashier, nil)
	assert.Equal(t, fiber.StatusForbidden, res.status)
	assert.Equal(t, "Account is inactive", res.object(t)["error"])
}

func TestUsers_ManagerListaPeroNoCrea(t *testing.T) {
	api := newTestAPI(t, noLimit())
	owner, _ := api.register(t, "shop")
	manager, _ := api.addUser(t, owner, "gerente@shop.com", "manager")

	list := api.do(t, http.MethodGet, "/api/users", manager, nil)
	create := api.do(t, http.MethodPost, "/api/users", manager, map[string]any{
		"email": "x@shop.com", "password": "password123", "firstName": "X", "lastName": "Y",
	})

	require.Equal(t, fiber.StatusOK, list.status)
	assert.Len(t, list.object(t)["users"], 2)
	assert.Equal(t, fiber.StatusForbidden, create.status)
}

func TestBusiness_ActualizacionParcial(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, _ := api.register(t, "shop")

	res := api.do(t, http.MethodPut, "/api/business", token, map[string]any{"taxRate": 0, "currency": "eur"})

	require.Equal(t, fiber.StatusOK, res.status, string(res.raw))
	b := res.object(t)["business"].(map[string]any)
	assert.Equal(t, "EUR", b["currency"])
	assert.EqualValues(t, 0, b["taxRate"])
	assert.Equal(t, "Shop shop", b["name"])

	settings := api.do(t, http.MethodGet, "/api/settings", token, nil).object(t)
	assert.Equal(t, "EUR", settings["currency"])
}

func TestBusiness_IsActiveNoEsEditable(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, _ := api.register(t, "shop")

	for _, path := range []string{"/api/business", "/api/settings"} {
		res := api.do(t, http.MethodPut, path, token, map[string]any{"isActive": false, "phone": "555-0100"})
		require.Equal(t, fiber.StatusOK, res.status, string(res.raw))
	}

	b := api.do(t, http.MethodGet, "/api/business", token, nil).object(t)["business"].(map[string]any)
	assert.Equal(t, true, b["isActive"])
	assert.Equal(t, "555-0100", b["phone"])

	login := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "owner@shop.com", "password": "password123"})
	assert.Equal(t, fiber.StatusOK, login.status)
	api.createItem(t, token, map[string]any{"name": "Café"})
}

func TestBusiness_EmailInvalido_Devuelve400(t *testing.T) {
	api := newTestAPI(t, noLimit())
	token, _ := api.register(t, "shop")

	res := api.do(t, http.MethodPut, "/api/business", token, map[string]any{"email": "not-an-email"})

	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Equal(t, "Invalid email address", res.object(t)["error"])
	b := api.do(t, http.MethodGet, "/api/business", token, nil).object(t)["business"].(map[string]any)
	assert.Equal(t, "", b["email"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones, reportes y analítica
// ──────────────────────────────────────────────────────────────────────────────

func TestNotifications_CrearYMarcarLeida(t *testing.T) {
	api := newTestAPI(t, noLimit())
	owner, _ := api.register(t, "shop")
	cashier, _ := api.addUser(t, owner, "caja@shop.com", "cashier")

	denied := api.do(t, http.MethodPost, "/api/notifications", cashier, map[string]any{"title": "T", "message": "M"})
	assert.Equal(t, fiber.StatusForbidden, denied.status)

	created := api.do(t, http.MethodPost, "/api/notifications", owner, map[string]any{"title": "Stock", "message": "Revisar café"})
	require.Equal(t, fiber.StatusCreated, created.status, string(created.raw))
	n := created.object(t)
	assert.Equal(t, "info", n["type"])
	assert.Equal(t, false, n["isRead"])

	read := api.do(t, http.MethodPut, fmt.Sprintf("/api/notifications/%v/read", n["id"]), cashier, nil)
	require.Equal(t, fiber.StatusOK, read.status)
	assert.Equal(t, true, read.object(t)["isRead"])
}

func TestReports_SoloOwnerOManager(t *testing.T) {
	api := newTestAPI(t, noLimit())
	owner, _ := api.register(t, "shop")
	cashier, _ := api.addUser(t, owner, "caja@shop.com", "cashier")
	api.createItem(t, owner, map[string]any{"name": "Café", "quantity": 4, "cost": 2})

	denied := api.do(t, http.MethodGet, "/api/reports", cashier, nil)
	res := api.do(t, http.MethodPost, "/api/reports", owner, map[string]any{"name": "Stock", "type": "inventory"})

	assert.Equal(t, fiber.StatusForbidden, denied.status)
	require.Equal(t, fiber.StatusCreated, res.status, string(res.raw))
	report := res.object(t)
	assert.Equal(t, "ready", report["status"])
	assert.NotNil(t, report["data"])
}

func TestAnalytics_YDashboard(t *testing.T) {
	api := newTestAPI(t, noLimit())
	owner, _ := api.register(t, "shop")
	cashier, _ := api.addUser(t, owner, "caja@shop.com", "cashier")

	assert.Equal(t, fiber.StatusForbidden, api.do(t, http.MethodGet, "/api/analytics", cashier, nil).status)
	assert.Equal(t, fiber.StatusOK, api.do(t, http.MethodGet, "/api/analytics", owner, nil).status)
	assert.Equal(t, fiber.StatusOK, api.do(t, http.MethodGet, "/api/dashboard/stats", cashier, nil).status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Plataforma
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_IncluyeConteos(t *testing.T) {
	api := newTestAPI(t, noLimit())
	api.register(t, "shop")

	res := api.do(t, http.MethodGet, "/api/health", "", nil)

	require.Equal(t, fiber.StatusOK, res.status)
	body := res.object(t)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "memory", body["storage"])
	counts := body["counts"].(map[string]any)
	assert.EqualValues(t, 1, counts["businesses"])
	assert.EqualValues(t, 1, counts["users"])
	assert.NotEmpty(t, res.header.Get("X-Request-ID"))
}

func TestInfo_ListaEndpoints(t *testing.T) {
	api := newTestAPI(t, noLimit())

	body := api.do(t, http.MethodGet, "/api", "", nil).object(t)

	assert.Equal(t, apphttp.APIVersion, body["version"])
	assert.Contains(t, body["endpoints"], "inventory")
}

func TestRutaDesconocida_Devuelve404(t *testing.T) {
	api := newTestAPI(t, noLimit())

	for _, path := range []string{"/api/no-existe", "/otra"} {
		res := api.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusNotFound, res.status, path)
		assert.Equal(t, "Route not found", res.object(t)["error"], path)
	}
}

func TestOpenAPI_SirveDocumento(t *testing.T) {
	api := newTestAPI(t, noLimit(), []byte(docs.SwaggerInfo.ReadDoc())...)

	res := api.do(t, http.MethodGet, "/api/docs/openapi.json", "", nil)

	require.Equal(t, fiber.StatusOK, res.status)
	assert.Equal(t, "SmartOps API", res.object(t)["info"].(map[string]any)["title"])
}

func TestOpenAPI_DesactivadoSinDocumento(t *testing.T) {
	api := newTestAPI(t, noLimit())

	res := api.do(t, http.MethodGet, "/api/docs/openapi.json", "", nil)

	assert.Equal(t, fiber.StatusNotFound, res.status)
}

func TestMetrics_ExponeContadores(t *testing.T) {
	api := newTestAPI(t, noLimit())
	api.do(t, http.MethodGet, "/api/health", "", nil)

	res := api.do(t, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, fiber.StatusOK, res.status)
	assert.Contains(t, string(res.raw), "http_requests_total")
}

func TestRequestID_SeReutiliza(t *testing.T) {
	api := newTestAPI(t, noLimit())

	res := api.do(t, http.MethodGet, "/api/health", "", nil, "X-Request-ID", "req-123")

	assert.Equal(t, "req-123", res.header.Get("X-Request-ID"))
}

// ──────────────────────────────────────────────────────────────────────────────
// CORS
// ──────────────────────────────────────────────────────────────────────────────

func TestCORS_OrigenPermitidoYComodin(t *testing.T) {
	api := newTestAPI(t, noLimit())

	for _, origin := range []string{"http://localhost:8080", "https://demo.smartops.app"} {
		res := api.do(t, http.MethodOptions, "/api/inventory", "", nil,
			"Origin", origin, "Access-Control-Request-Method", "GET")
		assert.Equal(t, fiber.StatusNoContent, res.status, origin)
		assert.Equal(t, origin, res.header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", res.header.Get("Access-Control-Allow-Credentials"))
	}
}

func TestCORS_OrigenNoPermitido(t *testing.T) {
	api := newTestAPI(t, noLimit())

	preflight := api.do(t, http.MethodOptions, "/api/inventory", "", nil, "Origin", "https://evil.com")
	simple := api.do(t, http.MethodGet, "/api/health", "", nil, "Origin", "https://smartops.app")

	assert.Equal(t, fiber.StatusForbidden, preflight.status)
	assert.Empty(t, simple.header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, fiber.StatusOK, simple.status)
}
