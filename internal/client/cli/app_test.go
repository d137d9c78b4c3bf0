package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/craftstore/internal/client/client"
	"github.com/dmitrijs2005/craftstore/internal/client/config"
	"github.com/dmitrijs2005/craftstore/internal/client/models"
	"github.com/dmitrijs2005/craftstore/internal/client/session"
	"github.com/dmitrijs2005/craftstore/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noTerminal(t *testing.T) {
	t.Helper()
	old := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = old })
}

func newTestApp(t *testing.T, api *fakeAPI, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	noTerminal(t)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	a := newApp(cfg, logging.Nop(), api, session.NewService(api, logging.Nop()), in, &out)
	return a, &out
}

var (
	admin = &models.User{Nombre: "Rosa", Telefono: "111", Rol: models.RoleAdmin}
	buyer = &models.User{Nombre: "Ana", Telefono: "555", Rol: models.RoleClient}
)

func TestLogin_OpaqueTokenLandsOnDashboard(t *testing.T) {
	api := &fakeAPI{token: "abc"}
	a, out := newTestApp(t, api, "login", "Ana", "555", "x")

	a.runREPL(context.Background())

	require.True(t, a.isLoggedIn())
	assert.Equal(t, "abc", a.token())
	assert.Contains(t, out.String(), "Hola, Ana")
}

func TestLogin_Failure(t *testing.T) {
	api := &fakeAPI{}
	a, out := newTestApp(t, api, "login", "Ana", "555", "x", "categories", "exit")

	a.runREPL(context.Background())

	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Error: Credenciales inválidas")
	assert.Contains(t, out.String(), "Comando desconocido: categories")
	assert.Contains(t, out.String(), "¡Hasta pronto!")
}

func TestRegister_SuccessOnlyReturnsToLogin(t *testing.T) {
	api := &fakeAPI{register: client.RegisterReply{Success: true}}
	a, out := newTestApp(t, api, "register", "Ana", "555", "x")

	a.runREPL(context.Background())

	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Inicia sesión con 'login'")
}

func TestRegister_TokenLogsIn(t *testing.T) {
	api := &fakeAPI{register: client.RegisterReply{Token: "t", Success: true}, me: buyer}
	a, out := newTestApp(t, api, "register", "Ana", "555", "x")

	a.runREPL(context.Background())

	assert.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Ver Artesanías")
	assert.NotContains(t, out.String(), "Categorías")
}

func TestDashboard_ClientCannotOpenAdminScreens(t *testing.T) {
	api := &fakeAPI{token: "abc", me: buyer}
	a, out := newTestApp(t, api, "login", "Ana", "555", "x", "categories", "crafts", "exit")

	a.runREPL(context.Background())

	assert.Contains(t, out.String(), "No tienes acceso a Categorías")
	assert.Contains(t, out.String(), "No tienes acceso a Artesanías")
}

func TestCategoriesScreen_Add(t *testing.T) {
	api := &fakeAPI{token: "abc", me: admin}
	a, out := newTestApp(t, api,
		"login", "Rosa", "111", "x",
		"categories",
		"add", "Barro", "Piezas de barro",
		"back",
		"logout",
	)

	a.runREPL(context.Background())

	require.Len(t, api.categories, 1)
	assert.Equal(t, "Barro", api.categories[0].Title)
	assert.Contains(t, out.String(), "Éxito: Categoría agregada correctamente.")
	assert.Contains(t, out.String(), "#101  Barro: Piezas de barro")
	assert.Contains(t, out.String(), "Sesión cerrada")
	assert.False(t, a.isLoggedIn())
}

func TestCraftsScreen_AddEditDelete(t *testing.T) {
	api := &fakeAPI{token: "abc", me: admin, categories: []models.Category{{ID: 1, Title: "Barro"}}}
	a, out := newTestApp(t, api,
		"login", "Rosa", "111", "x",
		"1",
		"add", "Vase", "", "10", "2", "1", "",
		"edit 101", "Jarrón", "", "", "", "", "",
		"delete 101", "n",
		"delete 101", "s",
		"back",
	)

	a.runREPL(context.Background())

	s := out.String()
	assert.Contains(t, s, "== Artesanías ==")
	assert.Contains(t, s, "Artesanía agregada correctamente.")
	assert.Contains(t, s, "Título [Vase]")
	assert.Contains(t, s, "Artesanía actualizada correctamente.")
	assert.Contains(t, s, "Artesanía eliminada correctamente.")
	assert.Empty(t, api.crafts)
	assert.Nil(t, api.lastImage)
}

func TestCraftsScreen_ServerMessageOnFailure(t *testing.T) {
	api := &fakeAPI{token: "abc", me: admin}
	a, out := newTestApp(t, api,
		"login", "Rosa", "111", "x",
		"crafts",
		"add", "Vase", "", "diez", "2", "", "",
		"back",
	)

	a.runREPL(context.Background())

	assert.Contains(t, out.String(), "Error: Precio inválido")
	assert.Empty(t, api.crafts)
}

func TestPurchasesScreen_MissingCraft(t *testing.T) {
	api := &fakeAPI{token: "abc", me: buyer, crafts: []models.Craft{{ID: 7, Title: "Vase", Price: decimal.NewFromInt(10), Stock: 3}}}
	a, out := newTestApp(t, api,
		"login", "Ana", "555", "x",
		"purchases",
		"add", "", "2",
		"add", "7", "2",
		"back",
	)

	a.runREPL(context.Background())

	s := out.String()
	assert.Contains(t, s, "Error: "+missingFieldText)
	assert.Contains(t, s, "Venta registrada correctamente.")
	assert.Contains(t, s, "7. Vase ($10.00, stock 3)")
	require.Len(t, api.sales, 1)
	assert.Equal(t, 3, api.crafts[0].Stock)
}

func TestPurchasesScreen_InvalidCraftID(t *testing.T) {
	api := &fakeAPI{token: "abc", me: buyer, crafts: []models.Craft{{ID: 7, Title: "Vase", Price: decimal.NewFromInt(10), Stock: 3}}}
	a, out := newTestApp(t, api,
		"login", "Ana", "555", "x",
		"purchases",
		"add", "abc",
		"back",
	)

	a.runREPL(context.Background())

	s := out.String()
	assert.Contains(t, s, "Error: Id de artesanía inválido: abc")
	assert.NotContains(t, s, missingFieldText)
	assert.Empty(t, api.sales)
}

func TestCraftsScreen_ExternalImageNotice(t *testing.T) {
	api := &fakeAPI{token: "abc", me: admin}
	a, out := newTestApp(t, api,
		"login", "Rosa", "111", "x",
		"crafts",
		"add", "Vase", "", "10", "2", "", "https://cdn.example.com/vase.png",
		"back",
	)

	a.runREPL(context.Background())

	s := out.String()
	assert.Contains(t, s, "Aviso: la URL externa no se envía")
	assert.Contains(t, s, "Artesanía agregada correctamente.")
	assert.Nil(t, api.lastImage)
}

func TestCraftsScreen_InvalidCategory(t *testing.T) {
	api := &fakeAPI{token: "abc", me: admin}
	a, out := newTestApp(t, api,
		"login", "Rosa", "111", "x",
		"crafts",
		"add", "Vase", "", "10", "2", "barro",
		"back",
	)

	a.runREPL(context.Background())

	assert.Contains(t, out.String(), "Error: Categoría inválida: barro")
	assert.Empty(t, api.crafts)
}

func TestSalesHistory_ReadOnly(t *testing.T) {
	api := &fakeAPI{token: "abc", me: admin, sales: []models.Sale{{ID: 1, CraftName: "Vase", Quantity: 2, TotalPrice: decimal.NewFromInt(20), User: &models.Buyer{Nombre: "Ana"}}}}
	a, out := newTestApp(t, api,
		"login", "Rosa", "111", "x",
		"sales-history",
		"delete 1",
		"back",
	)

	a.runREPL(context.Background())

	s := out.String()
	assert.Contains(t, s, "#1  Vase  x2  total $20.00  comprador: Ana")
	assert.Contains(t, s, "Esta sección es de solo lectura")
	assert.Len(t, api.sales, 1)
}

func TestRun_LogsOutOnExit(t *testing.T) {
	api := &fakeAPI{token: "abc", me: admin}
	a, out := newTestApp(t, api, "login", "Rosa", "111", "x", "exit")

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Bienvenido")
	assert.False(t, a.isLoggedIn())
}
