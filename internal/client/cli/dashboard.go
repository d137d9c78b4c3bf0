package cli

import (
	"context"

	"github.com/dmitrijs2005/craftstore/internal/client/nav"
)

const welcomeText = `Bienvenido a la tienda de artesanías.
Escribe 'help' para ver los comandos.`

const aboutText = `Tienda de artesanías: catálogo de piezas hechas a mano,
gestión de categorías y registro de ventas.`

func (a *App) showDashboard() {
	a.printf("Hola, %s\n", a.session.User.Nombre)

	visible := nav.Visible(a.session.Role)
	if len(visible) == 0 {
		a.printf("No hay secciones disponibles para tu rol.\n")
		return
	}
	for i, d := range visible {
		a.printf("  %d. %-22s (%s)\n", i+1, d.Title, d.Name)
	}
}

// open runs the screen for name if the current role may see it.
func (a *App) open(ctx context.Context, name string) {
	d, ok := nav.Lookup(name)
	if !ok {
		a.printf("Comando desconocido: %s\n", name)
		return
	}
	if !nav.Allowed(a.session.Role, name) {
		a.logger.Warn(ctx, "destination not allowed", "destination", name, "rol", string(a.session.Role))
		a.printf("No tienes acceso a %s\n", d.Title)
		return
	}

	switch name {
	case nav.Crafts:
		a.craftsScreen(ctx, d.Title)
	case nav.Categories:
		a.categoriesScreen(ctx, d.Title)
	case nav.Catalog:
		a.catalogScreen(ctx, d.Title)
	case nav.Purchases:
		a.purchasesScreen(ctx, d.Title)
	case nav.SalesHistory:
		a.salesHistoryScreen(ctx, d.Title)
	}
}
