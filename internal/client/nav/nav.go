// Package nav lists the dashboard destinations each role may open.
package nav

import (
	"slices"

	"github.com/dmitrijs2005/craftstore/internal/client/models"
)

// Destination names.
const (
	Crafts       = "crafts"
	Categories   = "categories"
	Catalog      = "catalog"
	Purchases    = "purchases"
	SalesHistory = "sales-history"
)

// Destination is one entry of the dashboard menu.
type Destination struct {
	Name  string
	Title string
	Roles []models.Role
}

var table = []Destination{
	{Name: Crafts, Title: "Artesanías", Roles: []models.Role{models.RoleAdmin}},
	{Name: Categories, Title: "Categorías", Roles: []models.Role{models.RoleAdmin}},
	{Name: Catalog, Title: "Ver Artesanías", Roles: []models.Role{models.RoleAdmin, models.RoleClient}},
	{Name: Purchases, Title: "Ventas (Tus compras)", Roles: []models.Role{models.RoleAdmin, models.RoleClient}},
	{Name: SalesHistory, Title: "Historial de ventas", Roles: []models.Role{models.RoleAdmin}},
}

// All returns every destination in menu order.
func All() []Destination {
	return slices.Clone(table)
}

// Visible returns the destinations role may open, in menu order.
func Visible(role models.Role) []Destination {
	var out []Destination
	for _, d := range table {
		if slices.Contains(d.Roles, role) {
			out = append(out, d)
		}
	}
	return out
}

// Allowed reports whether role may open the destination called name.
func Allowed(role models.Role, name string) bool {
	d, ok := Lookup(name)
	return ok && slices.Contains(d.Roles, role)
}

// Lookup finds a destination by name.
func Lookup(name string) (Destination, bool) {
	for _, d := range table {
		if d.Name == name {
			return d, true
		}
	}
	return Destination{}, false
}
