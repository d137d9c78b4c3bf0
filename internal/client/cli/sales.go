package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/craftstore/internal/client/models"
	"github.com/dmitrijs2005/craftstore/internal/client/resource"
)

var saleNotices = notices{
	loadFailed:   "No se pudieron cargar las ventas",
	createFailed: "No se pudo registrar la venta.",
	updateFailed: "No se pudo actualizar la venta.",
	deleteFailed: "No se pudo eliminar la venta.",
	created:      "Venta registrada correctamente.",
	updated:      "Venta actualizada correctamente.",
	deleted:      "Venta eliminada correctamente.",
}

// purchasesScreen lists the user's own sales. The craft list is only used
// as a picker; stock is never adjusted locally.
func (a *App) purchasesScreen(ctx context.Context, title string) {
	crafts, err := a.api.ListCrafts(ctx, a.token())
	if err != nil {
		a.notifyError(ctx, err, "No se pudieron cargar las artesanías.")
	}

	runScreen(ctx, a, screen[models.Sale, models.SaleDraft]{
		title:   title,
		sync:    resource.NewSaleSynchronizer(a.api, a.session, a.logger),
		notices: saleNotices,
		row:     saleRow,
		noun:    func(s models.Sale) string { return fmt.Sprintf("la venta #%d", s.ID) },
		fill: func(_ context.Context, d models.SaleDraft, editing bool) (models.SaleDraft, error) {
			return a.fillSale(d, editing, crafts)
		},
	})
}

func (a *App) salesHistoryScreen(ctx context.Context, title string) {
	runScreen(ctx, a, screen[models.Sale, models.SaleDraft]{
		title:   title,
		sync:    resource.NewSalesHistory(a.api, a.session, a.logger),
		notices: saleNotices,
		row: func(s models.Sale) string {
			return fmt.Sprintf("%s  comprador: %s", saleRow(s), s.BuyerName())
		},
	})
}

func saleRow(s models.Sale) string {
	name := s.CraftName
	if name == "" {
		name = fmt.Sprintf("artesanía #%d", s.CraftID)
	}
	return fmt.Sprintf("#%d  %s  x%d  total $%s", s.ID, name, s.Quantity, s.TotalPrice.StringFixed(2))
}

func (a *App) fillSale(d models.SaleDraft, editing bool, crafts []models.Craft) (models.SaleDraft, error) {
	if !editing {
		if len(crafts) > 0 {
			a.printf("Artesanías:\n")
			for _, c := range crafts {
				a.printf("  %d. %s ($%s, stock %d)\n", c.ID, c.Title, c.Price.StringFixed(2), c.Stock)
			}
		}
		craft, err := GetSimpleText(a.reader, "Artesanía (id)", a.out)
		if err != nil {
			return d, err
		}
		// an empty id stays zero and is rejected by SaleDraft.Validate
		d.CraftID = 0
		if craft = strings.TrimSpace(craft); craft != "" {
			id, err := strconv.ParseInt(craft, 10, 64)
			if err != nil {
				return d, &inputError{msg: fmt.Sprintf("Id de artesanía inválido: %s", craft), err: err}
			}
			d.CraftID = id
		}
	}

	qty, err := GetTextDefault(a.reader, "Cantidad", d.Quantity, a.out)
	if err != nil {
		return d, err
	}
	d.Quantity = qty
	return d, nil
}
