package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/craftstore/internal/client/media"
	"github.com/dmitrijs2005/craftstore/internal/client/models"
	"github.com/dmitrijs2005/craftstore/internal/client/resource"
)

var craftNotices = notices{
	loadFailed:   "No se pudieron cargar las artesanías",
	createFailed: "No se pudo agregar la artesanía",
	updateFailed: "No se pudo actualizar la artesanía",
	deleteFailed: "No se pudo eliminar la artesanía",
	created:      "Artesanía agregada correctamente.",
	updated:      "Artesanía actualizada correctamente.",
	deleted:      "Artesanía eliminada correctamente.",
}

func (a *App) craftsScreen(ctx context.Context, title string) {
	categories, err := a.api.ListCategories(ctx, a.token())
	if err != nil {
		a.notifyError(ctx, err, "No se pudieron cargar las categorías")
	}

	runScreen(ctx, a, screen[models.Craft, models.CraftDraft]{
		title:   title,
		sync:    resource.NewCraftSynchronizer(a.api, a.session, a.api.BaseURL(), a.logger),
		notices: craftNotices,
		row:     a.craftRow,
		noun:    func(c models.Craft) string { return fmt.Sprintf("la artesanía %q", c.Title) },
		fill: func(_ context.Context, d models.CraftDraft, _ bool) (models.CraftDraft, error) {
			return a.fillCraft(d, categories)
		},
	})
}

func (a *App) catalogScreen(ctx context.Context, title string) {
	runScreen(ctx, a, screen[models.Craft, models.CraftDraft]{
		title:   title,
		sync:    resource.NewCatalog(a.api, a.session, a.api.BaseURL(), a.logger),
		notices: craftNotices,
		row:     a.craftRow,
	})
}

func (a *App) craftRow(c models.Craft) string {
	row := fmt.Sprintf("#%d  %s  $%s  stock %d  [%s]", c.ID, c.Title, c.Price.StringFixed(2), c.Stock, c.CategoryTitle())
	if c.Description != "" {
		row += "\n     " + c.Description
	}
	if c.Image != "" {
		row += "\n     imagen: " + media.ResolveURL(a.api.BaseURL(), c.Image)
	}
	return row
}

func (a *App) fillCraft(d models.CraftDraft, categories []models.Category) (models.CraftDraft, error) {
	var err error
	if d.Title, err = GetTextDefault(a.reader, "Título", d.Title, a.out); err != nil {
		return d, err
	}
	if d.Description, err = GetTextDefault(a.reader, "Descripción", d.Description, a.out); err != nil {
		return d, err
	}
	if d.Price, err = GetTextDefault(a.reader, "Precio", d.Price, a.out); err != nil {
		return d, err
	}
	if d.Stock, err = GetTextDefault(a.reader, "Stock", d.Stock, a.out); err != nil {
		return d, err
	}

	if len(categories) > 0 {
		a.printf("Categorías:\n")
		for _, c := range categories {
			a.printf("  %d. %s\n", c.ID, c.Title)
		}
	}
	current := ""
	if d.CategoryID != 0 {
		current = strconv.FormatInt(d.CategoryID, 10)
	}
	category, err := GetTextDefault(a.reader, "Categoría (id, 0 = ninguna)", current, a.out)
	if err != nil {
		return d, err
	}
	if category != "" {
		id, err := strconv.ParseInt(category, 10, 64)
		if err != nil {
			return d, &inputError{msg: fmt.Sprintf("Categoría inválida: %s", category), err: err}
		}
		d.CategoryID = id
	}

	if d.Image, err = GetTextDefault(a.reader, "Imagen (ruta local o URL)", d.Image, a.out); err != nil {
		return d, err
	}
	if media.External(d.Image, a.api.BaseURL()) {
		a.printf("Aviso: la URL externa no se envía; elige un archivo local para cambiar la imagen\n")
	}
	return d, nil
}
