package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/craftstore/internal/client/models"
	"github.com/dmitrijs2005/craftstore/internal/client/resource"
)

var categoryNotices = notices{
	loadFailed:   "No se pudieron cargar las categorías",
	createFailed: "No se pudo agregar la categoría",
	updateFailed: "No se pudo actualizar la categoría",
	deleteFailed: "No se pudo eliminar la categoría.",
	created:      "Categoría agregada correctamente.",
	updated:      "Categoría actualizada correctamente.",
	deleted:      "Categoría eliminada correctamente.",
}

func (a *App) categoriesScreen(ctx context.Context, title string) {
	runScreen(ctx, a, screen[models.Category, models.CategoryDraft]{
		title:   title,
		sync:    resource.NewCategorySynchronizer(a.api, a.session, a.logger),
		notices: categoryNotices,
		row: func(c models.Category) string {
			if c.Description == "" {
				return fmt.Sprintf("#%d  %s", c.ID, c.Title)
			}
			return fmt.Sprintf("#%d  %s: %s", c.ID, c.Title, c.Description)
		},
		noun: func(c models.Category) string { return fmt.Sprintf("la categoría %q", c.Title) },
		fill: func(_ context.Context, d models.CategoryDraft, _ bool) (models.CategoryDraft, error) {
			var err error
			if d.Title, err = GetTextDefault(a.reader, "Título", d.Title, a.out); err != nil {
				return d, err
			}
			if d.Description, err = GetTextDefault(a.reader, "Descripción", d.Description, a.out); err != nil {
				return d, err
			}
			return d, nil
		},
	})
}
