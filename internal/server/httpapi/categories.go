package httpapi

import (
	"strings"

	"github.com/dmitrijs2005/craftstore/internal/server/models"
	"github.com/dmitrijs2005/craftstore/internal/server/store"
	"github.com/gofiber/fiber/v2"
)

type categoryHandler struct {
	store *store.Store
}

type categoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r categoryRequest) valid() bool {
	return strings.TrimSpace(r.Title) != ""
}

func (h *categoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Categories())
}

func (h *categoryHandler) Create(c *fiber.Ctx) error {
	var in categoryRequest
	if err := c.BodyParser(&in); err != nil || !in.valid() {
		return fail(c, fiber.StatusBadRequest, "El título es requerido")
	}
	created := h.store.CreateCategory(models.Category{Title: in.Title, Description: in.Description})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *categoryHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in categoryRequest
	if err := c.BodyParser(&in); err != nil || !in.valid() {
		return fail(c, fiber.StatusBadRequest, "El título es requerido")
	}
	updated, err := h.store.UpdateCategory(models.Category{ID: id, Title: in.Title, Description: in.Description})
	if err != nil {
		return storeFailure(c, err, "Categoría no encontrada")
	}
	return c.JSON(updated)
}

func (h *categoryHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.store.DeleteCategory(id); err != nil {
		return storeFailure(c, err, "Categoría no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
