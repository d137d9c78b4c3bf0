package httpapi

import (
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/craftstore/internal/logging"
	"github.com/dmitrijs2005/craftstore/internal/server/models"
	"github.com/dmitrijs2005/craftstore/internal/server/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const uploadsPrefix = "/uploads"

type craftHandler struct {
	store     *store.Store
	uploadDir string
	logger    logging.Logger
}

func (h *craftHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Crafts())
}

func (h *craftHandler) Create(c *fiber.Ctx) error {
	craft, err := h.parseForm(c)
	if err != nil {
		return err
	}
	created, err := h.store.CreateCraft(craft)
	if err != nil {
		return storeFailure(c, err, "Categoría no encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update keeps the stored image when the form carries no file.
func (h *craftHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	craft, err := h.parseForm(c)
	if err != nil {
		return err
	}
	craft.ID = id
	updated, err := h.store.UpdateCraft(craft)
	if err != nil {
		return storeFailure(c, err, "Artesanía no encontrada")
	}
	return c.JSON(updated)
}

func (h *craftHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.store.DeleteCraft(id); err != nil {
		return storeFailure(c, err, "Artesanía no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseForm reads the multipart craft form and stores the image part, if
// any, under the upload directory.
func (h *craftHandler) parseForm(c *fiber.Ctx) (models.Craft, error) {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return models.Craft{}, fiber.NewError(fiber.StatusBadRequest, "El título es requerido")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(c.FormValue("price")))
	if err != nil || price.IsNegative() {
		return models.Craft{}, fiber.NewError(fiber.StatusBadRequest, "Precio inválido")
	}

	stock := 0
	if s := strings.TrimSpace(c.FormValue("stock")); s != "" {
		stock, err = strconv.Atoi(s)
		if err != nil || stock < 0 {
			return models.Craft{}, fiber.NewError(fiber.StatusBadRequest, "Stock inválido")
		}
	}

	var categoryID int64
	if s := strings.TrimSpace(c.FormValue("categoryId")); s != "" {
		categoryID, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return models.Craft{}, fiber.NewError(fiber.StatusBadRequest, "Categoría inválida")
		}
	}

	craft := models.Craft{
		Title:       title,
		Description: c.FormValue("description"),
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
	}

	if fh, err := c.FormFile("image"); err == nil {
		craft.Image, err = h.saveImage(c, fh)
		if err != nil {
			return models.Craft{}, err
		}
	}
	return craft, nil
}

func (h *craftHandler) saveImage(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	if err := c.SaveFile(fh, filepath.Join(h.uploadDir, name)); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	h.logger.Debug(c.UserContext(), "image stored", "name", name, "size", fh.Size)
	return path.Join(uploadsPrefix, name), nil
}
