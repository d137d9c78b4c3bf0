package httpapi

import (
	"github.com/dmitrijs2005/craftstore/internal/server/models"
	"github.com/dmitrijs2005/craftstore/internal/server/store"
	"github.com/gofiber/fiber/v2"
)

type saleHandler struct {
	store *store.Store
}

type saleRequest struct {
	CraftID  int64 `json:"craftId"`
	Quantity int   `json:"quantity"`
}

// saleReply wraps create and update answers as {sale}.
type saleReply struct {
	Sale models.Sale `json:"sale"`
}

// owner is the user whose sales the caller may change; administrators may
// change any.
func owner(c *fiber.Ctx) int64 {
	if GetRole(c) == models.RoleAdmin {
		return store.AnyOwner
	}
	return GetUserID(c)
}

func (h *saleHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Sales(GetUserID(c)))
}

func (h *saleHandler) ListAll(c *fiber.Ctx) error {
	return c.JSON(h.store.Sales(store.AnyOwner))
}

func (h *saleHandler) Create(c *fiber.Ctx) error {
	var in saleRequest
	if err := c.BodyParser(&in); err != nil || in.CraftID == 0 {
		return fail(c, fiber.StatusBadRequest, "Artesanía y cantidad son requeridas")
	}
	sale, err := h.store.CreateSale(GetUserID(c), in.CraftID, in.Quantity)
	if err != nil {
		return storeFailure(c, err, "Artesanía no encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(saleReply{Sale: sale})
}

func (h *saleHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in saleRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	sale, err := h.store.UpdateSale(id, owner(c), in.Quantity)
	if err != nil {
		return storeFailure(c, err, "Venta no encontrada")
	}
	return c.JSON(saleReply{Sale: sale})
}

func (h *saleHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.store.DeleteSale(id, owner(c)); err != nil {
		return storeFailure(c, err, "Venta no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
