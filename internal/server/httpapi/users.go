package httpapi

import (
	"errors"

	"github.com/dmitrijs2005/craftstore/internal/server/store"
	"github.com/dmitrijs2005/craftstore/internal/server/users"
	"github.com/gofiber/fiber/v2"
)

type userHandler struct {
	users *users.Service
}

type credentialsRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Password string `json:"password"`
}

// Register answers {success: true}; the client logs in afterwards.
func (h *userHandler) Register(c *fiber.Ctx) error {
	var in credentialsRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	_, err := h.users.Register(c.UserContext(), in.Nombre, in.Telefono, in.Password)
	switch {
	case errors.Is(err, users.ErrValidation):
		return fail(c, fiber.StatusBadRequest, "Nombre, teléfono y contraseña son requeridos")
	case errors.Is(err, users.ErrAlreadyExists):
		return fail(c, fiber.StatusConflict, "El usuario ya existe")
	case err != nil:
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	var in credentialsRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	token, err := h.users.Login(c.UserContext(), in.Nombre, in.Telefono, in.Password)
	if errors.Is(err, users.ErrUnauthorized) {
		return fail(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	u, err := h.users.Get(c.UserContext(), GetUserID(c))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	if err != nil {
		return err
	}
	return c.JSON(u)
}
