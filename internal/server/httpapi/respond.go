package httpapi

import (
	"errors"
	"strconv"

	"github.com/dmitrijs2005/craftstore/internal/logging"
	"github.com/dmitrijs2005/craftstore/internal/server/store"
	"github.com/gofiber/fiber/v2"
)

// errorBody is the {"error": "..."} shape the client reads.
type errorBody struct {
	Error string `json:"error"`
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorBody{Error: msg})
}

// storeFailure maps store sentinels to responses; notFound names the
// missing record.
func storeFailure(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fail(c, fiber.StatusNotFound, notFound)
	case errors.Is(err, store.ErrInsufficientStock):
		return fail(c, fiber.StatusBadRequest, "Stock insuficiente")
	case errors.Is(err, store.ErrInvalidQuantity):
		return fail(c, fiber.StatusBadRequest, "Cantidad inválida")
	default:
		return err
	}
}

func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Id inválido")
	}
	return id, nil
}

func errorHandler(c *fiber.Ctx, err error, logger logging.Logger) error {
	code := fiber.StatusInternalServerError
	msg := "Error interno"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code, msg = fe.Code, fe.Message
	} else {
		logger.Error(c.UserContext(), "handler failed", "path", c.Path(), "err", err)
	}
	return fail(c, code, msg)
}
