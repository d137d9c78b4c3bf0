package httpapi

import (
	"time"

	"github.com/dmitrijs2005/craftstore/internal/common"
	"github.com/dmitrijs2005/craftstore/internal/logging"
	"github.com/dmitrijs2005/craftstore/internal/server/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUserID = "user_id"
	LocalRole   = "rol"
)

const requestIDHeader = "X-Request-ID"

// AuthMiddleware validates the Bearer token and stores the user id and
// role in c.Locals.
func AuthMiddleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := common.BearerToken(c.Get(common.AuthorizationHeader))
		if !ok {
			return fail(c, fiber.StatusUnauthorized, "Token requerido")
		}
		userID, rol, err := auth.ParseToken(token, secret)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "Token inválido o expirado")
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, rol)
		return c.Next()
	}
}

// RequireRole lets the request through only for the given roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return fail(c, fiber.StatusForbidden, "Acceso denegado")
	}
}

func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}

// requestLogger echoes the caller's request id (or a fresh one) and logs
// one line per request.
func requestLogger(logger logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDHeader, reqID)

		start := time.Now()
		err := c.Next()
		if err != nil {
			// let the error handler set the final status before logging
			_ = c.App().ErrorHandler(c, err)
		}

		logger.Info(c.UserContext(), "request",
			"request_id", reqID,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)
		return nil
	}
}
