// Package httpapi exposes the storefront REST API over fiber.
package httpapi

import (
	"github.com/dmitrijs2005/craftstore/internal/logging"
	"github.com/dmitrijs2005/craftstore/internal/server/models"
	"github.com/dmitrijs2005/craftstore/internal/server/store"
	"github.com/dmitrijs2005/craftstore/internal/server/users"
	"github.com/gofiber/fiber/v2"
)

// Deps are the collaborators of the handlers.
type Deps struct {
	Users     *users.Service
	Store     *store.Store
	Logger    logging.Logger
	JWTSecret []byte
	// UploadDir is where craft images are written and served from.
	UploadDir string
}

// NewApp returns a fiber app with every route registered.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "craftstore",
		DisableStartupMessage: true,
		BodyLimit:             10 << 20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return errorHandler(c, err, deps.Logger)
		},
	})
	app.Use(requestLogger(deps.Logger))
	Router(app, deps)
	return app
}

func Router(app *fiber.App, deps Deps) {
	app.Static(uploadsPrefix, deps.UploadDir)

	api := app.Group("/api")

	authn := AuthMiddleware(deps.JWTSecret)
	admin := RequireRole(models.RoleAdmin)

	uh := &userHandler{users: deps.Users}
	usersGroup := api.Group("/users")
	usersGroup.Post("/register", uh.Register)
	usersGroup.Post("/login", uh.Login)
	usersGroup.Get("/me", authn, uh.Me)

	ch := &craftHandler{store: deps.Store, uploadDir: deps.UploadDir, logger: deps.Logger}
	crafts := api.Group("/crafts", authn)
	crafts.Get("/", ch.List)
	crafts.Post("/", admin, ch.Create)
	crafts.Put("/:id", admin, ch.Update)
	crafts.Delete("/:id", admin, ch.Delete)

	gh := &categoryHandler{store: deps.Store}
	categories := api.Group("/categories", authn)
	categories.Get("/", gh.List)
	categories.Post("/", admin, gh.Create)
	categories.Put("/:id", admin, gh.Update)
	categories.Delete("/:id", admin, gh.Delete)

	sh := &saleHandler{store: deps.Store}
	sales := api.Group("/sales", authn)
	sales.Get("/", sh.List)
	sales.Get("/all", admin, sh.ListAll)
	sales.Post("/", sh.Create)
	sales.Put("/:id", sh.Update)
	sales.Delete("/:id", sh.Delete)
}
