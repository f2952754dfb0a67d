package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/sketchvault/sketchvault/internal/art"
	"github.com/sketchvault/sketchvault/internal/config"
	"github.com/sketchvault/sketchvault/internal/identity"
	"github.com/sketchvault/sketchvault/internal/middleware"
	"github.com/sketchvault/sketchvault/internal/project"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. A nil DB or Cache
// falls back to in-memory implementations, which development runs and the
// HTTP tests rely on.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}
	app.Use(middleware.Owner())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})

	RegisterHealthRoutes(app, d)

	var identityRepo identity.Repository
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
	}
	identityHandler := identity.NewHandler(identity.NewService(identityRepo))
	app.Post("/signin", middleware.SigninRateLimit(d.Cache, d.Cfg.SigninPerMinute), identityHandler.SignIn)

	var projectRepo project.Repository
	if d.DB != nil {
		projectRepo = project.NewPostgresRepository(d.DB)
	} else {
		projectRepo = project.NewMemoryRepository()
	}
	RegisterProjectRoutes(app, project.NewHandler(project.NewService(projectRepo)))

	var artRepo art.Repository
	if d.DB != nil {
		artRepo = art.NewPostgresRepository(d.DB)
	} else {
		artRepo = art.NewMemoryRepository()
	}
	RegisterArtRoutes(app, art.NewHandler(art.NewService(artRepo)))

	return nil
}
