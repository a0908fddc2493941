package api

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	swagger "github.com/go-swagno/swagno-fiber/swagger"
	"github.com/moodlens/moodlens/internal/api/docs"
	"github.com/moodlens/moodlens/internal/api/handler"
	"github.com/moodlens/moodlens/internal/api/middleware"
	"github.com/moodlens/moodlens/internal/api/web"
	"github.com/moodlens/moodlens/internal/config"
	"github.com/moodlens/moodlens/internal/database"
)

type Dependencies struct {
	Service   handler.AnalysisService
	DB        *pgxpool.Pool
	UploadDir string
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(cfg *config.Config, logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "MoodLens API",
		// Leave headroom above the raw image limit for multipart framing
		// and base64 expansion of webcam frames.
		BodyLimit: int(cfg.MaxUploadBytes) * 2,
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Swagger documentation
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check endpoints
	healthHandler := handler.NewHealthHandler(dbPinger(r.deps))
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	// Browser front end
	r.app.Get("/", web.Index)

	if r.deps != nil {
		analyzeHandler := handler.NewAnalyzeHandler(r.deps.Service, r.logger)
		predictionsHandler := handler.NewPredictionsHandler(r.deps.Service, r.logger)

		r.app.Post("/analyze", analyzeHandler.Analyze)
		r.app.Get("/predictions", predictionsHandler.List)

		// Stored images, by the filename recorded in the prediction
		r.app.Static("/uploads", r.deps.UploadDir)
	}
}

// dbPinger adapts the pgx pool to the readiness probe; a nil pool (tests)
// makes /ready unconditionally positive.
func dbPinger(deps *Dependencies) handler.Pinger {
	if deps == nil || deps.DB == nil {
		return nil
	}
	return poolPinger{pool: deps.DB}
}

type poolPinger struct {
	pool *pgxpool.Pool
}

func (p poolPinger) Ping(ctx context.Context) error {
	return database.HealthCheck(ctx, p.pool)
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}
