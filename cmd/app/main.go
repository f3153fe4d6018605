package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/wichananm65/social-graph-backend/internal/auth"
	"github.com/wichananm65/social-graph-backend/internal/config"
	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/gql"
	"github.com/wichananm65/social-graph-backend/internal/logger"
	"github.com/wichananm65/social-graph-backend/internal/membertype"
	"github.com/wichananm65/social-graph-backend/internal/post"
	"github.com/wichananm65/social-graph-backend/internal/profile"
	"github.com/wichananm65/social-graph-backend/internal/service"
	"github.com/wichananm65/social-graph-backend/internal/store"
	"github.com/wichananm65/social-graph-backend/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	app, err := newApp(cfg, log)
	if err != nil {
		log.Fatal("failed to build app", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening",
			zap.String("addr", cfg.Addr),
			zap.String("env", cfg.Env),
			zap.Bool("auth", cfg.AuthEnabled()),
		)
		if err := app.Listen(cfg.Addr); err != nil {
			log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}

// newApp wires the store, the service and every transport adapter.
func newApp(cfg config.Config, log *zap.Logger) (*fiber.App, error) {
	st := store.New()
	if cfg.SeedMemberTypes {
		if err := st.SeedMemberTypes(domain.DefaultMemberTypes()); err != nil {
			return nil, fmt.Errorf("seed member types: %w", err)
		}
	}
	svc := service.New(st,
		service.WithLogger(log.Named("service")),
		service.WithCascadeWorkers(cfg.CascadeWorkers),
	)

	gqlHandler, err := gql.NewHandler(svc, log.Named("graphql"))
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "social-graph-backend",
		Immutable:    true,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	})
	app.Use(recover.New())
	app.Use(logger.Middleware(log))
	setupCORS(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if cfg.AuthEnabled() {
		app.Use(auth.Middleware(cfg.JWTSecret))
	}

	user.NewHandler(svc).RegisterRoutes(app)
	profile.NewHandler(svc).RegisterRoutes(app)
	post.NewHandler(svc).RegisterRoutes(app)
	membertype.NewHandler(svc).RegisterRoutes(app)
	gqlHandler.RegisterRoutes(app)

	return app, nil
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}
