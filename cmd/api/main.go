package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/agisales/proposals-api/internal/application/analytics"
	"github.com/agisales/proposals-api/internal/application/auth"
	"github.com/agisales/proposals-api/internal/application/proposal"
	"github.com/agisales/proposals-api/internal/domain/repository"
	"github.com/agisales/proposals-api/internal/infrastructure/kvstore"
	"github.com/agisales/proposals-api/internal/infrastructure/mockstore"
	infrapdf "github.com/agisales/proposals-api/internal/infrastructure/pdf"
	"github.com/agisales/proposals-api/internal/infrastructure/postgres"
	httpRouter "github.com/agisales/proposals-api/internal/interfaces/http"
	"github.com/agisales/proposals-api/pkg/config"
	"github.com/agisales/proposals-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// La elección mock/real vive solo aquí: los use cases reciben los puertos
	// ya resueltos y no saben contra qué backend hablan.
	var (
		proposalRepo repository.ProposalRepository
		users        repository.UserDirectory
		store        kvstore.Store
	)

	switch cfg.Storage.Driver {
	case config.DriverLocal:
		store = kvstore.NewFileStore(cfg.Storage.Dir, cfg.Storage.Namespace, log)
		proposalRepo = mockstore.NewProposalRepository(store, log)
		users, err = mockstore.NewUserDirectory()
		if err != nil {
			log.Fatal().Err(err).Msg("directorio de usuarios mock")
		}

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.Timeout,
			ReadTimeout:  cfg.Redis.Timeout,
			WriteTimeout: cfg.Redis.Timeout,
		})
		store, err = kvstore.NewRedisStore(ctx, client, cfg.Storage.Namespace, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		proposalRepo = mockstore.NewProposalRepository(store, log)
		users, err = mockstore.NewUserDirectory()
		if err != nil {
			log.Fatal().Err(err).Msg("directorio de usuarios mock")
		}

	case config.DriverPostgres:
		if err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.Storage.MigrationsDir); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		pool, perr := postgres.NewPool(ctx, cfg.DB)
		if perr != nil {
			log.Fatal().Err(perr).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		proposalRepo = postgres.NewProposalRepository(pool)
		users = postgres.NewUserRepository(pool)
		// La sesión sigue viviendo en el kvstore también en modo postgres.
		store = kvstore.NewFileStore(cfg.Storage.Dir, cfg.Storage.Namespace, log)
	}

	sessions := mockstore.NewSessionStore(store)

	authUC := auth.NewAuthUseCase(users, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	proposalUC := proposal.NewProposalUseCase(proposalRepo)
	pdfUC := proposal.NewPDFUseCase(proposalRepo, infrapdf.NewMarotoPDFGenerator())
	metricsUC := analytics.NewMetricsUseCase(proposalRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AgiSales Proposals API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProposalUC:  proposalUC,
		ProposalPDF: pdfUC,
		MetricsUC:   metricsUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
