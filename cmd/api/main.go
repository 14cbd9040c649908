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

	"github.com/tu-usuario/keg-tracer/internal/application/movements"
	"github.com/tu-usuario/keg-tracer/internal/application/reports"
	"github.com/tu-usuario/keg-tracer/internal/application/usecase"
	"github.com/tu-usuario/keg-tracer/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/keg-tracer/internal/infrastructure/pdf"
	"github.com/tu-usuario/keg-tracer/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/keg-tracer/internal/interfaces/http"
	"github.com/tu-usuario/keg-tracer/pkg/config"
	"github.com/tu-usuario/keg-tracer/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	beerRepo := postgres.NewBeerRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := usecase.NewClientUseCase(clientRepo)
	beerUC := usecase.NewBeerUseCase(beerRepo)
	registerMovementUC := movements.NewRegisterMovementUseCase(
		txRunner, clientRepo, movementRepo, cfg.Business.ConsigneDecimal(),
	)
	reportUC := reports.NewReportUseCase(reportRepo)

	// Catálogo inicial de cervezas; idempotente, solo inserta las que faltan.
	if seeded, err := beerUC.SeedCatalog(); err != nil {
		log.Error().Err(err).Msg("seed del catálogo")
	} else if seeded > 0 {
		log.Info().Int("cervezas", seeded).Msg("catálogo inicial sembrado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Keg Tracer API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegisterMovement: registerMovementUC,
		ClientUC:         clientUC,
		BeerUC:           beerUC,
		ReportUC:         reportUC,
		ExcelExporter:    excel.NewReportExporter(),
		PDFGenerator:     infrapdf.NewMarotoReportGenerator(),
		MetricsEnabled:   cfg.Metrics.Enabled,
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
