package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/barangay-poblacion/console/internal/config"
	"github.com/barangay-poblacion/console/internal/document"
	"github.com/barangay-poblacion/console/internal/infra/cache"
	"github.com/barangay-poblacion/console/internal/infra/database"
	"github.com/barangay-poblacion/console/internal/infra/repository"
	"github.com/barangay-poblacion/console/internal/interface/rest"
	"github.com/barangay-poblacion/console/internal/metrics"
	"github.com/barangay-poblacion/console/internal/observability"
	"github.com/barangay-poblacion/console/internal/service"
	"github.com/barangay-poblacion/console/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	if conf.Server.EnableTrace {
		shutdown, err := observability.SetupTracing(ctx, conf.Server.TraceEndpoint, "brgyd")
		if err != nil {
			slog.Error("Failed to setup tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdown(ctx)
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		slog.Error("Failed to connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := database.MigratePostgres(db); err != nil {
		slog.Error("Failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	certRepo := repository.NewCertificateRepository(db)
	residentRepo := repository.NewResidentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	store := cache.NewStore()
	cachedCerts := cache.NewCertificates(store, certRepo)
	cachedResidents := cache.NewResidents(store, residentRepo)

	signal := service.NewSignalService(nil)
	if conf.Server.RedisAddr != "" {
		rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
		signal = service.NewSignalService(rdb)
		go signal.Listen(ctx)
	}

	pages := document.NewPageCache(nil)
	if conf.Server.MemcachedAddr != "" {
		pages = document.NewPageCache(database.NewMemcached(conf.Server.MemcachedAddr))
	}

	m := metrics.New()

	certUsecase := usecase.NewCertificateUsecase(cachedCerts, cachedResidents, store, signal, m, uuid.NewString)
	residentUsecase := usecase.NewResidentUsecase(cachedResidents)
	settingsUsecase := usecase.NewSettingsUsecase(settingsRepo)

	handler := rest.NewHandler(certUsecase, residentUsecase, settingsUsecase, signal, pages)

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("brgyd"))
	}

	handler.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}
