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

	_ "github.com/jhoicas/Campus-api/docs"
	"github.com/jhoicas/Campus-api/internal/application/activation"
	"github.com/jhoicas/Campus-api/internal/application/auth"
	"github.com/jhoicas/Campus-api/internal/application/provisioning"
	"github.com/jhoicas/Campus-api/internal/application/settings"
	"github.com/jhoicas/Campus-api/internal/application/tenancy"
	"github.com/jhoicas/Campus-api/internal/infrastructure/cache"
	"github.com/jhoicas/Campus-api/internal/infrastructure/payment"
	infrapdf "github.com/jhoicas/Campus-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Campus-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Campus-api/internal/interfaces/http"
	"github.com/jhoicas/Campus-api/pkg/config"
	"github.com/jhoicas/Campus-api/pkg/logger"
)

// @title        Campus API
// @version      1.0
// @description  Núcleo multi-institución: resolución de host, aprovisionamiento, autenticación y activación.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if cfg.DB.AutoMigrate {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones del esquema public")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	tenantRepo := postgres.NewTenantRepository(pool)
	domainRepo := postgres.NewDomainRepository(pool)
	faultRepo := postgres.NewProvisioningFaultRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché dominio → esquema: opcional, solo si hay Redis configurado.
	var domainCache tenancy.DomainCache
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, resolución sin caché")
		} else {
			defer rdb.Close()
			domainCache = cache.NewRedisDomainCache(rdb, cfg.Tenancy.CacheTTL)
		}
	}
	resolver := tenancy.NewResolver(domainRepo, domainCache, cfg.Tenancy.PublicHosts, log.Component("tenancy"))

	provisionUC := provisioning.NewUseCase(
		txRunner, tenantRepo, domainRepo, userRepo, faultRepo,
		resolver, infrapdf.NewCredentialsSheet(),
		provisioning.Config{
			DomainSuffix:         cfg.Tenancy.DomainSuffix,
			TrialDays:            cfg.Tenancy.TrialDays,
			DefaultAdminPassword: cfg.Tenancy.DefaultAdminPassword,
			BootstrapWindow:      cfg.Tenancy.BootstrapWindow,
		},
		log.Component("provisioning"),
	)

	// Pagos en línea solo con API key del proveedor.
	var provider activation.PaymentProvider
	if cfg.Payment.APIKey != "" {
		provider = payment.NewZenopayClient(cfg.Payment.BaseURL, cfg.Payment.APIKey, cfg.Payment.Timeout)
	}
	activationUC := activation.NewUseCase(txRunner, tenantRepo, provider, activation.Config{
		PremiumDays:     cfg.Tenancy.PremiumDays,
		PremiumAmount:   cfg.Payment.PremiumAmount,
		WebhookURL:      cfg.Payment.WebhookURL,
		ProviderTimeout: cfg.Payment.Timeout,
	}, log.Component("activation"))

	authUC := auth.NewUseCase(userRepo, auth.Config{
		Secret:               cfg.JWT.Secret,
		Issuer:               cfg.JWT.Issuer,
		AccessTTL:            cfg.JWT.AccessTTL,
		RefreshTTL:           cfg.JWT.RefreshTTL,
		DefaultAdminPassword: cfg.Tenancy.DefaultAdminPassword,
	}, log.Component("auth"))

	settingsUC := settings.NewUseCase(settingRepo, log.Component("settings"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Campus API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Resolver:      resolver,
		AuthUC:        authUC,
		ProvisionUC:   provisionUC,
		ActivationUC:  activationUC,
		SettingsUC:    settingsUC,
		WebhookAPIKey: cfg.Payment.WebhookAPIKey,
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
