package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lastonitas/cerveceria-api/internal/application/auth"
	"github.com/lastonitas/cerveceria-api/internal/application/compras"
	"github.com/lastonitas/cerveceria-api/internal/application/cuentas"
	"github.com/lastonitas/cerveceria-api/internal/application/usecase"
	infrapdf "github.com/lastonitas/cerveceria-api/internal/infrastructure/pdf"
	"github.com/lastonitas/cerveceria-api/internal/infrastructure/postgres"
	httpRouter "github.com/lastonitas/cerveceria-api/internal/interfaces/http"
	"github.com/lastonitas/cerveceria-api/pkg/config"
	"github.com/lastonitas/cerveceria-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	cuentaRepo := postgres.NewCuentaRepository(pool)
	mesaRepo := postgres.NewMesaRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	promocionRepo := postgres.NewPromocionRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reciboGenerator := infrapdf.NewMarotoReciboGenerator(cfg.App.Name)

	cuentaUC := cuentas.NewUseCase(txRunner, cuentaRepo, mesaRepo, reciboGenerator)
	compraUC := compras.NewUseCase(txRunner, compraRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	mesaUC := usecase.NewMesaUseCase(mesaRepo, cuentaRepo)
	promocionUC := usecase.NewPromocionUseCase(promocionRepo, productoRepo)
	gastoUC := usecase.NewGastoUseCase(txRunner, gastoRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cervecería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CuentaUC:    cuentaUC,
		CompraUC:    compraUC,
		ProductoUC:  productoUC,
		MesaUC:      mesaUC,
		PromocionUC: promocionUC,
		GastoUC:     gastoUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
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
