package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lastonitas/cerveceria-api/internal/application/auth"
	"github.com/lastonitas/cerveceria-api/internal/application/compras"
	"github.com/lastonitas/cerveceria-api/internal/application/cuentas"
	"github.com/lastonitas/cerveceria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CuentaUC    *cuentas.UseCase
	CompraUC    *compras.UseCase
	ProductoUC  *usecase.ProductoUseCase
	MesaUC      *usecase.MesaUseCase
	PromocionUC *usecase.PromocionUseCase
	GastoUC     *usecase.GastoUseCase
	DashboardUC *usecase.DashboardUseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Login y health son públicos; todo lo
// demás exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Usuarios: login público, administración protegida
	usuarioHandler := NewUsuarioHandler(deps.AuthUC)
	usuarios := api.Group("/usuarios")
	usuarios.Post("/login", usuarioHandler.Login)
	usuarios.Post("/logout", usuarioHandler.Logout)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	usuariosAdmin := protected.Group("/usuarios")
	usuariosAdmin.Get("/", usuarioHandler.List)
	usuariosAdmin.Get("/:id", usuarioHandler.GetByID)
	usuariosAdmin.Post("/", RequireRole("admin"), usuarioHandler.Crear)
	usuariosAdmin.Put("/:id", RequireRole("admin"), usuarioHandler.Editar)
	usuariosAdmin.Delete("/:id", RequireRole("admin"), usuarioHandler.Eliminar)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/all", productoHandler.ListTodos)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", productoHandler.Crear)
	productos.Patch("/:id/toggle", productoHandler.Toggle)
	productos.Patch("/:id", productoHandler.Editar)

	// Compras
	comprasGroup := protected.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC)
	comprasGroup.Get("/", compraHandler.List)
	comprasGroup.Get("/:id", compraHandler.GetByID)
	comprasGroup.Post("/", compraHandler.Crear)
	comprasGroup.Patch("/:id/pagar", compraHandler.Pagar)

	// Cuentas (motor de liquidación)
	cuentasGroup := protected.Group("/cuentas")
	cuentaHandler := NewCuentaHandler(deps.CuentaUC)
	cuentasGroup.Get("/", cuentaHandler.ListPendientes)
	cuentasGroup.Get("/historial", cuentaHandler.Historial)
	cuentasGroup.Get("/:id/recibo", cuentaHandler.Recibo)
	cuentasGroup.Get("/:id", cuentaHandler.GetByID)
	cuentasGroup.Post("/", cuentaHandler.Crear)
	cuentasGroup.Patch("/:id/pagar", cuentaHandler.Pagar)
	cuentasGroup.Patch("/:id", cuentaHandler.Editar)

	// Mesas
	mesas := protected.Group("/mesas")
	mesaHandler := NewMesaHandler(deps.MesaUC)
	mesas.Get("/", mesaHandler.List)
	mesas.Get("/:id", mesaHandler.GetByID)
	mesas.Post("/", mesaHandler.Crear)
	mesas.Patch("/:id", mesaHandler.Editar)
	mesas.Delete("/:id", mesaHandler.Eliminar)

	// Promociones
	promociones := protected.Group("/promociones")
	promocionHandler := NewPromocionHandler(deps.PromocionUC)
	promociones.Get("/", promocionHandler.List)
	promociones.Get("/all", promocionHandler.ListTodas)
	promociones.Get("/producto/:producto_id", promocionHandler.ListPorProducto)
	promociones.Get("/:id", promocionHandler.GetByID)
	promociones.Post("/", promocionHandler.Crear)
	promociones.Put("/:id", promocionHandler.Editar)
	promociones.Delete("/:id", promocionHandler.Eliminar)

	// Gastos operativos
	gastos := protected.Group("/gastos-operativos")
	gastoHandler := NewGastoHandler(deps.GastoUC)
	gastos.Get("/", gastoHandler.List)
	gastos.Get("/all", gastoHandler.ListTodos)
	gastos.Get("/:id", gastoHandler.GetByID)
	gastos.Post("/", gastoHandler.Crear)
	gastos.Put("/:id", gastoHandler.Editar)
	gastos.Patch("/:id/estado", RequireRole("admin", "cajero"), gastoHandler.CambiarEstado)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ProductoUC)
	dashboard.Get("/", dashboardHandler.Resumen)
	dashboard.Get("/productos", dashboardHandler.Productos)
	dashboard.Get("/ventas", dashboardHandler.Ventas)
}
