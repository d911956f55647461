package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/pagoservicios/payments-api/docs"
	"github.com/pagoservicios/payments-api/internal/api/handler"
	"github.com/pagoservicios/payments-api/internal/api/middleware"
	"github.com/pagoservicios/payments-api/internal/core/domain"
	coreservice "github.com/pagoservicios/payments-api/internal/core/service"
	"github.com/pagoservicios/payments-api/internal/infrastructure/config"
	"github.com/pagoservicios/payments-api/internal/infrastructure/db/postgres"
	redisstore "github.com/pagoservicios/payments-api/internal/infrastructure/db/redis"
)

// Role sets per operation group. Declared once here so a typo cannot
// silently widen access on a single route.
var (
	adminOnly     = []string{domain.RoleAdmin}
	adminOrClient = []string{domain.RoleAdmin, domain.RoleClient}
	anyAuth       []string
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("payments"))
	if origins := cfg.Origins(); len(origins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: origins,
		}))
	}

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	authService := coreservice.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	authHandler := handler.NewAuthHandler(authService)
	authMW := middleware.Auth(cfg.JWTSecret)

	idemStore := redisstore.NewIdempotencyStore(rdb)
	paymentRepo := postgres.NewPaymentRepository(db)
	paymentService := coreservice.NewPaymentService(paymentRepo, idemStore, log)
	paymentHandler := handler.NewPaymentHandler(paymentService, log)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/listar", authHandler.List, authMW, middleware.RBAC(adminOnly...))
	e.PUT("/auth/editar/:id", authHandler.Update, authMW, middleware.RBAC(adminOnly...))
	e.DELETE("/auth/eliminar/:id", authHandler.Delete, authMW, middleware.RBAC(adminOnly...))

	// --- Domain record routes ---
	registerRecord(e, "/clients", recordHandler[domain.Client](db, "client", log), authMW, adminOrClient, adminOnly)
	registerRecord(e, "/packages", recordHandler[domain.Package](db, "package", log), authMW, adminOrClient, adminOnly)
	registerRecord(e, "/concepts", recordHandler[domain.PaymentConcept](db, "concept", log), authMW, adminOrClient, adminOnly)
	registerRecord(e, "/details", recordHandler[domain.PaymentDetail](db, "payment_detail", log), authMW, adminOrClient, adminOnly)
	// Balances are open to any authenticated identity on every operation.
	registerRecord(e, "/balances", recordHandler[domain.Balance](db, "balance", log), authMW, anyAuth, anyAuth)

	// Payments: reads and creation accept both roles, mutation is admin only.
	pg := e.Group("/payments", authMW)
	pg.GET("/listar", paymentHandler.List, middleware.RBAC(adminOrClient...))
	pg.POST("/cargar", paymentHandler.Create, middleware.RBAC(adminOrClient...))
	pg.GET("/consultar/:id", paymentHandler.Get, middleware.RBAC(adminOrClient...))
	pg.PUT("/editar/:id", paymentHandler.Update, middleware.RBAC(adminOnly...))
	pg.DELETE("/eliminar/:id", paymentHandler.Delete, middleware.RBAC(adminOnly...))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// crudRoutes is the shared route shape of every record entity.
type crudRoutes interface {
	List(echo.Context) error
	Create(echo.Context) error
	Get(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

// registerRecord wires the five CRUD routes for one entity under prefix,
// applying readRoles to list/consult and writeRoles to the mutations.
func registerRecord(e *echo.Echo, prefix string, h crudRoutes, authMW echo.MiddlewareFunc, readRoles, writeRoles []string) {
	g := e.Group(prefix, authMW)
	g.GET("/listar", h.List, middleware.RBAC(readRoles...))
	g.POST("/cargar", h.Create, middleware.RBAC(writeRoles...))
	g.GET("/consultar/:id", h.Get, middleware.RBAC(readRoles...))
	g.PUT("/editar/:id", h.Update, middleware.RBAC(writeRoles...))
	g.DELETE("/eliminar/:id", h.Delete, middleware.RBAC(writeRoles...))
}

// recordHandler builds the repository → service → handler chain for one
// entity type.
func recordHandler[T domain.Record](db *gorm.DB, entity string, log zerolog.Logger) *handler.RecordHandler[T] {
	repo := postgres.NewRecordRepository[T](db)
	svc := coreservice.NewRecordService[T](repo, entity, log)
	return handler.NewRecordHandler[T](svc)
}
