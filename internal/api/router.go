package api

import (
	"context"
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bizcore/erp-api/internal/api/handler"
	"github.com/bizcore/erp-api/internal/api/middleware"
	"github.com/bizcore/erp-api/internal/core/domain"
	"github.com/bizcore/erp-api/internal/core/service"
	mongodb "github.com/bizcore/erp-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bizcore/erp-api/internal/infrastructure/db/redis"
	"github.com/bizcore/erp-api/internal/infrastructure/db/sqlite"
	"github.com/bizcore/erp-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered.
//
// Authentication and authorization are applied at registration time:
// every domain route lives in the authenticated group, and every
// mutating route carries a permission middleware. No handler performs
// its own auth check, so no route can accidentally skip one.
func NewRouter(ctx context.Context, db *sql.DB, mdb *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("erp"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	fixedCostRepo := sqlite.NewFixedCostRepository(db)
	productCostRepo := sqlite.NewProductCostRepository(db)
	auditRepo := mongodb.NewAuditRepository(mdb)
	sessions := redisdb.NewSessionDirectory(rdb)

	tokens := service.NewTokenService(jwtSecret, 24*time.Hour)
	auditSvc := service.NewAuditService(auditRepo, log)

	auditQueue := queue.NewDispatcher(0, auditSvc, log)
	auditQueue.Start(ctx)

	authSvc := service.NewAuthService(userRepo, sessions, tokens, log)
	productSvc := service.NewProductService(productRepo, auditSvc, log).WithAuditQueue(auditQueue)
	customerSvc := service.NewCustomerService(customerRepo, log)
	costSvc := service.NewCostService(fixedCostRepo, productCostRepo, productRepo, log)

	authHandler := handler.NewAuthHandler(authSvc)
	productHandler := handler.NewProductHandler(productSvc)
	customerHandler := handler.NewCustomerHandler(customerSvc)
	costHandler := handler.NewCostHandler(costSvc)
	auditHandler := handler.NewAuditHandler(auditSvc)

	authed := middleware.Auth(tokens, sessions)
	canRead := middleware.Require(domain.PermRead)
	canCreate := middleware.Require(domain.PermCreate)
	canUpdate := middleware.Require(domain.PermUpdate)
	canDelete := middleware.Require(domain.PermDelete)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout, authed)

	// --- Domain routes (all authenticated) ---
	api := e.Group("/api", authed)

	api.GET("/products", productHandler.List, canRead)
	api.POST("/products", productHandler.Create, canCreate)
	api.POST("/products/bulk", productHandler.BulkCreate, canCreate)
	api.GET("/products/low-stock", productHandler.LowStock, canRead)
	api.GET("/products/categories", productHandler.Categories, canRead)
	api.GET("/products/brands", productHandler.Brands, canRead)
	api.GET("/products/:id", productHandler.Get, canRead)
	api.PUT("/products/:id", productHandler.Update, canUpdate)
	api.DELETE("/products/:id", productHandler.Delete, canDelete)

	api.GET("/audit/products/:id", auditHandler.ProductHistory, canRead)

	api.GET("/customers", customerHandler.List, canRead)
	api.POST("/customers", customerHandler.Create, canCreate)
	api.GET("/customers/:id", customerHandler.Get, canRead)
	api.PUT("/customers/:id", customerHandler.Update, canUpdate)
	api.DELETE("/customers/:id", customerHandler.Delete, canDelete)

	api.GET("/fixed-costs", costHandler.ListFixed, canRead)
	api.POST("/fixed-costs", costHandler.CreateFixed, canCreate)
	api.PUT("/fixed-costs/:id", costHandler.UpdateFixed, canUpdate)
	api.DELETE("/fixed-costs/:id", costHandler.DeleteFixed, canDelete)

	api.GET("/product-costs", costHandler.ListProductCosts, canRead)
	api.POST("/product-costs", costHandler.CreateProductCost, canCreate)
	api.PUT("/product-costs/:id", costHandler.UpdateProductCost, canUpdate)
	api.DELETE("/product-costs/:id", costHandler.DeleteProductCost, canDelete)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, mdb, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
