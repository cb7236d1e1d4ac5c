package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/storefront-api/docs"
	"github.com/aaravmahajanofficial/storefront-api/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-api/internal/auth"
	"github.com/aaravmahajanofficial/storefront-api/internal/cache"
	"github.com/aaravmahajanofficial/storefront-api/internal/catalog"
	"github.com/aaravmahajanofficial/storefront-api/internal/config"
	"github.com/aaravmahajanofficial/storefront-api/internal/health"
	"github.com/aaravmahajanofficial/storefront-api/internal/metrics"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"github.com/aaravmahajanofficial/storefront-api/internal/repositories/mongostore"
	service "github.com/aaravmahajanofficial/storefront-api/internal/services"
	"github.com/aaravmahajanofficial/storefront-api/internal/tracing"
	"github.com/aaravmahajanofficial/storefront-api/pkg/sendgrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type catalogRepos struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	brands     repository.BrandRepository
}

//	@title						Storefront API
//	@version					1.0
//	@description				Catalog, authentication, cart pricing and admin endpoints for the online store.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Otel, health.Version)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if err := repos.EnsureSchema(ctx); err != nil {
		slog.Error("❌ Error applying the database schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	stores := catalogRepos{
		products:   repository.NewProductRepo(repos.DB),
		categories: repository.NewCategoryRepo(repos.DB),
		brands:     repository.NewBrandRepo(repos.DB),
	}

	endpoints := &health.Endpoints{}

	if cfg.Storage.CatalogDriver == config.CatalogDriverMongo {
		mongoStore, err := mongostore.Connect(ctx, cfg.Mongo)
		if err != nil {
			slog.Error("❌ Error accessing the catalog store", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := mongoStore.Close(closeCtx); err != nil {
				slog.Error("⚠️ Error closing MongoDB connection", slog.String("error", err.Error()))
			}
		}()

		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			slog.Error("❌ Error creating catalog indexes", slog.String("error", err.Error()))
			os.Exit(1)
		}

		stores = catalogRepos{
			products:   mongostore.NewProductRepo(mongoStore.DB),
			categories: mongostore.NewCategoryRepo(mongoStore.DB),
			brands:     mongostore.NewBrandRepo(mongoStore.DB),
		}
		endpoints.CatalogStore = mongoStore
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		_ = redisClient.Close()
	}()

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	sessions := repository.NewSessionRepo(redisClient, cfg)
	gate := auth.NewGate([]byte(cfg.Security.JWTKey), cfg.Security.JWTExpiry(), sessions)

	var mailer sendgrid.Mailer = sendgrid.Noop{}
	if cfg.SendGrid.APIKey != "" {
		mailer = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid API key not set, welcome emails are disabled")
	}

	userService := service.NewUserService(repository.NewUserRepo(repos.DB), repository.NewRateLimitRepo(redisClient, cfg), gate, mailer, cfg.Security.BootstrapAdmins)
	userHandler := handlers.NewUserHandler(userService)
	productService := service.NewProductService(stores.products, stores.categories, stores.brands, redisCache, cfg.Cache.DefaultTTL)
	productHandler := handlers.NewProductHandler(productService, catalog.Limits{Default: cfg.Catalog.DefaultLimit, Max: cfg.Catalog.MaxLimit})
	categoryService := service.NewCategoryService(stores.categories, redisCache, cfg.Cache.DefaultTTL)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	brandService := service.NewBrandService(stores.brands, redisCache, cfg.Cache.DefaultTTL)
	brandHandler := handlers.NewBrandHandler(brandService)
	cartService := service.NewCartService(stores.products)
	cartHandler := handlers.NewCartHandler(cartService)
	adminService := service.NewAdminService(stores.products, repository.NewOrderRepository(repos.DB), repository.NewUserRepo(repos.DB))
	adminHandler := handlers.NewAdminHandler(adminService)
	authMiddleware := middleware.NewAuthMiddleware(gate)

	healthChecker, err := health.NewHealthHandler(cfg, endpoints)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("catalog", cfg.Storage.CatalogDriver), slog.String("version", health.Version))

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/featured", productHandler.FeaturedProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Admin(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", authMiddleware.Admin(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.Admin(productHandler.DeleteProduct()))

	routerMux.HandleFunc("GET /api/v1/categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/categories/{slug}", categoryHandler.GetCategory())
	routerMux.HandleFunc("POST /api/v1/categories", authMiddleware.Admin(categoryHandler.CreateCategory()))
	routerMux.HandleFunc("PUT /api/v1/categories/{id}", authMiddleware.Admin(categoryHandler.UpdateCategory()))
	routerMux.HandleFunc("DELETE /api/v1/categories/{id}", authMiddleware.Admin(categoryHandler.DeleteCategory()))

	routerMux.HandleFunc("GET /api/v1/brands", brandHandler.ListBrands())
	routerMux.HandleFunc("GET /api/v1/brands/{slug}", brandHandler.GetBrand())
	routerMux.HandleFunc("POST /api/v1/brands", authMiddleware.Admin(brandHandler.CreateBrand()))
	routerMux.HandleFunc("PUT /api/v1/brands/{id}", authMiddleware.Admin(brandHandler.UpdateBrand()))
	routerMux.HandleFunc("DELETE /api/v1/brands/{id}", authMiddleware.Admin(brandHandler.DeleteBrand()))

	routerMux.HandleFunc("POST /api/v1/auth/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/auth/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/auth/profile", authMiddleware.Authenticate(userHandler.Profile()))
	routerMux.HandleFunc("POST /api/v1/auth/logout", authMiddleware.Authenticate(userHandler.Logout()))

	routerMux.HandleFunc("POST /api/v1/cart/quote", cartHandler.Quote())

	routerMux.HandleFunc("GET /api/v1/admin/stats", authMiddleware.Admin(adminHandler.Stats()))
	routerMux.HandleFunc("GET /api/v1/admin/orders", authMiddleware.Admin(adminHandler.ListOrders()))
	routerMux.HandleFunc("PUT /api/v1/admin/orders/{id}/status", authMiddleware.Admin(adminHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("GET /api/v1/admin/products", authMiddleware.Admin(productHandler.ListAllProducts()))

	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining; metrics wraps the mux directly so the matched route pattern is visible
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}

}
