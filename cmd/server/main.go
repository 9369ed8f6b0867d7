// @title           DesignFoli Web Gateway API
// @version         1.0.0
// @description     Backend-for-frontend for the DesignFoli portfolio builder. Runs the case-study wizard on server-side drafts, stages uploads, submits case studies to the DesignFoli API, forwards profile edits and offers a same-origin proxy.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"designfoli-web/docs"
	"designfoli-web/internal/auth"
	"designfoli-web/internal/config"
	"designfoli-web/internal/database"
	"designfoli-web/internal/designfoli"
	"designfoli-web/internal/drafts"
	"designfoli-web/internal/drafts/postgres"
	"designfoli-web/internal/drafts/redisstate"
	"designfoli-web/internal/events"
	"designfoli-web/internal/handlers"
	"designfoli-web/internal/middleware"
	"designfoli-web/internal/services"
	"designfoli-web/internal/staging"
	"designfoli-web/internal/supabase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]handlers.Check{}

	// Draft store
	var draftStore drafts.Store
	var redisClient *redis.Client
	switch cfg.DraftStore {
	case config.DraftStoreRedis:
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Warning: Redis at %s is not reachable yet: %v", cfg.RedisAddr, err)
		}
		draftStore = redisstate.NewDraftRepo(redisClient, cfg.DraftTTL)
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	case config.DraftStorePostgres:
		db, err := database.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Run migrations
		if err := database.NewMigrator(db).Run(ctx); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations completed successfully")

		draftStore = postgres.NewDraftRepo(db, cfg.DraftTTL)
		checks["database"] = pingDB(db)
	default:
		log.Println("Warning: drafts are kept in memory and lost on restart. Set DRAFT_STORE=redis or postgres to persist them.")
		draftStore = drafts.NewMemory(cfg.DraftTTL)
	}

	// Staged uploads
	var files staging.Store
	if cfg.SupabaseURL != "" && cfg.StorageKey() != "" {
		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.StorageKey(), cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatalf("Failed to initialize storage client: %v", err)
		}
		files = storageClient
	} else {
		log.Println("Warning: SUPABASE_URL not set. Uploads are staged in memory.")
		files = staging.NewMemory()
	}

	// Wizard events
	var publisher events.Publisher = events.Nop{}
	switch {
	case redisClient != nil:
		publisher = events.NewRedisPublisher(redisClient)
	case cfg.SupabaseURL != "" && cfg.SupabaseServiceKey != "":
		publisher = supabase.NewRealtimeClient(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	}

	// Identity provider
	var identity auth.Provider
	if cfg.SupabaseEnabled() {
		supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey)
		if err != nil {
			log.Fatalf("Failed to initialize Supabase client: %v", err)
		}
		identity = supabaseClient
	} else {
		log.Println("Warning: Supabase auth not configured. /auth/login and /auth/refresh are disabled.")
	}

	// DesignFoli backend
	backend := designfoli.NewClient(cfg.APIBaseURL)
	wizard := services.NewWizardService(backend, draftStore, files, publisher)
	go purgeExpiredDrafts(ctx, wizard, time.Hour)
	profiles := services.NewProfileService(backend)

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Bearer tokens are decoded but not verified; the DesignFoli API still checks them.")
	}

	routes := &handlers.Handlers{
		Health:      handlers.NewHealthHandler(checks),
		Wizard:      handlers.NewWizardHandler(wizard, cfg.MaxUploadBytes()),
		CaseStudies: handlers.NewCaseStudiesHandler(backend),
		Profile:     handlers.NewProfileHandler(backend, profiles, cfg.MaxUploadBytes()),
		Account:     handlers.NewAccountHandler(backend, identity),
		Proxy:       handlers.NewProxyHandler(backend),
	}

	// Setup router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Register(router, middleware.AuthMiddleware(cfg))

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	log.Printf("Server starting on port %s (drafts: %s, backend: %s)", cfg.Port, cfg.DraftStore, backend.BaseURL())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func pingDB(db *sql.DB) handlers.Check {
	return func(ctx context.Context) error {
		return db.PingContext(ctx)
	}
}

func purgeExpiredDrafts(ctx context.Context, wizard *services.WizardService, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := wizard.PurgeExpired(ctx)
			if err != nil {
				log.Printf("Failed to purge expired drafts: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Purged %d expired drafts", n)
			}
		}
	}
}
