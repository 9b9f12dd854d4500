package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/isamardev/graphify/internal/assets"
	"github.com/isamardev/graphify/internal/auth"
	"github.com/isamardev/graphify/internal/cache"
	"github.com/isamardev/graphify/internal/config"
	"github.com/isamardev/graphify/internal/content"
	"github.com/isamardev/graphify/internal/db"
	"github.com/isamardev/graphify/internal/handlers"
	"github.com/isamardev/graphify/internal/leads"
	"github.com/isamardev/graphify/internal/middleware"
	"github.com/isamardev/graphify/internal/notifications"
	"github.com/isamardev/graphify/internal/store"
	"github.com/isamardev/graphify/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cols *db.Collections
	var local *store.Store
	if cfg.DevMode {
		local = store.New(cfg.LocalStoreFile)
		if err := local.SeedSampleData(); err != nil {
			logger.Error("demo store seed failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("dev mode: using local demo store", slog.String("file", cfg.LocalStoreFile))
	} else {
		client, connected, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("mongo connected")
		defer client.Disconnect(context.Background())

		if err := db.EnsureIndexes(ctx, connected); err != nil {
			logger.Error("index creation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cols = connected
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if cfg.RedisURL != "" {
			logger.Info("redis connected (url)")
		} else {
			logger.Info("redis connected", slog.String("addr", cfg.RedisAddr))
		}
		cacheStore = redisCache
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "graphify-api",
		}
	}

	storage, err := assets.NewStorage(cfg.StorageDir)
	if err != nil {
		logger.Error("storage init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.LeadNotifyEmail, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
	}

	server := &handlers.Server{
		Cfg:     cfg,
		Cols:    cols,
		Val:     validation.New(),
		Log:     logger,
		Cache:   cacheStore,
		Storage: storage,
		Local:   local,
	}

	var leadsRepo leads.Repository
	if cols != nil {
		leadsRepo = leads.NewRepository(cols.Contacts, cols.Quotes)
	} else {
		leadsRepo = leads.NewLocalRepository(local)
	}
	var notifier leads.Notifier
	if mailer != nil {
		notifier = mailer
	}
	resolveImage := func(path string) string {
		return assets.ResolveImageURL(path, cfg.AssetBase)
	}
	leadsService := leads.NewService(leadsRepo, cfg.Timezone, notifier, resolveImage)
	leadsHandler := leads.NewHandler(leadsService, server.Val, logger, storage)

	r := newRouter(cfg, logger, server, leadsHandler, storage, jwtManager)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

func newRouter(cfg *config.Config, logger *slog.Logger, server *handlers.Server, leadsHandler *leads.Handler, storage *assets.Storage, jwtManager *auth.Manager) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(middleware.MethodOverride())
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	leadsLimiter := middleware.NewRateLimiter(cfg.RateLimitLeads, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	adminAuth := middleware.AdminAuth(cfg.AdminAPIKey, jwtManager)

	r.Route("/api", func(api chi.Router) {
		for _, t := range content.Types() {
			t := t
			api.Get("/"+t.Plural, server.ContentList(t))
			for _, alias := range t.Aliases {
				api.Get("/"+alias, server.ContentList(t))
			}
			if t.HasDetail {
				api.Get("/"+t.Plural+"/{slug}", server.ContentBySlug(t))
			}
		}

		api.With(leadsLimiter.Middleware).Post("/contacts", leadsHandler.CreateContact)
		api.With(leadsLimiter.Middleware).Post("/quotes", leadsHandler.CreateQuote)

		// the admin panel reads leads at the top-level paths
		api.With(adminAuth).Get("/contacts", leadsHandler.AdminListContacts)
		api.With(adminAuth).Get("/contacts/{id}", leadsHandler.AdminGetContact)
		api.With(adminAuth).Get("/quotes", leadsHandler.AdminListQuotes)
		api.With(adminAuth).Get("/quotes/{id}", leadsHandler.AdminGetQuote)

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/login", server.AdminLogin)
			admin.Post("/refresh", server.AdminRefresh)
			admin.Post("/logout", server.AdminLogout)

			// chi requires middlewares before routes; keep auth on a
			// sub-router so login stays public.
			admin.Group(func(protected chi.Router) {
				protected.Use(adminAuth)
				for _, t := range content.Types() {
					t := t
					protected.Post("/"+t.Plural, server.AdminContentCreate(t))
					protected.Put("/"+t.Plural+"/{id}", server.AdminContentUpdate(t))
					protected.Delete("/"+t.Plural+"/{id}", server.AdminContentDelete(t))
				}
				protected.Get("/contacts", leadsHandler.AdminListContacts)
				protected.Get("/contacts/{id}", leadsHandler.AdminGetContact)
				protected.Get("/quotes", leadsHandler.AdminListQuotes)
				protected.Get("/quotes/{id}", leadsHandler.AdminGetQuote)
				protected.Post("/users", server.AdminCreateUser)
				protected.Patch("/users/{id}/password", server.AdminUpdateUserPassword)
			})
		})
	})

	// Save records storage/<name> and the resolver rewrites that to
	// /storage/app/public/<name>, so that is the prefix files serve under.
	fileServer := http.StripPrefix("/storage/app/public/", http.FileServer(http.Dir(storage.Dir())))
	r.Get("/storage/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})

	return r
}
