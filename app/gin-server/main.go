package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/careercounsel/config"
	"github.com/yoockh/careercounsel/internal/api/handlers"
	"github.com/yoockh/careercounsel/internal/api/middleware"
	"github.com/yoockh/careercounsel/internal/api/routes"
	"github.com/yoockh/careercounsel/internal/cache"
	"github.com/yoockh/careercounsel/internal/logger"
	"github.com/yoockh/careercounsel/internal/providers/stt"
	"github.com/yoockh/careercounsel/internal/providers/webhook"
	"github.com/yoockh/careercounsel/internal/repositories/memory"
	mongorepo "github.com/yoockh/careercounsel/internal/repositories/mongo"
	"github.com/yoockh/careercounsel/internal/repositories/sqldb"
	"github.com/yoockh/careercounsel/internal/seed"
	"github.com/yoockh/careercounsel/internal/services"
	"github.com/yoockh/careercounsel/internal/storage"
)

const streamWordDelay = 50 * time.Millisecond

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	l := logger.New(cfg.LogLevel)
	if cfg.JWTSecret == "" {
		l.Fatal("JWT_SECRET is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Career store
	db, err := config.OpenDatabase(cfg.Database)
	if err != nil {
		l.WithError(err).Fatal("database open failed")
	}
	careerRepo := sqldb.NewCareerRepo(db, l)
	if err := careerRepo.Initialize(ctx, seed.Embedded); err != nil {
		l.WithError(err).Fatal("career store initialization failed")
	}
	userRepo := sqldb.NewUserRepo(db)
	l.WithField("driver", cfg.Database.Driver).Info("database ready")

	// Career cache (optional)
	var careerCache cache.Cache
	if cfg.RedisAddr != "" {
		rdb, err := config.NewRedis(ctx, cfg.RedisAddr)
		if err != nil {
			l.WithError(err).Warn("redis unavailable, career cache disabled")
		} else {
			defer rdb.Close()
			careerCache = cache.NewRedisCache(rdb)
			l.Info("redis connected")
		}
	}

	// Session store: MongoDB when configured, memory otherwise
	var sessionStore mongorepo.SessionRepository = memory.NewSessionRepo(cfg.SessionTTL)
	if cfg.MongoURI != "" {
		client, err := config.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			l.WithError(err).Fatal("mongodb connect failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		mdb := client.Database(cfg.MongoDB)
		if err := config.EnsureSessionIndexes(ctx, mdb, cfg.SessionTTL); err != nil {
			l.WithError(err).Fatal("mongodb index setup failed")
		}
		sessionStore = mongorepo.NewSessionRepo(mdb)
		l.Info("mongodb connected")
	}

	// Conversational backend
	var backend webhook.Backend = webhook.NewStatic()
	if cfg.WebhookURL != "" {
		backend = webhook.NewClient(cfg.WebhookURL, cfg.WebhookTimeout)
		l.WithField("url", cfg.WebhookURL).Info("conversation webhook enabled")
	}

	// Plan archive (optional)
	var archive storage.Archive
	if cfg.PlanBucket != "" {
		gcs, err := storage.NewGCSUploader(ctx, cfg.PlanBucket)
		if err != nil {
			l.WithError(err).Warn("plan archive disabled")
		} else {
			defer gcs.Close()
			archive = gcs
		}
	}

	// Speech to text (optional)
	var speech stt.Provider
	if cfg.STTEnabled {
		gs, err := stt.NewGoogleSpeech(ctx, cfg.STTLanguage)
		if err != nil {
			l.WithError(err).Warn("speech recognition disabled")
		} else {
			defer gs.Close()
			speech = gs
		}
	}

	careers := services.NewCareerService(careerRepo, careerCache, cfg.CareerCacheTTL, l)
	activity := services.NewActivityRecorder(userRepo, l)
	sessions := services.NewSessionService(sessionStore, userRepo, activity)
	advisor := services.NewAdvisorService(services.AdvisorDeps{
		Sessions: sessions,
		Careers:  careers,
		Activity: activity,
		Backend:  backend,
		Speech:   speech,
		Log:      l,
	})
	plans := services.NewPlanService(careers, archive, "", l)
	actions := services.NewCareerActionHandler(careers, plans, sessions)
	quiz := services.NewQuizService(sessions, careers, activity)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(l))
	routes.RegisterRoutes(r, routes.Deps{
		JWTSecret: cfg.JWTSecret,
		Careers:   handlers.NewCareerHandler(careers, services.NewResumeService()),
		NLP:       handlers.NewNLPHandler(advisor),
		Users:     handlers.NewUserHandler(services.NewUserService(activity), activity, cfg.JWTSecret),
		Sessions:  handlers.NewSessionHandler(sessions, actions, plans, quiz),
		Chat:      handlers.NewChatHandler(sessions, advisor),
		WS:        handlers.NewWSHandler(sessions, advisor, l, streamWordDelay),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		l.WithField("port", cfg.Port).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.WithError(err).Fatal("http server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.WithError(err).Error("http server shutdown")
	}
	l.Info("server stopped")
}
