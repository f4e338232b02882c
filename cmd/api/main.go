package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"taskboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	dbadapter "taskboard/internal/adapter/db"
	httpadapter "taskboard/internal/adapter/http"
	"taskboard/internal/adapter/http/handlers"
	httpmiddleware "taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/view"
	"taskboard/internal/adapter/notify"
	"taskboard/internal/app/board"
	"taskboard/internal/app/form"
	"taskboard/internal/app/notice"
	appservice "taskboard/internal/app/service"
	"taskboard/internal/config"
	"taskboard/internal/core/ports"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	taskService := appservice.NewTaskService(dbadapter.NewTaskRepository(db))
	userService := appservice.NewUserService(dbadapter.NewUserRepository(db))
	notices := notice.NewCenter()
	controller := board.NewController(board.NewBoard(), taskService, notices)

	refreshBoard := func(ctx context.Context) {
		if err := controller.Refresh(ctx); err != nil {
			zap.L().Error("failed to refresh tasks after signal", zap.Error(err))
		}
	}

	var (
		refresh     ports.RefreshSignal
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("failed to close redis connection", zap.Error(err))
			}
		}()

		redisSignal := notify.NewRedisSignal(redisClient, cfg.RedisRefreshChannel)
		go redisSignal.Run(ctx, refreshBoard, nil)
		refresh = redisSignal
		logger.Info("using redis refresh signal", zap.String("addr", cfg.RedisAddr), zap.String("channel", cfg.RedisRefreshChannel))
	} else {
		localSignal := notify.NewLocalSignal()
		localSignal.Listen(refreshBoard)
		refresh = localSignal
	}

	taskForm := form.NewForm(taskService, userService, refresh, notices)

	if err := controller.Mount(ctx); err != nil {
		// The page retries on the next request and shows the skeleton meanwhile.
		logger.Warn("initial task load failed", zap.Error(err))
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	r.SetHTMLTemplate(view.MustTemplates())
	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(db, redisClient),
		Tasks:  handlers.NewTaskHandler(taskService, refresh),
		Users:  handlers.NewUserHandler(userService),
		Board:  handlers.NewBoardHandler(controller, taskForm, notices),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("could not start server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down server", zap.Error(err))
	}
}
