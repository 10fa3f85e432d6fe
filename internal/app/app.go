package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"smart_learning_path/internal/config"
	"smart_learning_path/internal/controller"
	"smart_learning_path/internal/llm"
	"smart_learning_path/internal/repository"
	"smart_learning_path/internal/service"
	"smart_learning_path/pkg/configwatcher"
	"smart_learning_path/pkg/database"
	"smart_learning_path/pkg/monitoring"
	"smart_learning_path/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config    *config.Config
	ConfigDir string
	Router    *gin.Engine
	Log       *zap.Logger
	Redis     *redis.Client
	Store     repository.LearningPathStore

	services        *services
	configCallbacks []func(*config.Config)
	closers         []func()
	tracerProvider  *sdktrace.TracerProvider
}

type services struct {
	cache     *service.CacheService
	generator *service.PathGeneratorService
}

type controllers struct {
	learningPath *controller.LearningPathController
	quiz         *controller.QuizController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func settingsFrom(cfg *config.Config) service.Settings {
	return service.Settings{
		MaxTokens:     cfg.LLM.MaxTokens,
		QuizMaxTokens: cfg.LLM.QuizMaxTokens,
		CacheTTL:      cfg.Cache.TTL,
	}
}

func initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		learningPath: controller.NewLearningPathController(s.generator),
		quiz:         controller.NewQuizController(s.generator),
		health:       controller.NewHealthController(s.generator, cfg.Server.APIVersion),
	}
}

func (a *App) initCache(ctx context.Context) *service.CacheService {
	rdb, err := database.InitRedis(ctx, &a.Config.Redis)
	switch {
	case errors.Is(err, database.ErrRedisNotConfigured):
		a.Log.Info("Redis not configured, result cache disabled")
		return service.NewCacheService(nil, a.Log)
	case err != nil:
		a.Log.Warn("Redis unavailable, result cache disabled", zap.Error(err))
		return service.NewCacheService(nil, a.Log)
	}

	a.Redis = rdb
	a.closers = append(a.closers, func() {
		if err := rdb.Close(); err != nil {
			a.Log.Warn("closing redis", zap.Error(err))
		}
	})
	return service.NewCacheService(rdb, a.Log)
}

func NewApp(ctx context.Context, cfg *config.Config, configDir string, log *zap.Logger) (*App, error) {
	app := &App{
		Config:    cfg,
		ConfigDir: configDir,
		Log:       log,
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, log)
	if err != nil {
		return nil, err
	}

	store, closeStore := database.OpenLearningPathStore(ctx, cfg, log)
	app.Store = store
	app.closers = append(app.closers, closeStore)

	cache := app.initCache(ctx)

	generator := service.NewPathGeneratorService(
		provider,
		store,
		cache,
		llm.Normalizer{Repair: cfg.LLM.RepairJSON},
		settingsFrom(cfg),
		log,
	)
	app.services = &services{cache: cache, generator: generator}
	app.RegisterConfigCallback(func(c *config.Config) {
		generator.UpdateSettings(settingsFrom(c))
	})

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			log.Warn("Failed to initialize tracing, continuing without it", zap.Error(err))
		} else {
			app.tracerProvider = tp
		}
	}

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	app.Router = newRouter(cfg, initControllers(app.services, cfg), log)

	log.Info("Application initialized",
		zap.String("provider", provider.Name()),
		zap.String("store", store.Mode()),
		zap.String("cache", cache.Status()),
	)
	return app, nil
}

// Run serves until SIGINT/SIGTERM or ctx is done, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.ConfigDir != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.ConfigDir, a.Log, a.applyConfig); err != nil {
				a.Log.Warn("Config watcher disabled", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			a.close()
			return err
		}
	case <-ctx.Done():
	}
	a.Log.Info("Shutting down server...")

	// 等待请求处理完成（最长 10 秒）
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)

	a.close()
	a.Log.Info("Server exiting")
	return err
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	if a.tracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			a.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
}
