package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	httpHandler "tarkov-squad-board/internal/handler/http"
	"tarkov-squad-board/internal/infra/persistence/memory"
	"tarkov-squad-board/internal/infra/tarkov"
	"tarkov-squad-board/internal/middleware"
	"tarkov-squad-board/internal/service"
	"tarkov-squad-board/internal/tasks"
	"tarkov-squad-board/internal/worker"
)

// Config 结构体用于存储从环境变量或文件加载的配置
type Config struct {
	ServerPort        string
	LogLevel          string
	AppEnv            string // development/production
	CORSAllowedOrigin string
	TarkovAPIURL      string
	TarkovTimeout     time.Duration
	SyncSchedule      string // asynq cron 表达式，例如 "@every 6h"
	SeedDefaults      bool
	RedisAddr         string // 为空时禁用限流和周期同步
	RedisPassword     string
	RedisDB           int
	RateLimitMax      int
	RateLimitWindow   time.Duration
}

// LoadConfig 从环境变量加载配置
func LoadConfig() (*Config, error) {
	// 优先加载 .env 文件 (如果存在)
	_ = godotenv.Load() // 忽略错误，允许只使用环境变量

	cfg := &Config{
		ServerPort:        os.Getenv("SERVER_PORT"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		AppEnv:            os.Getenv("APP_ENV"),
		CORSAllowedOrigin: os.Getenv("CORS_ALLOWED_ORIGIN"),
		TarkovAPIURL:      os.Getenv("TARKOV_API_URL"),
		SyncSchedule:      os.Getenv("SYNC_SCHEDULE"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		// --- 设置默认值 ---
		TarkovTimeout:   tarkov.DefaultTimeout,
		SeedDefaults:    true,
		RateLimitMax:    100,
		RateLimitWindow: 1 * time.Second,
	}

	cfg.RedisDB, _ = strconv.Atoi(os.Getenv("REDIS_DB")) // 忽略错误，默认为 0

	if v := os.Getenv("TARKOV_API_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TARKOV_API_TIMEOUT %q: %w", v, err)
		}
		cfg.TarkovTimeout = timeout
	}
	if v := os.Getenv("SEED_DEFAULTS"); v != "" {
		cfg.SeedDefaults, _ = strconv.ParseBool(v)
	}

	// --- 设置其他默认值 ---
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.SyncSchedule == "" {
		cfg.SyncSchedule = "@every 6h"
	}

	// 验证日志级别
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App 结构体包含应用的所有组件和配置
type App struct {
	Config      *Config
	Log         *logrus.Logger
	Store       *memory.Store
	RedisClient *redis.Client // RedisAddr 未配置时为 nil
	AsynqClient *asynq.Client // 同上
	AsynqServer *worker.WorkerServer
	HttpServer  *http.Server

	redisClientOpt asynq.RedisClientOpt
	scheduler      *asynq.Scheduler
}

// NewApp 创建并初始化应用的所有组件
func NewApp() (*App, error) {
	// 1. 加载配置
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	// 2. 初始化 Logger
	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel) // cfg.LogLevel 已被 LoadConfig 验证
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	log.Infof("Logger initialized (Level: %s)", logLevel.String())
	log.Info("Configuration loaded successfully")

	// 3. 初始化基础设施
	log.Info("Initializing infrastructure...")
	store := memory.NewStore()
	log.Info("In-memory store initialized")

	tarkovClient := tarkov.NewClient(cfg.TarkovAPIURL, cfg.TarkovTimeout)
	log.Info("Tarkov API client initialized")

	// Redis 是可选的：未配置时跳过限流和周期同步
	var redisClient *redis.Client
	var asynqClient *asynq.Client
	var redisClientOpt asynq.RedisClientOpt
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		redisClientOpt = asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}
		asynqClient = asynq.NewClient(redisClientOpt)
		log.Info("Redis and Asynq clients initialized")
	} else {
		log.Info("REDIS_ADDR not set, rate limiting and periodic sync disabled")
	}
	log.Info("Infrastructure initialized successfully")

	// 4. 初始化 Services (Store 同时实现全部仓库接口)
	log.Info("Initializing services...")
	groupService := service.NewGroupService(store)
	questService := service.NewQuestService(store)
	raidService := service.NewRaidService(store)
	hideoutService := service.NewHideoutService(store)
	syncService := service.NewSyncService(store, tarkovClient)
	log.Info("Services initialized")

	// 5. 种子数据 (可通过 SEED_DEFAULTS=false 关闭)
	if cfg.SeedDefaults {
		if err := service.SeedDefaults(context.Background(), store); err != nil {
			return nil, fmt.Errorf("failed to seed default data: %w", err)
		}
	}

	// 6. 初始化 Handlers
	log.Info("Initializing handlers...")
	groupHandler := httpHandler.NewGroupHandler(groupService)
	questHandler := httpHandler.NewQuestHandler(questService)
	raidHandler := httpHandler.NewRaidHandler(raidService)
	hideoutHandler := httpHandler.NewHideoutHandler(hideoutService)
	syncHandler := httpHandler.NewSyncHandler(syncService)
	tarkovHandler := httpHandler.NewTarkovHandler(tarkovClient)
	log.Info("Handlers initialized")

	// 7. 初始化 Worker Server (仅在启用 Redis 时)
	var workerServer *worker.WorkerServer
	if redisClient != nil {
		log.Info("Initializing worker server...")
		workerServer = worker.NewWorkerServer(redisClientOpt, syncService, log)
		log.Info("Worker server initialized")
	}

	// 8. 初始化 Gin Engine 和路由
	log.Info("Setting up Gin router...")
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))

	// --- CORS ---
	allowedOrigin := cfg.CORSAllowedOrigin
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
	if redisClient != nil {
		router.Use(middleware.RateLimit(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow))
	}

	// --- 设置路由 ---
	api := router.Group("/api")
	{
		api.GET("/groups", groupHandler.ListGroups)
		api.POST("/groups", groupHandler.CreateGroup)
		api.GET("/groups/:groupId", groupHandler.GetGroup)
		api.GET("/groups/:groupId/members", groupHandler.ListMembers)
		api.POST("/groups/:groupId/members", groupHandler.AddMember)
		api.GET("/members/:memberId", groupHandler.GetMember)
		api.PUT("/members/:memberId", groupHandler.UpdateMember)
		api.DELETE("/members/:memberId", groupHandler.RemoveMember)

		api.GET("/quests", questHandler.ListQuests)
		api.POST("/quests", questHandler.CreateQuest)
		api.GET("/quests/:questId", questHandler.GetQuest)
		api.GET("/groups/:groupId/player-quests", questHandler.ListActiveGroupQuests)
		api.GET("/members/:memberId/quests", questHandler.ListMemberQuests)
		api.POST("/members/:memberId/quests", questHandler.TrackQuest)
		api.PUT("/player-quests/:playerQuestId", questHandler.UpdatePlayerQuest)

		api.GET("/groups/:groupId/raids", raidHandler.ListGroupRaids)
		api.POST("/groups/:groupId/raids", raidHandler.ScheduleRaid)
		api.GET("/raids/:raidId", raidHandler.GetRaid)
		api.PUT("/raids/:raidId", raidHandler.UpdateRaid)
		api.GET("/raids/:raidId/participants", raidHandler.ListParticipants)
		api.POST("/raids/:raidId/participants", raidHandler.JoinRaid)
		api.PUT("/participants/:participantId", raidHandler.RespondParticipant)

		api.GET("/hideout/modules", hideoutHandler.ListModules)
		api.POST("/hideout/modules", hideoutHandler.CreateModule)
		api.GET("/hideout/modules/:moduleId", hideoutHandler.GetModule)
		api.GET("/members/:memberId/hideout", hideoutHandler.ListMemberHideout)
		api.POST("/members/:memberId/hideout", hideoutHandler.TrackModule)
		api.PUT("/player-hideout/:playerHideoutId", hideoutHandler.UpdateProgress)

		api.GET("/tarkov/quests", tarkovHandler.Quests)
		api.GET("/tarkov/maps", tarkovHandler.Maps)
		api.GET("/tarkov/items", tarkovHandler.Items)
		api.POST("/sync/quests", syncHandler.SyncQuests)
	}
	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })
	log.Info("Router setup complete")

	// 9. 初始化 HTTP Server
	log.Info("Initializing HTTP server...")
	httpServer := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}
	log.Info("HTTP server initialized")

	// 10. 组装 App 对象
	app := &App{
		Config:         cfg,
		Log:            log,
		Store:          store,
		RedisClient:    redisClient,
		AsynqClient:    asynqClient,
		AsynqServer:    workerServer,
		HttpServer:     httpServer,
		redisClientOpt: redisClientOpt,
	}
	log.Info("Application assembled successfully")

	return app, nil
}

// Start 启动应用的所有后台 Goroutine 和 HTTP 服务器
func (a *App) Start() {
	if a.AsynqServer != nil {
		go a.AsynqServer.Start()
		a.Log.Info("Asynq worker server routine started")
		a.registerPeriodicTasks()
	}

	// 启动 HTTP 服务器
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// registerPeriodicTasks 注册周期性的外部任务同步作业。
func (a *App) registerPeriodicTasks() {
	scheduler := asynq.NewScheduler(a.redisClientOpt, &asynq.SchedulerOpts{})
	a.scheduler = scheduler

	taskPayload, err := tasks.NewQuestSyncTask("scheduler")
	if err != nil {
		a.Log.Errorf("Failed to create quest sync task payload: %v", err)
		return
	}
	task := asynq.NewTask(tasks.TypeQuestSync, taskPayload)

	entryID, err := scheduler.Register(a.Config.SyncSchedule, task, asynq.Queue("default"))
	if err != nil {
		a.Log.Errorf("Could not register periodic quest sync task: %v", err)
	} else {
		a.Log.Infof("Periodic quest sync task registered with schedule '%s' (EntryID: %s)", a.Config.SyncSchedule, entryID)
	}

	go func() {
		a.Log.Info("Asynq scheduler starting...")
		if err := scheduler.Run(); err != nil {
			if !errors.Is(err, asynq.ErrServerClosed) {
				a.Log.Errorf("Asynq scheduler Run() failed: %v", err)
			} else {
				a.Log.Info("Asynq scheduler stopped.")
			}
		}
	}()
}

// Shutdown 优雅地关闭应用
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	// 1. 停止 Scheduler
	if a.scheduler != nil {
		a.scheduler.Shutdown()
	}

	// 2. 优雅关闭 Worker Server
	if a.AsynqServer != nil {
		a.AsynqServer.Shutdown()
	}

	// 3. 优雅关闭 HTTP 服务器
	a.Log.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	// 4. 关闭 Asynq Client
	if a.AsynqClient != nil {
		if err := a.AsynqClient.Close(); err != nil {
			a.Log.Errorf("Error closing Asynq client: %v", err)
		} else {
			a.Log.Info("Asynq client closed.")
		}
	}

	// 5. 关闭 Redis 连接
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		} else {
			a.Log.Info("Redis connection closed.")
		}
	}

	a.Log.Info("Application shutdown complete.")
}

// LoggerMiddleware 创建一个 Gin 中间件用于记录请求日志
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		if errorMessage != "" {
			entry.Error(errorMessage)
		} else {
			// 区分状态码记录日志级别
			if statusCode >= 500 {
				entry.Error("Server error")
			} else if statusCode >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request handled")
			}
		}
	}
}
