/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-10-17 10:35:28
 * @LastEditTime: 2026-10-14 17:20:09
 * @LastEditors: 安知鱼
 */
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/anzhiyu-c/anheyu-post/internal/app/listener"
	"github.com/anzhiyu-c/anheyu-post/internal/app/middleware"
	"github.com/anzhiyu-c/anheyu-post/internal/infra/persistence/database"
	"github.com/anzhiyu-c/anheyu-post/internal/infra/persistence/memory"
	"github.com/anzhiyu-c/anheyu-post/internal/infra/router"
	"github.com/anzhiyu-c/anheyu-post/internal/pkg/event"
	"github.com/anzhiyu-c/anheyu-post/internal/pkg/version"
	"github.com/anzhiyu-c/anheyu-post/pkg/config"
	post_handler "github.com/anzhiyu-c/anheyu-post/pkg/handler/post"
	version_handler "github.com/anzhiyu-c/anheyu-post/pkg/handler/version"
	"github.com/anzhiyu-c/anheyu-post/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-post/pkg/service/flash"
	post_service "github.com/anzhiyu-c/anheyu-post/pkg/service/post"
	"github.com/anzhiyu-c/anheyu-post/pkg/service/utility"
)

// shutdownTimeout 是收到退出信号后等待进行中请求完成的时间
const shutdownTimeout = 5 * time.Second

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg          *config.Config
	engine       *gin.Engine
	redisClient  *redis.Client
	cacheSvc     utility.CacheService
	eventBus     *event.EventBus
	postSvc      post_service.Service
	postListener *listener.PostListener
}

func (a *App) PrintBanner() {
	banner := `

      ██████╗ ██╗      ██████╗  ██████╗
      ██╔══██╗██║     ██╔═══██╗██╔════╝
      ██████╔╝██║     ██║   ██║██║  ███╗
      ██╔══██╗██║     ██║   ██║██║   ██║
      ██████╔╝███████╗╚██████╔╝╚██████╔╝
      ╚═════╝ ╚══════╝ ╚═════╝  ╚═════╝

`
	log.Println(banner)
	log.Println("--------------------------------------------------------")
	log.Printf(" Blog Post Service - Version: %s", version.GetBuildInfo())
	log.Println("--------------------------------------------------------")
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作。
// content 需包含 templates/ 与 static/ 目录。
func NewApp(content fs.FS, configPath string) (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfigFromFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	// 尝试连接 Redis（如果失败，将自动降级到内存缓存）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)
	log.Printf("错误提示缓存后端: %s", utility.GetCacheServiceType(cacheSvc))

	if err := idgen.InitSqidsEncoderWithSeed(resolveIDSeed(cfg)); err != nil {
		return nil, nil, fmt.Errorf("初始化公共ID编码器失败: %w", err)
	}

	eventBus := event.NewEventBus()
	postListener := listener.NewPostListener(eventBus)

	// --- Phase 3: 初始化数据仓库与服务层 ---
	postRepo := memory.NewPostRepo()
	postSvc := post_service.NewService(postRepo, idgen.NewCounterAllocator(0), eventBus)
	flashTTL := time.Duration(cfg.GetInt(config.KeyFlashTTL)) * time.Second
	flashSvc := flash.NewService(cacheSvc, flashTTL)

	// --- Phase 4: 初始化处理器与路由 ---
	postHandler := post_handler.NewHandler(postSvc, flashSvc, flashTTL)
	versionHandler := version_handler.NewHandler()
	appRouter := router.NewRouter(postHandler, versionHandler, cfg.GetInt64(config.KeyUploadMaxSize))

	// --- Phase 5: 配置 Gin 引擎 ---
	var engine *gin.Engine
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
		engine = gin.Default()
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
		engine = gin.New()
		engine.Use(gin.Recovery())
	}
	err = engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})
	if err != nil {
		eventBus.Shutdown()
		utility.StopCacheService(cacheSvc)
		return nil, nil, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.RequestID(), middleware.Cors())

	if err := router.SetupFrontend(engine, content, cfg); err != nil {
		eventBus.Shutdown()
		utility.StopCacheService(cacheSvc)
		return nil, nil, fmt.Errorf("配置前端路由失败: %w", err)
	}
	appRouter.Setup(engine)

	app := &App{
		cfg:          cfg,
		engine:       engine,
		redisClient:  redisClient,
		cacheSvc:     cacheSvc,
		eventBus:     eventBus,
		postSvc:      postSvc,
		postListener: postListener,
	}

	cleanup := func() {
		// 关闭 Redis 连接（如果存在）
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	return app, cleanup, nil
}

// resolveIDSeed 返回配置的 ID 种子；未配置时生成随机种子，文章只存在于内存中，重启后无需保持一致
func resolveIDSeed(cfg *config.Config) string {
	if seed := cfg.GetString(config.KeyIDSeed); seed != "" {
		log.Println("📦 已从配置加载 IDSeed")
		return seed
	}
	seed, err := idgen.GenerateRandomSeed()
	if err != nil {
		log.Printf("警告: 生成随机 IDSeed 失败: %v，使用默认字母表", err)
		return ""
	}
	log.Println("✅ 已生成本次运行的随机 IDSeed")
	return seed
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

func (a *App) PostService() post_service.Service {
	return a.postSvc
}

// Run 启动 HTTP 服务，收到 SIGINT / SIGTERM 后优雅退出
func (a *App) Run() error {
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "3000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s.", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("收到退出信号，正在关闭 HTTP 服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭 HTTP 服务失败: %w", err)
	}
	return nil
}

func (a *App) Stop() {
	if a.eventBus != nil {
		a.eventBus.Shutdown()
		stats := a.postListener.Stats()
		log.Printf("事件总线已停止。本次运行共创建 %d 篇、删除 %d 篇文章。", stats.Created, stats.Deleted)
	}
	utility.StopCacheService(a.cacheSvc)
}
