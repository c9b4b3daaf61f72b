package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/RyanW84/ShiftsLogger-sub001/config"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/api/handler"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/api/middleware"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/api/router"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/repository"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/service"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/database"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/jwt"
	applogger "github.com/RyanW84/ShiftsLogger-sub001/pkg/logger"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/redis"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run 返回进程退出码；所有退出路径都经过 defer，保证日志落盘
func run(args []string, stdout io.Writer) int {
	// .env 仅用于本地开发，不存在时忽略
	_ = godotenv.Load()

	// 1. 加载配置
	cfg, err := config.Load(os.Getenv("SHIFTS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		return 1
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log, cfg.Server.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		return 1
	}
	defer logger.Sync()

	jwtMgr := jwt.NewManager(&cfg.Auth)

	if len(args) > 0 {
		switch args[0] {
		case "token":
			return runToken(args[1:], jwtMgr, stdout, logger)
		case "migrate":
			return runMigrate(args[1:], cfg, logger)
		default:
			fmt.Fprintf(os.Stderr, "未知子命令 %q，可用: token | migrate\n", args[0])
			return 2
		}
	}

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("auth_enabled", cfg.Auth.Enabled),
	)

	// 3. 连接数据库并迁移
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Error("数据库连接失败", zap.Error(err))
		return 1
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("获取底层 sql.DB 失败", zap.Error(err))
		return 1
	}
	defer sqlDB.Close()

	if err := database.Migrate(db, cfg.Database.Driver, logger); err != nil {
		logger.Error("数据库迁移失败", zap.Error(err))
		return 1
	}

	// 4. 限流后端：Redis 可用时跨实例共享，否则退回进程内令牌桶
	var limiter middleware.RateLimiter = middleware.NewLocalLimiter()
	if cfg.Redis.Enabled {
		rdb, err := redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，限流降级为进程内计数", zap.Error(err))
		} else {
			defer rdb.Close()
			limiter = rdb
		}
	}

	// 5. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db, cfg.Policy, logger)
	svc := service.NewService(repo, jwtMgr, logger)
	h := handler.NewHandler(svc)

	// 6. 初始化路由
	engine := router.Setup(cfg, h, jwtMgr, limiter, logger)

	// 7. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      otelhttp.NewHandler(engine, cfg.Server.ServiceName),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// 8. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		logger.Error("HTTP 服务器异常", zap.Error(err))
		return 1
	case sig := <-quit:
		logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务器已关闭")
	return 0
}

// runToken 离线签发访问令牌：server token -subject ops -role admin
func runToken(args []string, jwtMgr *jwt.Manager, stdout io.Writer, logger *zap.Logger) int {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("subject", "", "令牌主体（操作人标识）")
	role := fs.String("role", jwt.RoleViewer, "角色：admin | viewer")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	tok, err := service.NewAuthService(jwtMgr, logger).IssueToken(*subject, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "签发失败: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tok); err != nil {
		return 1
	}
	return 0
}

// runMigrate 手动迁移：server migrate up | server migrate down [steps]
func runMigrate(args []string, cfg *config.Config, logger *zap.Logger) int {
	if cfg.Database.Driver != "postgres" {
		fmt.Fprintln(os.Stderr, "migrate 子命令仅适用于 postgres；sqlite 启动时自动建表")
		return 2
	}
	if len(args) == 0 || (args[0] != "up" && args[0] != "down") {
		fmt.Fprintln(os.Stderr, "用法: server migrate up | server migrate down [steps]")
		return 2
	}

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Error("数据库连接失败", zap.Error(err))
		return 1
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("获取底层 sql.DB 失败", zap.Error(err))
		return 1
	}
	defer sqlDB.Close()

	if args[0] == "up" {
		err = database.RunMigrations(sqlDB, logger)
	} else {
		steps := 1
		if len(args) > 1 {
			if steps, err = strconv.Atoi(args[1]); err != nil {
				fmt.Fprintf(os.Stderr, "steps 必须为整数: %q\n", args[1])
				return 2
			}
		}
		err = database.RollbackMigrations(sqlDB, steps, logger)
	}
	if err != nil {
		logger.Error("迁移失败", zap.Error(err))
		return 1
	}
	return 0
}
