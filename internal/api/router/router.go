package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RyanW84/ShiftsLogger-sub001/config"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/api/handler"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/api/middleware"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/jwt"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时关闭限流；认证关闭时所有请求视为 admin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.Server.ServiceName})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	if cfg.RateLimit.Enabled && limiter != nil {
		v1.Use(middleware.RateLimit(limiter, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger))
	}

	var writeAuth gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if cfg.Auth.Enabled {
		v1.Use(middleware.JWTAuth(jwtMgr))
		writeAuth = middleware.RoleAuth(jwt.RoleAdmin)
	}

	{
		// 员工模块
		workers := v1.Group("/workers")
		{
			workers.GET("", h.Worker.ListWorkers)
			workers.GET("/:id", h.Worker.GetWorker)
			workers.GET("/:id/shifts.ics", h.Export.ExportWorkerCalendar)
			workers.POST("", writeAuth, h.Worker.CreateWorker)
			workers.PUT("/:id", writeAuth, h.Worker.UpdateWorker)
			workers.DELETE("/:id", writeAuth, h.Worker.DeleteWorker)
		}

		// 地点模块
		locations := v1.Group("/locations")
		{
			locations.GET("", h.Location.ListLocations)
			locations.GET("/:id", h.Location.GetLocation)
			locations.POST("", writeAuth, h.Location.CreateLocation)
			locations.PUT("/:id", writeAuth, h.Location.UpdateLocation)
			locations.DELETE("/:id", writeAuth, h.Location.DeleteLocation)
		}

		// 班次模块
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", h.Shift.ListShifts)
			shifts.GET("/export.xlsx", h.Export.ExportTimesheet)
			shifts.GET("/:id", h.Shift.GetShift)
			shifts.POST("", writeAuth, h.Shift.CreateShift)
			shifts.PUT("/:id", writeAuth, h.Shift.UpdateShift)
			shifts.DELETE("/:id", writeAuth, h.Shift.DeleteShift)
		}
	}

	return r
}
