package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/an-nn-t/attendance-tracker/config"
	"github.com/an-nn-t/attendance-tracker/internal/api/handler"
	"github.com/an-nn-t/attendance-tracker/internal/api/middleware"
	"github.com/an-nn-t/attendance-tracker/internal/model"
	"github.com/an-nn-t/attendance-tracker/pkg/jwt"
	"github.com/an-nn-t/attendance-tracker/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录/注册限流防爆破）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// 科目模块（读开放，写仅管理员）
			subjects := authorized.Group("/subjects")
			{
				subjects.GET("", h.Subject.List)
				subjects.GET("/:id", h.Subject.Get)
				subjects.POST("", middleware.RoleAuth(model.RoleAdmin), h.Subject.Create)
				subjects.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Subject.Update)
				subjects.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Subject.Delete)
				subjects.POST("/:id/adjustments", middleware.RoleAuth(model.RoleAdmin), h.Subject.AddAdjustment)
				subjects.DELETE("/:id/adjustments/:adjustment_id", middleware.RoleAuth(model.RoleAdmin), h.Subject.RemoveAdjustment)
				subjects.POST("/:id/adjustments/import", middleware.RoleAuth(model.RoleAdmin), h.Subject.ImportAdjustments)
			}

			// 缺席记录模块（本人）
			attendance := authorized.Group("/attendance")
			{
				attendance.POST("", h.Attendance.Act)
				attendance.GET("", h.Attendance.ListMine)
			}

			// 成绩模块（本人）
			grades := authorized.Group("/grades")
			{
				grades.POST("", h.Grade.Upsert)
				grades.GET("", h.Grade.ListMine)
				grades.GET("/participation", h.Grade.GetMyParticipation)
			}

			// 仪表盘模块
			authorized.GET("/dashboard", h.Dashboard.GetDashboard)
			authorized.GET("/users/overview", middleware.RoleAuth(model.RoleAdmin), h.Dashboard.GetOverview)

			// 导出模块（管理员）
			export := authorized.Group("/export")
			{
				export.GET("/overview", middleware.RoleAuth(model.RoleAdmin), h.Export.ExportOverview)
			}
		}
	}

	return r
}
