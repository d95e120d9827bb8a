package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/an-nn-t/attendance-tracker/internal/service"
	"github.com/an-nn-t/attendance-tracker/pkg/response"
)

// DashboardHandler 仪表盘模块 HTTP 处理器
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// GetDashboard 本人全科目的出席与成绩风险
// GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.dashboardSvc.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11005, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetOverview 全体学生风险概览（管理员）
// GET /api/v1/users/overview
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	result, err := h.dashboardSvc.GetOverview(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
