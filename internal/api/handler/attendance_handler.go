package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/an-nn-t/attendance-tracker/internal/dto"
	"github.com/an-nn-t/attendance-tracker/internal/service"
	"github.com/an-nn-t/attendance-tracker/pkg/response"
)

// AttendanceHandler 缺席记录模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// Act 登记或撤销缺席
// POST /api/v1/attendance
func (h *AttendanceHandler) Act(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AttendanceActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.attendanceSvc.Act(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubjectNotFound):
			response.NotFound(c, 12001, "科目不存在")
		case errors.Is(err, service.ErrDateInvalid):
			response.BadRequest(c, 10006, "日期格式无效，应为 YYYY-MM-DD")
		case errors.Is(err, service.ErrAttendanceActionInvalid):
			response.BadRequest(c, 13001, "不支持的缺席操作")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// ListMine 查询本人缺席记录
// GET /api/v1/attendance?subject_id=xxx
func (h *AttendanceHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.attendanceSvc.ListMine(c.Request.Context(), userID, c.Query("subject_id"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
