package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/an-nn-t/attendance-tracker/internal/dto"
	"github.com/an-nn-t/attendance-tracker/internal/service"
	"github.com/an-nn-t/attendance-tracker/pkg/response"
)

// GradeHandler 成绩模块 HTTP 处理器
type GradeHandler struct {
	gradeSvc service.GradeService
}

// NewGradeHandler 创建 GradeHandler
func NewGradeHandler(gradeSvc service.GradeService) *GradeHandler {
	return &GradeHandler{gradeSvc: gradeSvc}
}

// Upsert 录入或订正测验成绩 / 平常点
// POST /api/v1/grades
func (h *GradeHandler) Upsert(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.gradeSvc.Upsert(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrSubjectNotFound):
			response.NotFound(c, 12001, "科目不存在")
		case errors.Is(err, service.ErrGradeFieldsMissing):
			response.BadRequest(c, 14001, "成绩录入缺少必要字段")
		case errors.Is(err, service.ErrScoreOutOfRange):
			response.BadRequest(c, 14002, "分数必须在 0-100 之间")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// ListMine 查询本人测验成绩
// GET /api/v1/grades?subject_id=xxx
func (h *GradeHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.gradeSvc.ListMine(c.Request.Context(), userID, c.Query("subject_id"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetMyParticipation 查询本人平常点
// GET /api/v1/grades/participation?subject_id=xxx
func (h *GradeHandler) GetMyParticipation(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	subjectID := c.Query("subject_id")
	if subjectID == "" {
		response.BadRequest(c, 10001, "subject_id 不能为空")
		return
	}

	result, err := h.gradeSvc.GetMyParticipation(c.Request.Context(), userID, subjectID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
