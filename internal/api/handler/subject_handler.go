package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/an-nn-t/attendance-tracker/internal/dto"
	"github.com/an-nn-t/attendance-tracker/internal/service"
	apperrors "github.com/an-nn-t/attendance-tracker/pkg/errors"
	"github.com/an-nn-t/attendance-tracker/pkg/response"
)

// SubjectHandler 科目模块 HTTP 处理器
type SubjectHandler struct {
	subjectSvc service.SubjectService
}

// NewSubjectHandler 创建 SubjectHandler
func NewSubjectHandler(subjectSvc service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc}
}

// Create 创建科目
// POST /api/v1/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.subjectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleSubjectError(c, err)
		return
	}

	response.Created(c, result)
}

// List 列出所有科目
// GET /api/v1/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	result, err := h.subjectSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Get 获取单个科目
// GET /api/v1/subjects/:id
func (h *SubjectHandler) Get(c *gin.Context) {
	result, err := h.subjectSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleSubjectError(c, err)
		return
	}

	response.OK(c, result)
}

// Update 更新科目（部分更新）
// PUT /api/v1/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	var req dto.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.subjectSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleSubjectError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete 删除科目
// DELETE /api/v1/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	if err := h.subjectSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleSubjectError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddAdjustment 登记休讲/补讲
// POST /api/v1/subjects/:id/adjustments
func (h *SubjectHandler) AddAdjustment(c *gin.Context) {
	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.subjectSvc.AddAdjustment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleSubjectError(c, err)
		return
	}

	response.Created(c, result)
}

// RemoveAdjustment 删除休讲/补讲记录
// DELETE /api/v1/subjects/:id/adjustments/:adjustment_id
func (h *SubjectHandler) RemoveAdjustment(c *gin.Context) {
	err := h.subjectSvc.RemoveAdjustment(c.Request.Context(), c.Param("id"), c.Param("adjustment_id"))
	if err != nil {
		handleSubjectError(c, err)
		return
	}

	response.OK(c, nil)
}

// ImportAdjustments 从 ICS 文件批量导入休讲/补讲
// POST /api/v1/subjects/:id/adjustments/import
// multipart/form-data, field="file"
func (h *SubjectHandler) ImportAdjustments(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 12005, "请上传 ICS 文件")
		return
	}
	defer file.Close()

	result, err := h.subjectSvc.ImportAdjustments(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		handleSubjectError(c, err)
		return
	}

	response.Created(c, result)
}

func handleSubjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, 12001, "科目不存在")
	case errors.Is(err, service.ErrSubjectConfigInvalid):
		response.BadRequest(c, 12002, "科目配置无效：学分、测验次数须为正，权重和须为 100")
	case errors.Is(err, service.ErrAdjustmentNotFound):
		response.NotFound(c, 12003, "调整记录不存在")
	case errors.Is(err, service.ErrAdjustmentInvalid):
		response.BadRequest(c, 12004, "休讲数不能超过总课时")
	case errors.Is(err, service.ErrDateInvalid):
		response.BadRequest(c, 10006, "日期格式无效，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrICSParseFailed):
		response.BadRequest(c, 12006, "ICS 格式解析失败")
	case errors.Is(err, apperrors.ErrConcurrentUpdate):
		response.Conflict(c, 12007, "科目已被其他请求修改，请刷新后重试")
	default:
		response.InternalError(c)
	}
}
