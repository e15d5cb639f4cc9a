package controller

import (
	"career_guide_backend/internal/service"
	"career_guide_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UniversityController struct {
	Service *service.UniversityService
}

func NewUniversityController(svc *service.UniversityService) *UniversityController {
	return &UniversityController{Service: svc}
}

// @Summary 创建大学
// @Tags 大学库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.UniversityRequest true "大学信息"
// @Success 201 {object} util.Response
// @Router /admin/universities [post]
func (c *UniversityController) Create(ctx *gin.Context) {
	var req service.UniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	u, err := c.Service.Create(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, u)
}

// @Summary 获取大学列表
// @Tags 大学库
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /universities [get]
func (c *UniversityController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	us, total, err := c.Service.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": us, "total": total})
}

// @Summary 获取大学详情
// @Tags 大学库
// @Produce json
// @Security BearerAuth
// @Param id path int true "大学ID"
// @Success 200 {object} util.Response
// @Router /universities/{id} [get]
func (c *UniversityController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	u, err := c.Service.Get(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, u)
}

// @Summary 更新大学
// @Tags 大学库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "大学ID"
// @Param body body service.UniversityRequest true "大学信息"
// @Success 200 {object} util.Response
// @Router /admin/universities/{id} [put]
func (c *UniversityController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.UniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	u, err := c.Service.Update(uint(id), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, u)
}

// @Summary 删除大学
// @Tags 大学库
// @Produce json
// @Security BearerAuth
// @Param id path int true "大学ID"
// @Success 200 {object} util.Response
// @Router /admin/universities/{id} [delete]
func (c *UniversityController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.Delete(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary 上传大学 Logo
// @Tags 大学库
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "大学ID"
// @Param file formData file true "Logo 图片"
// @Success 200 {object} util.Response
// @Router /admin/universities/{id}/logo [post]
func (c *UniversityController) UploadLogo(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.Service.UploadLogo(ctx.Request.Context(), uint(id), file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
