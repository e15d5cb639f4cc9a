package controller

import (
	"career_guide_backend/internal/service"
	"career_guide_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CareerController struct {
	Service *service.CareerService
}

func NewCareerController(svc *service.CareerService) *CareerController {
	return &CareerController{Service: svc}
}

// @Summary 创建职业
// @Tags 职业库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CareerRequest true "职业信息"
// @Success 201 {object} util.Response
// @Router /admin/careers [post]
func (c *CareerController) Create(ctx *gin.Context) {
	var req service.CareerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	career, err := c.Service.Create(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, career)
}

// @Summary 获取职业列表
// @Tags 职业库
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /careers [get]
func (c *CareerController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	careers, total, err := c.Service.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": careers, "total": total})
}

// @Summary 获取职业详情
// @Tags 职业库
// @Produce json
// @Security BearerAuth
// @Param id path int true "职业ID"
// @Success 200 {object} util.Response
// @Router /careers/{id} [get]
func (c *CareerController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	career, err := c.Service.Get(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, career)
}

// @Summary 更新职业
// @Tags 职业库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "职业ID"
// @Param body body service.CareerRequest true "职业信息"
// @Success 200 {object} util.Response
// @Router /admin/careers/{id} [put]
func (c *CareerController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.CareerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	career, err := c.Service.Update(uint(id), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, career)
}

// @Summary 删除职业
// @Tags 职业库
// @Produce json
// @Security BearerAuth
// @Param id path int true "职业ID"
// @Success 200 {object} util.Response
// @Router /admin/careers/{id} [delete]
func (c *CareerController) Delete(ctx *gin.Context) {
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
