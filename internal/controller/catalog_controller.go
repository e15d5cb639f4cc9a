package controller

import (
	"career_guide_backend/internal/service"
	"career_guide_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Service *service.CatalogService
}

func NewCatalogController(svc *service.CatalogService) *CatalogController {
	return &CatalogController{Service: svc}
}

// @Summary 学生端：获取测评题目列表
// @Tags 题目目录
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /questions [get]
func (c *CatalogController) GetStudentQuestions(ctx *gin.Context) {
	qs, err := c.Service.ListStudentQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, qs)
}

// @Summary 创建题目（含选项）
// @Tags 题目目录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuestionRequest true "题目信息"
// @Success 201 {object} util.Response
// @Router /admin/questions [post]
func (c *CatalogController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, q)
}

// @Summary 获取题目列表
// @Tags 题目目录
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /admin/questions [get]
func (c *CatalogController) ListQuestions(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	qs, total, err := c.Service.ListQuestions(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": qs, "total": total})
}

// @Summary 获取题目详情
// @Tags 题目目录
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /admin/questions/{id} [get]
func (c *CatalogController) GetQuestion(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	q, err := c.Service.GetQuestion(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, q)
}

// @Summary 更新题目
// @Tags 题目目录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Param body body service.QuestionRequest true "题目信息"
// @Success 200 {object} util.Response
// @Router /admin/questions/{id} [put]
func (c *CatalogController) UpdateQuestion(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.UpdateQuestion(uint(id), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, q)
}

// @Summary 删除题目
// @Tags 题目目录
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /admin/questions/{id} [delete]
func (c *CatalogController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteQuestion(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary 为题目新增选项
// @Tags 题目目录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Param body body service.OptionRequest true "选项信息"
// @Success 201 {object} util.Response
// @Router /admin/questions/{id}/options [post]
func (c *CatalogController) AddOption(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.OptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	o, err := c.Service.AddOption(uint(id), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, o)
}

// @Summary 删除选项
// @Tags 题目目录
// @Produce json
// @Security BearerAuth
// @Param id path int true "选项ID"
// @Success 200 {object} util.Response
// @Router /admin/options/{id} [delete]
func (c *CatalogController) DeleteOption(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteOption(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary 获取维度列表
// @Tags 题目目录
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /aptitudes [get]
func (c *CatalogController) ListAptitudes(ctx *gin.Context) {
	as, err := c.Service.ListAptitudes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, as)
}

// @Summary 创建维度
// @Tags 题目目录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.AptitudeRequest true "维度信息"
// @Success 201 {object} util.Response
// @Router /admin/aptitudes [post]
func (c *CatalogController) CreateAptitude(ctx *gin.Context) {
	var req service.AptitudeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.CreateAptitude(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, a)
}

// @Summary 更新维度
// @Tags 题目目录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "维度ID"
// @Param body body service.AptitudeRequest true "维度信息"
// @Success 200 {object} util.Response
// @Router /admin/aptitudes/{id} [put]
func (c *CatalogController) UpdateAptitude(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.AptitudeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.UpdateAptitude(uint(id), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, a)
}

// @Summary 删除维度
// @Tags 题目目录
// @Produce json
// @Security BearerAuth
// @Param id path int true "维度ID"
// @Success 200 {object} util.Response
// @Router /admin/aptitudes/{id} [delete]
func (c *CatalogController) DeleteAptitude(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteAptitude(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
