package controller

import (
	"career_guide_backend/internal/service"
	"career_guide_backend/internal/util"
	"career_guide_backend/pkg/monitoring"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	Service *service.TestService
}

func NewTestController(svc *service.TestService) *TestController {
	return &TestController{Service: svc}
}

// @Summary 提交测评答案
// @Description 记录、维度得分与推荐在一次事务内生成，失败整体回滚
// @Tags 职业测评
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SubmitTestRequest true "答案列表"
// @Success 201 {object} util.Response
// @Router /tests [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Submit(user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrEmptySubmission) || errors.Is(err, util.ErrInvalidAnswer) {
			monitoring.TestSubmissionCounter.WithLabelValues("rejected").Inc()
			util.BadRequest(ctx, err.Error())
			return
		}
		monitoring.TestSubmissionCounter.WithLabelValues("failed").Inc()
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.TestSubmissionCounter.WithLabelValues("ok").Inc()
	util.Created(ctx, result)
}

// @Summary 获取测评结果
// @Description 从持久化答案按当前目录重新计分与匹配
// @Tags 职业测评
// @Produce json
// @Security BearerAuth
// @Param id path int true "测评ID"
// @Success 200 {object} util.Response
// @Router /tests/{id}/results [get]
func (c *TestController) GetResults(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	result, err := c.Service.GetResults(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 我的测评历史
// @Tags 职业测评
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /tests [get]
func (c *TestController) ListMyTests(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	tests, total, err := c.Service.ListUserTests(user.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": tests, "total": total})
}
