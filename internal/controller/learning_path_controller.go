package controller

import (
	"errors"
	"fmt"

	"smart_learning_path/internal/model"
	"smart_learning_path/internal/repository"
	"smart_learning_path/internal/service"
	"smart_learning_path/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningPathController struct {
	Service *service.PathGeneratorService
}

func NewLearningPathController(svc *service.PathGeneratorService) *LearningPathController {
	return &LearningPathController{Service: svc}
}

// @Summary 生成学习路径
// @Description 根据学习者画像调用模型生成按周划分的学习路径
// @Tags 学习路径
// @Accept json
// @Produce json
// @Param body body model.LearnerProfile true "学习者画像"
// @Success 200 {object} model.LearningPathResponse
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /learning-paths/generate [post]
func (c *LearningPathController) Generate(ctx *gin.Context) {
	var profile model.LearnerProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}

	resp := c.Service.GenerateLearningPath(ctx.Request.Context(), profile)
	if !resp.Success {
		util.InternalServerError(ctx, resp.Message)
		return
	}

	util.Success(ctx, resp)
}

// @Summary 获取学习路径
// @Tags 学习路径
// @Produce json
// @Param id path string true "学习路径ID"
// @Success 200 {object} model.LearningPath
// @Failure 404 {object} util.Response
// @Router /learning-paths/{id} [get]
func (c *LearningPathController) Get(ctx *gin.Context) {
	path, err := c.Service.GetLearningPath(ctx.Request.Context(), ctx.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		util.NotFound(ctx, "Learning path not found")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err, "Failed to load learning path")
		return
	}

	util.Success(ctx, path)
}

// @Summary 学习路径列表
// @Description 按创建顺序返回已保存的学习路径
// @Tags 学习路径
// @Produce json
// @Param limit query int false "数量 (1-100)" default(10)
// @Success 200 {object} model.LearningPathList
// @Failure 400 {object} util.Response
// @Router /learning-paths [get]
func (c *LearningPathController) List(ctx *gin.Context) {
	limit, err := util.ParseLimit(ctx.Query("limit"), util.DefaultListLimit, util.MaxListLimit)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	paths, err := c.Service.ListLearningPaths(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err, "Failed to list learning paths")
		return
	}

	util.Success(ctx, model.LearningPathList{
		Success:       true,
		Count:         len(paths),
		LearningPaths: paths,
	})
}

// @Summary 删除学习路径
// @Tags 学习路径
// @Produce json
// @Param id path string true "学习路径ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /learning-paths/{id} [delete]
func (c *LearningPathController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	removed, err := c.Service.DeleteLearningPath(ctx.Request.Context(), id)
	if err != nil {
		util.LogInternalError(ctx, err, "Failed to delete learning path")
		return
	}
	if !removed {
		util.NotFound(ctx, "Learning path not found")
		return
	}

	util.Message(ctx, fmt.Sprintf("Learning path %s deleted", id))
}
