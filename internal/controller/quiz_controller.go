package controller

import (
	"smart_learning_path/internal/model"
	"smart_learning_path/internal/service"
	"smart_learning_path/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.PathGeneratorService
}

func NewQuizController(svc *service.PathGeneratorService) *QuizController {
	return &QuizController{Service: svc}
}

// @Summary 生成周测验
// @Description 为指定周的主题生成选择题
// @Tags 测验
// @Accept json
// @Produce json
// @Param body body model.QuizRequest true "周次与主题"
// @Success 200 {object} model.Quiz
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /quiz/generate [post]
func (c *QuizController) Generate(ctx *gin.Context) {
	var req model.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}

	quiz, err := c.Service.GenerateQuiz(ctx.Request.Context(), req)
	if err != nil {
		util.InternalServerError(ctx, "Error generating quiz: "+err.Error())
		return
	}

	util.Success(ctx, quiz)
}
