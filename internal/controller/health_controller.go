package controller

import (
	"smart_learning_path/internal/service"
	"smart_learning_path/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Service    *service.PathGeneratorService
	APIVersion string
}

func NewHealthController(svc *service.PathGeneratorService, apiVersion string) *HealthController {
	return &HealthController{Service: svc, APIVersion: apiVersion}
}

// @Summary 服务信息
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"message": "Smart Learning Path Generator API",
		"version": c.APIVersion,
		"status":  "running",
	})
}

// @Summary 健康检查
// @Description 检查服务及各组件状态
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "healthy",
		"components": gin.H{
			"store": c.Service.StoreMode(),
			"cache": c.Service.CacheStatus(),
		},
	})
}
