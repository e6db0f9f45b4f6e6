package controller

import (
	"classboard_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// ClassAnalytics godoc
// @Summary 班级分析
// @Description 出勤率、提交率、成绩分布与学习进度排行，仅教师可见
// @Tags 分析
// @Produce  json
// @Param   classId path string true "课堂 ID"
// @Success 200 {object} util.Response{data=service.ClassAnalytics} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "课堂不存在"
// @Router /api/classes/{classId}/analytics [get]
// @Security BearerAuth
func (c *AnalyticsController) ClassAnalytics(ctx *gin.Context) {
	analytics, err := c.AnalyticsService.Analytics(ctx.Param("classId"))
	respondClassData(ctx, analytics, err)
}
