package controller

import (
	"classboard_backend/internal/service"
	"classboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// StudentDashboard godoc
// @Summary 学生首页
// @Description 课程卡片与按截止时间排序的待办作业
// @Tags 首页
// @Produce  json
// @Success 200 {object} util.Response{data=service.StudentDashboard} "成功"
// @Failure 401 {object} util.Response "未登录"
// @Router /api/student-dashboard [get]
// @Security BearerAuth
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	data, err := c.DashboardService.StudentDashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, data)
}

// TeacherDashboard godoc
// @Summary 教师首页
// @Description 名下课程与待批改提交数，仅教师可见
// @Tags 首页
// @Produce  json
// @Success 200 {object} util.Response{data=service.TeacherDashboard} "成功"
// @Failure 401 {object} util.Response "未登录"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/teacher-dashboard [get]
// @Security BearerAuth
func (c *DashboardController) TeacherDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	data, err := c.DashboardService.TeacherDashboard(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, data)
}

// AdminDashboard godoc
// @Summary 管理员首页
// @Description 全目录计数，仅管理员可见
// @Tags 首页
// @Produce  json
// @Success 200 {object} util.Response{data=service.AdminDashboard} "成功"
// @Failure 401 {object} util.Response "未登录"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/admin-dashboard [get]
// @Security BearerAuth
func (c *DashboardController) AdminDashboard(ctx *gin.Context) {
	data, err := c.DashboardService.AdminDashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, data)
}
