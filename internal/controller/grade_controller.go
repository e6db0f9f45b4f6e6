package controller

import (
	"classboard_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type GradeController struct {
	GradeService *service.GradeService
}

func NewGradeController(gradeService *service.GradeService) *GradeController {
	return &GradeController{GradeService: gradeService}
}

// Gradebook godoc
// @Summary 成绩册
// @Description 列是计分作业，行是学生，成绩全部取自提交记录，仅教师可见
// @Tags 成绩
// @Produce  json
// @Param   classId path string true "课堂 ID"
// @Success 200 {object} util.Response{data=service.Gradebook} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "课堂不存在"
// @Router /api/classes/{classId}/grades [get]
// @Security BearerAuth
func (c *GradeController) Gradebook(ctx *gin.Context) {
	gradebook, err := c.GradeService.Gradebook(ctx.Param("classId"))
	respondClassData(ctx, gradebook, err)
}
