package controller

import (
	"errors"

	"classboard_backend/internal/service"
	"classboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ClassController struct {
	ClassroomService *service.ClassroomService
}

func NewClassController(classroomService *service.ClassroomService) *ClassController {
	return &ClassController{ClassroomService: classroomService}
}

func respondClassData(ctx *gin.Context, data interface{}, err error) {
	if err != nil {
		if errors.Is(err, util.ErrClassNotFound) {
			util.NotFound(ctx, util.ErrClassNotFound.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, data)
}

// ListClasses godoc
// @Summary 课程列表
// @Tags 课堂
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Class} "成功"
// @Failure 401 {object} util.Response "未登录"
// @Router /api/classes [get]
// @Security BearerAuth
func (c *ClassController) ListClasses(ctx *gin.Context) {
	classes, err := c.ClassroomService.ListClasses()
	respondClassData(ctx, classes, err)
}

// GetClass godoc
// @Summary 课堂详情
// @Tags 课堂
// @Produce  json
// @Param   classId path string true "课堂 ID"
// @Success 200 {object} util.Response{data=model.Class} "成功"
// @Failure 404 {object} util.Response "课堂不存在"
// @Router /api/classes/{classId} [get]
// @Security BearerAuth
func (c *ClassController) GetClass(ctx *gin.Context) {
	class, err := c.ClassroomService.GetClass(ctx.Param("classId"))
	respondClassData(ctx, class, err)
}

// Stream godoc
// @Summary 公告流
// @Description 公告带相对时间标签
// @Tags 课堂
// @Produce  json
// @Param   classId path string true "课堂 ID"
// @Success 200 {object} util.Response{data=[]service.StreamItem} "成功"
// @Failure 404 {object} util.Response "课堂不存在"
// @Router /api/classes/{classId}/stream [get]
// @Security BearerAuth
func (c *ClassController) Stream(ctx *gin.Context) {
	items, err := c.ClassroomService.Stream(ctx.Param("classId"))
	respondClassData(ctx, items, err)
}

// Classwork godoc
// @Summary 作业列表
// @Description 作业带截止标签与过期标记
// @Tags 课堂
// @Produce  json
// @Param   classId path string true "课堂 ID"
// @Success 200 {object} util.Response{data=[]service.ClassworkItem} "成功"
// @Failure 404 {object} util.Response "课堂不存在"
// @Router /api/classes/{classId}/classwork [get]
// @Security BearerAuth
func (c *ClassController) Classwork(ctx *gin.Context) {
	items, err := c.ClassroomService.Classwork(ctx.Param("classId"))
	respondClassData(ctx, items, err)
}

// Quizzes godoc
// @Summary 测验列表
// @Description 总分按题目分值合计
// @Tags 课堂
// @Produce  json
// @Param   classId path string true "课堂 ID"
// @Success 200 {object} util.Response{data=[]service.QuizOverview} "成功"
// @Failure 404 {object} util.Response "课堂不存在"
// @Router /api/classes/{classId}/quizzes [get]
// @Security BearerAuth
func (c *ClassController) Quizzes(ctx *gin.Context) {
	items, err := c.ClassroomService.Quizzes(ctx.Param("classId"))
	respondClassData(ctx, items, err)
}

// Discussions godoc
// @Summary 讨论区
// @Tags 课堂
// @Produce  json
// @Param   classId path string true "课堂 ID"
// @Success 200 {object} util.Response{data=[]service.DiscussionView} "成功"
// @Failure 404 {object} util.Response "课堂不存在"
// @Router /api/classes/{classId}/discussions [get]
// @Security BearerAuth
func (c *ClassController) Discussions(ctx *gin.Context) {
	items, err := c.ClassroomService.Discussions(ctx.Param("classId"))
	respondClassData(ctx, items, err)
}

// Resources godoc
// @Summary 资料列表
// @Tags 课堂
// @Produce  json
// @Param   classId path string true "课堂 ID"
// @Success 200 {object} util.Response{data=[]model.Resource} "成功"
// @Failure 404 {object} util.Response "课堂不存在"
// @Router /api/classes/{classId}/resources [get]
// @Security BearerAuth
func (c *ClassController) Resources(ctx *gin.Context) {
	items, err := c.ClassroomService.Resources(ctx.Param("classId"))
	respondClassData(ctx, items, err)
}

// People godoc
// @Summary 成员名单
// @Description 班级教师与学生名单
// @Tags 课堂
// @Produce  json
// @Param   classId path string true "课堂 ID"
// @Success 200 {object} util.Response{data=service.PeopleView} "成功"
// @Failure 404 {object} util.Response "课堂不存在"
// @Router /api/classes/{classId}/people [get]
// @Security BearerAuth
func (c *ClassController) People(ctx *gin.Context) {
	people, err := c.ClassroomService.People(ctx.Param("classId"))
	respondClassData(ctx, people, err)
}
