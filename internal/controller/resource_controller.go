package controller

import (
	"errors"
	"fmt"

	"classboard_backend/internal/service"
	"classboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// Upload godoc
// @Summary 上传课堂资料
// @Description 教师上传文件到资料标签，视频会探测时长，仅教师可用
// @Tags 课堂
// @Accept  multipart/form-data
// @Produce  json
// @Param   classId path string true "课堂 ID"
// @Param   file formData file true "文件"
// @Param   title formData string false "标题，默认用文件名"
// @Param   category formData string false "分类，默认 Study Materials"
// @Success 201 {object} util.Response{data=model.Resource} "上传成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "课堂不存在"
// @Router /api/classes/{classId}/resources/upload [post]
// @Security BearerAuth
func (c *ResourceController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	uploader := ""
	if user := util.GetUserFromContext(ctx); user != nil {
		uploader = fmt.Sprintf("%s %s", user.FirstName, user.LastName)
	}

	input := service.UploadInput{
		ClassID:  ctx.Param("classId"),
		Title:    ctx.PostForm("title"),
		Category: ctx.PostForm("category"),
		Uploader: uploader,
	}

	resource, err := c.ResourceService.Upload(ctx.Request.Context(), input, header)
	if err != nil {
		if errors.Is(err, util.ErrClassNotFound) {
			util.NotFound(ctx, util.ErrClassNotFound.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, resource)
}
