package controller

import (
	"errors"

	"classboard_backend/internal/service"
	"classboard_backend/internal/util"
	"classboard_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LoginRequest 登录表单
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 校验邮箱密码，成功后返回令牌与按角色算好的跳转路径
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭证"
// @Success 200 {object} util.Response{data=service.LoginResult} "登录成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "凭证无效"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		monitoring.LoginCounter.WithLabelValues("failure").Inc()
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, util.ErrLoginFailed.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.LoginCounter.WithLabelValues("success").Inc()
	util.Success(ctx, result)
}

// Logout godoc
// @Summary 退出登录
// @Description 尽力清除会话，无论清除是否成功都返回 /login 跳转
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=object} "退出成功"
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	token := ctx.GetString("token")
	redirect := c.AuthService.Logout(ctx.Request.Context(), token)
	util.Success(ctx, gin.H{"redirect": redirect})
}

// Profile godoc
// @Summary 当前用户
// @Description 返回会话里存的用户记录
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 401 {object} util.Response "未登录"
// @Router /api/profile [get]
// @Security BearerAuth
func (c *AuthController) Profile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
