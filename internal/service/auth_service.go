package service

import (
	"context"
	"encoding/json"

	"classboard_backend/internal/config"
	"classboard_backend/internal/model"
	"classboard_backend/internal/repository"
	"classboard_backend/internal/session"
	"classboard_backend/internal/util"
	"classboard_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo repository.UserRepository
	Store    session.Store
	Cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, store session.Store, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Store:    store,
		Cfg:      cfg,
	}
}

// LoginResult 登录成功的返回：令牌、用户记录和按角色算好的跳转路径
type LoginResult struct {
	Token    string      `json:"token"`
	User     *model.User `json:"user"`
	Redirect string      `json:"redirect"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	// 并发登录不做互斥，单键写入本身是原子的，后写的覆盖先写的
	if err := s.Store.Put(ctx, token, userJSON); err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		User:     user,
		Redirect: model.ParseRole(user.Role.RoleName).DashboardPath(),
	}, nil
}

// Logout 尽力而为：本地会话清除必定执行，存储侧报错只记日志，
// 调用方总是拿到 /login 跳转
func (s *AuthService) Logout(ctx context.Context, token string) string {
	if token != "" {
		if err := s.Store.Delete(ctx, token); err != nil {
			logger.Log.Warn("session delete failed during logout", zap.Error(err))
		}
	}
	return "/login"
}

// CurrentUser 从会话存储取当前用户，取不到返回 nil
func (s *AuthService) CurrentUser(ctx context.Context, token string) *model.User {
	userJSON, err := s.Store.Get(ctx, token)
	if err != nil {
		return nil
	}

	var user model.User
	if err := json.Unmarshal(userJSON, &user); err != nil {
		logger.Log.Warn("stored user record is not valid JSON", zap.Error(err))
		return nil
	}
	return &user
}
