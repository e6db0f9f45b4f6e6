package session

import (
	"context"

	"classboard_backend/internal/util"
)

// Policy 会话有效性判定。换策略不需要改任何调用方：
// presence 只看令牌是否在存（沿用原有行为），jwt 校验签名和过期时间。
type Policy interface {
	IsValid(ctx context.Context, token string) bool
}

// PresencePolicy 非空且在存即有效，不做签名或过期校验
type PresencePolicy struct {
	Store Store
}

func (p *PresencePolicy) IsValid(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	_, err := p.Store.Get(ctx, token)
	return err == nil
}

// JWTPolicy 校验 HMAC 签名与过期时间，同时要求会话在存，
// 这样登出后的令牌即使没过期也会失效
type JWTPolicy struct {
	Store  Store
	Secret string
}

func (p *JWTPolicy) IsValid(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	if _, err := util.ParseJWT(token, p.Secret); err != nil {
		return false
	}
	_, err := p.Store.Get(ctx, token)
	return err == nil
}
