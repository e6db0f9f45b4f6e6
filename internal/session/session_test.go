package session

import (
	"context"
	"testing"
	"time"

	"classboard_backend/internal/model"
	"classboard_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, util.ErrNoSession)

	assert.NoError(t, store.Put(ctx, "tok", []byte(`{"id":1}`)))
	got, err := store.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"id":1}`), got)

	assert.NoError(t, store.Delete(ctx, "tok"))
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, util.ErrNoSession)

	// 删除不存在的键不算错误
	assert.NoError(t, store.Delete(ctx, "tok"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Millisecond)

	assert.NoError(t, store.Put(ctx, "tok", []byte("x")))
	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(ctx, "tok")
	assert.ErrorIs(t, err, util.ErrNoSession)
}

func TestPresencePolicy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	policy := &PresencePolicy{Store: store}

	assert.False(t, policy.IsValid(ctx, ""))
	assert.False(t, policy.IsValid(ctx, "unknown"))

	// 在存即有效，令牌内容无关紧要
	store.Put(ctx, "opaque-token", []byte("{}"))
	assert.True(t, policy.IsValid(ctx, "opaque-token"))

	store.Delete(ctx, "opaque-token")
	assert.False(t, policy.IsValid(ctx, "opaque-token"))
}

func TestJWTPolicy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	policy := &JWTPolicy{Store: store, Secret: "test-secret"}

	user := &model.User{ID: 1, Email: "t@test.test", Role: model.RoleRecord{RoleName: "teacher"}}
	token, err := util.GenerateJWT(user, "test-secret", time.Hour)
	assert.NoError(t, err)

	// 签名合法但不在存
	assert.False(t, policy.IsValid(ctx, token))

	store.Put(ctx, token, []byte("{}"))
	assert.True(t, policy.IsValid(ctx, token))

	// 在存但不是合法 JWT
	store.Put(ctx, "opaque", []byte("{}"))
	assert.False(t, policy.IsValid(ctx, "opaque"))

	// 过期令牌
	expired, err := util.GenerateJWT(user, "test-secret", -time.Hour)
	assert.NoError(t, err)
	store.Put(ctx, expired, []byte("{}"))
	assert.False(t, policy.IsValid(ctx, expired))

	// 登出后即使签名仍然合法也拒绝
	store.Delete(ctx, token)
	assert.False(t, policy.IsValid(ctx, token))
}
