package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestUserUpdateApply 测试 nil 字段保持原值，非 nil 字段覆盖
func TestUserUpdateApply(t *testing.T) {
	existing := User{
		ID:           "u-1",
		Username:     "alice",
		FullName:     "Alice A",
		Email:        "alice@x.com",
		PasswordHash: "secret",
		Bio:          "old bio",
	}

	bio := "new bio"
	email := "alice@y.com"
	upd := UserUpdate{Bio: &bio, Email: &email}

	merged := upd.Apply(existing)
	assert.Equal(t, "alice", merged.Username)
	assert.Equal(t, "new bio", merged.Bio)
	assert.Equal(t, "alice@y.com", merged.Email)
	assert.Equal(t, "secret", merged.PasswordHash)

	// 原记录不被修改
	assert.Equal(t, "old bio", existing.Bio)
}

// TestUserUpdateApplyEmpty 测试空更新是恒等操作
func TestUserUpdateApplyEmpty(t *testing.T) {
	existing := User{ID: "u-1", Username: "alice", IsAdmin: true}

	merged := (&UserUpdate{}).Apply(existing)
	assert.Equal(t, existing, merged)
}

// TestPostUpdateApply 测试帖子合并更新
func TestPostUpdateApply(t *testing.T) {
	existing := Post{
		ID:        "p-1",
		ImageURL:  "http://x/a.png",
		Caption:   "old",
		LikeCount: 3,
	}

	caption := "new"
	likes := 4
	merged := (&PostUpdate{Caption: &caption, LikeCount: &likes}).Apply(existing)
	assert.Equal(t, "new", merged.Caption)
	assert.Equal(t, 4, merged.LikeCount)
	assert.Equal(t, "http://x/a.png", merged.ImageURL)
}

// TestUserPasswordNotSerialized 测试口令字段不出现在 JSON 输出里
func TestUserPasswordNotSerialized(t *testing.T) {
	data, err := json.Marshal(User{Username: "alice", PasswordHash: "secret"})
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), "alice")
}
