package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTokenRoundTrip 测试令牌签发后能解析出同样的身份信息
func TestTokenRoundTrip(t *testing.T) {
	claims := SessionClaims{
		UserID:   "u-1",
		Username: "alice",
		Email:    "alice@x.com",
	}

	token, err := GenerateToken(claims)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)
	assert.Equal(t, "alice", parsed.Username)
	assert.Equal(t, "alice@x.com", parsed.Email)
}

// TestValidateTokenEmpty 测试空令牌被拒绝
func TestValidateTokenEmpty(t *testing.T) {
	_, err := ValidateToken("")
	assert.Error(t, err)
}

// TestValidateTokenGarbage 测试无法解析的令牌被拒绝
func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

// TestGenerateUniqueFilename 测试生成的文件名保留扩展名且带时间戳
func TestGenerateUniqueFilename(t *testing.T) {
	name := GenerateUniqueFilename("avatar.png")
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.True(t, strings.HasPrefix(name, "avatar_"))

	other := GenerateUniqueFilename("noext")
	assert.True(t, strings.HasPrefix(other, "noext_"))
}
