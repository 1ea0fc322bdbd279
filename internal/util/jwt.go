package util

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/milicamilutinovic/naprednebaze/config"
)

// SessionClaims 会话中携带的用户身份信息
type SessionClaims struct {
	UserID   string
	Username string
	Email    string
}

// GenerateToken 生成携带身份信息的会话令牌
func GenerateToken(claims SessionClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  claims.UserID,
		"username": claims.Username,
		"email":    claims.Email,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ValidateToken 验证令牌并返回其中的身份信息
func ValidateToken(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, errors.New("令牌为空")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("无效的令牌")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("无效的用户ID")
	}

	session := &SessionClaims{UserID: userID}
	if username, ok := claims["username"].(string); ok {
		session.Username = username
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	return session, nil
}
