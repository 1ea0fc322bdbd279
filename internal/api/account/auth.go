package account

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/milicamilutinovic/naprednebaze/internal/errors"
	"github.com/milicamilutinovic/naprednebaze/internal/middleware"
	"github.com/milicamilutinovic/naprednebaze/internal/model"
	"github.com/milicamilutinovic/naprednebaze/internal/service"
	"github.com/milicamilutinovic/naprednebaze/internal/util"
)

// AuthHandler 处理会话网关：登录、登出、注册
type AuthHandler struct {
	userService service.UserServiceInterface
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(userService service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{userService}
}

// Register 处理用户注册请求
func (h *AuthHandler) Register(c *gin.Context) {
	var registerData struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		FullName string `json:"fullName"`
		Bio      string `json:"bio"`
	}

	if err := c.ShouldBindJSON(&registerData); err != nil {
		util.Logger.Warn("注册失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	user := &model.User{
		Username:     registerData.Username,
		Email:        registerData.Email,
		PasswordHash: registerData.Password,
		FullName:     registerData.FullName,
		Bio:          registerData.Bio,
	}

	if err := h.userService.Register(c.Request.Context(), user); err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrUserExists {
			util.Logger.Warn("注册失败，用户名或邮箱已存在",
				zap.String("username", user.Username))
			errors.HandleError(c, err)
			return
		}
		util.Logger.Error("注册失败", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "注册失败", err))
		return
	}

	errors.HandleCreated(c, gin.H{
		"user": user,
	}, "注册成功")
}

// Login 处理用户登录：按用户名查找，校验口令后签发会话 Cookie，
// Cookie 中的令牌携带 user_id、username、email 三个身份声明
func (h *AuthHandler) Login(c *gin.Context) {
	var loginData struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&loginData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	user, err := h.userService.LoginByUsername(c.Request.Context(), loginData.Username, loginData.Password)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	token, err := util.GenerateToken(util.SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "生成令牌失败", err))
		return
	}

	c.SetCookie(middleware.AuthCookieName, token, 24*60*60, "/", "", false, true)

	errors.HandleSuccess(c, gin.H{
		"token": token,
		"user":  user,
	}, "登录成功")
}

// Logout 清除会话 Cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	errors.HandleSuccess(c, nil, "已成功登出")
}
