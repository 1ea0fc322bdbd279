package user

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/milicamilutinovic/naprednebaze/internal/errors"
	"github.com/milicamilutinovic/naprednebaze/internal/model"
	"github.com/milicamilutinovic/naprednebaze/internal/service"
	"github.com/milicamilutinovic/naprednebaze/internal/storage"
	"github.com/milicamilutinovic/naprednebaze/internal/util"
)

// UserHandler 处理与用户实体相关的HTTP请求
type UserHandler struct {
	userService service.UserServiceInterface
	storage     storage.Storage
}

// NewUserHandler 创建一个新的 UserHandler 实例
func NewUserHandler(userService service.UserServiceInterface, storage storage.Storage) *UserHandler {
	return &UserHandler{userService, storage}
}

// CreateUser 直接创建用户记录，标识符由服务端生成
func (h *UserHandler) CreateUser(c *gin.Context) {
	var createData struct {
		Username       string `json:"username" binding:"required"`
		Email          string `json:"email" binding:"required,email"`
		Password       string `json:"password" binding:"required"`
		FullName       string `json:"fullName"`
		ProfilePicture string `json:"profilePicture"`
		Bio            string `json:"bio"`
	}

	if err := c.ShouldBindJSON(&createData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	user := &model.User{
		Username:       createData.Username,
		Email:          createData.Email,
		PasswordHash:   createData.Password,
		FullName:       createData.FullName,
		ProfilePicture: createData.ProfilePicture,
		Bio:            createData.Bio,
	}

	if err := h.userService.Register(c.Request.Context(), user); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleCreated(c, gin.H{"user": user}, "用户创建成功")
}

// GetUser 按ID获取用户
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"user": user}, "")
}

// UpdateUser 合并更新用户：提交的字段覆盖原值，未提交的字段保持不变
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var upd model.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		util.Logger.Error("更新用户失败", zap.Error(err), zap.String("user_id", c.Param("id")))
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"user": user}, "用户更新成功")
}

// UpdateProfile 表单变体：bio 字段加可选的头像文件，
// 文件先写入存储后端，再把路径存到用户节点上
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id := c.Param("id")
	upd := model.UserUpdate{}

	if bio, ok := c.GetPostForm("bio"); ok {
		upd.Bio = &bio
	}

	if file, err := c.FormFile("image"); err == nil {
		filename := util.GenerateUniqueFilename(file.Filename)
		path := fmt.Sprintf("avatars/%s/%s", id, filename)

		picturePath, err := h.storage.UploadFile(file, path)
		if err != nil {
			util.Logger.Error("上传头像失败", zap.Error(err))
			errors.HandleError(c, errors.Wrap(errors.ErrInternal, "上传头像失败", err))
			return
		}
		upd.ProfilePicture = &picturePath
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, &upd)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"user": user}, "资料更新成功")
}

// DeleteUser 删除用户及其所有关联边
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleNoContent(c)
}

// SearchUsernames 按用户名子串搜索，只返回用户名列表
func (h *UserHandler) SearchUsernames(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		errors.HandleError(c, errors.New(errors.ErrValidation, "缺少查询参数"))
		return
	}

	usernames, err := h.userService.SearchUsernames(c.Request.Context(), query)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "搜索用户名失败", err))
		return
	}
	errors.HandleSuccess(c, gin.H{"usernames": usernames}, "")
}

// Login 旧的邮箱登录变体，不签发会话 Cookie
func (h *UserHandler) Login(c *gin.Context) {
	var loginData struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&loginData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	user, err := h.userService.Login(c.Request.Context(), loginData.Email, loginData.Password)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"user": user}, "登录成功")
}
