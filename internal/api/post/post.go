package post

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

// PostHandler 处理与帖子相关的HTTP请求
type PostHandler struct {
	postService *service.PostService
	storage     storage.Storage
}

// NewPostHandler 创建一个新的 PostHandler 实例
func NewPostHandler(postService *service.PostService, storage storage.Storage) *PostHandler {
	return &PostHandler{postService, storage}
}

// AddPost JSON 创建路径：作者ID由请求体提供
func (h *PostHandler) AddPost(c *gin.Context) {
	var postData struct {
		Author   string `json:"author" binding:"required"`
		Caption  string `json:"caption"`
		ImageURL string `json:"imageURL"`
	}

	if err := c.ShouldBindJSON(&postData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的帖子数据", err))
		return
	}

	post := &model.Post{
		AuthorID: postData.Author,
		Caption:  postData.Caption,
		ImageURL: postData.ImageURL,
	}

	if err := h.postService.CreatePost(c.Request.Context(), post); err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err))
		errors.HandleError(c, err)
		return
	}

	errors.HandleCreated(c, gin.H{"post": post}, "帖子创建成功")
}

// CreatePost 表单创建路径：图片加说明文字，作者取自会话声明。
// 两条创建路径最终走同一个仓库契约。
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "用户未登录"))
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "缺少图片文件", err))
		return
	}

	caption := c.PostForm("caption")
	if caption == "" {
		errors.HandleError(c, errors.New(errors.ErrValidation, "说明文字不能为空"))
		return
	}

	filename := util.GenerateUniqueFilename(file.Filename)
	path := fmt.Sprintf("posts/%s/%s", userID, filename)

	imageURL, err := h.storage.UploadFile(file, path)
	if err != nil {
		util.Logger.Error("图片上传失败", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "图片上传失败", err))
		return
	}

	post := &model.Post{
		AuthorID: userID,
		Caption:  caption,
		ImageURL: imageURL,
	}

	if err := h.postService.CreatePost(c.Request.Context(), post); err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err))
		errors.HandleError(c, err)
		return
	}

	errors.HandleCreated(c, gin.H{"post": post}, "帖子创建成功")
}

// GetPost 返回帖子及其作者信息
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPostByID(c.Request.Context(), c.Param("postId"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"post": post}, "")
}

// ListPosts 返回全部帖子，userId 查询参数非空时按作者过滤
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context(), c.Query("userId"))
	if err != nil {
		util.Logger.Error("获取帖子列表失败", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "获取帖子列表失败", err))
		return
	}
	errors.HandleSuccess(c, gin.H{"posts": posts}, "")
}

// UpdatePost 合并更新帖子：只提交说明文字时图片路径、作者和
// 点赞数保持不变
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var upd model.PostUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), c.Param("postId"), &upd)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"post": post}, "帖子更新成功")
}

// DeletePost 删除帖子及其所有关联边
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.DeletePost(c.Request.Context(), c.Param("postId")); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleNoContent(c)
}
