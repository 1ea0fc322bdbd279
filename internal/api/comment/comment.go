package comment

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/milicamilutinovic/naprednebaze/internal/errors"
	"github.com/milicamilutinovic/naprednebaze/internal/model"
	"github.com/milicamilutinovic/naprednebaze/internal/service"
	"github.com/milicamilutinovic/naprednebaze/internal/util"
)

// CommentHandler 处理与评论相关的HTTP请求
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler 创建一个新的 CommentHandler 实例
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService}
}

// CreateComment 创建评论，作者和帖子都必须存在
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var commentData struct {
		Content   string `json:"content" binding:"required"`
		AuthorID  string `json:"authorId" binding:"required"`
		PostID    string `json:"postId" binding:"required"`
		CommentID string `json:"commentId"`
	}

	if err := c.ShouldBindJSON(&commentData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的评论数据", err))
		return
	}

	comment := &model.Comment{
		ID:       commentData.CommentID,
		Content:  commentData.Content,
		AuthorID: commentData.AuthorID,
		PostID:   commentData.PostID,
	}

	if err := h.commentService.CreateComment(c.Request.Context(), comment); err != nil {
		util.Logger.Error("创建评论失败", zap.Error(err))
		errors.HandleError(c, err)
		return
	}

	errors.HandleCreated(c, gin.H{"comment": comment}, "评论创建成功")
}

// GetComment 返回评论及其作者和所属帖子
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.commentService.GetCommentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"comment": comment}, "")
}

// GetCommentsByPost 返回帖子下的全部评论
func (h *CommentHandler) GetCommentsByPost(c *gin.Context) {
	comments, err := h.commentService.GetCommentsByPostID(c.Request.Context(), c.Param("postId"))
	if err != nil {
		util.Logger.Error("获取评论列表失败", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "获取评论列表失败", err))
		return
	}
	errors.HandleSuccess(c, gin.H{"comments": comments}, "")
}

// UpdateComment 重写评论内容
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var updateData struct {
		Content string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&updateData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), c.Param("id"), updateData.Content)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"comment": comment}, "评论更新成功")
}

// DeleteComment 删除评论及其关联边
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentService.DeleteComment(c.Request.Context(), c.Param("id")); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleNoContent(c)
}
