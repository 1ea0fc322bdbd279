package like

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/milicamilutinovic/naprednebaze/internal/errors"
	"github.com/milicamilutinovic/naprednebaze/internal/service"
	"github.com/milicamilutinovic/naprednebaze/internal/util"
)

// LikeHandler 处理点赞和好友关系的HTTP请求
type LikeHandler struct {
	graphService *service.GraphService
}

// NewLikeHandler 创建一个新的 LikeHandler 实例
func NewLikeHandler(graphService *service.GraphService) *LikeHandler {
	return &LikeHandler{graphService}
}

type likeRequest struct {
	UserID string `json:"userId" binding:"required,objectid"`
	PostID string `json:"postId" binding:"required,objectid"`
}

// LikePost 创建 LIKES 边，重复点赞是幂等的
func (h *LikeHandler) LikePost(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "缺少用户或帖子标识", err))
		return
	}

	if err := h.graphService.LikePost(c.Request.Context(), req.UserID, req.PostID); err != nil {
		util.Logger.Error("点赞失败", zap.Error(err),
			zap.String("user_id", req.UserID),
			zap.String("post_id", req.PostID))
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, nil, "点赞成功")
}

// UnlikePost 只删除 LIKES 关系，两个端点保持不变
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "缺少用户或帖子标识", err))
		return
	}

	if err := h.graphService.UnlikePost(c.Request.Context(), req.UserID, req.PostID); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, nil, "取消点赞成功")
}

// Befriend 建立单向 FRIEND 边，任一用户不存在时静默跳过
func (h *LikeHandler) Befriend(c *gin.Context) {
	var req struct {
		UserID   string `json:"userId" binding:"required,objectid"`
		FriendID string `json:"friendId" binding:"required,objectid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "缺少用户标识", err))
		return
	}

	created, err := h.graphService.Befriend(c.Request.Context(), req.UserID, req.FriendID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"created": created}, "")
}
