package service

import (
	"context"
	stderrors "errors"

	"github.com/milicamilutinovic/naprednebaze/internal/errors"
	"github.com/milicamilutinovic/naprednebaze/internal/repository/interfaces"
)

// GraphService 处理用户和帖子之间的关系边（LIKES、FRIEND）
type GraphService struct {
	graphRepo interfaces.GraphRepository
}

// NewGraphService 创建一个新的 GraphService 实例
func NewGraphService(graphRepo interfaces.GraphRepository) *GraphService {
	return &GraphService{graphRepo}
}

// LikePost 给帖子点赞。(user, post) 是唯一边键，重复点赞是幂等的。
func (s *GraphService) LikePost(ctx context.Context, userID, postID string) error {
	if userID == "" || postID == "" {
		return errors.New(errors.ErrValidation, "user id and post id are required")
	}
	if err := s.graphRepo.CreateLike(ctx, userID, postID); err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return errors.New(errors.ErrResourceNotFound, "user or post not found")
		}
		return err
	}
	return nil
}

// UnlikePost 取消点赞，只删除关系，端点保持不变
func (s *GraphService) UnlikePost(ctx context.Context, userID, postID string) error {
	if userID == "" || postID == "" {
		return errors.New(errors.ErrValidation, "user id and post id are required")
	}
	return s.graphRepo.DeleteLike(ctx, userID, postID)
}

// Befriend 在两个用户之间建立单向 FRIEND 边。
// 任一用户不存在时静默跳过，返回值表示边是否真正创建。
func (s *GraphService) Befriend(ctx context.Context, userID, friendID string) (bool, error) {
	if userID == "" || friendID == "" {
		return false, errors.New(errors.ErrValidation, "both user ids are required")
	}
	if userID == friendID {
		return false, errors.New(errors.ErrValidation, "cannot befriend yourself")
	}
	return s.graphRepo.CreateFriend(ctx, userID, friendID)
}
