package service

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/milicamilutinovic/naprednebaze/internal/errors"
	"github.com/milicamilutinovic/naprednebaze/internal/model"
	"github.com/milicamilutinovic/naprednebaze/internal/repository/interfaces"
)

// CommentService 处理与评论相关的业务逻辑
type CommentService struct {
	commentRepo interfaces.CommentRepository
}

// NewCommentService 创建一个新的 CommentService 实例
func NewCommentService(commentRepo interfaces.CommentRepository) *CommentService {
	return &CommentService{commentRepo}
}

// CreateComment 创建评论。作者和帖子的存在性校验与两条边的写入
// 由仓库层在同一条查询中完成，任一端点缺失时不会写入任何内容。
func (s *CommentService) CreateComment(ctx context.Context, comment *model.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	comment.CreatedAt = time.Now()

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return errors.New(errors.ErrResourceNotFound, "author or post not found")
		}
		return err
	}
	return nil
}

// GetCommentByID 返回评论及其作者和所属帖子
func (s *CommentService) GetCommentByID(ctx context.Context, id string) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return nil, errors.New(errors.ErrCommentNotFound, "comment not found")
		}
		return nil, err
	}
	return comment, nil
}

// GetCommentsByPostID 返回帖子下的全部评论
func (s *CommentService) GetCommentsByPostID(ctx context.Context, postID string) ([]*model.Comment, error) {
	return s.commentRepo.FindByPost(ctx, postID)
}

// UpdateComment 重写评论内容
func (s *CommentService) UpdateComment(ctx context.Context, id, content string) (*model.Comment, error) {
	if err := s.commentRepo.UpdateContent(ctx, id, content); err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return nil, errors.New(errors.ErrCommentNotFound, "comment not found")
		}
		return nil, err
	}
	return s.GetCommentByID(ctx, id)
}

// DeleteComment 删除评论节点及其关联边
func (s *CommentService) DeleteComment(ctx context.Context, id string) error {
	if _, err := s.GetCommentByID(ctx, id); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, id)
}
