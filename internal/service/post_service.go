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

// PostService 处理与帖子相关的业务逻辑
type PostService struct {
	postRepo interfaces.PostRepository
}

// NewPostService 创建一个新的 PostService 实例
func NewPostService(postRepo interfaces.PostRepository) *PostService {
	return &PostService{postRepo}
}

// CreatePost 创建帖子。作者存在性校验和节点、CREATED 边的写入
// 由仓库层在同一条查询中完成。
func (s *PostService) CreatePost(ctx context.Context, post *model.Post) error {
	post.ID = uuid.NewString()
	post.CreatedAt = time.Now()
	post.LikeCount = 0

	if err := s.postRepo.Create(ctx, post); err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return errors.New(errors.ErrUserNotFound, "author not found")
		}
		return err
	}
	return nil
}

// GetPostByID 返回帖子及其作者信息
func (s *PostService) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return nil, errors.New(errors.ErrPostNotFound, "post not found")
		}
		return nil, err
	}
	return post, nil
}

// ListPosts 返回全部帖子，userID 非空时只返回该作者的帖子
func (s *PostService) ListPosts(ctx context.Context, userID string) ([]*model.Post, error) {
	if userID != "" {
		return s.postRepo.FindByAuthor(ctx, userID)
	}
	return s.postRepo.FindAll(ctx)
}

// UpdatePost 合并更新：提交的字段覆盖原值，未提交的字段保持不变，
// 所有字段随后一次性重写
func (s *PostService) UpdatePost(ctx context.Context, id string, upd *model.PostUpdate) (*model.Post, error) {
	existing, err := s.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := upd.Apply(*existing)
	if err := s.postRepo.Update(ctx, &merged); err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return nil, errors.New(errors.ErrPostNotFound, "post not found")
		}
		return nil, err
	}
	return &merged, nil
}

// DeletePost 删除帖子节点及其所有关联边
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if _, err := s.GetPostByID(ctx, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}
