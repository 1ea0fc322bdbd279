package interfaces

import (
	"context"

	"github.com/milicamilutinovic/naprednebaze/internal/model"
)

// PostRepository 接口定义了帖子仓库应该实现的方法
type PostRepository interface {
	// Create 在单条查询中匹配作者并创建帖子节点和 CREATED 边，
	// 作者不存在时返回 ErrNotFound 且不写入任何节点
	Create(ctx context.Context, post *model.Post) error
	// FindByID 返回帖子及其作者信息
	FindByID(ctx context.Context, id string) (*model.Post, error)
	FindAll(ctx context.Context) ([]*model.Post, error)
	FindByAuthor(ctx context.Context, userID string) ([]*model.Post, error)
	// Update 一次性重写 caption、imageURL 和 likeCount
	Update(ctx context.Context, post *model.Post) error
	// Delete 执行 DETACH DELETE，同时移除 CREATED、LIKES、BELONGS_TO 等关联边
	Delete(ctx context.Context, id string) error
}
