package interfaces

import (
	"context"

	"github.com/milicamilutinovic/naprednebaze/internal/model"
)

// CommentRepository 接口定义了评论仓库应该实现的方法
type CommentRepository interface {
	// Create 在单条查询中匹配作者和帖子并创建评论节点及
	// AUTHORED、BELONGS_TO 两条边；任一端点不存在时返回
	// ErrNotFound 且不写入任何节点或边
	Create(ctx context.Context, comment *model.Comment) error
	// FindByID 返回评论及其作者和所属帖子
	FindByID(ctx context.Context, id string) (*model.Comment, error)
	// FindByPost 返回帖子下的全部评论，附带作者信息
	FindByPost(ctx context.Context, postID string) ([]*model.Comment, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
}
