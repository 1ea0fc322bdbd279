package interfaces

import "context"

// GraphRepository 接口定义了用户和帖子之间关系边的操作
type GraphRepository interface {
	// CreateLike 通过 MERGE 创建 LIKES 边，(user, post) 作为唯一边键，
	// 重复点赞不会产生第二条边；任一端点不存在时返回 ErrNotFound
	CreateLike(ctx context.Context, userID, postID string) error
	// DeleteLike 只删除 LIKES 关系，两个端点保持不变
	DeleteLike(ctx context.Context, userID, postID string) error
	// CreateFriend 创建单向 FRIEND 边；任一用户不存在时静默跳过，
	// 返回值表示边是否真正创建
	CreateFriend(ctx context.Context, userID, friendID string) (bool, error)
}
