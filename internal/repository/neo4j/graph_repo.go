package neo4j

import (
	"context"

	"go.uber.org/zap"

	"github.com/milicamilutinovic/naprednebaze/internal/repository/interfaces"
	"github.com/milicamilutinovic/naprednebaze/internal/util"
)

// graphRepository 实现了 GraphRepository 接口，负责 LIKES 和 FRIEND 边
type graphRepository struct {
	db Runner
}

// NewGraphRepository 创建一个新的 graphRepository 实例
func NewGraphRepository(db Runner) interfaces.GraphRepository {
	return &graphRepository{db}
}

// CreateLike 用 MERGE 建立 LIKES 边，(user, post) 是唯一边键，
// 重复点赞不会产生第二条边。点赞数在同一条查询里按边数重算。
func (r *graphRepository) CreateLike(ctx context.Context, userID, postID string) error {
	query := `MATCH (u:User {userId: $userId}), (p:Post {postId: $postId})
		MERGE (u)-[:LIKES]->(p)
		WITH p
		MATCH (:User)-[l:LIKES]->(p)
		WITH p, count(l) AS likes
		SET p.likeCount = likes
		RETURN likes`
	result, err := r.db.Run(ctx, query, map[string]interface{}{
		"userId": userID,
		"postId": postID,
	})
	if err != nil {
		util.Logger.Error("创建 LIKES 边失败", zap.Error(err))
		return err
	}
	if len(result.Records) == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

// DeleteLike 只删除 LIKES 关系本身，两个端点保持不变。
// 边不存在时视为无操作。
func (r *graphRepository) DeleteLike(ctx context.Context, userID, postID string) error {
	query := `MATCH (u:User {userId: $userId})-[r:LIKES]->(p:Post {postId: $postId})
		DELETE r
		WITH p
		OPTIONAL MATCH (:User)-[l:LIKES]->(p)
		WITH p, count(l) AS likes
		SET p.likeCount = likes
		RETURN likes`
	_, err := r.db.Run(ctx, query, map[string]interface{}{
		"userId": userID,
		"postId": postID,
	})
	if err != nil {
		util.Logger.Error("删除 LIKES 边失败", zap.Error(err))
	}
	return err
}

// CreateFriend 在两个用户之间建立单向 FRIEND 边。
// 任一用户不存在时 MATCH 落空，静默跳过，返回 false。
func (r *graphRepository) CreateFriend(ctx context.Context, userID, friendID string) (bool, error) {
	query := `MATCH (a:User {userId: $userId}), (b:User {userId: $friendId})
		MERGE (a)-[:FRIEND]->(b)
		RETURN b.userId`
	result, err := r.db.Run(ctx, query, map[string]interface{}{
		"userId":   userID,
		"friendId": friendID,
	})
	if err != nil {
		util.Logger.Error("创建 FRIEND 边失败", zap.Error(err))
		return false, err
	}
	return len(result.Records) > 0, nil
}
