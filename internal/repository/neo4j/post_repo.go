package neo4j

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/milicamilutinovic/naprednebaze/internal/model"
	"github.com/milicamilutinovic/naprednebaze/internal/repository/interfaces"
	"github.com/milicamilutinovic/naprednebaze/internal/util"
)

// postRepository 实现了 PostRepository 接口
type postRepository struct {
	db Runner
}

// NewPostRepository 创建一个新的 postRepository 实例
func NewPostRepository(db Runner) interfaces.PostRepository {
	return &postRepository{db}
}

// Create 匹配作者并在同一条查询中创建帖子节点和 CREATED 边。
// 作者不存在时 MATCH 落空，整条查询不写入任何内容。
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	query := `MATCH (u:User {userId: $userId})
		CREATE (p:Post {postId: $postId, imageURL: $imageURL, caption: $caption,
			createdAt: $createdAt, author: $userId, likeCount: $likeCount})
		CREATE (u)-[:CREATED]->(p)
		RETURN p`
	result, err := r.db.Run(ctx, query, map[string]interface{}{
		"userId":    post.AuthorID,
		"postId":    post.ID,
		"imageURL":  post.ImageURL,
		"caption":   post.Caption,
		"createdAt": post.CreatedAt.Format(time.RFC3339),
		"likeCount": post.LikeCount,
	})
	if err != nil {
		util.Logger.Error("创建帖子节点失败", zap.Error(err))
		return err
	}
	if len(result.Records) == 0 {
		return interfaces.ErrNotFound
	}
	util.Logger.Info("帖子节点创建成功",
		zap.String("post_id", post.ID),
		zap.String("author_id", post.AuthorID))
	return nil
}

// FindByID 返回帖子并通过 CREATED 边解析作者
func (r *postRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	query := `MATCH (u:User)-[:CREATED]->(p:Post {postId: $postId}) RETURN p, u`
	result, err := r.db.Run(ctx, query, map[string]interface{}{"postId": id})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, interfaces.ErrNotFound
	}
	return recordToPost(result.Records[0])
}

// FindAll 返回全部帖子，按创建时间倒序
func (r *postRepository) FindAll(ctx context.Context) ([]*model.Post, error) {
	query := `MATCH (u:User)-[:CREATED]->(p:Post) RETURN p, u ORDER BY p.createdAt DESC`
	return r.findMany(ctx, query, map[string]interface{}{})
}

// FindByAuthor 返回指定作者的全部帖子
func (r *postRepository) FindByAuthor(ctx context.Context, userID string) ([]*model.Post, error) {
	query := `MATCH (u:User {userId: $userId})-[:CREATED]->(p:Post)
		RETURN p, u ORDER BY p.createdAt DESC`
	return r.findMany(ctx, query, map[string]interface{}{"userId": userID})
}

func (r *postRepository) findMany(ctx context.Context, query string, params map[string]interface{}) ([]*model.Post, error) {
	result, err := r.db.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	posts := make([]*model.Post, 0, len(result.Records))
	for _, record := range result.Records {
		post, err := recordToPost(record)
		if err != nil {
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// Update 一次性重写全部可变属性，而不是只写差异字段
func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	query := `MATCH (p:Post {postId: $postId})
		SET p.caption = $caption, p.imageURL = $imageURL, p.likeCount = $likeCount
		RETURN p.postId`
	result, err := r.db.Run(ctx, query, map[string]interface{}{
		"postId":    post.ID,
		"caption":   post.Caption,
		"imageURL":  post.ImageURL,
		"likeCount": post.LikeCount,
	})
	if err != nil {
		util.Logger.Error("更新帖子节点失败", zap.Error(err), zap.String("post_id", post.ID))
		return err
	}
	if len(result.Records) == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

// Delete 删除帖子节点及其所有关联边
func (r *postRepository) Delete(ctx context.Context, id string) error {
	query := `MATCH (p:Post {postId: $postId}) DETACH DELETE p`
	_, err := r.db.Run(ctx, query, map[string]interface{}{"postId": id})
	if err != nil {
		util.Logger.Error("删除帖子节点失败", zap.Error(err), zap.String("post_id", id))
	}
	return err
}

func recordToPost(record *neo4j.Record) (*model.Post, error) {
	postNode, ok := recordNode(record, "p")
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	post := nodeToPost(postNode.Props)
	if userNode, ok := recordNode(record, "u"); ok {
		post.Author = nodeToUser(userNode.Props)
		post.AuthorID = post.Author.ID
	}
	return post, nil
}

func nodeToPost(props map[string]interface{}) *model.Post {
	return &model.Post{
		ID:        propString(props, "postId"),
		ImageURL:  propString(props, "imageURL"),
		Caption:   propString(props, "caption"),
		CreatedAt: propTime(props, "createdAt"),
		AuthorID:  propString(props, "author"),
		LikeCount: propInt(props, "likeCount"),
	}
}
