package neo4j

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/milicamilutinovic/naprednebaze/internal/model"
	"github.com/milicamilutinovic/naprednebaze/internal/repository/interfaces"
	"github.com/milicamilutinovic/naprednebaze/internal/util"
)

// commentRepository 实现了 CommentRepository 接口
type commentRepository struct {
	db Runner
}

// NewCommentRepository 创建一个新的 commentRepository 实例
func NewCommentRepository(db Runner) interfaces.CommentRepository {
	return &commentRepository{db}
}

// Create 在同一条查询中匹配作者和帖子、创建评论节点并建立
// AUTHORED、BELONGS_TO 两条边。任一端点不存在时 MATCH 落空，
// 不会留下孤立的节点或边。
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `MATCH (u:User {userId: $authorId}), (p:Post {postId: $postId})
		CREATE (c:Comment {commentId: $commentId, content: $content,
			createdAt: $createdAt, authorId: $authorId, postId: $postId})
		CREATE (u)-[:AUTHORED]->(c)
		CREATE (c)-[:BELONGS_TO]->(p)
		RETURN c`
	result, err := r.db.Run(ctx, query, map[string]interface{}{
		"commentId": comment.ID,
		"content":   comment.Content,
		"createdAt": comment.CreatedAt.Format(time.RFC3339),
		"authorId":  comment.AuthorID,
		"postId":    comment.PostID,
	})
	if err != nil {
		util.Logger.Error("创建评论节点失败", zap.Error(err))
		return err
	}
	if len(result.Records) == 0 {
		return interfaces.ErrNotFound
	}
	util.Logger.Info("评论节点创建成功",
		zap.String("comment_id", comment.ID),
		zap.String("post_id", comment.PostID))
	return nil
}

// FindByID 返回评论及其作者和所属帖子
func (r *commentRepository) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	query := `MATCH (u:User)-[:AUTHORED]->(c:Comment {commentId: $commentId})-[:BELONGS_TO]->(p:Post)
		RETURN c, u, p`
	result, err := r.db.Run(ctx, query, map[string]interface{}{"commentId": id})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, interfaces.ErrNotFound
	}

	record := result.Records[0]
	commentNode, ok := recordNode(record, "c")
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	comment := nodeToComment(commentNode.Props)
	if userNode, ok := recordNode(record, "u"); ok {
		comment.Author = nodeToUser(userNode.Props)
		comment.AuthorID = comment.Author.ID
	}
	if postNode, ok := recordNode(record, "p"); ok {
		comment.Post = nodeToPost(postNode.Props)
		comment.PostID = comment.Post.ID
	}
	return comment, nil
}

// FindByPost 返回帖子下的全部评论，附带作者信息
func (r *commentRepository) FindByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	query := `MATCH (u:User)-[:AUTHORED]->(c:Comment)-[:BELONGS_TO]->(p:Post {postId: $postId})
		RETURN c, u ORDER BY c.createdAt`
	result, err := r.db.Run(ctx, query, map[string]interface{}{"postId": postID})
	if err != nil {
		return nil, err
	}
	comments := make([]*model.Comment, 0, len(result.Records))
	for _, record := range result.Records {
		commentNode, ok := recordNode(record, "c")
		if !ok {
			continue
		}
		comment := nodeToComment(commentNode.Props)
		comment.PostID = postID
		if userNode, ok := recordNode(record, "u"); ok {
			comment.Author = nodeToUser(userNode.Props)
			comment.AuthorID = comment.Author.ID
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

// UpdateContent 重写评论内容，时间戳保持不变
func (r *commentRepository) UpdateContent(ctx context.Context, id, content string) error {
	query := `MATCH (c:Comment {commentId: $commentId}) SET c.content = $content RETURN c.commentId`
	result, err := r.db.Run(ctx, query, map[string]interface{}{
		"commentId": id,
		"content":   content,
	})
	if err != nil {
		util.Logger.Error("更新评论节点失败", zap.Error(err), zap.String("comment_id", id))
		return err
	}
	if len(result.Records) == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

// Delete 删除评论节点及其关联边
func (r *commentRepository) Delete(ctx context.Context, id string) error {
	query := `MATCH (c:Comment {commentId: $commentId}) DETACH DELETE c`
	_, err := r.db.Run(ctx, query, map[string]interface{}{"commentId": id})
	if err != nil {
		util.Logger.Error("删除评论节点失败", zap.Error(err), zap.String("comment_id", id))
	}
	return err
}

func nodeToComment(props map[string]interface{}) *model.Comment {
	return &model.Comment{
		ID:        propString(props, "commentId"),
		Content:   propString(props, "content"),
		CreatedAt: propTime(props, "createdAt"),
		AuthorID:  propString(props, "authorId"),
		PostID:    propString(props, "postId"),
	}
}
