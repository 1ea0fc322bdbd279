package neo4j

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"

	"github.com/milicamilutinovic/naprednebaze/internal/model"
	"github.com/milicamilutinovic/naprednebaze/internal/repository/interfaces"
)

// fakeRunner 记录下发的 Cypher 和参数，并返回预设的结果
type fakeRunner struct {
	query  string
	params map[string]interface{}
	result *neo4j.EagerResult
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error) {
	f.query = query
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return &neo4j.EagerResult{}, nil
	}
	return f.result, nil
}

func emptyResult() *neo4j.EagerResult {
	return &neo4j.EagerResult{}
}

func singleNodeResult(key string, props map[string]interface{}) *neo4j.EagerResult {
	return &neo4j.EagerResult{
		Keys: []string{key},
		Records: []*neo4j.Record{{
			Keys:   []string{key},
			Values: []interface{}{neo4j.Node{Props: props}},
		}},
	}
}

func singleValueResult(key string, value interface{}) *neo4j.EagerResult {
	return &neo4j.EagerResult{
		Keys: []string{key},
		Records: []*neo4j.Record{{
			Keys:   []string{key},
			Values: []interface{}{value},
		}},
	}
}

// TestCreateLikeUsesMerge 测试点赞用 MERGE 建边：(user, post) 是
// 唯一边键，重复点赞不会创建第二条边
func TestCreateLikeUsesMerge(t *testing.T) {
	runner := &fakeRunner{result: singleValueResult("likes", int64(1))}
	repo := NewGraphRepository(runner)

	err := repo.CreateLike(context.Background(), "u-1", "p-1")
	assert.NoError(t, err)
	assert.Contains(t, runner.query, "MERGE (u)-[:LIKES]->(p)")
	assert.NotContains(t, runner.query, "CREATE (u)-[:LIKES]")
	assert.Equal(t, "u-1", runner.params["userId"])
	assert.Equal(t, "p-1", runner.params["postId"])
}

// TestCreateLikeEndpointMissing 测试任一端点不存在时 MATCH 落空，
// 空结果映射为 ErrNotFound
func TestCreateLikeEndpointMissing(t *testing.T) {
	runner := &fakeRunner{result: emptyResult()}
	repo := NewGraphRepository(runner)

	err := repo.CreateLike(context.Background(), "u-1", "missing")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

// TestDeleteLikeKeepsEndpoints 测试取消点赞只删关系本身
func TestDeleteLikeKeepsEndpoints(t *testing.T) {
	runner := &fakeRunner{result: emptyResult()}
	repo := NewGraphRepository(runner)

	err := repo.DeleteLike(context.Background(), "u-1", "p-1")
	assert.NoError(t, err)
	assert.Contains(t, runner.query, "DELETE r")
	assert.NotContains(t, runner.query, "DETACH DELETE")
}

// TestCreateFriendMissingUser 测试好友端点缺失时不报错，返回未创建
func TestCreateFriendMissingUser(t *testing.T) {
	runner := &fakeRunner{result: emptyResult()}
	repo := NewGraphRepository(runner)

	created, err := repo.CreateFriend(context.Background(), "u-1", "missing")
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Contains(t, runner.query, "MERGE (a)-[:FRIEND]->(b)")
}

// TestPostCreateComposed 测试帖子创建是一条组合查询：匹配作者、
// 创建节点和 CREATED 边在同一条语句里完成
func TestPostCreateComposed(t *testing.T) {
	runner := &fakeRunner{result: singleNodeResult("p", map[string]interface{}{"postId": "p-1"})}
	repo := NewPostRepository(runner)

	post := &model.Post{ID: "p-1", AuthorID: "u-1", Caption: "x", CreatedAt: time.Now()}
	err := repo.Create(context.Background(), post)
	assert.NoError(t, err)
	assert.Contains(t, runner.query, "MATCH (u:User {userId: $userId})")
	assert.Contains(t, runner.query, "CREATE (u)-[:CREATED]->(p)")
	assert.Equal(t, "u-1", runner.params["userId"])
}

// TestPostCreateAuthorMissing 测试作者不存在时空结果映射为 ErrNotFound
func TestPostCreateAuthorMissing(t *testing.T) {
	runner := &fakeRunner{result: emptyResult()}
	repo := NewPostRepository(runner)

	post := &model.Post{ID: "p-1", AuthorID: "missing", CreatedAt: time.Now()}
	err := repo.Create(context.Background(), post)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

// TestCommentCreateComposed 测试评论创建在同一条查询中匹配两个端点
// 并建立 AUTHORED、BELONGS_TO 两条边
func TestCommentCreateComposed(t *testing.T) {
	runner := &fakeRunner{result: singleNodeResult("c", map[string]interface{}{"commentId": "c-1"})}
	repo := NewCommentRepository(runner)

	comment := &model.Comment{ID: "c-1", Content: "x", AuthorID: "u-1", PostID: "p-1", CreatedAt: time.Now()}
	err := repo.Create(context.Background(), comment)
	assert.NoError(t, err)
	assert.Contains(t, runner.query, "MATCH (u:User {userId: $authorId}), (p:Post {postId: $postId})")
	assert.Contains(t, runner.query, "CREATE (u)-[:AUTHORED]->(c)")
	assert.Contains(t, runner.query, "CREATE (c)-[:BELONGS_TO]->(p)")
}

// TestCommentCreateEndpointMissing 测试作者或帖子缺失时空结果映射为
// ErrNotFound，整条查询不写入任何内容
func TestCommentCreateEndpointMissing(t *testing.T) {
	runner := &fakeRunner{result: emptyResult()}
	repo := NewCommentRepository(runner)

	comment := &model.Comment{ID: "c-1", AuthorID: "u-1", PostID: "missing", CreatedAt: time.Now()}
	err := repo.Create(context.Background(), comment)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

// TestDeletesDetach 测试用户、帖子、评论的删除都带着关联边一起删
func TestDeletesDetach(t *testing.T) {
	ctx := context.Background()

	userRunner := &fakeRunner{result: emptyResult()}
	assert.NoError(t, NewUserRepository(userRunner).Delete(ctx, "u-1"))
	assert.Contains(t, userRunner.query, "DETACH DELETE u")

	postRunner := &fakeRunner{result: emptyResult()}
	assert.NoError(t, NewPostRepository(postRunner).Delete(ctx, "p-1"))
	assert.Contains(t, postRunner.query, "DETACH DELETE p")

	commentRunner := &fakeRunner{result: emptyResult()}
	assert.NoError(t, NewCommentRepository(commentRunner).Delete(ctx, "c-1"))
	assert.Contains(t, commentRunner.query, "DETACH DELETE c")
}

// TestUserUpdateMissing 测试更新不存在的用户映射为 ErrNotFound
func TestUserUpdateMissing(t *testing.T) {
	runner := &fakeRunner{result: emptyResult()}
	repo := NewUserRepository(runner)

	err := repo.Update(context.Background(), &model.User{ID: "missing"})
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

// TestFindByIDMapsNode 测试节点属性映射回领域记录
func TestFindByIDMapsNode(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	runner := &fakeRunner{result: singleNodeResult("u", map[string]interface{}{
		"userId":    "u-1",
		"username":  "alice",
		"email":     "alice@x.com",
		"createdAt": created.Format(time.RFC3339),
		"isAdmin":   true,
	})}
	repo := NewUserRepository(runner)

	user, err := repo.FindByID(context.Background(), "u-1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsAdmin)
	assert.True(t, user.CreatedAt.Equal(created))
}

// TestRunErrorPropagates 测试底层查询错误原样向上传递
func TestRunErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	runner := &fakeRunner{err: boom}
	repo := NewUserRepository(runner)

	_, err := repo.FindByID(context.Background(), "u-1")
	assert.ErrorIs(t, err, boom)
}
