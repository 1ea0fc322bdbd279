package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/milicamilutinovic/naprednebaze/internal/errors"
	"github.com/milicamilutinovic/naprednebaze/internal/repository/interfaces"
)

// MockGraphRepository 是 GraphRepository 接口的模拟实现
type MockGraphRepository struct {
	mock.Mock
}

func (m *MockGraphRepository) CreateLike(ctx context.Context, userID, postID string) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockGraphRepository) DeleteLike(ctx context.Context, userID, postID string) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockGraphRepository) CreateFriend(ctx context.Context, userID, friendID string) (bool, error) {
	args := m.Called(ctx, userID, friendID)
	return args.Bool(0), args.Error(1)
}

// TestLikePost 测试点赞成功
func TestLikePost(t *testing.T) {
	mockRepo := new(MockGraphRepository)
	service := NewGraphService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CreateLike", ctx, "u-1", "p-1").Return(nil)

	err := service.LikePost(ctx, "u-1", "p-1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestLikePostMissingEndpoint 测试端点缺失时映射为资源不存在错误
func TestLikePostMissingEndpoint(t *testing.T) {
	mockRepo := new(MockGraphRepository)
	service := NewGraphService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CreateLike", ctx, "u-1", "missing").Return(interfaces.ErrNotFound)

	err := service.LikePost(ctx, "u-1", "missing")
	assert.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrResourceNotFound, appErr.Code)
}

// TestLikePostEmptyIDs 测试空标识符在访问仓库之前被拒绝
func TestLikePostEmptyIDs(t *testing.T) {
	mockRepo := new(MockGraphRepository)
	service := NewGraphService(mockRepo)
	ctx := context.Background()

	err := service.LikePost(ctx, "", "p-1")
	assert.Error(t, err)

	err = service.UnlikePost(ctx, "u-1", "")
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "CreateLike", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "DeleteLike", mock.Anything, mock.Anything, mock.Anything)
}

// TestUnlikePost 测试取消点赞，缺失的边不是错误
func TestUnlikePost(t *testing.T) {
	mockRepo := new(MockGraphRepository)
	service := NewGraphService(mockRepo)
	ctx := context.Background()

	mockRepo.On("DeleteLike", ctx, "u-1", "p-1").Return(nil)

	err := service.UnlikePost(ctx, "u-1", "p-1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestBefriend 测试好友边创建
func TestBefriend(t *testing.T) {
	mockRepo := new(MockGraphRepository)
	service := NewGraphService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CreateFriend", ctx, "u-1", "u-2").Return(true, nil)

	created, err := service.Befriend(ctx, "u-1", "u-2")
	assert.NoError(t, err)
	assert.True(t, created)
}

// TestBefriendMissingUser 测试任一用户不存在时静默跳过
func TestBefriendMissingUser(t *testing.T) {
	mockRepo := new(MockGraphRepository)
	service := NewGraphService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CreateFriend", ctx, "u-1", "missing").Return(false, nil)

	created, err := service.Befriend(ctx, "u-1", "missing")
	assert.NoError(t, err)
	assert.False(t, created)
}

// TestBefriendSelf 测试不允许与自己建立好友关系
func TestBefriendSelf(t *testing.T) {
	mockRepo := new(MockGraphRepository)
	service := NewGraphService(mockRepo)
	ctx := context.Background()

	created, err := service.Befriend(ctx, "u-1", "u-1")
	assert.False(t, created)
	assert.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
	mockRepo.AssertNotCalled(t, "CreateFriend", mock.Anything, mock.Anything, mock.Anything)
}

// TestBefriendEmptyIDs 测试空标识符被拒绝
func TestBefriendEmptyIDs(t *testing.T) {
	mockRepo := new(MockGraphRepository)
	service := NewGraphService(mockRepo)
	ctx := context.Background()

	created, err := service.Befriend(ctx, "", "u-2")
	assert.False(t, created)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "CreateFriend", mock.Anything, mock.Anything, mock.Anything)
}
