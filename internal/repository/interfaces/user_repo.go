package interfaces

import (
	"context"
	"errors"

	"github.com/milicamilutinovic/naprednebaze/internal/model"
)

// ErrNotFound 是查询无结果时仓库层统一返回的哨兵错误，
// 用于和真正的存储故障区分开
var ErrNotFound = errors.New("record not found")

// UserRepository 接口定义了用户仓库应该实现的方法
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	// Delete 执行 DETACH DELETE，同时移除所有关联边
	Delete(ctx context.Context, id string) error
	// SearchUsernames 按用户名子串做区分大小写的包含匹配，只返回用户名
	SearchUsernames(ctx context.Context, query string) ([]string, error)
}
