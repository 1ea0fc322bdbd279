package neo4j

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/milicamilutinovic/naprednebaze/internal/model"
	"github.com/milicamilutinovic/naprednebaze/internal/repository/interfaces"
	"github.com/milicamilutinovic/naprednebaze/internal/util"
)

// userRepository 实现了 UserRepository 接口
type userRepository struct {
	db Runner
}

// NewUserRepository 创建一个新的 userRepository 实例
func NewUserRepository(db Runner) interfaces.UserRepository {
	return &userRepository{db}
}

// Create 创建一个新的用户节点
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `CREATE (u:User {userId: $userId, username: $username, fullName: $fullName,
		email: $email, passwordHash: $passwordHash, profilePicture: $profilePicture,
		bio: $bio, createdAt: $createdAt, isAdmin: $isAdmin})`
	_, err := r.db.Run(ctx, query, map[string]interface{}{
		"userId":         user.ID,
		"username":       user.Username,
		"fullName":       user.FullName,
		"email":          user.Email,
		"passwordHash":   user.PasswordHash,
		"profilePicture": user.ProfilePicture,
		"bio":            user.Bio,
		"createdAt":      user.CreatedAt.Format(time.RFC3339),
		"isAdmin":        user.IsAdmin,
	})
	if err != nil {
		util.Logger.Error("创建用户节点失败", zap.Error(err))
		return err
	}
	util.Logger.Info("用户节点创建成功", zap.String("user_id", user.ID))
	return nil
}

// FindByID 通过ID查找用户
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, `MATCH (u:User {userId: $value}) RETURN u`, id)
}

// FindByUsername 通过用户名查找用户
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, `MATCH (u:User {username: $value}) RETURN u`, username)
}

// FindByEmail 通过邮箱查找用户
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `MATCH (u:User {email: $value}) RETURN u`, email)
}

func (r *userRepository) findOne(ctx context.Context, query, value string) (*model.User, error) {
	result, err := r.db.Run(ctx, query, map[string]interface{}{"value": value})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, interfaces.ErrNotFound
	}
	node, ok := recordNode(result.Records[0], "u")
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return nodeToUser(node.Props), nil
}

// Update 重写用户节点的全部可变属性
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	query := `MATCH (u:User {userId: $userId})
		SET u.username = $username, u.fullName = $fullName, u.email = $email,
			u.passwordHash = $passwordHash, u.profilePicture = $profilePicture,
			u.bio = $bio, u.isAdmin = $isAdmin
		RETURN u.userId`
	result, err := r.db.Run(ctx, query, map[string]interface{}{
		"userId":         user.ID,
		"username":       user.Username,
		"fullName":       user.FullName,
		"email":          user.Email,
		"passwordHash":   user.PasswordHash,
		"profilePicture": user.ProfilePicture,
		"bio":            user.Bio,
		"isAdmin":        user.IsAdmin,
	})
	if err != nil {
		util.Logger.Error("更新用户节点失败", zap.Error(err), zap.String("user_id", user.ID))
		return err
	}
	if len(result.Records) == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

// Delete 删除用户节点及其所有关联边
func (r *userRepository) Delete(ctx context.Context, id string) error {
	query := `MATCH (u:User {userId: $userId}) DETACH DELETE u`
	_, err := r.db.Run(ctx, query, map[string]interface{}{"userId": id})
	if err != nil {
		util.Logger.Error("删除用户节点失败", zap.Error(err), zap.String("user_id", id))
	}
	return err
}

// SearchUsernames 按子串匹配用户名，区分大小写
func (r *userRepository) SearchUsernames(ctx context.Context, query string) ([]string, error) {
	cypher := `MATCH (u:User) WHERE u.username CONTAINS $query RETURN u.username AS username`
	result, err := r.db.Run(ctx, cypher, map[string]interface{}{"query": query})
	if err != nil {
		return nil, err
	}
	usernames := make([]string, 0, len(result.Records))
	for _, record := range result.Records {
		if value, ok := record.Get("username"); ok {
			if username, ok := value.(string); ok {
				usernames = append(usernames, username)
			}
		}
	}
	return usernames, nil
}

func nodeToUser(props map[string]interface{}) *model.User {
	return &model.User{
		ID:             propString(props, "userId"),
		Username:       propString(props, "username"),
		FullName:       propString(props, "fullName"),
		Email:          propString(props, "email"),
		PasswordHash:   propString(props, "passwordHash"),
		ProfilePicture: propString(props, "profilePicture"),
		Bio:            propString(props, "bio"),
		CreatedAt:      propTime(props, "createdAt"),
		IsAdmin:        propBool(props, "isAdmin"),
	}
}
