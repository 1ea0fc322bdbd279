package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/milicamilutinovic/naprednebaze/internal/errors"
	"github.com/milicamilutinovic/naprednebaze/internal/model"
	"github.com/milicamilutinovic/naprednebaze/internal/repository/interfaces"
	"github.com/milicamilutinovic/naprednebaze/internal/util"
)

// UserServiceInterface 定义用户业务逻辑的方法集合
type UserServiceInterface interface {
	Register(ctx context.Context, user *model.User) error
	Login(ctx context.Context, email, password string) (*model.User, error)
	LoginByUsername(ctx context.Context, username, password string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, upd *model.UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
	SearchUsernames(ctx context.Context, query string) ([]string, error)
}

// UserService 处理与用户相关的业务逻辑
type UserService struct {
	userRepo     interfaces.UserRepository
	emailService *EmailService
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(userRepo interfaces.UserRepository) *UserService {
	return &UserService{
		userRepo:     userRepo,
		emailService: NewEmailService(),
	}
}

// Register 注册新用户。标识符由服务端生成，用户名和邮箱
// 必须在写入之前确认未被占用。
func (s *UserService) Register(ctx context.Context, user *model.User) error {
	taken, err := s.isUsernameTaken(ctx, user.Username)
	if err != nil {
		return err
	}
	if taken {
		return errors.New(errors.ErrUserExists, "username already exists")
	}

	taken, err = s.isEmailTaken(ctx, user.Email)
	if err != nil {
		return err
	}
	if taken {
		return errors.New(errors.ErrUserExists, "email already exists")
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.IsAdmin = false

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	// 发送欢迎邮件，失败只记录日志
	s.emailService.SendWelcomeEmail(user.Email, user.Username)

	util.Logger.Info("用户注册成功", zap.String("user_id", user.ID))
	return nil
}

// Login 通过邮箱登录
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return nil, errors.New(errors.ErrInvalidCredentials, "invalid email or password")
		}
		return nil, err
	}
	return s.checkPassword(user, password)
}

// LoginByUsername 通过用户名登录，供会话网关使用
func (s *UserService) LoginByUsername(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return nil, errors.New(errors.ErrInvalidCredentials, "invalid username or password")
		}
		return nil, err
	}
	return s.checkPassword(user, password)
}

// checkPassword 做明文口令比较。
// TODO: 上线前换成加盐哈希（bcrypt）比较，现有数据集仍是明文
func (s *UserService) checkPassword(user *model.User, password string) (*model.User, error) {
	if user.PasswordHash != password {
		util.Logger.Warn("登录失败，口令不匹配", zap.String("user_id", user.ID))
		return nil, errors.New(errors.ErrInvalidCredentials, "invalid credentials")
	}
	return user, nil
}

// GetUserByID 通过ID获取用户信息
func (s *UserService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return nil, errors.New(errors.ErrUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return user, nil
}

// UpdateUser 合并更新用户信息：提交的字段覆盖原值，
// 未提交的字段保持不变
func (s *UserService) UpdateUser(ctx context.Context, id string, upd *model.UserUpdate) (*model.User, error) {
	existing, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := upd.Apply(*existing)
	if err := s.userRepo.Update(ctx, &merged); err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return nil, errors.New(errors.ErrUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}
	return &merged, nil
}

// DeleteUser 删除用户节点及其所有关联边
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.GetUserByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// SearchUsernames 按子串匹配用户名
func (s *UserService) SearchUsernames(ctx context.Context, query string) ([]string, error) {
	return s.userRepo.SearchUsernames(ctx, query)
}

func (s *UserService) isUsernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *UserService) isEmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
