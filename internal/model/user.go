package model

import "time"

// User 结构体表示用户节点
type User struct {
	ID             string    `json:"userId"`
	Username       string    `json:"username"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"` // 密码不应在JSON中暴露
	ProfilePicture string    `json:"profilePicture"`
	Bio            string    `json:"bio"`
	CreatedAt      time.Time `json:"createdAt"`
	IsAdmin        bool      `json:"isAdmin"`
}

// UserUpdate 表示用户的部分更新请求，nil 字段保持原值
type UserUpdate struct {
	Username       *string `json:"username"`
	FullName       *string `json:"fullName"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	ProfilePicture *string `json:"profilePicture"`
	Bio            *string `json:"bio"`
	IsAdmin        *bool   `json:"isAdmin"`
}

// Apply 将更新合并到已有记录上，返回合并后的新记录
func (u *UserUpdate) Apply(existing User) User {
	merged := existing
	if u.Username != nil {
		merged.Username = *u.Username
	}
	if u.FullName != nil {
		merged.FullName = *u.FullName
	}
	if u.Email != nil {
		merged.Email = *u.Email
	}
	if u.Password != nil {
		merged.PasswordHash = *u.Password
	}
	if u.ProfilePicture != nil {
		merged.ProfilePicture = *u.ProfilePicture
	}
	if u.Bio != nil {
		merged.Bio = *u.Bio
	}
	if u.IsAdmin != nil {
		merged.IsAdmin = *u.IsAdmin
	}
	return merged
}
