package model

import "time"

// Post 结构体表示帖子节点。作者通过 CREATED 边解析，
// AuthorID 只保存用户标识。
type Post struct {
	ID        string    `json:"postId"`
	ImageURL  string    `json:"imageURL"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
	AuthorID  string    `json:"author"`
	Author    *User     `json:"authorInfo,omitempty"`
	LikeCount int       `json:"likeCount"`
}

// PostUpdate 表示帖子的部分更新请求，nil 字段保持原值
type PostUpdate struct {
	Caption   *string `json:"caption"`
	ImageURL  *string `json:"imageURL"`
	LikeCount *int    `json:"likeCount"`
}

// Apply 将更新合并到已有记录上，返回合并后的新记录
func (p *PostUpdate) Apply(existing Post) Post {
	merged := existing
	if p.Caption != nil {
		merged.Caption = *p.Caption
	}
	if p.ImageURL != nil {
		merged.ImageURL = *p.ImageURL
	}
	if p.LikeCount != nil {
		merged.LikeCount = *p.LikeCount
	}
	return merged
}
