package model

import "time"

// Comment 结构体表示评论节点。创建时作者和帖子都必须存在，
// 通过 AUTHORED 和 BELONGS_TO 两条边关联。
type Comment struct {
	ID        string    `json:"commentId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	AuthorID  string    `json:"authorId"`
	PostID    string    `json:"postId"`
	Author    *User     `json:"author,omitempty"`
	Post      *Post     `json:"post,omitempty"`
}
