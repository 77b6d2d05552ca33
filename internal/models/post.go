package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post a status update. Name and Avatar are copied from the author when the post is created.
type Post struct {
	ID       string    `json:"_id" gorm:"primaryKey;size:36"`
	UserID   string    `json:"user" gorm:"size:36;index;not null"`
	Text     string    `json:"text" gorm:"type:text;not null"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Likes    []Like    `json:"likes" gorm:"serializer:json;type:text"`
	Comments []Comment `json:"comments" gorm:"serializer:json;type:text"`
	Date     time.Time `json:"date" gorm:"index"`
}

// Like one user's like. Newest first.
type Like struct {
	User string `json:"user"`
}

// Comment a reply on a post. Newest first.
type Comment struct {
	ID     string    `json:"_id"`
	User   string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// BeforeCreate assigns a generated identifier.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// AfterFind keeps list fields serializing as [] instead of null.
func (p *Post) AfterFind(tx *gorm.DB) error {
	if p.Likes == nil {
		p.Likes = []Like{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
	return nil
}

// HasLike reports whether userID already likes the post.
func (p *Post) HasLike(userID string) bool {
	for _, like := range p.Likes {
		if like.User == userID {
			return true
		}
	}
	return false
}

// FindComment returns the index of the comment with the given id, or -1.
func (p *Post) FindComment(commentID string) int {
	for i, c := range p.Comments {
		if c.ID == commentID {
			return i
		}
	}
	return -1
}
