package models

import "time"

type Chat struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Message   string    `gorm:"column:message;not null"`
	IsUser    bool      `gorm:"column:isUser;not null"`
	Timestamp time.Time `gorm:"column:timestamp"`
	UserID    uint      `gorm:"column:userId;not null;index"`
	User      User      `gorm:"foreignKey:UserID"`
}

func (Chat) TableName() string {
	return "chats"
}
