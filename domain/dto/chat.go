package dto

import "time"

type CreateChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
	IsUser  bool   `json:"isUser"`
}

type ChatResponse struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
	UserID    uint      `json:"userId"`
}
