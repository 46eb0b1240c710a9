package domain

import "time"

type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateAccountInput struct {
	Username       string
	TelegramChatID *int64
}
