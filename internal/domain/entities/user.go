package entities

import "time"

// User is a Telegram user of the practice bot.
type User struct {
	ID        int64     // Telegram user ID
	ChatID    int64     // chat the bot talks to
	IsActive  bool      // whether the user has not blocked the bot
	CreatedAt time.Time // first time the user was seen
}

// NewUser creates an active user record.
func NewUser(id, chatID int64) *User {
	return &User{
		ID:        id,
		ChatID:    chatID,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}
