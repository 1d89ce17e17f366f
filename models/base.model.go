package models

import "time"

// Timestamps is embedded by every persisted entity. GORM fills both
// fields by field-name convention on create and update.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is a generic response body for operations with no payload.
type Message struct {
	Message string `json:"message"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type NewPassword struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=40"`
}
