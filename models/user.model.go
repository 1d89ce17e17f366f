package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	UserName       *string   `json:"user_name" gorm:"uniqueIndex;size:255"`
	IsActive       bool      `json:"is_active" gorm:"not null"`
	IsSuperuser    bool      `json:"is_superuser" gorm:"not null"`
	HashedPassword string    `json:"-" gorm:"not null"`
	Timestamps
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserCreate is the admin-facing creation payload.
type UserCreate struct {
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,min=8,max=40"`
	UserName    *string `json:"user_name" validate:"omitempty,max=255"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

// UserRegister is the open signup payload. No role or active flags.
type UserRegister struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=40"`
	UserName *string `json:"user_name" validate:"omitempty,max=255"`
}

// UserUpdate carries optional fields only. A nil field is left untouched.
type UserUpdate struct {
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Password    *string `json:"password" validate:"omitempty,min=8,max=40"`
	UserName    *string `json:"user_name" validate:"omitempty,max=255"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

type UserUpdateMe struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	UserName *string `json:"user_name" validate:"omitempty,max=255"`
}

type UpdatePassword struct {
	CurrentPassword string `json:"current_password" validate:"required,min=8,max=40"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=40"`
}

// PrivateUserCreate is the payload of the local-environment-only user
// endpoint used by end to end test setups.
type PrivateUserCreate struct {
	Email      string `json:"email" validate:"required,email,max=255"`
	Password   string `json:"password" validate:"required,min=8,max=40"`
	UserName   string `json:"user_name" validate:"required,max=255"`
	IsVerified bool   `json:"is_verified"`
}

type UserPublic struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	UserName    *string   `json:"user_name"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
}

type UsersPublic struct {
	Data  []UserPublic `json:"data"`
	Count *int64       `json:"count"`
}

func (u *User) ToPublic() UserPublic {
	return UserPublic{
		ID:          u.ID,
		Email:       u.Email,
		UserName:    u.UserName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}
