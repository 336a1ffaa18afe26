package models

import (
	"time"
)

type Role string

const (
	AdminRole    Role = "ADMIN"
	CustomerRole Role = "CUSTOMER"
)

// User is a login account. Admin accounts are seeded by hand; customer
// accounts are provisioned by an admin and referenced from Customer.UserID.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `json:"email" binding:"required,email" gorm:"uniqueIndex"`
	Password  string    `json:"password" binding:"required,min=6"`
	Role      Role      `json:"role" gorm:"type:varchar(20);default:'CUSTOMER'"`
	Enable    bool      `json:"enable"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AccountCreate struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type PasswordUpdate struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
