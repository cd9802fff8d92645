package model

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleMonitor Role = "monitor"
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Organization string     `json:"organization,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// SessionSnapshot is the durable slice of the auth state. IsLoading is
// deliberately absent: it is never persisted.
type SessionSnapshot struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"is_authenticated"`
}

// UserUpdate carries partial profile changes; nil fields are left untouched.
type UserUpdate struct {
	Name         *string `json:"name"`
	Organization *string `json:"organization"`
	Avatar       *string `json:"avatar"`
}

// Request/Response DTOs
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
