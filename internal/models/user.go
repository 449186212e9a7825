package models

import "time"

// User is a registered driver account.
type User struct {
	ID            int64     `json:"id" db:"id"`
	Username      string    `json:"username" db:"username"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	Fullname      string    `json:"fullname" db:"fullname"`
	Carrier       string    `json:"carrier" db:"carrier"`
	HomeAddress   string    `json:"home_address" db:"home_address"`
	OfficeAddress string    `json:"office_address" db:"office_address"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required,min=8"`
	Fullname      string `json:"fullname"`
	Carrier       string `json:"carrier"`
	HomeAddress   string `json:"home_address"`
	OfficeAddress string `json:"office_address"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
