package auth

import "time"

type RegisterRequest struct {
	Username       string `json:"username" binding:"required,min=3,max=30" example:"referee"`
	Password       string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	RepeatPassword string `json:"repeat_password" binding:"required,eqfield=Password" example:"password123"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"referee"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}
