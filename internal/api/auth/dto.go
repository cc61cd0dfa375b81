package auth

import "time"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
	FullName string `json:"fullName" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=30"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"omitempty,max=100"`
	Bio      string `json:"bio" validate:"omitempty,max=500"`
}

type SendResetOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Code     string `json:"code" validate:"required,len=5"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	FullName       string    `json:"fullName,omitempty"`
	Avatar         string    `json:"avatar"`
	Bio            string    `json:"bio,omitempty"`
	Role           string    `json:"role"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type LoginResponse struct {
	AccessToken      string       `json:"accessToken"`
	ExpiresInMinutes float64      `json:"expiresInMinutes"`
	User             UserResponse `json:"user"`
}

type UserGoogle struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
