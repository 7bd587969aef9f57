package model

type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Success bool             `json:"success"`
	User    AuthUserResponse `json:"user"`
}

type AuthMeResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}
