package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
// Role vazio assume REQUISITANTE.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Login    string `json:"login" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=MASTER ADMIN REQUISITANTE APROVADOR ALMOXARIFE AUDITOR"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse resposta do login: token + usuário.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse representação pública de um usuário (sem hash de senha).
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Login      string    `json:"login"`
	Role       string    `json:"role"`
	Department string    `json:"department,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
