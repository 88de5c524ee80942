package dto

// UpdateUserRequest body para PUT /api/users/:id (atualização parcial do perfil).
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty"`
	Role       *string `json:"role,omitempty" validate:"omitempty,oneof=MASTER ADMIN REQUISITANTE APROVADOR ALMOXARIFE AUDITOR"`
	Active     *bool   `json:"active,omitempty"`
	Department *string `json:"department,omitempty"`
}

// UserListResponse listagem de usuários.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}
