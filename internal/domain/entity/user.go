package entity

import "time"

// Papéis válidos para User.
const (
	RoleMaster       = "MASTER"
	RoleAdmin        = "ADMIN"
	RoleRequisitante = "REQUISITANTE"
	RoleAprovador    = "APROVADOR"
	RoleAlmoxarife   = "ALMOXARIFE"
	RoleAuditor      = "AUDITOR"
)

// User representa um usuário do sistema (perfil + credenciais).
type User struct {
	ID           string
	Name         string
	Login        string // e-mail de acesso
	PasswordHash string // hash bcrypt, nunca em claro no domínio após persistir
	Role         string
	Department   string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole informa se o papel pertence ao conjunto fechado.
func ValidRole(r string) bool {
	switch r {
	case RoleMaster, RoleAdmin, RoleRequisitante, RoleAprovador, RoleAlmoxarife, RoleAuditor:
		return true
	}
	return false
}
