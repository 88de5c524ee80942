package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almox360/almox-api/internal/application/auth"
	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
	pkgjwt "github.com/almox360/almox-api/pkg/jwt"
)

// memUserRepo é um UserRepository em memória para os testes de autenticação.
type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Login == user.Login {
			return domain.ErrLoginAlreadyExists
		}
	}
	c := *user
	r.users[user.ID] = &c
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *memUserRepo) GetByLogin(login string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Login == login {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (r *memUserRepo) Update(user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	c := *user
	r.users[user.ID] = &c
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "almox360-test"}

func register(t *testing.T, uc *auth.AuthUseCase, login, password, role string) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Usuário Teste",
		Login:    login,
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return out
}

func TestRegister_PapelPadraoRequisitante(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)

	out := register(t, uc, "a@empresa.com", "senha123", "")

	assert.Equal(t, entity.RoleRequisitante, out.Role)
	assert.True(t, out.Active)
	assert.NotEmpty(t, out.ID)
}

func TestRegister_LoginDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)
	register(t, uc, "a@empresa.com", "senha123", "")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Outro", Login: "a@empresa.com", Password: "outra456",
	})
	assert.ErrorIs(t, err, domain.ErrLoginAlreadyExists)
}

func TestRegister_PapelInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "X", Login: "x@empresa.com", Password: "senha123", Role: "GERENTE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenCarregaIdentidadeEPapel(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)
	registered := register(t, uc, "a@empresa.com", "senha123", entity.RoleAlmoxarife)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Login: "a@empresa.com", Password: "senha123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, name, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "Usuário Teste", name)
	assert.Equal(t, entity.RoleAlmoxarife, role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)
	register(t, uc, "a@empresa.com", "senha123", "")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Login: "a@empresa.com", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Login: "ninguem@empresa.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInativoBloqueado(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	registered := register(t, uc, "a@empresa.com", "senha123", "")
	repo.users[registered.ID].Active = false

	_, err := uc.Login(context.Background(), dto.LoginRequest{Login: "a@empresa.com", Password: "senha123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMe_DevolvePerfilSemHash(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)
	registered := register(t, uc, "a@empresa.com", "senha123", "")

	out, err := uc.Me(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@empresa.com", out.Login)
}

func TestMe_Inexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)

	_, err := uc.Me(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
