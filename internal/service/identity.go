package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avega-dev/cronogramas/internal/apperr"
	"github.com/avega-dev/cronogramas/internal/domain/user"
	"github.com/avega-dev/cronogramas/internal/security"
)

// UserStore is the slice of persistence the identity service needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (user.Usuario, error)
	FindByID(ctx context.Context, id int64) (user.Usuario, error)
	Insert(ctx context.Context, nombre, email, passwordHash, rol string) (user.Usuario, error)
}

type TokenIssuer interface {
	GenerateAccessToken(userID int64, rol string) (string, error)
}

type Identity struct {
	users  UserStore
	tokens TokenIssuer
}

func NewIdentity(users UserStore, tokens TokenIssuer) *Identity {
	return &Identity{
		users:  users,
		tokens: tokens,
	}
}

// Register creates an account and returns it together with a fresh
// access token bound to the new id.
func (s *Identity) Register(ctx context.Context, req user.RegisterRequest) (user.Usuario, string, error) {
	if err := requireFields(map[string]string{
		"nombre":   req.Nombre,
		"email":    req.Email,
		"password": req.Password,
		"rol":      req.Rol,
	}); err != nil {
		return user.Usuario{}, "", err
	}

	if !user.ValidRole(req.Rol) {
		return user.Usuario{}, "", apperr.Validation("El rol debe ser 'maestro' o 'coordinador'")
	}

	hash, err := security.HashPassword(req.Password)

	if err != nil {
		return user.Usuario{}, "", fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Insert(ctx, req.Nombre, req.Email, hash, req.Rol)

	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.Usuario{}, "", apperr.Conflict("email_taken", "El email ya está registrado")
		}

		return user.Usuario{}, "", err
	}

	token, err := s.tokens.GenerateAccessToken(u.ID, u.Rol)

	if err != nil {
		return user.Usuario{}, "", fmt.Errorf("generate access token: %w", err)
	}

	return u, token, nil
}

// Login verifies credentials. Unknown email and wrong password produce
// the same error so callers cannot probe which one failed.
func (s *Identity) Login(ctx context.Context, req user.LoginRequest) (user.Usuario, string, error) {
	if err := requireFields(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}); err != nil {
		return user.Usuario{}, "", err
	}

	u, err := s.users.FindByEmail(ctx, req.Email)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Usuario{}, "", invalidCredentials()
		}

		return user.Usuario{}, "", err
	}

	if err := security.CheckPassword(u.PasswordHash, req.Password); err != nil {
		return user.Usuario{}, "", invalidCredentials()
	}

	token, err := s.tokens.GenerateAccessToken(u.ID, u.Rol)

	if err != nil {
		return user.Usuario{}, "", fmt.Errorf("generate access token: %w", err)
	}

	return u, token, nil
}

// CurrentAccount resolves an already-authenticated id to a live
// account. A token that verified but points at a vanished account is a
// not-found, distinct from an unauthenticated request.
func (s *Identity) CurrentAccount(ctx context.Context, id int64) (user.Usuario, error) {
	u, err := s.users.FindByID(ctx, id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Usuario{}, apperr.NotFound("Usuario no encontrado")
		}

		return user.Usuario{}, err
	}

	return u, nil
}

func (s *Identity) IsCoordinator(ctx context.Context, id int64) (bool, error) {
	u, err := s.CurrentAccount(ctx, id)

	if err != nil {
		return false, err
	}

	return u.Rol == user.RoleCoordinador, nil
}

func invalidCredentials() error {
	return apperr.Unauthorized("invalid_credentials", "Credenciales inválidas")
}

func requireFields(fields map[string]string) error {
	// deterministic order keeps error messages stable
	for _, name := range []string{"nombre", "email", "password", "rol"} {
		v, ok := fields[name]
		if ok && v == "" {
			return apperr.Validation(fmt.Sprintf("El campo '%s' es requerido", name))
		}
	}
	return nil
}
