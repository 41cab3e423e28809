package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("usuario not found")
	ErrEmailTaken = errors.New("email already registered")
)

const (
	RoleMaestro     = "maestro"
	RoleCoordinador = "coordinador"
)

// ValidRole reports whether rol is one of the two roles the system knows.
func ValidRole(rol string) bool {
	return rol == RoleMaestro || rol == RoleCoordinador
}

type Usuario struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"` // never expose hash in JSON
	Rol           string    `json:"rol"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

type RegisterRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Rol      string `json:"rol" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
