package memory

import (
	"context"
	"sync"
	"time"

	"github.com/avega-dev/cronogramas/internal/domain/user"
)

// UsersRepo is a map-backed UserStore for tests and local runs without
// Postgres. It mirrors the sentinel errors of the pgx implementation.
type UsersRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]user.Usuario
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		items: make(map[int64]user.Usuario),
	}
}

func (r *UsersRepo) FindByEmail(_ context.Context, email string) (user.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}

	return user.Usuario{}, user.ErrNotFound
}

func (r *UsersRepo) FindByID(_ context.Context, id int64) (user.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]

	if !ok {
		return user.Usuario{}, user.ErrNotFound
	}

	return u, nil
}

func (r *UsersRepo) Insert(_ context.Context, nombre, email, passwordHash, rol string) (user.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Email == email {
			return user.Usuario{}, user.ErrEmailTaken
		}
	}

	r.nextID++

	u := user.Usuario{
		ID:            r.nextID,
		Nombre:        nombre,
		Email:         email,
		PasswordHash:  passwordHash,
		Rol:           rol,
		FechaRegistro: time.Now().UTC(),
	}

	r.items[u.ID] = u

	return u, nil
}
