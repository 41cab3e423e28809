package postgres

import (
	"context"
	"errors"

	"github.com/avega-dev/cronogramas/internal/domain/user"
	"github.com/avega-dev/cronogramas/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UsersRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewUsersRepo(pool *pgxpool.Pool, prom *observability.Prom) *UsersRepo {
	return &UsersRepo{
		pool: pool,
		prom: prom,
	}
}

func (r *UsersRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (user.Usuario, error) {
	var u user.Usuario

	err := r.observe("usuarios.find_by_email", func() error {
		return r.pool.QueryRow(
			ctx,
			`SELECT id, nombre, email, password_hash, rol, fecha_registro
			 FROM usuarios
			 WHERE email = $1`,
			email,
		).Scan(
			&u.ID,
			&u.Nombre,
			&u.Email,
			&u.PasswordHash,
			&u.Rol,
			&u.FechaRegistro,
		)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Usuario{}, user.ErrNotFound
		}

		return user.Usuario{}, err
	}
	return u, nil
}

func (r *UsersRepo) FindByID(ctx context.Context, id int64) (user.Usuario, error) {
	var u user.Usuario

	err := r.observe("usuarios.find_by_id", func() error {
		return r.pool.QueryRow(
			ctx,
			`SELECT id, nombre, email, password_hash, rol, fecha_registro
			 FROM usuarios
			 WHERE id = $1`,
			id,
		).Scan(
			&u.ID,
			&u.Nombre,
			&u.Email,
			&u.PasswordHash,
			&u.Rol,
			&u.FechaRegistro,
		)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Usuario{}, user.ErrNotFound
		}

		return user.Usuario{}, err
	}
	return u, nil
}

// Insert persists a new account and returns it with the id and
// registration timestamp the database assigned. A duplicate email
// surfaces as user.ErrEmailTaken via the unique index.
func (r *UsersRepo) Insert(ctx context.Context, nombre, email, passwordHash, rol string) (user.Usuario, error) {
	var u user.Usuario

	err := r.observe("usuarios.insert", func() error {
		return r.pool.QueryRow(
			ctx,
			`INSERT INTO usuarios (nombre, email, password_hash, rol)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, nombre, email, password_hash, rol, fecha_registro`,
			nombre, email, passwordHash, rol,
		).Scan(
			&u.ID,
			&u.Nombre,
			&u.Email,
			&u.PasswordHash,
			&u.Rol,
			&u.FechaRegistro,
		)
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.Usuario{}, user.ErrEmailTaken
		}

		return user.Usuario{}, err
	}

	return u, nil
}
