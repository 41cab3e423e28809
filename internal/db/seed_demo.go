package db

import (
	"context"
	"errors"

	"github.com/avega-dev/cronogramas/internal/config"
	"github.com/avega-dev/cronogramas/internal/domain/user"
	"github.com/avega-dev/cronogramas/internal/security"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoUsers inserts one coordinator and one maestro account when
// demo seeding is enabled and they do not exist yet.
func SeedDemoUsers(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if !cfg.SeedDemo {
		return nil
	}

	seeds := []struct {
		nombre   string
		email    string
		password string
		rol      string
	}{
		{"Coordinador Demo", cfg.DemoCoordEmail, cfg.DemoCoordPassword, user.RoleCoordinador},
		{"Maestro Demo", cfg.DemoTeacherEmail, cfg.DemoTeacherPass, user.RoleMaestro},
	}

	for _, seed := range seeds {
		if seed.email == "" || seed.password == "" {
			continue
		}

		err := ensureUser(ctx, pool, seed.nombre, seed.email, seed.password, seed.rol)

		if err != nil {
			return err
		}
	}

	return nil
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, nombre, email, password, rol string) error {
	var dummy int64

	err := pool.QueryRow(ctx, `SELECT id FROM usuarios WHERE email = $1`, email).Scan(&dummy)

	if err == nil {
		return nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := security.HashPassword(password)

	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO usuarios (nombre, email, password_hash, rol)
		 VALUES ($1, $2, $3, $4)`,
		nombre, email, hash, rol,
	)

	return err
}
