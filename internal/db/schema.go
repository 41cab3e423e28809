package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the two tables on a fresh database. Idempotent,
// runs at every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS usuarios (
			id             BIGSERIAL PRIMARY KEY,
			nombre         TEXT NOT NULL,
			email          TEXT NOT NULL UNIQUE,
			password_hash  TEXT NOT NULL,
			rol            TEXT NOT NULL,
			fecha_registro TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS cronogramas (
			id             BIGSERIAL PRIMARY KEY,
			titulo         TEXT NOT NULL,
			materia        TEXT NOT NULL,
			fecha_inicio   TIMESTAMPTZ NOT NULL,
			fecha_fin      TIMESTAMPTZ NOT NULL,
			color          TEXT NOT NULL DEFAULT '#3788d8',
			descripcion    TEXT,
			fecha_creacion TIMESTAMPTZ NOT NULL DEFAULT now(),
			usuario_id     BIGINT NOT NULL REFERENCES usuarios(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_cronogramas_usuario_id ON cronogramas(usuario_id);
	`)

	return err
}
