package postgres

import (
	"context"
	"errors"

	"github.com/avega-dev/cronogramas/internal/domain/schedule"
	"github.com/avega-dev/cronogramas/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cronogramaColumns = `id, titulo, materia, fecha_inicio, fecha_fin, color, descripcion, fecha_creacion, usuario_id`

type SchedulesRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewSchedulesRepo(pool *pgxpool.Pool, prom *observability.Prom) *SchedulesRepo {
	return &SchedulesRepo{
		pool: pool,
		prom: prom,
	}
}

func (r *SchedulesRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func scanCronograma(row pgx.Row) (schedule.Cronograma, error) {
	var c schedule.Cronograma

	err := row.Scan(
		&c.ID,
		&c.Titulo,
		&c.Materia,
		&c.FechaInicio,
		&c.FechaFin,
		&c.Color,
		&c.Descripcion,
		&c.FechaCreacion,
		&c.UsuarioID,
	)

	return c, err
}

func (r *SchedulesRepo) FindByID(ctx context.Context, id int64) (schedule.Cronograma, error) {
	var c schedule.Cronograma

	err := r.observe("cronogramas.find_by_id", func() error {
		var scanErr error
		c, scanErr = scanCronograma(r.pool.QueryRow(
			ctx,
			`SELECT `+cronogramaColumns+` FROM cronogramas WHERE id = $1`,
			id,
		))
		return scanErr
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Cronograma{}, schedule.ErrNotFound
		}
		return schedule.Cronograma{}, err
	}

	return c, nil
}

func (r *SchedulesRepo) ListAll(ctx context.Context) ([]schedule.Cronograma, error) {
	return r.list(ctx, "cronogramas.list_all",
		`SELECT `+cronogramaColumns+` FROM cronogramas ORDER BY id ASC`)
}

func (r *SchedulesRepo) ListByOwner(ctx context.Context, usuarioID int64) ([]schedule.Cronograma, error) {
	return r.list(ctx, "cronogramas.list_by_owner",
		`SELECT `+cronogramaColumns+` FROM cronogramas WHERE usuario_id = $1 ORDER BY id ASC`,
		usuarioID)
}

func (r *SchedulesRepo) list(ctx context.Context, op, query string, args ...interface{}) ([]schedule.Cronograma, error) {
	output := make([]schedule.Cronograma, 0)

	err := r.observe(op, func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			c, err := scanCronograma(rows)

			if err != nil {
				return err
			}

			output = append(output, c)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}

func (r *SchedulesRepo) Insert(ctx context.Context, c schedule.Cronograma) (schedule.Cronograma, error) {
	var out schedule.Cronograma

	err := r.observe("cronogramas.insert", func() error {
		var scanErr error
		out, scanErr = scanCronograma(r.pool.QueryRow(
			ctx,
			`INSERT INTO cronogramas (titulo, materia, fecha_inicio, fecha_fin, color, descripcion, usuario_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING `+cronogramaColumns,
			c.Titulo, c.Materia, c.FechaInicio, c.FechaFin, c.Color, c.Descripcion, c.UsuarioID,
		))
		return scanErr
	})

	if err != nil {
		return schedule.Cronograma{}, err
	}

	return out, nil
}

// Update rewrites every mutable column at once. The service applies the
// partial payload and re-checks the date invariant before calling here,
// so the write is all-or-nothing.
func (r *SchedulesRepo) Update(ctx context.Context, c schedule.Cronograma) (schedule.Cronograma, error) {
	var out schedule.Cronograma

	err := r.observe("cronogramas.update", func() error {
		var scanErr error
		out, scanErr = scanCronograma(r.pool.QueryRow(
			ctx,
			`UPDATE cronogramas
				SET titulo = $2,
						materia = $3,
						fecha_inicio = $4,
						fecha_fin = $5,
						color = $6,
						descripcion = $7
			WHERE id = $1
			RETURNING `+cronogramaColumns,
			c.ID, c.Titulo, c.Materia, c.FechaInicio, c.FechaFin, c.Color, c.Descripcion,
		))
		return scanErr
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Cronograma{}, schedule.ErrNotFound
		}
		return schedule.Cronograma{}, err
	}

	return out, nil
}

func (r *SchedulesRepo) Delete(ctx context.Context, id int64) error {
	return r.observe("cronogramas.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM cronogramas WHERE id = $1`, id)

		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return schedule.ErrNotFound
		}

		return nil
	})
}
