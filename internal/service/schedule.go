package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avega-dev/cronogramas/internal/apperr"
	"github.com/avega-dev/cronogramas/internal/domain/schedule"
	"github.com/avega-dev/cronogramas/internal/policy"
)

// ScheduleStore is the data access the schedule service depends on.
// Every call is atomic: either the row changes fully or not at all.
type ScheduleStore interface {
	FindByID(ctx context.Context, id int64) (schedule.Cronograma, error)
	ListAll(ctx context.Context) ([]schedule.Cronograma, error)
	ListByOwner(ctx context.Context, usuarioID int64) ([]schedule.Cronograma, error)
	Insert(ctx context.Context, c schedule.Cronograma) (schedule.Cronograma, error)
	Update(ctx context.Context, c schedule.Cronograma) (schedule.Cronograma, error)
	Delete(ctx context.Context, id int64) error
}

type Schedules struct {
	store ScheduleStore
}

func NewSchedules(store ScheduleStore) *Schedules {
	return &Schedules{store: store}
}

// List returns the rows the requester may see: coordinators get every
// cronograma, maestros only their own.
func (s *Schedules) List(ctx context.Context, requesterID int64, rol string) ([]schedule.Cronograma, error) {
	if policy.CanViewAll(rol) {
		return s.store.ListAll(ctx)
	}

	return s.store.ListByOwner(ctx, requesterID)
}

// Create persists a new cronograma owned by the requester. Any owner
// supplied in the payload is ignored.
func (s *Schedules) Create(ctx context.Context, requesterID int64, req schedule.CreateRequest) (schedule.Cronograma, error) {
	for _, f := range []struct{ name, val string }{
		{"titulo", req.Titulo},
		{"materia", req.Materia},
		{"fecha_inicio", req.FechaInicio},
		{"fecha_fin", req.FechaFin},
	} {
		if f.val == "" {
			return schedule.Cronograma{}, apperr.Validation(fmt.Sprintf("El campo '%s' es requerido", f.name))
		}
	}

	inicio, err := schedule.ParseDateTime(req.FechaInicio)

	if err != nil {
		return schedule.Cronograma{}, badDate()
	}

	fin, err := schedule.ParseDateTime(req.FechaFin)

	if err != nil {
		return schedule.Cronograma{}, badDate()
	}

	if !fin.After(inicio) {
		return schedule.Cronograma{}, badDateOrder()
	}

	color := req.Color

	if color == "" {
		color = schedule.DefaultColor
	}

	c := schedule.Cronograma{
		Titulo:      req.Titulo,
		Materia:     req.Materia,
		FechaInicio: inicio,
		FechaFin:    fin,
		Color:       color,
		Descripcion: req.Descripcion,
		UsuarioID:   requesterID,
	}

	return s.store.Insert(ctx, c)
}

// Update applies the supplied subset of fields to an existing
// cronograma. Existence is checked before permission, then the date
// invariant is re-checked against the merged record; nothing is
// persisted unless every check passes.
func (s *Schedules) Update(ctx context.Context, requesterID int64, rol string, id int64, req schedule.UpdateRequest) (schedule.Cronograma, error) {
	c, err := s.store.FindByID(ctx, id)

	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return schedule.Cronograma{}, notFound()
		}

		return schedule.Cronograma{}, err
	}

	if !policy.CanModify(rol, requesterID, c.UsuarioID) {
		return schedule.Cronograma{}, apperr.Forbidden("No tienes permiso para editar este cronograma")
	}

	if req.Titulo != nil {
		c.Titulo = *req.Titulo
	}
	if req.Materia != nil {
		c.Materia = *req.Materia
	}
	if req.FechaInicio != nil {
		c.FechaInicio, err = schedule.ParseDateTime(*req.FechaInicio)
		if err != nil {
			return schedule.Cronograma{}, badDate()
		}
	}
	if req.FechaFin != nil {
		c.FechaFin, err = schedule.ParseDateTime(*req.FechaFin)
		if err != nil {
			return schedule.Cronograma{}, badDate()
		}
	}
	if req.Color != nil {
		c.Color = *req.Color
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}

	if !c.FechaFin.After(c.FechaInicio) {
		return schedule.Cronograma{}, badDateOrder()
	}

	out, err := s.store.Update(ctx, c)

	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return schedule.Cronograma{}, notFound()
		}

		return schedule.Cronograma{}, err
	}

	return out, nil
}

// Delete removes a cronograma, owner or coordinator only.
func (s *Schedules) Delete(ctx context.Context, requesterID int64, rol string, id int64) error {
	c, err := s.store.FindByID(ctx, id)

	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return notFound()
		}

		return err
	}

	if !policy.CanModify(rol, requesterID, c.UsuarioID) {
		return apperr.Forbidden("No tienes permiso para eliminar este cronograma")
	}

	err = s.store.Delete(ctx, id)

	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return notFound()
		}

		return err
	}

	return nil
}

func notFound() error {
	return apperr.NotFound("Cronograma no encontrado")
}

func badDate() error {
	return apperr.Validation("Formato de fecha inválido. Use ISO format (YYYY-MM-DDTHH:MM)")
}

func badDateOrder() error {
	return apperr.Validation("La fecha de fin debe ser posterior a la fecha de inicio")
}
