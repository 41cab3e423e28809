package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/avega-dev/cronogramas/internal/domain/schedule"
	"github.com/avega-dev/cronogramas/internal/domain/user"
	"github.com/avega-dev/cronogramas/internal/repo/memory"
)

func sample(ownerID int64) schedule.Cronograma {
	return schedule.Cronograma{
		Titulo:      "Clase",
		Materia:     "Física",
		FechaInicio: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Color:       schedule.DefaultColor,
		UsuarioID:   ownerID,
	}
}

func TestSchedulesRepo_CRUD(t *testing.T) {
	repo := memory.NewSchedulesRepo()
	ctx := context.Background()

	c, err := repo.Insert(ctx, sample(1))

	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if c.ID == 0 {
		t.Fatalf("id not assigned")
	}

	if c.FechaCreacion.IsZero() {
		t.Fatalf("fecha_creacion not assigned")
	}

	got, err := repo.FindByID(ctx, c.ID)

	if err != nil || got.Titulo != "Clase" {
		t.Fatalf("find: %+v err=%v", got, err)
	}

	c.Titulo = "Clase práctica"

	if _, err := repo.Update(ctx, c); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ = repo.FindByID(ctx, c.ID)

	if got.Titulo != "Clase práctica" {
		t.Fatalf("update not applied: %q", got.Titulo)
	}

	if err := repo.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.FindByID(ctx, c.ID); err != schedule.ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, c.ID); err != schedule.ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound on second delete", err)
	}
}

func TestSchedulesRepo_Listing(t *testing.T) {
	repo := memory.NewSchedulesRepo()
	ctx := context.Background()

	first, _ := repo.Insert(ctx, sample(1))
	second, _ := repo.Insert(ctx, sample(2))
	third, _ := repo.Insert(ctx, sample(1))

	all, err := repo.ListAll(ctx)

	if err != nil || len(all) != 3 {
		t.Fatalf("list all: %d err=%v", len(all), err)
	}

	if all[0].ID != first.ID || all[1].ID != second.ID || all[2].ID != third.ID {
		t.Fatalf("list not ordered by id")
	}

	mine, err := repo.ListByOwner(ctx, 1)

	if err != nil || len(mine) != 2 {
		t.Fatalf("list by owner: %d err=%v", len(mine), err)
	}

	for _, c := range mine {
		if c.UsuarioID != 1 {
			t.Fatalf("foreign row in owner listing")
		}
	}
}

func TestUsersRepo(t *testing.T) {
	repo := memory.NewUsersRepo()
	ctx := context.Background()

	u, err := repo.Insert(ctx, "Ana", "ana@x.com", "hash", user.RoleMaestro)

	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if u.ID == 0 || u.FechaRegistro.IsZero() {
		t.Fatalf("id or fecha_registro not assigned: %+v", u)
	}

	if _, err := repo.Insert(ctx, "Ana2", "ana@x.com", "hash2", user.RoleMaestro); err != user.ErrEmailTaken {
		t.Fatalf("got %v, want ErrEmailTaken", err)
	}

	byEmail, err := repo.FindByEmail(ctx, "ana@x.com")

	if err != nil || byEmail.ID != u.ID {
		t.Fatalf("find by email: %+v err=%v", byEmail, err)
	}

	byID, err := repo.FindByID(ctx, u.ID)

	if err != nil || byID.Email != "ana@x.com" {
		t.Fatalf("find by id: %+v err=%v", byID, err)
	}

	if _, err := repo.FindByID(ctx, 99); err != user.ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	if _, err := repo.FindByEmail(ctx, "x@x.com"); err != user.ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
