package schedule_test

import (
	"testing"
	"time"

	"github.com/avega-dev/cronogramas/internal/domain/schedule"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"minute_precision", "2024-01-01T10:00", false},
		{"second_precision", "2024-01-01T10:00:30", false},
		{"rfc3339", "2024-01-01T10:00:00Z", false},
		{"date_only", "2024-01-01", true},
		{"garbage", "mañana", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			_, err := schedule.ParseDateTime(tt.input)

			if tt.wantErr && err == nil {
				t.Fatalf("ParseDateTime(%q) succeeded, want error", tt.input)
			}

			if !tt.wantErr && err != nil {
				t.Fatalf("ParseDateTime(%q) failed: %v", tt.input, err)
			}
		})
	}
}

func TestParseDateTime_MinutePrecisionValue(t *testing.T) {
	got, err := schedule.ParseDateTime("2024-01-01T10:30")

	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}

	want := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestToAPI(t *testing.T) {
	desc := "repaso parcial"

	c := schedule.Cronograma{
		ID:            5,
		Titulo:        "Álgebra",
		Materia:       "Matemáticas",
		FechaInicio:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		FechaFin:      time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		Color:         schedule.DefaultColor,
		Descripcion:   &desc,
		FechaCreacion: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		UsuarioID:     2,
	}

	view := c.ToAPI()

	if view.Start != "2024-01-01T10:00:00" {
		t.Fatalf("got start %q", view.Start)
	}

	if view.End != "2024-01-01T11:00:00" {
		t.Fatalf("got end %q", view.End)
	}

	if view.Title != "Álgebra" || view.Materia != "Matemáticas" {
		t.Fatalf("title/materia not mapped: %+v", view)
	}

	if view.UsuarioID != 2 || view.ID != 5 {
		t.Fatalf("ids not mapped: %+v", view)
	}

	if view.Description == nil || *view.Description != desc {
		t.Fatalf("description not mapped: %+v", view)
	}
}
