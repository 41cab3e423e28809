package schedule

import (
	"errors"
	"time"
)

// DefaultColor is the display color assigned when a request omits one,
// the value FullCalendar ships with.
const DefaultColor = "#3788d8"

var ErrNotFound = errors.New("cronograma not found")

type Cronograma struct {
	ID            int64
	Titulo        string
	Materia       string
	FechaInicio   time.Time
	FechaFin      time.Time
	Color         string
	Descripcion   *string
	FechaCreacion time.Time
	UsuarioID     int64
}

// CreateRequest carries dates as text so the service controls parsing
// and can report a validation error instead of a bind failure.
type CreateRequest struct {
	Titulo      string  `json:"titulo" binding:"required"`
	Materia     string  `json:"materia" binding:"required"`
	FechaInicio string  `json:"fecha_inicio" binding:"required"`
	FechaFin    string  `json:"fecha_fin" binding:"required"`
	Color       string  `json:"color"`
	Descripcion *string `json:"descripcion"`
}

// UpdateRequest is a patch: nil means "leave the field alone".
type UpdateRequest struct {
	Titulo      *string `json:"titulo"`
	Materia     *string `json:"materia"`
	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
	Color       *string `json:"color"`
	Descripcion *string `json:"descripcion"`
}

// APIView is the wire shape the frontend calendar consumes.
type APIView struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Color       string  `json:"color"`
	Description *string `json:"description"`
	Materia     string  `json:"materia"`
	UsuarioID   int64   `json:"usuario_id"`
	Creado      string  `json:"creado"`
}

func (c Cronograma) ToAPI() APIView {
	return APIView{
		ID:          c.ID,
		Title:       c.Titulo,
		Start:       FormatDateTime(c.FechaInicio),
		End:         FormatDateTime(c.FechaFin),
		Color:       c.Color,
		Description: c.Descripcion,
		Materia:     c.Materia,
		UsuarioID:   c.UsuarioID,
		Creado:      FormatDateTime(c.FechaCreacion),
	}
}

const wireLayout = "2006-01-02T15:04:05"

// dateLayouts are the textual forms accepted on input. The calendar UI
// sends minute precision, API clients tend to send seconds or RFC3339.
var dateLayouts = []string{
	time.RFC3339,
	wireLayout,
	"2006-01-02T15:04",
}

var ErrBadDate = errors.New("invalid date format, use ISO format (YYYY-MM-DDTHH:MM)")

func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDate
}

func FormatDateTime(t time.Time) string {
	return t.Format(wireLayout)
}
