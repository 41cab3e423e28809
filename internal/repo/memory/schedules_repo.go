package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/avega-dev/cronogramas/internal/domain/schedule"
)

type SchedulesRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]schedule.Cronograma
}

func NewSchedulesRepo() *SchedulesRepo {
	return &SchedulesRepo{
		items: make(map[int64]schedule.Cronograma),
	}
}

func (r *SchedulesRepo) FindByID(_ context.Context, id int64) (schedule.Cronograma, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]

	if !ok {
		return schedule.Cronograma{}, schedule.ErrNotFound
	}

	return c, nil
}

func (r *SchedulesRepo) ListAll(_ context.Context) ([]schedule.Cronograma, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Cronograma, 0, len(r.items))

	for _, c := range r.items {
		out = append(out, c)
	}

	sortByID(out)

	return out, nil
}

func (r *SchedulesRepo) ListByOwner(_ context.Context, usuarioID int64) ([]schedule.Cronograma, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Cronograma, 0)

	for _, c := range r.items {
		if c.UsuarioID == usuarioID {
			out = append(out, c)
		}
	}

	sortByID(out)

	return out, nil
}

func (r *SchedulesRepo) Insert(_ context.Context, c schedule.Cronograma) (schedule.Cronograma, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	c.ID = r.nextID
	c.FechaCreacion = time.Now().UTC()

	r.items[c.ID] = c

	return c, nil
}

func (r *SchedulesRepo) Update(_ context.Context, c schedule.Cronograma) (schedule.Cronograma, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; !ok {
		return schedule.Cronograma{}, schedule.ErrNotFound
	}

	r.items[c.ID] = c

	return c, nil
}

func (r *SchedulesRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return schedule.ErrNotFound
	}

	delete(r.items, id)

	return nil
}

func sortByID(out []schedule.Cronograma) {
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
}
