package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/avega-dev/cronogramas/internal/config"
	"github.com/avega-dev/cronogramas/internal/domain/schedule"
	"github.com/avega-dev/cronogramas/internal/domain/user"
	"github.com/avega-dev/cronogramas/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

// ScheduleService is the slice of the schedule service the cronograma
// routes consume.
type ScheduleService interface {
	List(ctx context.Context, requesterID int64, rol string) ([]schedule.Cronograma, error)
	Create(ctx context.Context, requesterID int64, req schedule.CreateRequest) (schedule.Cronograma, error)
	Update(ctx context.Context, requesterID int64, rol string, id int64, req schedule.UpdateRequest) (schedule.Cronograma, error)
	Delete(ctx context.Context, requesterID int64, rol string, id int64) error
}

type SchedulesHandler struct {
	identity  IdentityService
	schedules ScheduleService
}

func NewSchedulesHandler(identity IdentityService, schedules ScheduleService) *SchedulesHandler {
	return &SchedulesHandler{
		identity:  identity,
		schedules: schedules,
	}
}

// requester resolves the authenticated account behind the request. The
// token already verified; a subject that no longer maps to a row is a
// 404, not a 401.
func (h *SchedulesHandler) requester(ctx *gin.Context, cctx context.Context) (user.Usuario, bool) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondError(ctx, http.StatusUnauthorized, "unauthorized", "Missing identity context", nil)
		return user.Usuario{}, false
	}

	u, err := h.identity.CurrentAccount(cctx, userID)

	if err != nil {
		RespondServiceError(ctx, err)
		return user.Usuario{}, false
	}

	return u, true
}

func (h *SchedulesHandler) List(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	u, ok := h.requester(ctx, cctx)

	if !ok {
		return
	}

	items, err := h.schedules.List(cctx, u.ID, u.Rol)

	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	out := make([]schedule.APIView, 0, len(items))

	for _, c := range items {
		out = append(out, c.ToAPI())
	}

	ctx.JSON(http.StatusOK, out)
}

func (h *SchedulesHandler) Create(ctx *gin.Context) {
	var req schedule.CreateRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	u, ok := h.requester(ctx, cctx)

	if !ok {
		return
	}

	c, err := h.schedules.Create(cctx, u.ID, req)

	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, c.ToAPI())
}

func (h *SchedulesHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)

	if !ok {
		return
	}

	var req schedule.UpdateRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	u, ok := h.requester(ctx, cctx)

	if !ok {
		return
	}

	c, err := h.schedules.Update(cctx, u.ID, u.Rol, id, req)

	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.ToAPI())
}

func (h *SchedulesHandler) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)

	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	u, ok := h.requester(ctx, cctx)

	if !ok {
		return
	}

	err := h.schedules.Delete(cctx, u.ID, u.Rol, id)

	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"mensaje": "Cronograma eliminado exitosamente"})
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)

	if err != nil {
		RespondBadRequest(ctx, "Identificador inválido", nil)
		return 0, false
	}

	return id, true
}
