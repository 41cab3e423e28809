package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/avega-dev/cronogramas/internal/config"
	"github.com/avega-dev/cronogramas/internal/domain/user"
	"github.com/avega-dev/cronogramas/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

// IdentityService is the slice of the identity service the auth routes
// consume.
type IdentityService interface {
	Register(ctx context.Context, req user.RegisterRequest) (user.Usuario, string, error)
	Login(ctx context.Context, req user.LoginRequest) (user.Usuario, string, error)
	CurrentAccount(ctx context.Context, id int64) (user.Usuario, error)
	IsCoordinator(ctx context.Context, id int64) (bool, error)
}

type AuthHandler struct {
	identity IdentityService
}

func NewAuthHandler(identity IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req user.RegisterRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	u, token, err := h.identity.Register(cctx, req)

	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"mensaje":      "Usuario registrado exitosamente",
		"usuario":      u,
		"access_token": token,
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req user.LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	// short timeout for the lookup + hash check
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	u, token, err := h.identity.Login(cctx, req)

	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"mensaje":      "Inicio de sesión exitoso",
		"usuario":      u,
		"access_token": token,
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondError(ctx, http.StatusUnauthorized, "unauthorized", "Missing identity context", nil)
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	u, err := h.identity.CurrentAccount(cctx, userID)

	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, u)
}

func (h *AuthHandler) IsCoordinator(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondError(ctx, http.StatusUnauthorized, "unauthorized", "Missing identity context", nil)
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	isCoord, err := h.identity.IsCoordinator(cctx, userID)

	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"is_coordinator": isCoord})
}
