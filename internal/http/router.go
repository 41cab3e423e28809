package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/avega-dev/cronogramas/internal/auth"
	"github.com/avega-dev/cronogramas/internal/config"
	"github.com/avega-dev/cronogramas/internal/http/handlers"
	"github.com/avega-dev/cronogramas/internal/http/middlewares"
	"github.com/avega-dev/cronogramas/internal/observability"
	"github.com/avega-dev/cronogramas/internal/repo/postgres"
	"github.com/avega-dev/cronogramas/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "cronogramas-api"

// NewRouter wires the production engine on top of a Postgres pool.
func NewRouter(log *slog.Logger, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	users := postgres.NewUsersRepo(pool, prom)
	schedules := postgres.NewSchedulesRepo(pool, prom)

	ping := func() error {
		if pool == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return pool.Ping(ctx)
	}

	return buildRouter(log, cfg, users, schedules, ping, reg, prom)
}

// NewRouterWithStores builds the same engine on injected stores, used
// by tests and Postgres-free local runs.
func NewRouterWithStores(log *slog.Logger, cfg config.Config, users service.UserStore, schedules service.ScheduleStore) *gin.Engine {
	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	return buildRouter(log, cfg, users, schedules, nil, reg, prom)
}

func buildRouter(
	log *slog.Logger,
	cfg config.Config,
	users service.UserStore,
	schedules service.ScheduleStore,
	ping func() error,
	reg *prometheus.Registry,
	prom *observability.Prom,
) *gin.Engine {
	if cfg.Env != "dev" && cfg.Env != "test" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// middleware
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.RequireJSON())
	r.Use(middlewares.MaxBodyBytes(1 << 20))
	r.Use(prom.GinHandleMiddleware())
	r.Use(otelgin.Middleware(serviceName))

	// services
	jwtManager := auth.NewManager(cfg.JWTSecret, cfg.AccessTTL())
	identity := service.NewIdentity(users, jwtManager)
	scheduleSvc := service.NewSchedules(schedules)

	// handlers
	authHandler := handlers.NewAuthHandler(identity)
	schedulesHandler := handlers.NewSchedulesHandler(identity, scheduleSvc)
	healthHandler := handlers.NewHealthHandler(ping)
	authMw := middlewares.NewAuthMiddleware(jwtManager)

	r.GET("/", handlers.Index)
	r.GET("/healthz", healthHandler.Healthz)
	r.GET("/readyz", healthHandler.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authMw.RequireAuth(), authHandler.Me)
	authGroup.GET("/is-coordinator", authMw.RequireAuth(), authHandler.IsCoordinator)

	cronogramas := r.Group("/cronogramas", authMw.RequireAuth())
	cronogramas.GET("", schedulesHandler.List)
	cronogramas.POST("", schedulesHandler.Create)
	cronogramas.PUT("/:id", schedulesHandler.Update)
	cronogramas.DELETE("/:id", schedulesHandler.Delete)

	return r
}
