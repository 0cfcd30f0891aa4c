// Package server assembles the gin engine and the HTTP listener for one
// resource service.
package server

import (
	"context"
	"net/http"

	"library-services/internal/config"
	"library-services/internal/handlers"
	"library-services/internal/middleware"
	"library-services/internal/monitoring"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	httpSrv *http.Server
}

// NewEngine builds the shared middleware chain: logging, panic recovery,
// CORS, rate limiting, request metrics, and the operational probes.
func NewEngine(cfg *config.Config, mon *monitoring.Monitor) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(middleware.RecoveryWithLog())
	engine.Use(cors.Default())
	engine.Use(middleware.RateLimit(cfg.RateLimit))

	if mon != nil {
		engine.Use(mon.Middleware())
		engine.GET("/metrics", mon.MetricsHandler())
		engine.GET("/health", mon.HealthHandler())
	}

	return engine
}

// ResourceHandler is the handler set every CRUD resource provides.
type ResourceHandler interface {
	Create(*gin.Context)
	List(*gin.Context)
	Get(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

// RegisterResource mounts the five CRUD routes for one resource under
// path. The gate guards the mutating routes only; reads stay open.
func RegisterResource(engine *gin.Engine, path string, h ResourceHandler, gate gin.HandlerFunc) {
	group := engine.Group(path)
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", gate, h.Create)
	group.PUT("/:id", gate, h.Update)
	group.DELETE("/:id", gate, h.Delete)
}

// RegisterAuth mounts the token issuance endpoints backing the gate.
func RegisterAuth(engine *gin.Engine, h *handlers.AuthHandler) {
	group := engine.Group("/auth")
	group.POST("/register", h.Register)
	group.POST("/login", h.Login)
}

func New(cfg *config.Config, engine *gin.Engine) *Server {
	return &Server{
		httpSrv: &http.Server{
			Addr:         cfg.GetServerAddr(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

func (s *Server) Start() error {
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
