package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mtessier/recipe-api/config"
	"github.com/mtessier/recipe-api/internal/api"
	"github.com/mtessier/recipe-api/internal/logger"
	"github.com/mtessier/recipe-api/internal/middleware"
	"github.com/mtessier/recipe-api/internal/service"
)

// Server wires the entity services into a gin engine and runs the HTTP
// listener.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	log    *logger.Logger
}

// New creates a new server instance
func New(cfg *config.Config, db *gorm.DB, log *logger.Logger) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.NewRecipeHandler(service.NewRecipeService(db, log)).RegisterRoutes(engine)
	api.NewIngredientHandler(service.NewIngredientService(db, log)).RegisterRoutes(engine)
	api.NewStepHandler(service.NewStepService(db, log)).RegisterRoutes(engine)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    cfg.Addr(),
			Handler: engine,
		},
		log: log,
	}
}

// Start starts the listener and blocks until it stops.
func (s *Server) Start() error {
	s.log.Info("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Engine exposes the underlying router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
