package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"notes-copilot/internal/auth"
	"notes-copilot/internal/briefing"
	"notes-copilot/internal/middleware"
	"notes-copilot/internal/task"
	"notes-copilot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string
	mw          middleware.Middleware

	// Domains
	taskUC     task.UseCase
	briefingUC briefing.UseCase
	generator  briefing.Generator
	authorizer auth.Authorizer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	CORSOrigins []string
	JWTSecret   string

	TaskUseCase     task.UseCase
	BriefingUseCase briefing.UseCase
	Generator       briefing.Generator
	// Authorizer is optional; without it the OAuth routes are not mounted.
	Authorizer auth.Authorizer
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		corsOrigins: cfg.CORSOrigins,
		mw:          middleware.New(logger, cfg.JWTSecret),
		taskUC:      cfg.TaskUseCase,
		briefingUC:  cfg.BriefingUseCase,
		generator:   cfg.Generator,
		authorizer:  cfg.Authorizer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.briefingUC == nil || srv.generator == nil {
		return errors.New("briefing usecase and generator are required")
	}
	return nil
}

// Handler returns the engine, for tests and embedding.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
