package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "notes-copilot/internal/auth/delivery/http"
	briefingHTTP "notes-copilot/internal/briefing/delivery/http"
	taskHTTP "notes-copilot/internal/task/delivery/http"
)

const EnvironmentProduction = "production"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == EnvironmentProduction {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.corsOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins %v", srv.environment, srv.corsOrigins)
	}
	if !srv.mw.AuthEnabled() {
		srv.l.Warn(ctx, "auth.jwt_secret is empty, /api routes are unauthenticated")
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw)
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC), srv.mw)
	briefingHTTP.RegisterRoutes(api, briefingHTTP.New(srv.l, srv.briefingUC, srv.generator), srv.mw)
	srv.l.Infof(ctx, "API routes registered under /api/v1")

	if srv.authorizer != nil {
		authHTTP.RegisterRoutes(srv.gin.Group("/oauth"), authHTTP.New(srv.l, srv.authorizer))
		srv.l.Infof(ctx, "TickTick OAuth routes registered under /oauth/ticktick")
	} else {
		srv.l.Infof(ctx, "TickTick OAuth not configured, skipping /oauth routes")
	}

	return nil
}
