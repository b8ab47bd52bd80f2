// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ushehu/My-Ride-App/internal/http/handlers"
	"github.com/Ushehu/My-Ride-App/internal/http/middleware"
	"github.com/Ushehu/My-Ride-App/internal/modules/drivers"
	"github.com/Ushehu/My-Ride-App/internal/modules/estimate"
)

type ServerDeps struct {
	Estimate *estimate.Service
	Drivers  *drivers.Service
	Log      *zap.Logger
	RadiusKm float64
	Seed     int64
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(s.deps.Log), middleware.Logging(s.deps.Log))

	estimateHandler := handlers.NewEstimateHandler(s.deps.Estimate, s.deps.Drivers, s.deps.RadiusKm, s.deps.Seed)
	r.POST("/api/estimates", estimateHandler.Create)
	r.GET("/api/region", estimateHandler.Region)

	driverHandler := handlers.NewDriverHandler(s.deps.Drivers, s.deps.RadiusKm)
	r.GET("/api/drivers/nearby", driverHandler.Nearby)
	r.PUT("/api/drivers/:id/location", driverHandler.UpdatePosition)
	r.DELETE("/api/drivers/:id/location", driverHandler.ClearPosition)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
