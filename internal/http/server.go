// Package http exposes the application over a JSON REST API.
//
// Handlers are thin: they bind and validate transport shapes, call into the
// auth, service and calculator packages, and map errors to status codes.
// Domain rules never live here.
package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kharcha-app/kharcha/internal/auth"
	"github.com/kharcha-app/kharcha/internal/config"
	"github.com/kharcha-app/kharcha/internal/service"
	"github.com/kharcha-app/kharcha/internal/storage"
)

// Server wires the HTTP surface to the application services.
type Server struct {
	cfg           *config.Config
	authenticator *auth.Authenticator
	ledger        *service.Ledger
	store         storage.Store
	engine        *gin.Engine
}

// NewServer builds the gin engine with all routes and middleware registered.
func NewServer(cfg *config.Config, authenticator *auth.Authenticator, ledger *service.Ledger, store storage.Store) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:           cfg,
		authenticator: authenticator,
		ledger:        ledger,
		store:         store,
		engine:        gin.New(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(requestLogger())
	s.engine.Use(metricsMiddleware())
	s.engine.Use(corsMiddleware(s.cfg.AllowOrigins))

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/send-otp", s.handleSendOTP)
	authGroup.POST("/verify-otp", s.handleVerifyOTP)

	authed := authGroup.Group("")
	authed.Use(s.requireAuth())
	authed.GET("/me", s.handleMe)
	authed.PUT("/profile", s.handleUpdateProfile)
	authed.POST("/logout", s.handleLogout)

	grocery := api.Group("/grocery")
	grocery.Use(s.requireAuth())
	grocery.GET("/summary/:year/:month", s.handleMonthlySummary)
	grocery.GET("/:date", s.handleGetList)
	grocery.POST("/:date/items", s.handleAddItem)
	grocery.PUT("/:date/items/:itemId", s.handleUpdateItem)
	grocery.DELETE("/:date/items/:itemId", s.handleDeleteItem)
	grocery.POST("/:date/save", s.handleBulkSave)
	grocery.POST("/:date/duplicate-last-week", s.handleDuplicateLastWeek)

	billSplit := api.Group("/bill-split")
	billSplit.Use(s.requireAuth())
	billSplit.POST("/calculate", s.handleCalculateSplit)
	billSplit.POST("/save", s.handleSaveSplit)
	billSplit.GET("/history", s.handleSplitHistory)
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the server on the configured port.
func (s *Server) Run() error {
	return s.engine.Run(fmt.Sprintf(":%d", s.cfg.Port))
}
