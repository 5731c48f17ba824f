package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/jobboard/config"
	db "github.com/pranav244872/jobboard/db/sqlc"
	"github.com/pranav244872/jobboard/token"
	"go.uber.org/zap"
)

// Server serves HTTP requests for the job board match service.
type Server struct {
	config     config.Config
	store      db.Store
	tokenMaker *token.JWTMaker
	logger     *zap.Logger
	router     *gin.Engine
	now        func() time.Time // Clock used for alert windows
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(cfg config.Config, store db.Store, logger *zap.Logger) (*Server, error) {
	tokenMaker, err := token.NewJWTMaker(cfg.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	server := &Server{
		config:     cfg,
		store:      store,
		tokenMaker: tokenMaker,
		logger:     logger,
		now:        time.Now,
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	router := gin.New()
	router.Use(requestIDMiddleware(), loggerMiddleware(server.logger), gin.Recovery())

	// Public routes
	router.GET("/healthz", server.healthCheck)
	router.POST("/match", server.scoreSkills)

	// Routes below need a bearer token
	authRoutes := router.Group("/").Use(authMiddleware(server.tokenMaker))

	authRoutes.GET("/jobs/:id/match", server.getJobMatch)
	authRoutes.GET("/jobs/:id/kanban", server.getKanbanBoard)
	authRoutes.GET("/alerts/matches", server.listAlertMatches)

	server.router = router
}

// Handler exposes the router so the caller can own the http.Server lifecycle.
func (server *Server) Handler() http.Handler {
	return server.router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
